// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-messenger/internal/service"
)

var failureOps = map[string]string{
	service.OpRefreshUsers:    "Не удалось загрузить пользователей",
	service.OpRefreshMessages: "Не удалось загрузить сообщения",
	service.OpCreateUser:      "Не удалось добавить пользователя",
	service.OpSendMessage:     "Не удалось отправить сообщение",
	service.OpMarkRead:        "Не удалось отметить сообщение",
}

func failureMessage(f service.Failure) string {
	prefix, ok := failureOps[f.Op]
	if !ok {
		prefix = "Ошибка"
	}
	return prefix + ": " + humanizeError(f.Err)
}

func humanizeError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, service.ErrEmptyName):
		return "имя не может быть пустым"
	case errors.Is(err, service.ErrEmptyText):
		return "сообщение не может быть пустым"
	case errors.Is(err, service.ErrSenderOrReceiverNotFound):
		return "отправитель или получатель не найден"
	case errors.Is(err, service.ErrMessageNotFound):
		return "сообщение не найдено"
	}

	return humanizeServerUnavailableError(err)
}

func humanizeServerUnavailableError(err error) string {
	if errors.Is(err, service.ErrServerUnavailable) {
		return "Отсутствует сеть или Сервер недоступен"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Отсутствует сеть или Сервер недоступен"
	}

	return err.Error()
}
