package service

import (
	"github.com/MKhiriev/go-messenger/internal/logger"
	"github.com/MKhiriev/go-messenger/internal/store"
)

type Services struct {
	MessengerService MessengerService
}

func NewServices(storage store.MessageStorage, logger *logger.Logger) *Services {
	messenger := NewMessengerService(storage, logger)

	return &Services{
		MessengerService: NewMessengerValidationService().Wrap(messenger),
	}
}
