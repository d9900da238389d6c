// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-messenger/internal/app"
	"github.com/MKhiriev/go-messenger/internal/logger"
	"github.com/MKhiriev/go-messenger/internal/metrics"
	"github.com/MKhiriev/go-messenger/internal/service"
	servicemock "github.com/MKhiriev/go-messenger/internal/service/mock"
	"github.com/MKhiriev/go-messenger/internal/store"
	"github.com/MKhiriev/go-messenger/models"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestRouter — роутер с моком сервиса и метриками
func newTestRouter(t *testing.T) (http.Handler, *servicemock.MockMessengerService, *metrics.Metrics) {
	t.Helper()
	ctrl := gomock.NewController(t)
	svc := servicemock.NewMockMessengerService(ctrl)
	m := metrics.New(nil, logger.Nop())

	h := NewHandler(&service.Services{MessengerService: svc}, m, logger.Nop())
	return h.Init(), svc, m
}

func doRequest(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

// ── Users ────────────────────────────────────────────────────────────────────

func TestCreateUser(t *testing.T) {
	router, svc, _ := newTestRouter(t)

	svc.EXPECT().CreateUser(gomock.Any(), models.CreateUserRequest{Name: "Alice"}).
		Return(models.User{ID: 1, Name: "Alice"}, nil)

	rec := doRequest(t, router, http.MethodPost, "/users", `{"name":"Alice"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":1,"name":"Alice"}`, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}

func TestCreateUser_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		svcErr     error
		wantStatus int
		wantMsg    string
	}{
		{name: "broken JSON", body: `{"name":`, wantStatus: http.StatusBadRequest, wantMsg: app.MsgCouldNotAddUser},
		{name: "empty name", body: `{"name":""}`, svcErr: fmt.Errorf("%w: blank", service.ErrEmptyName), wantStatus: http.StatusBadRequest, wantMsg: app.MsgCouldNotAddUser},
		{name: "storage failure", body: `{"name":"Bob"}`, svcErr: store.ErrExecutingQuery, wantStatus: http.StatusInternalServerError, wantMsg: app.MsgInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svc, _ := newTestRouter(t)
			if tt.svcErr != nil {
				svc.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, tt.svcErr)
			}

			rec := doRequest(t, router, http.MethodPost, "/users", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			resp := decodeError(t, rec)
			assert.Equal(t, models.StatusError, resp.Status)
			assert.Equal(t, tt.wantMsg, resp.Message)
		})
	}
}

func TestListUsers(t *testing.T) {
	router, svc, _ := newTestRouter(t)

	svc.EXPECT().ListUsers(gomock.Any()).Return([]models.User{{ID: 1, Name: "Alice"}, {ID: 2, Name: "Bob"}}, nil)

	rec := doRequest(t, router, http.MethodGet, "/users", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":1,"name":"Alice"},{"id":2,"name":"Bob"}]`, rec.Body.String())
}

// ── Messages ─────────────────────────────────────────────────────────────────

func TestSendMessage(t *testing.T) {
	router, svc, _ := newTestRouter(t)

	svc.EXPECT().SendMessage(gomock.Any(), models.SendMessageRequest{Text: "hi", FromID: 1, ToID: 2}).
		Return(models.Message{ID: 3, Text: "hi", FromID: 1, ToID: 2, FromName: "Alice", ToName: "Bob", Timestamp: "10:11:12"}, nil)

	rec := doRequest(t, router, http.MethodPost, "/messages", `{"text":"hi","from_id":1,"to_id":2}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"id":3,"text":"hi","from_id":1,"to_id":2,"from_name":"Alice","to_name":"Bob","timestamp":"10:11:12","is_read":false}`,
		rec.Body.String())
}

func TestSendMessage_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		svcErr     error
		wantStatus int
		wantMsg    string
	}{
		{name: "broken JSON", body: `nope`, wantStatus: http.StatusBadRequest, wantMsg: app.MsgCouldNotAddMessage},
		{name: "empty text", body: `{"text":"","from_id":1,"to_id":2}`, svcErr: service.ErrEmptyText, wantStatus: http.StatusBadRequest, wantMsg: app.MsgCouldNotAddMessage},
		{name: "unknown user", body: `{"text":"x","from_id":1,"to_id":9}`, svcErr: service.ErrSenderOrReceiverNotFound, wantStatus: http.StatusBadRequest, wantMsg: app.MsgSenderOrReceiverNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svc, _ := newTestRouter(t)
			if tt.svcErr != nil {
				svc.EXPECT().SendMessage(gomock.Any(), gomock.Any()).Return(models.Message{}, tt.svcErr)
			}

			rec := doRequest(t, router, http.MethodPost, "/messages", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMsg, decodeError(t, rec).Message)
		})
	}
}

func TestListMessages(t *testing.T) {
	router, svc, _ := newTestRouter(t)

	svc.EXPECT().ListMessages(gomock.Any()).Return([]models.Message{}, nil)

	rec := doRequest(t, router, http.MethodGet, "/messages", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestListInbox(t *testing.T) {
	router, svc, _ := newTestRouter(t)

	svc.EXPECT().ListInbox(gomock.Any(), int64(2)).Return([]models.Message{{ID: 1, ToID: 2}}, nil)

	rec := doRequest(t, router, http.MethodGet, "/messages/user/2", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"to_id":2`)
}

func TestListInbox_InvalidID(t *testing.T) {
	router, _, _ := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/messages/user/abc", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, app.MsgInvalidUserID, decodeError(t, rec).Message)
}

func TestUpdateMessage(t *testing.T) {
	router, svc, _ := newTestRouter(t)

	// ID берётся из URL, а не из тела
	svc.EXPECT().UpdateMessage(gomock.Any(), models.UpdateMessageRequest{ID: 4, Text: "edited", IsRead: true}).
		Return(models.Message{ID: 4, Text: "edited", IsRead: true}, nil)

	rec := doRequest(t, router, http.MethodPatch, "/messages/4", `{"id":99,"text":"edited","is_read":true}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"text":"edited"`)
}

func TestUpdateMessage_Errors(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		router, _, _ := newTestRouter(t)
		rec := doRequest(t, router, http.MethodPatch, "/messages/x", `{}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, app.MsgInvalidMessageID, decodeError(t, rec).Message)
	})

	t.Run("broken JSON", func(t *testing.T) {
		router, _, _ := newTestRouter(t)
		rec := doRequest(t, router, http.MethodPatch, "/messages/1", `{`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, app.MsgCouldNotUpdateMessage, decodeError(t, rec).Message)
	})

	t.Run("not found", func(t *testing.T) {
		router, svc, _ := newTestRouter(t)
		svc.EXPECT().UpdateMessage(gomock.Any(), gomock.Any()).Return(models.Message{}, store.ErrMessageNotFound)

		rec := doRequest(t, router, http.MethodPatch, "/messages/1", `{"is_read":true}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, app.MsgMessageNotFound, decodeError(t, rec).Message)
	})
}

func TestMarkRead(t *testing.T) {
	router, svc, _ := newTestRouter(t)

	svc.EXPECT().MarkRead(gomock.Any(), int64(42)).Return(models.Message{ID: 42, IsRead: true}, nil)

	rec := doRequest(t, router, http.MethodPatch, "/messages/42/read", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"is_read":true`)
}

func TestMarkRead_NotFound(t *testing.T) {
	router, svc, _ := newTestRouter(t)

	svc.EXPECT().MarkRead(gomock.Any(), int64(42)).Return(models.Message{}, fmt.Errorf("mark read: %w", store.ErrMessageNotFound))

	rec := doRequest(t, router, http.MethodPatch, "/messages/42/read", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, app.MsgMessageNotFound, decodeError(t, rec).Message)
}

func TestDeleteMessage(t *testing.T) {
	router, svc, _ := newTestRouter(t)

	svc.EXPECT().DeleteMessage(gomock.Any(), int64(5)).Return(nil)

	rec := doRequest(t, router, http.MethodDelete, "/messages/5", "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestDeleteMessage_NotFound(t *testing.T) {
	router, svc, _ := newTestRouter(t)

	svc.EXPECT().DeleteMessage(gomock.Any(), int64(5)).Return(store.ErrMessageNotFound)

	rec := doRequest(t, router, http.MethodDelete, "/messages/5", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ── Health / metrics ─────────────────────────────────────────────────────────

func TestHealth(t *testing.T) {
	router, svc, _ := newTestRouter(t)

	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	svc.EXPECT().Health(gomock.Any()).Return(models.HealthResponse{Status: models.StatusOK, Time: now, Users: 2, Messages: 5}, nil)

	rec := doRequest(t, router, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","time":"2026-01-02T03:04:05Z","users":2,"messages":5}`, rec.Body.String())
}

func TestHealth_Error(t *testing.T) {
	router, svc, _ := newTestRouter(t)

	svc.EXPECT().Health(gomock.Any()).Return(models.HealthResponse{}, errors.New("db down"))

	rec := doRequest(t, router, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestMetrics_RecordsRoutePattern(t *testing.T) {
	router, svc, m := newTestRouter(t)

	svc.EXPECT().ListInbox(gomock.Any(), gomock.Any()).Return([]models.Message{}, nil).Times(2)

	doRequest(t, router, http.MethodGet, "/messages/user/1", "")
	doRequest(t, router, http.MethodGet, "/messages/user/2", "")

	series, err := testutil.GatherAndCount(m.Registry(), "messenger_http_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 1, series, "разные id должны попадать в одну серию")

	rec := doRequest(t, router, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `route="/messages/user/{id}"`)
}

// ── Routing ──────────────────────────────────────────────────────────────────

func TestUnknownRoute(t *testing.T) {
	router, _, _ := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/nope", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, models.StatusError, decodeError(t, rec).Status)
}

func TestTraceIDHeader(t *testing.T) {
	router, svc, _ := newTestRouter(t)
	svc.EXPECT().ListUsers(gomock.Any()).Return([]models.User{}, nil).Times(2)

	rec := doRequest(t, router, http.MethodGet, "/users", "")
	assert.NotEmpty(t, rec.Header().Get(traceIDHeader), "trace id должен генерироваться")

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.Header.Set(traceIDHeader, "trace-123")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, "trace-123", rec.Header().Get(traceIDHeader))
}

func TestNewHandler_WithoutMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := servicemock.NewMockMessengerService(ctrl)
	router := NewHandler(&service.Services{MessengerService: svc}, nil, logger.Nop()).Init()

	rec := doRequest(t, router, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
