// Package handler assembles the transport handlers of the Message Store.
package handler

import (
	"github.com/MKhiriev/go-messenger/internal/config"
	"github.com/MKhiriev/go-messenger/internal/handler/http"
	"github.com/MKhiriev/go-messenger/internal/logger"
	"github.com/MKhiriev/go-messenger/internal/metrics"
	"github.com/MKhiriev/go-messenger/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, m *metrics.Metrics, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{HTTP: http.NewHandler(services, m, logger)}, nil
}
