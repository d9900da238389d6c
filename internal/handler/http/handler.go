package http

import (
	"github.com/MKhiriev/go-messenger/internal/logger"
	"github.com/MKhiriev/go-messenger/internal/metrics"
	"github.com/MKhiriev/go-messenger/internal/service"
)

type Handler struct {
	services *service.Services
	metrics  *metrics.Metrics

	logger *logger.Logger
}

// NewHandler creates the HTTP handler. m may be nil, in which case requests
// are not measured and /metrics is not routed.
func NewHandler(services *service.Services, m *metrics.Metrics, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		metrics:  m,
		logger:   logger,
	}
}
