package service

import (
	"github.com/MKhiriev/go-messenger/internal/adapter"
	"github.com/MKhiriev/go-messenger/internal/config"
	"github.com/MKhiriev/go-messenger/internal/logger"
)

type ClientServices struct {
	MessengerService ClientMessengerService
}

func NewClientServices(serverAdapter adapter.MessageStoreAdapter, workers config.ClientWorkers, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		MessengerService: NewClientMessengerService(serverAdapter, workers.PollInterval, logger),
	}
}
