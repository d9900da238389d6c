package client

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-messenger/internal/logger"
	"github.com/MKhiriev/go-messenger/internal/service"
	servicemock "github.com/MKhiriev/go-messenger/internal/service/mock"
	"github.com/MKhiriev/go-messenger/internal/tui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type stubUI struct {
	err   error
	calls int
}

func (s *stubUI) Run(context.Context) error {
	s.calls++
	return s.err
}

func TestNewApp_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	messenger := servicemock.NewMockClientMessengerService(ctrl)

	_, err := NewApp(nil, &stubUI{}, logger.Nop())
	assert.ErrorIs(t, err, ErrNoServices)

	_, err = NewApp(&service.ClientServices{}, &stubUI{}, logger.Nop())
	assert.ErrorIs(t, err, ErrNoServices)

	_, err = NewApp(&service.ClientServices{MessengerService: messenger}, nil, logger.Nop())
	assert.ErrorIs(t, err, ErrNoUI)
}

func TestApp_Run(t *testing.T) {
	uiErr := errors.New("terminal is gone")

	tests := []struct {
		name    string
		uiErr   error
		wantErr error
	}{
		{name: "ui finished", uiErr: nil},
		{name: "user quit is a normal exit", uiErr: fmt.Errorf("wrapped: %w", tui.ErrUserQuit)},
		{name: "ui failure is returned", uiErr: uiErr, wantErr: uiErr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			messenger := servicemock.NewMockClientMessengerService(ctrl)
			// контроллер закрывается при любом исходе
			messenger.EXPECT().Close().Times(1)

			ui := &stubUI{err: tt.uiErr}
			app, err := NewApp(&service.ClientServices{MessengerService: messenger}, ui, logger.Nop())
			require.NoError(t, err)

			err = app.Run(context.Background())
			assert.Equal(t, 1, ui.calls)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
