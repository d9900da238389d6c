package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-messenger/internal/validators"
	"github.com/MKhiriev/go-messenger/models"
)

// MessengerValidationService rejects malformed requests before they reach
// the wrapped [MessengerService].
type MessengerValidationService struct {
	MessengerService
	validator validators.Validator
}

func NewMessengerValidationService() MessengerServiceWrapper {
	return &MessengerValidationService{
		validator: validators.NewMessageValidator(),
	}
}

func (v *MessengerValidationService) CreateUser(ctx context.Context, req models.CreateUserRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrEmptyName, err)
	}

	return v.MessengerService.CreateUser(ctx, req)
}

func (v *MessengerValidationService) SendMessage(ctx context.Context, req models.SendMessageRequest) (models.Message, error) {
	if err := v.validator.Validate(ctx, req, validators.FieldText); err != nil {
		return models.Message{}, fmt.Errorf("%w: %w", ErrEmptyText, err)
	}
	// IDs that can never exist are reported like unknown users
	if err := v.validator.Validate(ctx, req, validators.FieldFromID, validators.FieldToID); err != nil {
		return models.Message{}, fmt.Errorf("%w: %w", ErrSenderOrReceiverNotFound, err)
	}

	return v.MessengerService.SendMessage(ctx, req)
}

func (v *MessengerValidationService) UpdateMessage(ctx context.Context, req models.UpdateMessageRequest) (models.Message, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Message{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.MessengerService.UpdateMessage(ctx, req)
}

func (v *MessengerValidationService) Wrap(inner MessengerService) MessengerService {
	v.MessengerService = inner
	return v
}
