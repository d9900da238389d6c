package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-messenger/models"
)

// Field names accepted by [MessageValidator.Validate].
const (
	// FieldName targets the display name of a user to create.
	FieldName = "name"

	// FieldText targets the body of a message.
	FieldText = "text"

	// FieldFromID targets the sender of a message.
	FieldFromID = "from_id"

	// FieldToID targets the recipient of a message.
	FieldToID = "to_id"

	// FieldMessageID targets the message addressed by an update.
	FieldMessageID = "id"
)

// MessageValidator validates user and message requests.
type MessageValidator struct{}

func NewMessageValidator() *MessageValidator {
	return &MessageValidator{}
}

// Validate implements [Validator]. Values and pointers of
// [models.CreateUserRequest], [models.SendMessageRequest] and
// [models.UpdateMessageRequest] are supported.
func (v *MessageValidator) Validate(ctx context.Context, data any, fields ...string) error {
	switch value := data.(type) {
	case models.CreateUserRequest:
		return v.validateCreateUser(ctx, value, fields...)
	case *models.CreateUserRequest:
		return v.validateCreateUser(ctx, *value, fields...)

	case models.SendMessageRequest:
		return v.validateSendMessage(ctx, value, fields...)
	case *models.SendMessageRequest:
		return v.validateSendMessage(ctx, *value, fields...)

	case models.UpdateMessageRequest:
		return v.validateUpdateMessage(ctx, value, fields...)
	case *models.UpdateMessageRequest:
		return v.validateUpdateMessage(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *MessageValidator) validateCreateUser(_ context.Context, req models.CreateUserRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(req.Name) == "" {
				return ErrEmptyName
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *MessageValidator) validateSendMessage(_ context.Context, req models.SendMessageRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldText, FieldFromID, FieldToID}
	}

	for _, f := range fields {
		switch f {
		case FieldText:
			if strings.TrimSpace(req.Text) == "" {
				return ErrEmptyText
			}
		case FieldFromID:
			if req.FromID <= 0 {
				return ErrInvalidSenderID
			}
		case FieldToID:
			if req.ToID <= 0 {
				return ErrInvalidReceiverID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *MessageValidator) validateUpdateMessage(_ context.Context, req models.UpdateMessageRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldMessageID}
	}

	for _, f := range fields {
		switch f {
		case FieldMessageID:
			if req.ID <= 0 {
				return ErrInvalidMessageID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
