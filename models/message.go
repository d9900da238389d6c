package models

import "time"

// TimestampLayout is the layout the Message Store uses to render
// [Message.Timestamp]. Clients treat the rendered value as opaque.
const TimestampLayout = "15:04:05"

// Message is a single text message sent from one user to another.
type Message struct {
	// ID is the server-assigned identifier of the message.
	ID int64 `json:"id"`

	// Text is the message body.
	Text string `json:"text"`

	// FromID is the sender's user ID.
	FromID int64 `json:"from_id"`

	// ToID is the recipient's user ID.
	ToID int64 `json:"to_id"`

	// FromName is the sender's display name at send time.
	FromName string `json:"from_name"`

	// ToName is the recipient's display name at send time.
	ToName string `json:"to_name"`

	// Timestamp is the server-formatted creation time (see [TimestampLayout]).
	Timestamp string `json:"timestamp"`

	// IsRead turns true once the recipient marks the message read. The
	// client never turns it back to false.
	IsRead bool `json:"is_read"`

	// CreatedAt is the storage-level creation time. It is never serialised;
	// Timestamp is derived from it.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the Message model.
func (m Message) TableName() string {
	return "messages"
}

// WithTimestamp returns a copy of m with Timestamp rendered from CreatedAt.
func (m Message) WithTimestamp() Message {
	if !m.CreatedAt.IsZero() {
		m.Timestamp = m.CreatedAt.Format(TimestampLayout)
	}
	return m
}
