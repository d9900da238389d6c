// Package models holds the data types shared by the messenger client and the
// Message Store service: users, messages, request bodies and the client-side
// session snapshot.
package models

// User is a messenger participant. IDs are assigned by the Message Store
// and start at 1, so the zero value never names a real user.
type User struct {
	// ID is the server-assigned identifier of the user.
	ID int64 `json:"id"`

	// Name is the display name chosen at creation time.
	Name string `json:"name"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
