package models

// NoUser is the ActiveUserID of a session with no active identity.
const NoUser int64 = 0

// Session is a read-only snapshot of the client's local view state.
//
// Snapshots are copies: mutating the slices of a Session never affects the
// controller that produced it.
type Session struct {
	// Users is the last user list fetched from the Message Store.
	Users []User

	// Messages is the inbox of ActiveUserID as of the last refresh.
	Messages []Message

	// ActiveUserID is the identity whose inbox is shown and on whose behalf
	// messages are sent. [NoUser] when unset.
	ActiveUserID int64

	// SelectedRecipient is the user messages are sent to, or nil.
	SelectedRecipient *User

	// DraftName is the unsent name of a user to create.
	DraftName string

	// DraftText is the unsent message text.
	DraftText string
}

// HasActiveUser reports whether an identity is active.
func (s Session) HasActiveUser() bool {
	return s.ActiveUserID != NoUser
}

// ActiveUser returns the active user if it is present in Users.
func (s Session) ActiveUser() (User, bool) {
	return s.FindUser(s.ActiveUserID)
}

// FindUser looks a user up by ID in Users.
func (s Session) FindUser(id int64) (User, bool) {
	for _, u := range s.Users {
		if u.ID == id {
			return u, true
		}
	}
	return User{}, false
}

// Recipients returns every known user except the active one.
func (s Session) Recipients() []User {
	out := make([]User, 0, len(s.Users))
	for _, u := range s.Users {
		if u.ID != s.ActiveUserID {
			out = append(out, u)
		}
	}
	return out
}

// UnreadCount returns the number of unread messages in the inbox.
func (s Session) UnreadCount() int {
	n := 0
	for _, m := range s.Messages {
		if !m.IsRead {
			n++
		}
	}
	return n
}
