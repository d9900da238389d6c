package tui

import "github.com/MKhiriev/go-messenger/internal/service"

// sessionChangedMsg means the controller session has a new state.
type sessionChangedMsg struct{}

// failureMsg carries a failure reported by the controller observer.
type failureMsg struct {
	failure service.Failure
}

// opDoneMsg finishes a controller call started by a command.
type opDoneMsg struct {
	op  string
	err error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
