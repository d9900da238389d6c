// Package tui is the terminal presentation layer of the messenger client.
//
// It renders snapshots of the client session and re-renders after every
// change signalled by service.ClientMessengerService. Controller calls that
// may touch the network run inside tea.Cmds so the event loop never blocks.
package tui
