// Package service holds the business logic of both binaries.
//
// Client side: [ClientMessengerService] keeps the session of the terminal
// client in step with the Message Store. It refreshes after local writes
// and polls the inbox of the active user through an [InboxPoller].
//
// Server side: [MessengerService] validates requests, fills server-owned
// message fields and delegates persistence to store.MessageStorage.
package service
