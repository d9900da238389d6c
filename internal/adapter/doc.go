// Package adapter provides the client-side transport to the Message Store.
//
// [MessageStoreAdapter] decouples the sync controller from HTTP. The package
// ships a REST implementation built on resty ([NewHTTPMessageStoreAdapter]).
//
// Non-2xx responses are mapped by mapHTTPError onto the sentinel errors in
// errors.go so callers can use [errors.Is] (e.g. [ErrNotFound] for 404).
package adapter
