// Package http implements the HTTP transport of the Message Store.
//
// It exposes route wiring, request handlers and middleware. Request tracing,
// access logging, request metrics, CORS and panic recovery are handled here
// before requests are delegated to the service layer. Every error body is a
// models.ErrorResponse.
package http
