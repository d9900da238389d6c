// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-messenger/internal/logger"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// ---- responseWriter ----

func TestResponseWriter_WriteHeaderOnce(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rec}

	rw.WriteHeader(http.StatusCreated)
	rw.WriteHeader(http.StatusTeapot)

	assert.Equal(t, http.StatusCreated, rw.status)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestResponseWriter_ImplicitOK(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rec}

	n, err := rw.Write([]byte("hello"))

	assert.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, http.StatusOK, rw.status)
	assert.Equal(t, 5, rw.size)
}

func TestResponseWriter_StatusOrOK(t *testing.T) {
	rw := &responseWriter{ResponseWriter: httptest.NewRecorder()}
	assert.Equal(t, http.StatusOK, rw.statusOrOK(), "ничего не записано — считаем 200")
}

func TestWrapResponseWriter_Reuses(t *testing.T) {
	rw := &responseWriter{ResponseWriter: httptest.NewRecorder()}
	assert.Same(t, rw, wrapResponseWriter(rw))
}

// ---- withLogging ----

func TestWithLogging_WritesAccessLog(t *testing.T) {
	var buf bytes.Buffer
	l := zerolog.New(&buf)

	h := &Handler{logger: logger.Nop()}
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte("ok"))
	})

	req := httptest.NewRequest(http.MethodPost, "/users?x=1", nil)
	req = req.WithContext(l.WithContext(req.Context()))
	h.withLogging(next).ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	assert.Contains(t, out, `"method":"POST"`)
	assert.Contains(t, out, `"uri":"/users?x=1"`)
	assert.Contains(t, out, `"status":202`)
	assert.Contains(t, out, `"size":2`)
}

// ---- CheckHTTPMethod ----

func TestCheckHTTPMethod_NotFoundWithAllow(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/users", func(w http.ResponseWriter, _ *http.Request) {})
	router.Post("/users", func(w http.ResponseWriter, _ *http.Request) {})
	router.Delete("/messages/{id}", func(w http.ResponseWriter, _ *http.Request) {})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/users", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.ElementsMatch(t, []string{http.MethodGet, http.MethodPost}, rec.Header().Values("Allow"))

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/messages/7", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, []string{http.MethodDelete}, rec.Header().Values("Allow"))
}

// ---- withCORS ----

func TestWithCORS(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { called = true })
	h := withCORS(next)

	t.Run("preflight", func(t *testing.T) {
		called = false
		req := httptest.NewRequest(http.MethodOptions, "/messages", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		req.Header.Set("Access-Control-Request-Method", http.MethodPatch)
		rec := httptest.NewRecorder()

		h.ServeHTTP(rec, req)

		assert.False(t, called, "preflight не должен доходить до роутера")
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPatch)
	})

	t.Run("simple request", func(t *testing.T) {
		called = false
		req := httptest.NewRequest(http.MethodGet, "/users", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := httptest.NewRecorder()

		h.ServeHTTP(rec, req)

		assert.True(t, called)
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("no origin", func(t *testing.T) {
		called = false
		rec := httptest.NewRecorder()

		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users", nil))

		assert.True(t, called)
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})
}
