// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-messenger/internal/utils"
	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns the handler registered as the router's
// MethodNotAllowed handler via [chi.Mux.MethodNotAllowed].
//
// Chi answers 405 when a path matches a route but the method does not. The
// Message Store answers such requests like unknown routes, with a 404 and a
// JSON error body. The Allow header still lists the methods the path
// supports.
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		for _, method := range []string{
			http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete,
		} {
			if router.Match(chi.NewRouteContext(), method, r.URL.Path) {
				w.Header().Add("Allow", method)
			}
		}

		notFound(w, r)
	}
}

func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, "Cannot "+r.Method+" "+r.URL.Path, http.StatusNotFound)
}
