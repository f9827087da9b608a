package mw

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS lets the listed origins call the API from another page ("*" allows
// any origin). With no origins only same-origin requests work and the
// middleware is a passthrough.
func CORS(origins []string) func(http.Handler) http.Handler {
	if len(origins) == 0 {
		return passthrough
	}

	return cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         300,
	})
}
