package handlers

import (
	_ "embed"
	"net/http"

	"github.com/MrSnakeDoc/sharelink/internal/httpserver/deps"
)

//go:embed web/index.html
var indexHTML []byte

// Index serves the form page that drives the JSON API.
func Index(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_, _ = w.Write(indexHTML)
	}
}
