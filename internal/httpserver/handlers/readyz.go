package handlers

import (
	"net/http"

	"github.com/MrSnakeDoc/sharelink/internal/httpserver/deps"
)

type readyzResponse struct {
	Ready bool `json:"ready"`
}

// Readyz reports ready once the session store and link opener are wired.
func Readyz(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ready := d.Store != nil && d.LinkOpener != nil
		status := http.StatusOK
		if !ready {
			status = http.StatusServiceUnavailable
		}
		writeJSON(w, status, readyzResponse{Ready: ready})
	}
}
