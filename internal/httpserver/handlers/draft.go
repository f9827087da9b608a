package handlers

import (
	"net/http"

	"github.com/MrSnakeDoc/sharelink/internal/domain"
	"github.com/MrSnakeDoc/sharelink/internal/httpserver/deps"
	"github.com/MrSnakeDoc/sharelink/internal/logger"
	"github.com/MrSnakeDoc/sharelink/internal/state"
)

// draftRequest is a partial update: absent fields are left untouched.
type draftRequest struct {
	Result        *string `json:"result"`
	CustomMessage *string `json:"custom_message"`
	Platform      *string `json:"platform"`
}

// UpdateDraft changes the result text, custom message and/or platform.
func UpdateDraft(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req draftRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error(), "")
			return
		}

		u := state.DraftUpdate{
			Result:        req.Result,
			CustomMessage: req.CustomMessage,
		}
		if req.Platform != nil {
			p, err := domain.ParsePlatform(*req.Platform)
			if err != nil {
				writeError(w, http.StatusUnprocessableEntity, err.Error(), "unknown_platform")
				return
			}
			u.Platform = &p
			d.Logger.Debug("platform changed", logger.String("platform", string(p)))
		}

		writeJSON(w, http.StatusOK, newStateResponse(d.Store.UpdateDraft(u)))
	}
}

// Message returns the composed message as plain text.
func Message(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeText(w, http.StatusOK, d.Store.ComposedMessage())
	}
}
