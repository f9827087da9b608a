package handlers

import (
	"net/http"

	"github.com/MrSnakeDoc/sharelink/internal/actions"
	"github.com/MrSnakeDoc/sharelink/internal/httpserver/deps"
	"github.com/MrSnakeDoc/sharelink/internal/logger"
)

// copyResponse echoes the text so the page can fall back to the browser
// clipboard when the host clipboard is unavailable.
type copyResponse struct {
	Text   string `json:"text"`
	Copied bool   `json:"copied"`
}

func CopyMessage(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		msg := d.Store.ComposedMessage()
		err := actions.CopyMessage(d.Clipboard, msg)
		if err != nil {
			d.Logger.Warn("failed to copy message", logger.Error(err))
		}
		writeJSON(w, http.StatusOK, copyResponse{Text: msg, Copied: err == nil})
	}
}

func CopyLinks(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		text, err := actions.CopyLinks(d.Clipboard, d.Store.Links())
		if err != nil {
			d.Logger.Warn("failed to copy links", logger.Error(err))
		}
		writeJSON(w, http.StatusOK, copyResponse{Text: text, Copied: err == nil})
	}
}
