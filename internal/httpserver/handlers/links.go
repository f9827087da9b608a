package handlers

import (
	"net/http"

	"github.com/MrSnakeDoc/sharelink/internal/actions"
	"github.com/MrSnakeDoc/sharelink/internal/domain"
	"github.com/MrSnakeDoc/sharelink/internal/httpserver/deps"
	"github.com/MrSnakeDoc/sharelink/internal/logger"
)

type linksResponse struct {
	Links []domain.GeneratedLink `json:"links"`
	Count int                    `json:"count"`
}

func newLinksResponse(links []domain.GeneratedLink) linksResponse {
	if links == nil {
		links = []domain.GeneratedLink{}
	}
	return linksResponse{Links: links, Count: len(links)}
}

// GenerateLinks rebuilds the link set. It answers 409 while generation is
// disabled (blank result or empty selection).
func GenerateLinks(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		links, err := d.Store.Generate()
		if err != nil {
			writeError(w, http.StatusConflict, err.Error(), disabledReason(err))
			return
		}

		d.Logger.Info("links generated", logger.Int("count", len(links)))
		writeJSON(w, http.StatusOK, newLinksResponse(links))
	}
}

func ListLinks(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, newLinksResponse(d.Store.Links()))
	}
}

// ClearLinks drops the links and the selection.
func ClearLinks(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, newStateResponse(d.Store.ClearLinks()))
	}
}

// LinksText returns the links as "name: url" lines.
func LinksText(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeText(w, http.StatusOK, actions.LinksText(d.Store.Links()))
	}
}

type openResponse struct {
	Scheduled int   `json:"scheduled"`
	DelayMS   int64 `json:"delay_ms"`
}

// OpenLinks schedules every generated link to be opened one after another.
func OpenLinks(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n := d.LinkOpener.OpenAll(d.Store.Links())
		writeJSON(w, http.StatusAccepted, openResponse{
			Scheduled: n,
			DelayMS:   d.LinkOpener.Delay().Milliseconds(),
		})
	}
}
