package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/sharelink/internal/httpserver/deps"
	"github.com/MrSnakeDoc/sharelink/internal/state"
)

func ToggleSelection(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, newStateResponse(d.Store.ToggleSelect(chi.URLParam(r, "id"))))
	}
}

func SelectAll(d deps.Deps) http.HandlerFunc {
	return selectionHandler(d.Store.SelectAll)
}

func DeselectAll(d deps.Deps) http.HandlerFunc {
	return selectionHandler(d.Store.DeselectAll)
}

func ToggleAll(d deps.Deps) http.HandlerFunc {
	return selectionHandler(d.Store.ToggleAll)
}

func selectionHandler(apply func() state.State) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, newStateResponse(apply()))
	}
}
