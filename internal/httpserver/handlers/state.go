package handlers

import (
	"errors"
	"net/http"

	"github.com/MrSnakeDoc/sharelink/internal/domain"
	"github.com/MrSnakeDoc/sharelink/internal/httpserver/deps"
	"github.com/MrSnakeDoc/sharelink/internal/state"
)

type platformOption struct {
	Value    domain.Platform `json:"value"`
	Label    string          `json:"label"`
	InfoHint string          `json:"info_hint"`
}

type stateResponse struct {
	state.State
	Message        string           `json:"message"`
	CanGenerate    bool             `json:"can_generate"`
	DisabledReason string           `json:"disabled_reason,omitempty"`
	Platforms      []platformOption `json:"platforms"`
}

func newStateResponse(st state.State) stateResponse {
	resp := stateResponse{
		State:       st,
		Message:     st.ComposedMessage(),
		CanGenerate: true,
		Platforms:   make([]platformOption, 0, len(domain.Platforms)),
	}
	if err := st.CanGenerate(); err != nil {
		resp.CanGenerate = false
		resp.DisabledReason = disabledReason(err)
	}
	for _, p := range domain.Platforms {
		resp.Platforms = append(resp.Platforms, platformOption{
			Value:    p,
			Label:    p.Label(),
			InfoHint: p.InfoHint(),
		})
	}
	return resp
}

func disabledReason(err error) string {
	switch {
	case errors.Is(err, state.ErrEmptyResult):
		return "empty_result"
	case errors.Is(err, state.ErrNoSelection):
		return "no_selection"
	default:
		return ""
	}
}

// State returns the whole form session.
func State(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, newStateResponse(d.Store.Snapshot()))
	}
}
