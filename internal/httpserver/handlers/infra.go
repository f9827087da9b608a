package handlers

import (
	"net/http"

	"github.com/MrSnakeDoc/sharelink/internal/httpserver/deps"
)

type componentStatus struct {
	OK     bool   `json:"ok"`
	Mode   string `json:"mode,omitempty"`
	Impact string `json:"impact,omitempty"`
	Count  *int   `json:"count,omitempty"`
	Source string `json:"source,omitempty"`
}

type infraResponse struct {
	Mode       string                     `json:"mode"`
	Components map[string]componentStatus `json:"components"`
}

// Infra describes which side-effecting helpers are usable on this host.
func Infra(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contactsCount := d.Store.Count()

		components := map[string]componentStatus{
			"session": {
				OK:    true,
				Mode:  "in-memory",
				Count: &contactsCount,
			},
			"clipboard": clipboardStatus(d),
			"opener": {
				OK:   d.LinkOpener != nil,
				Mode: "staggered",
			},
			"contacts_seed": seedStatus(d),
		}

		writeJSON(w, http.StatusOK, infraResponse{
			Mode:       determineMode(components),
			Components: components,
		})
	}
}

func clipboardStatus(d deps.Deps) componentStatus {
	if d.Clipboard == nil || !d.Clipboard.Supported() {
		return componentStatus{
			OK:     false,
			Mode:   "degraded",
			Impact: "copy-falls-back-to-browser",
		}
	}
	return componentStatus{OK: true, Mode: "system"}
}

func seedStatus(d deps.Deps) componentStatus {
	if d.Importer == nil {
		return componentStatus{OK: true, Mode: "disabled"}
	}
	return componentStatus{OK: true, Mode: "file", Source: d.Importer.Path()}
}

func determineMode(components map[string]componentStatus) string {
	for _, c := range components {
		if !c.OK {
			return "degraded"
		}
	}
	return "full"
}
