package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/sharelink/internal/httpserver/deps"
	"github.com/MrSnakeDoc/sharelink/internal/logger"
)

type contactRequest struct {
	Name string `json:"name"`
	Info string `json:"info"`
}

// AddContact registers a contact. Blank name or info is rejected without
// touching the registry.
func AddContact(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req contactRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error(), "")
			return
		}

		c, ok := d.Store.AddContact(req.Name, req.Info)
		if !ok {
			writeError(w, http.StatusUnprocessableEntity, "name and info are required", "missing_field")
			return
		}

		d.Logger.Info("contact added", logger.String("id", c.ID))
		writeJSON(w, http.StatusCreated, c)
	}
}

// DeleteContact removes a contact and its selection. Deleting an unknown id
// succeeds as well.
func DeleteContact(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if d.Store.RemoveContact(id) {
			d.Logger.Info("contact removed", logger.String("id", id))
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// ImportContacts re-reads the contacts seed file into the registry.
func ImportContacts(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if d.Importer == nil {
			writeError(w, http.StatusNotFound, "no contacts file configured", "no_seed_file")
			return
		}

		res, err := d.Importer.Import(d.Store)
		if err != nil {
			d.Logger.Warn("contacts import failed",
				logger.String("remote_ip", r.RemoteAddr),
				logger.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to import contacts", "import_failed")
			return
		}

		writeJSON(w, http.StatusOK, res)
	}
}
