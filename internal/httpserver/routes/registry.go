package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/sharelink/internal/httpserver/deps"
	"github.com/MrSnakeDoc/sharelink/internal/httpserver/mw"
)

type (
	Registrar func(r chi.Router, d deps.Deps)
	// Middleware is built once per server from its deps.
	Middleware func(d deps.Deps) func(http.Handler) http.Handler
)

type entry struct {
	reg Registrar
	mws []Middleware
}

var registry []entry

// Register adds a registrar with optional middlewares applied to its routes.
// Registrars call it from init().
func Register(reg Registrar, mws ...Middleware) {
	registry = append(registry, entry{reg: reg, mws: mws})
}

// RegisterAll mounts every registered route group. Called once from server.New().
func RegisterAll(r chi.Router, d deps.Deps) {
	for _, e := range registry {
		if len(e.mws) == 0 {
			e.reg(r, d)
			continue
		}
		chain := make([]func(http.Handler) http.Handler, len(e.mws))
		for i, m := range e.mws {
			chain[i] = m(d)
		}
		e.reg(r.With(chain...), d)
	}
}

// allowCIDRS restricts a group to the configured client networks.
func allowCIDRS(d deps.Deps) func(http.Handler) http.Handler {
	return mw.AllowOnlyCIDRS(d.AllowedCIDRS, d.TrustProxy, d.Logger)
}

// enforceHost restricts a group to the configured Host headers.
func enforceHost(d deps.Deps) func(http.Handler) http.Handler {
	return mw.EnforceHost(d.AllowedHosts, d.Logger)
}
