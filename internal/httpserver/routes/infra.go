package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/sharelink/internal/httpserver/deps"
	"github.com/MrSnakeDoc/sharelink/internal/httpserver/handlers"
)

func init() {
	Register(registerHealth)
	Register(registerProbes, allowCIDRS)
}

func registerHealth(r chi.Router, d deps.Deps) {
	r.Get("/healthz", handlers.Healthz(d))
}

func registerProbes(r chi.Router, d deps.Deps) {
	r.Get("/readyz", handlers.Readyz(d))
	r.Get("/infra", handlers.Infra(d))
}
