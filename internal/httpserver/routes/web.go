package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/sharelink/internal/httpserver/deps"
	"github.com/MrSnakeDoc/sharelink/internal/httpserver/handlers"
)

func init() { Register(registerWeb, allowCIDRS, enforceHost) }

func registerWeb(r chi.Router, d deps.Deps) {
	r.Get("/", handlers.Index(d))
}
