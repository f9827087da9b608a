package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/sharelink/internal/httpserver/deps"
	"github.com/MrSnakeDoc/sharelink/internal/httpserver/handlers"
)

func init() { Register(registerAPI, allowCIDRS, enforceHost) }

func registerAPI(r chi.Router, d deps.Deps) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/state", handlers.State(d))
		r.Put("/draft", handlers.UpdateDraft(d))
		r.Get("/message", handlers.Message(d))

		r.Post("/contacts", handlers.AddContact(d))
		r.Post("/contacts/import", handlers.ImportContacts(d))
		r.Delete("/contacts/{id}", handlers.DeleteContact(d))

		r.Put("/selection", handlers.SelectAll(d))
		r.Delete("/selection", handlers.DeselectAll(d))
		r.Post("/selection/toggle-all", handlers.ToggleAll(d))
		r.Post("/selection/{id}/toggle", handlers.ToggleSelection(d))

		r.Post("/links", handlers.GenerateLinks(d))
		r.Get("/links", handlers.ListLinks(d))
		r.Delete("/links", handlers.ClearLinks(d))
		r.Get("/links/text", handlers.LinksText(d))
		r.Post("/links/open", handlers.OpenLinks(d))

		r.Post("/copy/message", handlers.CopyMessage(d))
		r.Post("/copy/links", handlers.CopyLinks(d))
	})
}
