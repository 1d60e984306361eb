package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Route("/api", func(r chi.Router) {
		r.Route("/pages", func(r chi.Router) {
			r.Get("/", h.listPages)
			r.Post("/", h.createPage)

			r.Route("/{pageID}", func(r chi.Router) {
				r.Get("/", h.getPage)
				r.Delete("/", h.deletePage)
				r.Put("/name", h.renamePage)
				r.Put("/template", h.updateTemplate)
				r.Post("/activate", h.activatePage)

				r.Route("/characters", func(r chi.Router) {
					r.Get("/", h.listCharacters)
					r.Post("/", h.addCharacter)

					r.Route("/{characterID}", func(r chi.Router) {
						r.Put("/", h.updateCharacter)
						r.Delete("/", h.deleteCharacter)

						r.Post("/images", h.uploadImages)
						r.Get("/images/groups", h.imageGroups)
						r.Delete("/images/{index}", h.removeImage)
						r.Post("/images/reorder", h.reorderImages)
					})
				})
			})
		})

		r.Get("/settings", h.getSettings)
		r.Put("/settings", h.updateSettings)
	})

	if h.vaultRoot != "" {
		fileServer := http.StripPrefix("/files/", http.FileServer(http.Dir(h.vaultRoot)))
		router.Get("/files/*", fileServer.ServeHTTP)
	}

	return router
}
