package delivery

import (
	"github.com/Vovarama1992/go-utils/httputil"
	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/", func(pr chi.Router) {
		pr.Use(httputil.RecoverMiddleware)

		pr.Get("/users", h.ListUsers)
		pr.Get("/users/{telegram_id}/messages", h.GetUserMessages)
	})
}
