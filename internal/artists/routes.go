package artists

import "github.com/go-chi/chi/v5"

// MountRoutes registers artist routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/{artistID}", h.show)
}
