package albums

import "github.com/go-chi/chi/v5"

// MountRoutes registers album routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/artist/{artistID}", h.listByArtist)
}
