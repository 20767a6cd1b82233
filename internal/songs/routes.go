package songs

import "github.com/go-chi/chi/v5"

// MountRoutes registers song routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/artist/{artistID}", h.listByArtist)
	r.Get("/album/{albumID}", h.listByAlbum)
	r.Get("/user/{userID}", h.listByUser)
	r.Get("/{songID}", h.audio)
}
