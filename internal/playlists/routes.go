package playlists

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// MountRoutes registers playlist routes on the provided router. requireAuth
// wraps the mutating endpoints; listing stays open to anonymous callers.
func (h *Handler) MountRoutes(r chi.Router, requireAuth func(http.Handler) http.Handler) {
	r.Get("/", h.list)
	r.Get("/creator/{creatorID}", h.listByCreator)

	r.Group(func(r chi.Router) {
		r.Use(requireAuth)
		r.Post("/", h.create)
		r.Post("/{playlistID}/songs/{songID}", h.addSong)
		r.Delete("/{playlistID}/songs/{songID}", h.removeSong)
	})
}
