package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/melodex/melodex/internal/albums"
	"github.com/melodex/melodex/internal/artists"
	"github.com/melodex/melodex/internal/auth"
	"github.com/melodex/melodex/internal/observability"
	"github.com/melodex/melodex/internal/playlists"
	"github.com/melodex/melodex/internal/songs"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger           *slog.Logger
	Config           *Config
	Resolver         *auth.Resolver
	AuthHandler      *auth.Handler
	ArtistsHandler   *artists.Handler
	AlbumsHandler    *albums.Handler
	SongsHandler     *songs.Handler
	PlaylistsHandler *playlists.Handler
	Metrics          *observability.Metrics
}

// NewRouter constructs the chi.Router with Melodex defaults. Every request
// passes through the identity resolver; anonymous callers fall through to the
// open endpoints.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger:  params.Logger,
		Config:  params.Config,
		Metrics: params.Metrics,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)
	r.Use(params.Resolver.Middleware)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/auth", params.AuthHandler.MountRoutes)
	r.Route("/artists", params.ArtistsHandler.MountRoutes)
	r.Route("/albums", params.AlbumsHandler.MountRoutes)
	r.Route("/songs", params.SongsHandler.MountRoutes)
	r.Route("/playlists", func(r chi.Router) {
		params.PlaylistsHandler.MountRoutes(r, auth.RequireAuthenticated)
	})

	if params.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", params.Metrics.Handler())
	}

	return r
}
