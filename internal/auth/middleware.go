package auth

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/melodex/melodex/internal/platform/httpx"
	"github.com/melodex/melodex/internal/shared"
)

const bearerPrefix = "Bearer "

// Resolver reconstructs the stateless session from the Authorization header.
// It never fails the request itself: every resolution failure falls back to
// an anonymous identity and downstream authorization decides.
type Resolver struct {
	codec  *Codec
	users  Repository
	logger *slog.Logger
}

// NewResolver constructs a Resolver.
func NewResolver(codec *Codec, users Repository, logger *slog.Logger) *Resolver {
	return &Resolver{codec: codec, users: users, logger: logger}
}

// Middleware resolves the bearer token, if any, into a request-scoped
// principal. Resolving twice in one request is a no-op.
func (rs *Resolver) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			next.ServeHTTP(w, r)
			return
		}
		if shared.IdentityFromContext(r.Context()).IsAuthenticated() {
			next.ServeHTTP(w, r)
			return
		}

		raw := strings.TrimPrefix(header, bearerPrefix)
		subject, err := rs.codec.Subject(raw)
		if err != nil {
			rs.logger.Debug("token rejected", slog.Any("error", err))
			next.ServeHTTP(w, r)
			return
		}

		user, err := rs.users.FindByEmail(r.Context(), subject)
		if err != nil {
			rs.logger.Debug("token subject unknown", slog.String("subject", subject))
			next.ServeHTTP(w, r)
			return
		}
		// Stale tokens may reference a renamed identity.
		if user.Email != subject {
			next.ServeHTTP(w, r)
			return
		}

		identity := shared.Authenticated(shared.Principal{
			ID:    user.ID,
			Email: user.Email,
			Roles: []string{RoleUser},
		})
		next.ServeHTTP(w, r.WithContext(shared.ContextWithIdentity(r.Context(), identity)))
	})
}

// RequireAuthenticated rejects anonymous requests with 401. Mounted only on
// mutation endpoints; reads stay open.
func RequireAuthenticated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !shared.IdentityFromContext(r.Context()).IsAuthenticated() {
			httpx.Error(w, http.StatusUnauthorized, "authentication required")
			return
		}
		next.ServeHTTP(w, r)
	})
}
