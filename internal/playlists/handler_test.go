package playlists

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/melodex/melodex/internal/auth"
	"github.com/melodex/melodex/internal/shared"
)

func newTestRouter(repo Repository, songs SongCatalog) chi.Router {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewHandler(logger, NewService(repo, songs), 1000)
	r := chi.NewRouter()
	r.Route("/playlists", func(r chi.Router) {
		h.MountRoutes(r, auth.RequireAuthenticated)
	})
	return r
}

func asUser(req *http.Request, userID int64) *http.Request {
	identity := shared.Authenticated(shared.Principal{ID: userID, Email: "user@example.com"})
	return req.WithContext(shared.ContextWithIdentity(req.Context(), identity))
}

func TestMutationsRequireAuthentication(t *testing.T) {
	router := newTestRouter(newFakeRepo(), &fakeSongs{})

	requests := []*http.Request{
		httptest.NewRequest(http.MethodPost, "/playlists", strings.NewReader(`{"playlist_name":"mix"}`)),
		httptest.NewRequest(http.MethodPost, "/playlists/1/songs/2", nil),
		httptest.NewRequest(http.MethodDelete, "/playlists/1/songs/2", nil),
	}
	for _, req := range requests {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s %s anonymous status = %d, want 401", req.Method, req.URL.Path, rec.Code)
		}
	}
}

func TestCreatePlaylistEndpoint(t *testing.T) {
	repo := newFakeRepo()
	router := newTestRouter(repo, &fakeSongs{})

	req := asUser(httptest.NewRequest(http.MethodPost, "/playlists", strings.NewReader(`{"playlist_name":"road trip"}`)), 7)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"playlist_id"`) {
		t.Errorf("body = %s, want playlist_id", rec.Body.String())
	}
	if len(repo.owners) != 1 {
		t.Errorf("playlists stored = %d, want 1", len(repo.owners))
	}
}

func TestCreatePlaylistValidation(t *testing.T) {
	router := newTestRouter(newFakeRepo(), &fakeSongs{})

	for _, body := range []string{`{}`, `{"playlist_name":""}`, `not json`} {
		req := asUser(httptest.NewRequest(http.MethodPost, "/playlists", strings.NewReader(body)), 7)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %q status = %d, want 400", body, rec.Code)
		}
	}
}

func TestPlaylistEntryEndpoints(t *testing.T) {
	repo := newFakeRepo()
	repo.owners[10] = 1
	songs := &fakeSongs{known: map[int64]bool{5: true}}
	router := newTestRouter(repo, songs)

	req := asUser(httptest.NewRequest(http.MethodPost, "/playlists/10/songs/5", nil), 1)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("add status = %d, body %s", rec.Code, rec.Body.String())
	}

	// Second add of the same song conflicts.
	req = asUser(httptest.NewRequest(http.MethodPost, "/playlists/10/songs/5", nil), 1)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusConflict {
		t.Fatalf("duplicate add status = %d, want 409", rec.Code)
	}

	// A different user cannot touch the playlist.
	req = asUser(httptest.NewRequest(http.MethodDelete, "/playlists/10/songs/5", nil), 2)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("foreign delete status = %d, want 403", rec.Code)
	}

	req = asUser(httptest.NewRequest(http.MethodDelete, "/playlists/10/songs/5", nil), 1)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d, want 204", rec.Code)
	}

	req = asUser(httptest.NewRequest(http.MethodPost, "/playlists/10/songs/404", nil), 1)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown song status = %d, want 404", rec.Code)
	}
}
