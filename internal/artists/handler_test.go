package artists

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/melodex/melodex/internal/shared"
)

type fakeRepo struct {
	artists []Artist

	lastOffset int
	lastLimit  int
	lastName   string
}

func (f *fakeRepo) Get(ctx context.Context, id int64) (*Artist, error) {
	for _, a := range f.artists {
		if a.ID == id {
			return &a, nil
		}
	}
	return nil, fmt.Errorf("artist: %w", shared.ErrNotFound)
}

func (f *fakeRepo) Count(ctx context.Context) (int, error) {
	return len(f.artists), nil
}

func (f *fakeRepo) CountByName(ctx context.Context, name string) (int, error) {
	f.lastName = name
	return 1, nil
}

func (f *fakeRepo) List(ctx context.Context, offset, limit int) ([]Artist, error) {
	f.lastOffset, f.lastLimit = offset, limit
	return f.artists, nil
}

func (f *fakeRepo) ListByName(ctx context.Context, name string, offset, limit int) ([]Artist, error) {
	f.lastName, f.lastOffset, f.lastLimit = name, offset, limit
	if len(f.artists) == 0 {
		return nil, nil
	}
	return f.artists[:1], nil
}

func newRouter(repo Repository) chi.Router {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewHandler(logger, NewService(repo), 1000)
	r := chi.NewRouter()
	r.Route("/artists", h.MountRoutes)
	return r
}

func TestListArtists(t *testing.T) {
	repo := &fakeRepo{artists: []Artist{{ID: 1, Nickname: "MJ"}, {ID: 2, Nickname: "Queen"}, {ID: 3, Nickname: "Prince"}}}
	router := newRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/artists?offset=0&limit=2", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var page shared.Page[Artist]
	if err := json.Unmarshal(rec.Body.Bytes(), &page); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if page.Count != 3 {
		t.Errorf("Count = %d, want 3", page.Count)
	}
	if page.TotalPages != 2 {
		t.Errorf("TotalPages = %d, want 2", page.TotalPages)
	}
	if page.CurrentPage != 1 {
		t.Errorf("CurrentPage = %d, want 1", page.CurrentPage)
	}
	if repo.lastLimit != 2 || repo.lastOffset != 0 {
		t.Errorf("window passed to repo = (%d,%d)", repo.lastOffset, repo.lastLimit)
	}
}

func TestListArtistsFiltered(t *testing.T) {
	repo := &fakeRepo{artists: []Artist{{ID: 1, Nickname: "MJ"}}}
	router := newRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/artists?name=MJ", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if repo.lastName != "MJ" {
		t.Errorf("filter passed to repo = %q, want MJ", repo.lastName)
	}
}

func TestListArtistsCapsLimit(t *testing.T) {
	repo := &fakeRepo{}
	router := newRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/artists?limit=500000", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if repo.lastLimit != 1000 {
		t.Errorf("limit passed to repo = %d, want capped 1000", repo.lastLimit)
	}
}

func TestShowArtist(t *testing.T) {
	router := newRouter(&fakeRepo{artists: []Artist{{ID: 7, Nickname: "MJ"}}})

	req := httptest.NewRequest(http.MethodGet, "/artists/7", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/artists/999", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/artists/abc", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
