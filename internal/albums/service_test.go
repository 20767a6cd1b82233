package albums

import (
	"context"
	"testing"
	"time"

	"github.com/melodex/melodex/internal/shared"
)

type fakeRepo struct {
	all      []Album
	byName   map[string][]Album
	byArtist map[int64][]Album
}

func (f *fakeRepo) Count(ctx context.Context) (int, error) { return len(f.all), nil }

func (f *fakeRepo) CountByName(ctx context.Context, name string) (int, error) {
	return len(f.byName[name]), nil
}

func (f *fakeRepo) List(ctx context.Context, offset, limit int) ([]Album, error) {
	return window(f.all, offset, limit), nil
}

func (f *fakeRepo) ListByName(ctx context.Context, name string, offset, limit int) ([]Album, error) {
	return window(f.byName[name], offset, limit), nil
}

func (f *fakeRepo) ListByArtist(ctx context.Context, artistID int64) ([]Album, error) {
	return f.byArtist[artistID], nil
}

func window(albums []Album, offset, limit int) []Album {
	if offset >= len(albums) {
		return nil
	}
	end := offset + limit
	if end > len(albums) {
		end = len(albums)
	}
	return albums[offset:end]
}

func TestSearchUnfiltered(t *testing.T) {
	now := time.Now()
	repo := &fakeRepo{all: []Album{
		{ID: 1, Name: "Thriller", Artist: "MJ", CreatedAt: now},
		{ID: 2, Name: "Bad", Artist: "MJ", CreatedAt: now},
		{ID: 3, Name: "Dangerous", Artist: "MJ", CreatedAt: now},
	}}
	svc := NewService(repo)

	page, err := svc.Search(context.Background(), shared.ListParams{Offset: 2, Limit: 2})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if page.Count != 3 || page.CurrentPage != 2 || page.TotalPages != 2 {
		t.Errorf("page = {count %d, current %d, total %d}, want {3, 2, 2}",
			page.Count, page.CurrentPage, page.TotalPages)
	}
	if len(page.Values) != 1 || page.Values[0].ID != 3 {
		t.Errorf("Values = %+v, want the third album only", page.Values)
	}
}

func TestSearchFilteredUsesNameQueries(t *testing.T) {
	repo := &fakeRepo{
		all:    []Album{{ID: 1}, {ID: 2}},
		byName: map[string][]Album{"Bad": {{ID: 2, Name: "Bad"}}},
	}
	svc := NewService(repo)

	page, err := svc.Search(context.Background(), shared.ListParams{Name: "Bad", Offset: 0, Limit: 10})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if page.Count != 1 || len(page.Values) != 1 || page.Values[0].Name != "Bad" {
		t.Errorf("filtered page = %+v, want single Bad album", page)
	}
}

func TestByArtist(t *testing.T) {
	repo := &fakeRepo{byArtist: map[int64][]Album{7: {{ID: 1, Artist: "MJ"}}}}
	svc := NewService(repo)

	albums, err := svc.ByArtist(context.Background(), 7)
	if err != nil {
		t.Fatalf("ByArtist: %v", err)
	}
	if len(albums) != 1 || albums[0].Artist != "MJ" {
		t.Errorf("albums = %+v", albums)
	}

	none, err := svc.ByArtist(context.Background(), 99)
	if err != nil {
		t.Fatalf("ByArtist: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("albums for unknown artist = %+v, want empty", none)
	}
}
