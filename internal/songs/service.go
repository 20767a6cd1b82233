package songs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/melodex/melodex/internal/shared"
)

// Service exposes song catalog queries and audio retrieval.
type Service struct {
	repo     Repository
	mediaDir string
}

// NewService constructs a new Service. mediaDir is the root directory audio
// files are served from.
func NewService(repo Repository, mediaDir string) *Service {
	return &Service{repo: repo, mediaDir: mediaDir}
}

// Search lists songs with optional substring name filtering.
func (s *Service) Search(ctx context.Context, p shared.ListParams) (shared.Page[Song], error) {
	var (
		count int
		err   error
	)
	if p.Name != "" {
		count, err = s.repo.CountByName(ctx, p.Name)
	} else {
		count, err = s.repo.Count(ctx)
	}
	if err != nil {
		return shared.Page[Song]{}, err
	}

	var values []Song
	if p.Name != "" {
		values, err = s.repo.ListByName(ctx, p.Name, p.Offset, p.Limit)
	} else {
		values, err = s.repo.List(ctx, p.Offset, p.Limit)
	}
	if err != nil {
		return shared.Page[Song]{}, err
	}
	return shared.NewPage(values, count, p.Offset, p.Limit), nil
}

// ByArtist lists all songs by the given artist.
func (s *Service) ByArtist(ctx context.Context, artistID int64) ([]Song, error) {
	return s.repo.ListByArtist(ctx, artistID)
}

// ByAlbum lists all songs on the given album.
func (s *Service) ByAlbum(ctx context.Context, albumID int64) ([]Song, error) {
	return s.repo.ListByAlbum(ctx, albumID)
}

// ByUser lists the given user's favourite songs.
func (s *Service) ByUser(ctx context.Context, userID int64) ([]Song, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Exists reports whether a song with the given id is in the catalog.
func (s *Service) Exists(ctx context.Context, id int64) (bool, error) {
	return s.repo.Exists(ctx, id)
}

// Audio loads the audio bytes for the given song. The stored path must stay
// inside the media directory; anything escaping it is treated as not found.
func (s *Service) Audio(ctx context.Context, id int64) ([]byte, error) {
	song, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	rel := filepath.Clean(song.AudioPath)
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) || filepath.IsAbs(rel) {
		return nil, fmt.Errorf("song audio %q: %w", song.AudioPath, shared.ErrNotFound)
	}

	data, err := os.ReadFile(filepath.Join(s.mediaDir, rel))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("song audio: %w", shared.ErrNotFound)
		}
		return nil, fmt.Errorf("songs: read audio: %w", err)
	}
	return data, nil
}
