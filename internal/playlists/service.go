package playlists

import (
	"context"
	"fmt"

	"github.com/melodex/melodex/internal/shared"
)

// SongCatalog is the slice of the song domain the playlist guard needs.
type SongCatalog interface {
	Exists(ctx context.Context, songID int64) (bool, error)
}

// Service exposes playlist queries and guarded mutations.
type Service struct {
	repo  Repository
	songs SongCatalog
}

// NewService constructs a new Service.
func NewService(repo Repository, songs SongCatalog) *Service {
	return &Service{repo: repo, songs: songs}
}

// Search lists playlists with optional substring name filtering.
func (s *Service) Search(ctx context.Context, p shared.ListParams) (shared.Page[Playlist], error) {
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
		return shared.Page[Playlist]{}, err
	}

	var values []Playlist
	if p.Name != "" {
		values, err = s.repo.ListByName(ctx, p.Name, p.Offset, p.Limit)
	} else {
		values, err = s.repo.List(ctx, p.Offset, p.Limit)
	}
	if err != nil {
		return shared.Page[Playlist]{}, err
	}
	return shared.NewPage(values, count, p.Offset, p.Limit), nil
}

// ByCreator lists all playlists created by the given user.
func (s *Service) ByCreator(ctx context.Context, creatorID int64) ([]Playlist, error) {
	return s.repo.ListByCreator(ctx, creatorID)
}

// Create stores a new playlist owned by the acting identity and returns its id.
func (s *Service) Create(ctx context.Context, identity shared.Identity, name string) (int64, error) {
	principal, ok := identity.Principal()
	if !ok {
		return 0, shared.ErrForbidden
	}
	return s.repo.Create(ctx, principal.ID, name)
}

// AddSong adds a song to a playlist. Checks run in a fixed order: song
// existence, then duplicate membership, then ownership. Each failure is
// reported independently so a caller learns the most specific one.
func (s *Service) AddSong(ctx context.Context, identity shared.Identity, playlistID, songID int64) error {
	exists, err := s.songs.Exists(ctx, songID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("song %d: %w", songID, shared.ErrNotFound)
	}

	contained, err := s.repo.ContainsSong(ctx, playlistID, songID)
	if err != nil {
		return err
	}
	if contained {
		return shared.ErrAlreadyInPlaylist
	}

	if err := s.authorize(ctx, identity, playlistID); err != nil {
		return err
	}
	return s.repo.AddSong(ctx, playlistID, songID)
}

// RemoveSong removes a song from a playlist. Checks run in order: song
// existence, then ownership. Removing a song that is not in the playlist is a
// no-op.
func (s *Service) RemoveSong(ctx context.Context, identity shared.Identity, playlistID, songID int64) error {
	exists, err := s.songs.Exists(ctx, songID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("song %d: %w", songID, shared.ErrNotFound)
	}

	if err := s.authorize(ctx, identity, playlistID); err != nil {
		return err
	}
	return s.repo.RemoveSong(ctx, playlistID, songID)
}

// authorize verifies the acting identity owns the playlist. Ownership is a
// direct creator lookup by playlist id, so an unknown playlist surfaces as
// ErrNotFound before any forbidden verdict.
func (s *Service) authorize(ctx context.Context, identity shared.Identity, playlistID int64) error {
	principal, ok := identity.Principal()
	if !ok {
		return shared.ErrForbidden
	}
	ownerID, err := s.repo.OwnerID(ctx, playlistID)
	if err != nil {
		return err
	}
	if ownerID != principal.ID {
		return fmt.Errorf("playlist %d: %w", playlistID, shared.ErrForbidden)
	}
	return nil
}
