package albums

import (
	"context"

	"github.com/melodex/melodex/internal/shared"
)

// Service exposes album catalog queries.
type Service struct {
	repo Repository
}

// NewService constructs a new Service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Search lists albums with optional substring name filtering.
func (s *Service) Search(ctx context.Context, p shared.ListParams) (shared.Page[Album], error) {
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
		return shared.Page[Album]{}, err
	}

	var values []Album
	if p.Name != "" {
		values, err = s.repo.ListByName(ctx, p.Name, p.Offset, p.Limit)
	} else {
		values, err = s.repo.List(ctx, p.Offset, p.Limit)
	}
	if err != nil {
		return shared.Page[Album]{}, err
	}
	return shared.NewPage(values, count, p.Offset, p.Limit), nil
}

// ByArtist lists all albums created by the given artist.
func (s *Service) ByArtist(ctx context.Context, artistID int64) ([]Album, error) {
	return s.repo.ListByArtist(ctx, artistID)
}
