package artists

import (
	"context"

	"github.com/melodex/melodex/internal/shared"
)

// Service exposes artist catalog queries.
type Service struct {
	repo Repository
}

// NewService constructs a new Service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Search lists artists with optional substring name filtering. Substring
// matching is delegated to the store (LIKE '%…%'); its case sensitivity
// follows the database collation.
func (s *Service) Search(ctx context.Context, p shared.ListParams) (shared.Page[Artist], error) {
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
		return shared.Page[Artist]{}, err
	}

	var values []Artist
	if p.Name != "" {
		values, err = s.repo.ListByName(ctx, p.Name, p.Offset, p.Limit)
	} else {
		values, err = s.repo.List(ctx, p.Offset, p.Limit)
	}
	if err != nil {
		return shared.Page[Artist]{}, err
	}
	return shared.NewPage(values, count, p.Offset, p.Limit), nil
}

// Get fetches a single artist by id.
func (s *Service) Get(ctx context.Context, id int64) (*Artist, error) {
	return s.repo.Get(ctx, id)
}
