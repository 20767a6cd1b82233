package artists

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/melodex/melodex/internal/shared"
)

// Repository defines persistence operations for artists.
type Repository interface {
	Get(ctx context.Context, id int64) (*Artist, error)
	Count(ctx context.Context) (int, error)
	CountByName(ctx context.Context, name string) (int, error)
	List(ctx context.Context, offset, limit int) ([]Artist, error)
	ListByName(ctx context.Context, name string, offset, limit int) ([]Artist, error)
}

type repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL repository.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

func (r *repository) Get(ctx context.Context, id int64) (*Artist, error) {
	const query = `SELECT artist_id, nickname FROM artists WHERE artist_id = $1`

	var artist Artist
	if err := r.pool.QueryRow(ctx, query, id).Scan(&artist.ID, &artist.Nickname); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("artist: %w", shared.ErrNotFound)
		}
		return nil, fmt.Errorf("artists: get: %w", err)
	}
	return &artist, nil
}

func (r *repository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM artists`).Scan(&count); err != nil {
		return 0, fmt.Errorf("artists: count: %w", err)
	}
	return count, nil
}

func (r *repository) CountByName(ctx context.Context, name string) (int, error) {
	const query = `SELECT count(*) FROM artists WHERE nickname LIKE '%' || $1 || '%'`

	var count int
	if err := r.pool.QueryRow(ctx, query, name).Scan(&count); err != nil {
		return 0, fmt.Errorf("artists: count by name: %w", err)
	}
	return count, nil
}

func (r *repository) List(ctx context.Context, offset, limit int) ([]Artist, error) {
	const query = `SELECT artist_id, nickname FROM artists ORDER BY artist_id LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("artists: list: %w", err)
	}
	defer rows.Close()
	return scanArtists(rows)
}

func (r *repository) ListByName(ctx context.Context, name string, offset, limit int) ([]Artist, error) {
	const query = `
		SELECT artist_id, nickname FROM artists
		WHERE nickname LIKE '%' || $1 || '%'
		ORDER BY artist_id LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, name, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("artists: list by name: %w", err)
	}
	defer rows.Close()
	return scanArtists(rows)
}

func scanArtists(rows pgx.Rows) ([]Artist, error) {
	var artists []Artist
	for rows.Next() {
		var a Artist
		if err := rows.Scan(&a.ID, &a.Nickname); err != nil {
			return nil, fmt.Errorf("artists: scan: %w", err)
		}
		artists = append(artists, a)
	}
	return artists, rows.Err()
}
