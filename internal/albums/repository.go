package albums

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository defines persistence operations for albums. Listings join the
// artists table so every row carries the creator nickname.
type Repository interface {
	Count(ctx context.Context) (int, error)
	CountByName(ctx context.Context, name string) (int, error)
	List(ctx context.Context, offset, limit int) ([]Album, error)
	ListByName(ctx context.Context, name string, offset, limit int) ([]Album, error)
	ListByArtist(ctx context.Context, artistID int64) ([]Album, error)
}

type repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL repository.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

const albumColumns = `a.album_id, a.name, ar.nickname, a.created_at`

func (r *repository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM albums`).Scan(&count); err != nil {
		return 0, fmt.Errorf("albums: count: %w", err)
	}
	return count, nil
}

func (r *repository) CountByName(ctx context.Context, name string) (int, error) {
	const query = `SELECT count(*) FROM albums WHERE name LIKE '%' || $1 || '%'`

	var count int
	if err := r.pool.QueryRow(ctx, query, name).Scan(&count); err != nil {
		return 0, fmt.Errorf("albums: count by name: %w", err)
	}
	return count, nil
}

func (r *repository) List(ctx context.Context, offset, limit int) ([]Album, error) {
	const query = `
		SELECT ` + albumColumns + `
		FROM albums a JOIN artists ar ON a.artist_id = ar.artist_id
		ORDER BY a.album_id LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("albums: list: %w", err)
	}
	defer rows.Close()
	return scanAlbums(rows)
}

func (r *repository) ListByName(ctx context.Context, name string, offset, limit int) ([]Album, error) {
	const query = `
		SELECT ` + albumColumns + `
		FROM albums a JOIN artists ar ON a.artist_id = ar.artist_id
		WHERE a.name LIKE '%' || $1 || '%'
		ORDER BY a.album_id LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, name, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("albums: list by name: %w", err)
	}
	defer rows.Close()
	return scanAlbums(rows)
}

func (r *repository) ListByArtist(ctx context.Context, artistID int64) ([]Album, error) {
	const query = `
		SELECT ` + albumColumns + `
		FROM albums a JOIN artists ar ON a.artist_id = ar.artist_id
		WHERE a.artist_id = $1
		ORDER BY a.album_id`

	rows, err := r.pool.Query(ctx, query, artistID)
	if err != nil {
		return nil, fmt.Errorf("albums: list by artist: %w", err)
	}
	defer rows.Close()
	return scanAlbums(rows)
}

func scanAlbums(rows pgx.Rows) ([]Album, error) {
	var albums []Album
	for rows.Next() {
		var a Album
		if err := rows.Scan(&a.ID, &a.Name, &a.Artist, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("albums: scan: %w", err)
		}
		albums = append(albums, a)
	}
	return albums, rows.Err()
}
