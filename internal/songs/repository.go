package songs

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/melodex/melodex/internal/shared"
)

// Repository defines persistence operations for songs. Listings join the
// artists and genres tables so every row carries display names.
type Repository interface {
	Get(ctx context.Context, id int64) (*Song, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context) (int, error)
	CountByName(ctx context.Context, name string) (int, error)
	List(ctx context.Context, offset, limit int) ([]Song, error)
	ListByName(ctx context.Context, name string, offset, limit int) ([]Song, error)
	ListByArtist(ctx context.Context, artistID int64) ([]Song, error)
	ListByAlbum(ctx context.Context, albumID int64) ([]Song, error)
	ListByUser(ctx context.Context, userID int64) ([]Song, error)
}

type repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL repository.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

const songColumns = `s.song_id, s.song_name, ar.nickname, g.genre_name, s.audio_path`

const songFrom = `
	FROM songs s
	JOIN artists ar ON s.artist_id = ar.artist_id
	JOIN genres g ON s.genre_id = g.genre_id`

func (r *repository) Get(ctx context.Context, id int64) (*Song, error) {
	const query = `SELECT ` + songColumns + songFrom + ` WHERE s.song_id = $1`

	var s Song
	err := r.pool.QueryRow(ctx, query, id).Scan(&s.ID, &s.Name, &s.Artist, &s.Genre, &s.AudioPath)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("song: %w", shared.ErrNotFound)
		}
		return nil, fmt.Errorf("songs: get: %w", err)
	}
	return &s, nil
}

func (r *repository) Exists(ctx context.Context, id int64) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM songs WHERE song_id = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("songs: exists: %w", err)
	}
	return exists, nil
}

func (r *repository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM songs`).Scan(&count); err != nil {
		return 0, fmt.Errorf("songs: count: %w", err)
	}
	return count, nil
}

func (r *repository) CountByName(ctx context.Context, name string) (int, error) {
	const query = `SELECT count(*) FROM songs WHERE song_name LIKE '%' || $1 || '%'`

	var count int
	if err := r.pool.QueryRow(ctx, query, name).Scan(&count); err != nil {
		return 0, fmt.Errorf("songs: count by name: %w", err)
	}
	return count, nil
}

func (r *repository) List(ctx context.Context, offset, limit int) ([]Song, error) {
	const query = `SELECT ` + songColumns + songFrom + ` ORDER BY s.song_id LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("songs: list: %w", err)
	}
	defer rows.Close()
	return scanSongs(rows)
}

func (r *repository) ListByName(ctx context.Context, name string, offset, limit int) ([]Song, error) {
	const query = `
		SELECT ` + songColumns + songFrom + `
		WHERE s.song_name LIKE '%' || $1 || '%'
		ORDER BY s.song_id LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, name, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("songs: list by name: %w", err)
	}
	defer rows.Close()
	return scanSongs(rows)
}

func (r *repository) ListByArtist(ctx context.Context, artistID int64) ([]Song, error) {
	const query = `SELECT ` + songColumns + songFrom + ` WHERE s.artist_id = $1 ORDER BY s.song_id`

	rows, err := r.pool.Query(ctx, query, artistID)
	if err != nil {
		return nil, fmt.Errorf("songs: list by artist: %w", err)
	}
	defer rows.Close()
	return scanSongs(rows)
}

func (r *repository) ListByAlbum(ctx context.Context, albumID int64) ([]Song, error) {
	const query = `
		SELECT ` + songColumns + songFrom + `
		JOIN album_songs als ON als.song_id = s.song_id
		WHERE als.album_id = $1
		ORDER BY s.song_id`

	rows, err := r.pool.Query(ctx, query, albumID)
	if err != nil {
		return nil, fmt.Errorf("songs: list by album: %w", err)
	}
	defer rows.Close()
	return scanSongs(rows)
}

func (r *repository) ListByUser(ctx context.Context, userID int64) ([]Song, error) {
	const query = `
		SELECT ` + songColumns + songFrom + `
		JOIN favorites f ON f.song_id = s.song_id
		WHERE f.user_id = $1
		ORDER BY s.song_id`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("songs: list by user: %w", err)
	}
	defer rows.Close()
	return scanSongs(rows)
}

func scanSongs(rows pgx.Rows) ([]Song, error) {
	var songs []Song
	for rows.Next() {
		var s Song
		if err := rows.Scan(&s.ID, &s.Name, &s.Artist, &s.Genre, &s.AudioPath); err != nil {
			return nil, fmt.Errorf("songs: scan: %w", err)
		}
		songs = append(songs, s)
	}
	return songs, rows.Err()
}
