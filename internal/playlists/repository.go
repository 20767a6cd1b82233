package playlists

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/melodex/melodex/internal/shared"
)

const uniqueViolation = "23505"

// Repository defines persistence operations for playlists. Listings join the
// users table so every row carries the creator nickname.
type Repository interface {
	Count(ctx context.Context) (int, error)
	CountByName(ctx context.Context, name string) (int, error)
	List(ctx context.Context, offset, limit int) ([]Playlist, error)
	ListByName(ctx context.Context, name string, offset, limit int) ([]Playlist, error)
	ListByCreator(ctx context.Context, creatorID int64) ([]Playlist, error)
	Create(ctx context.Context, creatorID int64, name string) (int64, error)
	OwnerID(ctx context.Context, playlistID int64) (int64, error)
	ContainsSong(ctx context.Context, playlistID, songID int64) (bool, error)
	AddSong(ctx context.Context, playlistID, songID int64) error
	RemoveSong(ctx context.Context, playlistID, songID int64) error
}

type repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL repository.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

const playlistColumns = `p.playlist_id, p.playlist_name, u.nickname, p.updated_at, p.created_at`

const playlistFrom = `
	FROM playlists p
	JOIN users u ON p.creator_id = u.user_id`

func (r *repository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM playlists`).Scan(&count); err != nil {
		return 0, fmt.Errorf("playlists: count: %w", err)
	}
	return count, nil
}

func (r *repository) CountByName(ctx context.Context, name string) (int, error) {
	const query = `SELECT count(*) FROM playlists WHERE playlist_name LIKE '%' || $1 || '%'`

	var count int
	if err := r.pool.QueryRow(ctx, query, name).Scan(&count); err != nil {
		return 0, fmt.Errorf("playlists: count by name: %w", err)
	}
	return count, nil
}

func (r *repository) List(ctx context.Context, offset, limit int) ([]Playlist, error) {
	const query = `SELECT ` + playlistColumns + playlistFrom + ` ORDER BY p.playlist_id LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("playlists: list: %w", err)
	}
	defer rows.Close()
	return scanPlaylists(rows)
}

func (r *repository) ListByName(ctx context.Context, name string, offset, limit int) ([]Playlist, error) {
	const query = `
		SELECT ` + playlistColumns + playlistFrom + `
		WHERE p.playlist_name LIKE '%' || $1 || '%'
		ORDER BY p.playlist_id LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, name, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("playlists: list by name: %w", err)
	}
	defer rows.Close()
	return scanPlaylists(rows)
}

func (r *repository) ListByCreator(ctx context.Context, creatorID int64) ([]Playlist, error) {
	const query = `SELECT ` + playlistColumns + playlistFrom + ` WHERE p.creator_id = $1 ORDER BY p.playlist_id`

	rows, err := r.pool.Query(ctx, query, creatorID)
	if err != nil {
		return nil, fmt.Errorf("playlists: list by creator: %w", err)
	}
	defer rows.Close()
	return scanPlaylists(rows)
}

func (r *repository) Create(ctx context.Context, creatorID int64, name string) (int64, error) {
	const query = `
		INSERT INTO playlists (playlist_name, creator_id)
		VALUES ($1, $2)
		RETURNING playlist_id`

	var id int64
	if err := r.pool.QueryRow(ctx, query, name, creatorID).Scan(&id); err != nil {
		return 0, fmt.Errorf("playlists: create: %w", err)
	}
	return id, nil
}

func (r *repository) OwnerID(ctx context.Context, playlistID int64) (int64, error) {
	const query = `SELECT creator_id FROM playlists WHERE playlist_id = $1`

	var ownerID int64
	if err := r.pool.QueryRow(ctx, query, playlistID).Scan(&ownerID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("playlist: %w", shared.ErrNotFound)
		}
		return 0, fmt.Errorf("playlists: owner: %w", err)
	}
	return ownerID, nil
}

func (r *repository) ContainsSong(ctx context.Context, playlistID, songID int64) (bool, error) {
	const query = `SELECT EXISTS (
		SELECT 1 FROM playlist_songs WHERE playlist_id = $1 AND song_id = $2)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, playlistID, songID).Scan(&exists); err != nil {
		return false, fmt.Errorf("playlists: contains song: %w", err)
	}
	return exists, nil
}

// AddSong inserts a playlist entry. The composite primary key is the
// authoritative duplicate guard; a unique violation maps to
// shared.ErrAlreadyInPlaylist so concurrent adds lose cleanly.
func (r *repository) AddSong(ctx context.Context, playlistID, songID int64) error {
	const query = `INSERT INTO playlist_songs (playlist_id, song_id) VALUES ($1, $2)`

	if _, err := r.pool.Exec(ctx, query, playlistID, songID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("playlists: add song: %w", shared.ErrAlreadyInPlaylist)
		}
		return fmt.Errorf("playlists: add song: %w", err)
	}
	return nil
}

func (r *repository) RemoveSong(ctx context.Context, playlistID, songID int64) error {
	const query = `DELETE FROM playlist_songs WHERE playlist_id = $1 AND song_id = $2`

	if _, err := r.pool.Exec(ctx, query, playlistID, songID); err != nil {
		return fmt.Errorf("playlists: remove song: %w", err)
	}
	return nil
}

func scanPlaylists(rows pgx.Rows) ([]Playlist, error) {
	var playlists []Playlist
	for rows.Next() {
		var p Playlist
		if err := rows.Scan(&p.ID, &p.Name, &p.Creator, &p.UpdatedAt, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("playlists: scan: %w", err)
		}
		playlists = append(playlists, p)
	}
	return playlists, rows.Err()
}
