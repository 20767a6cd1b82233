package playlists

import "time"

// Playlist is a user-created playlist together with its creator's nickname.
type Playlist struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Creator   string    `json:"creator"`
	UpdatedAt time.Time `json:"update_time"`
	CreatedAt time.Time `json:"creation_date"`
}
