package albums

import "time"

// Album is a catalog album together with its creator's nickname.
type Album struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Artist    string    `json:"artist"`
	CreatedAt time.Time `json:"creation_date"`
}
