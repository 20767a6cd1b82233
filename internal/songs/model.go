package songs

// Song is a catalog track together with its artist nickname and genre name.
// AudioPath locates the track inside the media directory and is never exposed
// over the API.
type Song struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Artist string `json:"artist"`
	Genre  string `json:"genre"`

	AudioPath string `json:"-"`
}
