package artists

// Artist is a performing act in the catalog.
type Artist struct {
	ID       int64  `json:"id"`
	Nickname string `json:"nickname"`
}
