package model

// ClientPlayer is the seat description sent to clients. Engine seats
// have no player ID.
type ClientPlayer struct {
	ID          string `json:"id"`
	Color       Color  `json:"color"`
	Engine      bool   `json:"engine"`
	TimeSpentMs int64  `json:"timeSpentMs"`
}
