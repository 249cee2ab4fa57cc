package types

// ------------------------------
// Core Domain Entities
// ------------------------------

// Location is one 5 Verst event venue
type Location struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	City      string  `json:"city"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Active    bool    `json:"active"`
}
