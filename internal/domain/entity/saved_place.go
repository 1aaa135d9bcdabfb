package entity

import "time"

// SavedPlace is a named map pin owned by a user. Places are create-only.
type SavedPlace struct {
	ID        string    `json:"id"`                // Store-generated document id.
	Name      string    `json:"name"`              // User-chosen name.
	Address   *string   `json:"address,omitempty"` // Optional human-readable address.
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	DateAdded time.Time `json:"date_added"`
}

// Coordinate returns the pin position.
func (p *SavedPlace) Coordinate() Coordinate {
	return Coordinate{Latitude: p.Latitude, Longitude: p.Longitude}
}
