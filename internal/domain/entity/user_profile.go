package entity

import "time"

// UserProfile is the per-user document created on sign-up.
// HomeCoordinate is either fully present or nil.
type UserProfile struct {
	ID               string      // External auth identifier.
	Email            string      // Sign-in email.
	FullName         string      // Display name chosen at sign-up.
	HomeLocationName string      // Label of the chosen home location, empty until saved.
	HomeCoordinate   *Coordinate // Home coordinate, nil until a save-location call with a coordinate.
	DateCreated      time.Time   // Creation timestamp.
}

// HasHomeCoordinate reports whether a home coordinate has been saved.
func (p *UserProfile) HasHomeCoordinate() bool {
	return p != nil && p.HomeCoordinate != nil
}
