package model

import (
	"time"
)

// SavedPlaceFieldDateAdded orders the saved places listing.
const SavedPlaceFieldDateAdded = "dateAdded"

// SavedPlaceModel is the Firestore shape of users/{uid}/saved_places/{placeId}.
type SavedPlaceModel struct {
	Name      string    `firestore:"name"`
	Address   *string   `firestore:"address"`
	Latitude  float64   `firestore:"latitude"`
	Longitude float64   `firestore:"longitude"`
	DateAdded time.Time `firestore:"dateAdded"`
}
