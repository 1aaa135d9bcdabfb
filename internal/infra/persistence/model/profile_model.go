package model

import (
	"time"
)

// Field names of the users/{uid} document.
const (
	ProfileFieldLocationName = "locationName"
	ProfileFieldLocationLat  = "locationLat"
	ProfileFieldLocationLng  = "locationLng"
)

// ProfileModel is the Firestore shape of users/{uid}.
// The coordinate pair is stored both-or-neither.
type ProfileModel struct {
	UID          string    `firestore:"uid"`
	Email        string    `firestore:"email"`
	FullName     string    `firestore:"fullName"`
	DateCreated  time.Time `firestore:"dateCreated"`
	LocationName *string   `firestore:"locationName,omitempty"`
	LocationLat  *float64  `firestore:"locationLat,omitempty"`
	LocationLng  *float64  `firestore:"locationLng,omitempty"`
}
