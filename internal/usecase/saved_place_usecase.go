package usecase

import (
	"context"

	"keepposted/internal/domain/entity"
	"keepposted/internal/usecase/session"
)

// CreatePlaceInput is the input for adding a saved place.
type CreatePlaceInput struct {
	Name       string            `json:"name" validate:"required"`
	Address    *string           `json:"address,omitempty"`
	Coordinate entity.Coordinate `json:"coordinate"`
}

// PinPlaceInput is the input for pinning the visible map centre.
type PinPlaceInput struct {
	Name   string            `json:"name" validate:"required"`
	Center entity.Coordinate `json:"center"`
}

// PlaceView is a saved place as listed on the map screen.
type PlaceView struct {
	*entity.SavedPlace
	// DistanceFromHome is in metres and absent until a home coordinate is saved.
	DistanceFromHome *float64 `json:"distance_from_home,omitempty"`
}

// PlacesOutput is the ordered list of saved places.
type PlacesOutput struct {
	UserID string      `json:"user_id"`
	Places []PlaceView `json:"places"`
}

// SavedPlaceUsecase keeps a live, newest-first list of a user's saved places.
type SavedPlaceUsecase interface {
	// Initialize binds the live subscription to userID; blank ids are ignored.
	Initialize(ctx context.Context, sess *session.Session, userID string)

	// Places returns the latest list.
	Places(ctx context.Context, sess *session.Session) *PlacesOutput

	// Subscribe streams every new list, starting with the current one when it has arrived.
	// The returned cancel releases the watcher and closes the channel.
	Subscribe(ctx context.Context, sess *session.Session) (<-chan *PlacesOutput, func())

	// Create writes a place in the background.
	Create(ctx context.Context, sess *session.Session, input *CreatePlaceInput) error

	// PinAtCenter looks up the address of center and creates a place there.
	PinAtCenter(ctx context.Context, sess *session.Session, input *PinPlaceInput) error

	// Focus returns a close-up viewport around a saved place.
	Focus(ctx context.Context, sess *session.Session, placeID string) (*entity.Viewport, error)
}
