package repository

import (
	"context"

	"keepposted/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrSavedPlaceNotFound is returned when a saved place does not exist.
var ErrSavedPlaceNotFound = errors.New("saved place not found")

// SavedPlaceRepository persists the saved places of a user.
type SavedPlaceRepository interface {
	// Create adds a new place, filling its ID from the store.
	Create(ctx context.Context, userID string, place *entity.SavedPlace) error

	// FindByID retrieves one saved place.
	// Returns ErrSavedPlaceNotFound if the place does not exist.
	FindByID(ctx context.Context, userID, placeID string) (*entity.SavedPlace, error)

	// Watch streams the full list, newest first, to onChange whenever the collection changes.
	// It blocks until ctx is cancelled, returning nil in that case.
	Watch(ctx context.Context, userID string, onChange func([]*entity.SavedPlace)) error
}
