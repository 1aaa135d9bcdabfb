// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"keepposted/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrProfileNotFound is returned when no profile document exists for a user.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository persists one profile document per user.
type ProfileRepository interface {
	// FindByID retrieves the profile of the given user.
	// Returns ErrProfileNotFound if the document does not exist.
	FindByID(ctx context.Context, userID string) (*entity.UserProfile, error)

	// Exists reports whether a profile document exists for the user.
	Exists(ctx context.Context, userID string) (bool, error)

	// Create writes the profile document, replacing any existing one.
	Create(ctx context.Context, profile *entity.UserProfile) error

	// UpdateHomeLocation merges the home label and coordinate into the profile.
	// A nil coordinate removes both coordinate fields.
	UpdateHomeLocation(ctx context.Context, userID, name string, coordinate *entity.Coordinate) error
}
