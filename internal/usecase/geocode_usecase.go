package usecase

import (
	"context"

	"keepposted/internal/domain/entity"
	"keepposted/internal/usecase/session"
)

// GeocodeUsecase turns coordinates into labels.
type GeocodeUsecase interface {
	// ReverseGeocode returns "{city}, {state}" or "Current Location".
	// A call while another is in flight for the same session fails with ErrGeocodePending.
	ReverseGeocode(ctx context.Context, sess *session.Session, coordinate entity.Coordinate) (string, error)

	// PinAddress returns the address stored with a new pin.
	PinAddress(ctx context.Context, coordinate entity.Coordinate) string
}
