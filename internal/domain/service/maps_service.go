package service

import (
	"context"

	"keepposted/internal/domain/entity"
)

// PlaceSearchProvider is the external autocomplete and place lookup service.
type PlaceSearchProvider interface {
	// Autocomplete returns completions for a non-empty query.
	Autocomplete(ctx context.Context, query string) ([]entity.PlaceSuggestion, error)

	// Lookup resolves a suggestion to the coordinates of its matching places, best first.
	Lookup(ctx context.Context, suggestion entity.PlaceSuggestion) ([]entity.Coordinate, error)
}

// GeocodingProvider turns coordinates into placemarks.
type GeocodingProvider interface {
	// ReverseGeocode returns the placemarks found at a coordinate, best first.
	ReverseGeocode(ctx context.Context, coordinate entity.Coordinate) ([]entity.Placemark, error)
}

// GeolocationProvider produces a one-shot position fix.
type GeolocationProvider interface {
	// Locate returns a fix, using client signals when supplied.
	Locate(ctx context.Context, signals *entity.LocationSignals) (*entity.LocationFix, error)
}
