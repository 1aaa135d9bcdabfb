package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "keepposted/internal/delivery/context"
	"keepposted/internal/domain/entity"
	domainerrors "keepposted/internal/domain/errors"
	"keepposted/internal/domain/service"
	"keepposted/internal/usecase"
	"keepposted/internal/usecase/session"

	"golang.org/x/sync/semaphore"
)

const (
	currentLocationLabel = "Current Location"
	unknownAddressLabel  = "Unknown Address"
	pinnedLocationLabel  = "Pinned Location"

	geocodeGuardKey = "geocode.guard"
)

// geocodeService implements the GeocodeUsecase interface.
type geocodeService struct {
	geocoder service.GeocodingProvider
	logger   *slog.Logger
}

// NewGeocodeService is the constructor for geocodeService.
func NewGeocodeService(geocoder service.GeocodingProvider, logger *slog.Logger) usecase.GeocodeUsecase {
	return &geocodeService{
		geocoder: geocoder,
		logger:   logger,
	}
}

func (srv *geocodeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ReverseGeocode labels a coordinate. One lookup per session may be in flight.
func (srv *geocodeService) ReverseGeocode(ctx context.Context, sess *session.Session, coordinate entity.Coordinate) (string, error) {
	guard := session.Component(sess, geocodeGuardKey, func() *semaphore.Weighted {
		return semaphore.NewWeighted(1)
	})
	if !guard.TryAcquire(1) {
		srv.log(ctx).Debug("Geocode already in flight", slog.String("session_id", sess.ID()))

		return "", domainerrors.ErrGeocodePending
	}
	defer guard.Release(1)

	placemarks, err := srv.geocoder.ReverseGeocode(ctx, coordinate)
	if err != nil {
		srv.log(ctx).Warn("Reverse geocode failed",
			slog.Float64("latitude", coordinate.Latitude),
			slog.Float64("longitude", coordinate.Longitude),
			slog.Any("error", err),
		)

		return currentLocationLabel, nil
	}

	return locationLabel(placemarks), nil
}

// PinAddress builds the address stored with a pin.
func (srv *geocodeService) PinAddress(ctx context.Context, coordinate entity.Coordinate) string {
	placemarks, err := srv.geocoder.ReverseGeocode(ctx, coordinate)
	if err != nil || len(placemarks) == 0 {
		if err != nil {
			srv.log(ctx).Warn("Pin address lookup failed", slog.Any("error", err))
		}

		return pinnedLocationLabel
	}

	return pinAddress(placemarks[0])
}

// locationLabel is "{city}, {state}" for the first placemark with a city, else "Current Location".
func locationLabel(placemarks []entity.Placemark) string {
	if len(placemarks) == 0 || placemarks[0].City == "" {
		return currentLocationLabel
	}

	return joinNonEmpty(placemarks[0].City, placemarks[0].State)
}

// pinAddress is "{street}, {city}", else "{city}, {state}", else "Unknown Address".
func pinAddress(p entity.Placemark) string {
	switch {
	case p.Street != "":
		return joinNonEmpty(p.Street, p.City)
	case p.City != "":
		return joinNonEmpty(p.City, p.State)
	default:
		return unknownAddressLabel
	}
}

func joinNonEmpty(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			kept = append(kept, part)
		}
	}

	return strings.Join(kept, ", ")
}
