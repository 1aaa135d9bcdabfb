package usecase

import (
	"context"

	"keepposted/internal/domain/entity"
	"keepposted/internal/usecase/session"
)

// DeviceLocationOutput reports the permission state and the current coordinate slot.
type DeviceLocationOutput struct {
	Permission entity.LocationAuthorization `json:"permission"`
	Coordinate *entity.Coordinate           `json:"coordinate,omitempty"`
	Pending    bool                         `json:"pending"`
}

// DeviceLocationUsecase drives the permission and one-shot fix flow.
type DeviceLocationUsecase interface {
	// RequestCurrentLocation asks for authorization or a fix depending on the recorded status.
	RequestCurrentLocation(ctx context.Context, sess *session.Session, signals *entity.LocationSignals) *DeviceLocationOutput

	// AuthorizationChanged records a new status; granted triggers a fix.
	AuthorizationChanged(ctx context.Context, sess *session.Session, status entity.LocationAuthorization) *DeviceLocationOutput

	// CurrentLocation returns the slot, waiting for a pending fix when wait is set.
	CurrentLocation(ctx context.Context, sess *session.Session, wait bool) *DeviceLocationOutput
}
