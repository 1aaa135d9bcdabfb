package usecase

import (
	"context"

	"keepposted/internal/domain/entity"
	"keepposted/internal/usecase/session"
)

// ProfileOutput is the profile/home screen view of a session.
type ProfileOutput struct {
	UserID           string             `json:"user_id"`
	Email            string             `json:"email"`
	FullName         string             `json:"full_name"`
	SenderName       string             `json:"sender_name"`
	HomeLocationName string             `json:"home_location_name"`
	HomeCoordinate   *entity.Coordinate `json:"home_coordinate,omitempty"`
	Activities       []ActivityOutput   `json:"activities"`
}

// ActivityOutput is an activity entry with its relative age.
type ActivityOutput struct {
	entity.ActivityEntry
	TimeAgo string `json:"time_ago"`
}

// SaveLocationInput is the input for saving the home location.
type SaveLocationInput struct {
	Name       string             `json:"name" validate:"required"`
	Coordinate *entity.Coordinate `json:"coordinate,omitempty"`
}

// ConfirmLocationInput optionally supplies the visible map centre used when nothing is selected.
type ConfirmLocationInput struct {
	MapCenter *entity.Coordinate `json:"map_center,omitempty"`
}

// ProfileUsecase reads and writes the signed-in user's profile.
type ProfileUsecase interface {
	// GetProfile returns the session's current view.
	GetProfile(ctx context.Context, sess *session.Session) *ProfileOutput

	// SaveLocation updates the session immediately and persists in the background.
	SaveLocation(ctx context.Context, sess *session.Session, input *SaveLocationInput) *ProfileOutput

	// ConfirmHomeLocation labels the selected coordinate (or the map centre) and saves it as home.
	ConfirmHomeLocation(ctx context.Context, sess *session.Session, input *ConfirmLocationInput) (*ProfileOutput, error)

	// ActivityLog returns the activity entries newest first.
	ActivityLog(ctx context.Context, sess *session.Session) []ActivityOutput
}
