package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "keepposted/internal/delivery/context"
	domainerrors "keepposted/internal/domain/errors"
	"keepposted/internal/domain/repository"
	"keepposted/internal/usecase"
	"keepposted/internal/usecase/session"

	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	profileRepo repository.ProfileRepository
	geocode     usecase.GeocodeUsecase
	background  *Background
	now         func() time.Time
	logger      *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	ProfileRepo repository.ProfileRepository
	Geocode     usecase.GeocodeUsecase
	Background  *Background
	Logger      *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		profileRepo: params.ProfileRepo,
		geocode:     params.Geocode,
		background:  params.Background,
		now:         time.Now,
		logger:      params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile returns the session's current view.
func (srv *profileService) GetProfile(_ context.Context, sess *session.Session) *usecase.ProfileOutput {
	snap := sess.Snapshot()

	return &usecase.ProfileOutput{
		UserID:           snap.UserID,
		Email:            snap.Email,
		FullName:         snap.FullName,
		SenderName:       sess.SenderName(),
		HomeLocationName: snap.HomeLocationName,
		HomeCoordinate:   snap.HomeCoordinate,
		Activities:       srv.activityOutputs(sess),
	}
}

// SaveLocation is an optimistic write-through: the session changes before the document does.
// Concurrent saves race and the last write wins.
func (srv *profileService) SaveLocation(ctx context.Context, sess *session.Session, input *usecase.SaveLocationInput) *usecase.ProfileOutput {
	sess.SetHomeLocation(input.Name, input.Coordinate)

	uid := sess.UserID()
	if uid == "" {
		srv.log(ctx).Debug("Skipping location persistence for anonymous session", slog.String("session_id", sess.ID()))

		return srv.GetProfile(ctx, sess)
	}

	srv.background.Go(ctx, func(ctx context.Context) {
		if err := srv.profileRepo.UpdateHomeLocation(ctx, uid, input.Name, input.Coordinate); err != nil {
			srv.log(ctx).Error("Failed to persist home location",
				slog.String("uid", uid),
				slog.String("location_name", input.Name),
				slog.Any("error", err),
			)

			return
		}
		srv.log(ctx).Debug("Home location persisted", slog.String("uid", uid))
	})

	return srv.GetProfile(ctx, sess)
}

// ConfirmHomeLocation saves the selected coordinate, or the map centre, under its geocoded label.
func (srv *profileService) ConfirmHomeLocation(ctx context.Context, sess *session.Session, input *usecase.ConfirmLocationInput) (*usecase.ProfileOutput, error) {
	coordinate := sess.SelectedCoordinate()
	if coordinate == nil && input != nil {
		coordinate = input.MapCenter
	}
	if coordinate == nil {
		return nil, domainerrors.ErrNoLocationSelected
	}

	label, err := srv.geocode.ReverseGeocode(ctx, sess, *coordinate)
	if err != nil {
		return nil, err
	}

	return srv.SaveLocation(ctx, sess, &usecase.SaveLocationInput{
		Name:       label,
		Coordinate: coordinate,
	}), nil
}

// ActivityLog returns the activity entries newest first.
func (srv *profileService) ActivityLog(_ context.Context, sess *session.Session) []usecase.ActivityOutput {
	return srv.activityOutputs(sess)
}

func (srv *profileService) activityOutputs(sess *session.Session) []usecase.ActivityOutput {
	now := srv.now()
	entries := sess.Activities()

	out := make([]usecase.ActivityOutput, 0, len(entries))
	for _, entry := range entries {
		out = append(out, usecase.ActivityOutput{
			ActivityEntry: entry,
			TimeAgo:       entry.TimeAgo(now),
		})
	}

	return out
}
