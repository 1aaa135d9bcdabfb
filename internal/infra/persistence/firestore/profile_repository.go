package firestore

import (
	"context"

	"keepposted/internal/domain/entity"
	domainerrors "keepposted/internal/domain/errors"
	"keepposted/internal/domain/repository"
	"keepposted/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

// profileRepository implements the domain.ProfileRepository interface.
type profileRepository struct {
	client *firestore.Client
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(client *firestore.Client) repository.ProfileRepository {
	return &profileRepository{client: client}
}

// FindByID reads users/{uid}.
func (repo *profileRepository) FindByID(ctx context.Context, userID string) (*entity.UserProfile, error) {
	snap, err := userDoc(repo.client, userID).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by ID")
	}

	var profileM model.ProfileModel
	if err := snap.DataTo(&profileM); err != nil {
		return nil, errors.Wrap(err, "failed to decode profile")
	}

	return toProfileDomain(snap.Ref.ID, &profileM), nil
}

// Exists reports whether users/{uid} is present.
func (repo *profileRepository) Exists(ctx context.Context, userID string) (bool, error) {
	_, err := userDoc(repo.client, userID).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}

		return false, errors.Wrap(err, "failed to check profile")
	}

	return true, nil
}

// Create writes the initial profile document, replacing any existing one.
func (repo *profileRepository) Create(ctx context.Context, profile *entity.UserProfile) error {
	if _, err := userDoc(repo.client, profile.ID).Set(ctx, fromProfileDomain(profile)); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create profile")
	}

	return nil
}

// UpdateHomeLocation merges the location fields. A nil coordinate removes both coordinate fields.
func (repo *profileRepository) UpdateHomeLocation(ctx context.Context, userID, name string, coordinate *entity.Coordinate) error {
	if _, err := userDoc(repo.client, userID).Set(ctx, homeLocationFields(name, coordinate), firestore.MergeAll); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update home location")
	}

	return nil
}

func homeLocationFields(name string, coordinate *entity.Coordinate) map[string]any {
	fields := map[string]any{
		model.ProfileFieldLocationName: name,
		model.ProfileFieldLocationLat:  firestore.Delete,
		model.ProfileFieldLocationLng:  firestore.Delete,
	}
	if coordinate != nil {
		fields[model.ProfileFieldLocationLat] = coordinate.Latitude
		fields[model.ProfileFieldLocationLng] = coordinate.Longitude
	}

	return fields
}

func toProfileDomain(docID string, profileM *model.ProfileModel) *entity.UserProfile {
	uid := profileM.UID
	if uid == "" {
		uid = docID
	}

	profile := &entity.UserProfile{
		ID:          uid,
		Email:       profileM.Email,
		FullName:    profileM.FullName,
		DateCreated: profileM.DateCreated,
	}
	if profileM.LocationName != nil {
		profile.HomeLocationName = *profileM.LocationName
	}
	if profileM.LocationLat != nil && profileM.LocationLng != nil {
		profile.HomeCoordinate = &entity.Coordinate{
			Latitude:  *profileM.LocationLat,
			Longitude: *profileM.LocationLng,
		}
	}

	return profile
}

func fromProfileDomain(profile *entity.UserProfile) *model.ProfileModel {
	profileM := &model.ProfileModel{
		UID:         profile.ID,
		Email:       profile.Email,
		FullName:    profile.FullName,
		DateCreated: profile.DateCreated,
	}
	if profile.HomeLocationName != "" {
		name := profile.HomeLocationName
		profileM.LocationName = &name
	}
	if profile.HomeCoordinate != nil {
		lat, lng := profile.HomeCoordinate.Latitude, profile.HomeCoordinate.Longitude
		profileM.LocationLat = &lat
		profileM.LocationLng = &lng
	}

	return profileM
}
