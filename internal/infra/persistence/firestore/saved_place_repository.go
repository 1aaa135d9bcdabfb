package firestore

import (
	"context"

	"keepposted/internal/domain/entity"
	domainerrors "keepposted/internal/domain/errors"
	"keepposted/internal/domain/repository"
	"keepposted/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
)

// savedPlaceRepository implements the domain.SavedPlaceRepository interface.
type savedPlaceRepository struct {
	client    *firestore.Client
	createDoc func(ctx context.Context, ref *firestore.DocumentRef, data any) error
}

// NewSavedPlaceRepository is the constructor for savedPlaceRepository.
func NewSavedPlaceRepository(client *firestore.Client) repository.SavedPlaceRepository {
	return &savedPlaceRepository{client: client, createDoc: createDocument}
}

func createDocument(ctx context.Context, ref *firestore.DocumentRef, data any) error {
	_, err := ref.Create(ctx, data)

	return errors.WithStack(err)
}

// Create adds a place under the user and fills in the generated ID.
// The ID stays empty when the write fails.
func (repo *savedPlaceRepository) Create(ctx context.Context, userID string, place *entity.SavedPlace) error {
	ref := savedPlaces(repo.client, userID).NewDoc()
	if err := repo.createDoc(ctx, ref, fromSavedPlaceDomain(place)); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create saved place")
	}

	place.ID = ref.ID

	return nil
}

// FindByID reads a single place of the user.
func (repo *savedPlaceRepository) FindByID(ctx context.Context, userID, placeID string) (*entity.SavedPlace, error) {
	snap, err := savedPlaces(repo.client, userID).Doc(placeID).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrSavedPlaceNotFound
		}

		return nil, errors.Wrap(err, "failed to find saved place by ID")
	}

	place, err := decodeSavedPlace(snap)
	if err != nil {
		return nil, err
	}

	return place, nil
}

// Watch streams the user's places newest first until ctx ends.
// Documents that fail to decode are left out of the list.
func (repo *savedPlaceRepository) Watch(ctx context.Context, userID string, onChange func([]*entity.SavedPlace)) error {
	query := savedPlaces(repo.client, userID).OrderBy(model.SavedPlaceFieldDateAdded, firestore.Desc)

	snapshots := query.Snapshots(ctx)
	defer snapshots.Stop()

	for {
		snap, err := snapshots.Next()
		if err != nil {
			if errors.Is(err, iterator.Done) || isListenerStopped(ctx, err) {
				return nil
			}

			return errors.Wrap(err, "saved places listener failed")
		}

		docs, err := snap.Documents.GetAll()
		if err != nil {
			return errors.Wrap(err, "failed to read saved places snapshot")
		}

		onChange(decodeSavedPlaces(docs))
	}
}

func decodeSavedPlaces(docs []*firestore.DocumentSnapshot) []*entity.SavedPlace {
	places := make([]*entity.SavedPlace, 0, len(docs))
	for _, doc := range docs {
		place, err := decodeSavedPlace(doc)
		if err != nil {
			continue
		}
		places = append(places, place)
	}

	return places
}

func decodeSavedPlace(snap *firestore.DocumentSnapshot) (*entity.SavedPlace, error) {
	var placeM model.SavedPlaceModel
	if err := snap.DataTo(&placeM); err != nil {
		return nil, errors.Wrapf(err, "failed to decode saved place %s", snap.Ref.ID)
	}

	return toSavedPlaceDomain(snap.Ref.ID, &placeM), nil
}

func toSavedPlaceDomain(id string, placeM *model.SavedPlaceModel) *entity.SavedPlace {
	return &entity.SavedPlace{
		ID:        id,
		Name:      placeM.Name,
		Address:   placeM.Address,
		Latitude:  placeM.Latitude,
		Longitude: placeM.Longitude,
		DateAdded: placeM.DateAdded,
	}
}

func fromSavedPlaceDomain(place *entity.SavedPlace) *model.SavedPlaceModel {
	return &model.SavedPlaceModel{
		Name:      place.Name,
		Address:   place.Address,
		Latitude:  place.Latitude,
		Longitude: place.Longitude,
		DateAdded: place.DateAdded,
	}
}
