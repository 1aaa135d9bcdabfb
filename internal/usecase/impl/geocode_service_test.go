package impl

import (
	"context"
	"testing"

	"keepposted/internal/domain/entity"
	domainerrors "keepposted/internal/domain/errors"
	mockSvc "keepposted/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLocationLabel(t *testing.T) {
	tests := []struct {
		name       string
		placemarks []entity.Placemark
		want       string
	}{
		{name: "city and state", placemarks: []entity.Placemark{{City: "Cupertino", State: "CA"}}, want: "Cupertino, CA"},
		{name: "city only", placemarks: []entity.Placemark{{City: "Monaco"}}, want: "Monaco"},
		{name: "no city", placemarks: []entity.Placemark{{State: "CA"}}, want: "Current Location"},
		{name: "no placemarks", want: "Current Location"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, locationLabel(tt.placemarks))
		})
	}
}

func TestPinAddress(t *testing.T) {
	tests := []struct {
		name      string
		placemark entity.Placemark
		want      string
	}{
		{name: "street and city", placemark: entity.Placemark{Street: "1 Infinite Loop", City: "Cupertino", State: "CA"}, want: "1 Infinite Loop, Cupertino"},
		{name: "city and state", placemark: entity.Placemark{City: "Cupertino", State: "CA"}, want: "Cupertino, CA"},
		{name: "nothing", placemark: entity.Placemark{}, want: "Unknown Address"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pinAddress(tt.placemark))
		})
	}
}

func TestGeocodeService_ReverseGeocode(t *testing.T) {
	ctx := context.Background()
	coordinate := entity.Coordinate{Latitude: 37.3349, Longitude: -122.009}

	t.Run("labels the first placemark", func(t *testing.T) {
		geocoder := mockSvc.NewMockGeocodingProvider(t)
		svc := NewGeocodeService(geocoder, newDiscardLogger())
		_, sess := newTestSession(t, "uid-ada")

		geocoder.EXPECT().ReverseGeocode(ctx, coordinate).
			Return([]entity.Placemark{{City: "Cupertino", State: "CA"}}, nil)

		label, err := svc.ReverseGeocode(ctx, sess, coordinate)
		require.NoError(t, err)
		assert.Equal(t, "Cupertino, CA", label)
	})

	t.Run("provider failure yields current location", func(t *testing.T) {
		geocoder := mockSvc.NewMockGeocodingProvider(t)
		svc := NewGeocodeService(geocoder, newDiscardLogger())
		_, sess := newTestSession(t, "uid-ada")

		geocoder.EXPECT().ReverseGeocode(ctx, coordinate).Return(nil, errors.New("quota exceeded"))

		label, err := svc.ReverseGeocode(ctx, sess, coordinate)
		require.NoError(t, err)
		assert.Equal(t, "Current Location", label)
	})
}

func TestGeocodeService_ReverseGeocode_OneLookupInFlight(t *testing.T) {
	ctx := context.Background()
	geocoder := mockSvc.NewMockGeocodingProvider(t)
	svc := NewGeocodeService(geocoder, newDiscardLogger())
	_, sess := newTestSession(t, "uid-ada")

	started := make(chan struct{})
	release := make(chan struct{})
	geocoder.EXPECT().ReverseGeocode(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, entity.Coordinate) ([]entity.Placemark, error) {
			close(started)
			<-release

			return []entity.Placemark{{City: "Paris", State: "Île-de-France"}}, nil
		}).Once()

	type result struct {
		label string
		err   error
	}
	first := make(chan result, 1)
	go func() {
		label, err := svc.ReverseGeocode(ctx, sess, entity.Coordinate{Latitude: 48.8566, Longitude: 2.3522})
		first <- result{label: label, err: err}
	}()
	<-started

	_, err := svc.ReverseGeocode(ctx, sess, entity.Coordinate{Latitude: 1, Longitude: 1})
	assert.ErrorIs(t, err, domainerrors.ErrGeocodePending)

	close(release)
	got := <-first
	require.NoError(t, got.err)
	assert.Equal(t, "Paris, Île-de-France", got.label)
}

func TestGeocodeService_PinAddress(t *testing.T) {
	ctx := context.Background()
	coordinate := entity.Coordinate{Latitude: 37.3349, Longitude: -122.009}

	tests := []struct {
		name       string
		placemarks []entity.Placemark
		err        error
		want       string
	}{
		{name: "street", placemarks: []entity.Placemark{{Street: "1 Infinite Loop", City: "Cupertino"}}, want: "1 Infinite Loop, Cupertino"},
		{name: "empty result", want: "Pinned Location"},
		{name: "provider error", err: errors.New("timeout"), want: "Pinned Location"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			geocoder := mockSvc.NewMockGeocodingProvider(t)
			svc := NewGeocodeService(geocoder, newDiscardLogger())

			geocoder.EXPECT().ReverseGeocode(ctx, coordinate).Return(tt.placemarks, tt.err)

			assert.Equal(t, tt.want, svc.PinAddress(ctx, coordinate))
		})
	}
}
