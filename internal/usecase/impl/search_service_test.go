package impl

import (
	"context"
	"testing"

	"keepposted/internal/domain/entity"
	mockSvc "keepposted/internal/mocks/service"
	"keepposted/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestSearchService(t *testing.T) (usecase.SearchUsecase, *mockSvc.MockPlaceSearchProvider, *Background) {
	places := mockSvc.NewMockPlaceSearchProvider(t)
	bg := NewBackground()

	svc := NewSearchService(SearchServiceParams{
		Places:     places,
		Background: bg,
		Config:     newTestConfig(),
		Logger:     newDiscardLogger(),
	})

	return svc, places, bg
}

func TestSearchService_Search_TrimsAndApplies(t *testing.T) {
	svc, places, bg := createTestSearchService(t)
	_, sess := newTestSession(t, "uid-ada")
	ctx := context.Background()

	suggestions := []entity.PlaceSuggestion{
		{Title: "Paris", Subtitle: "France", PlaceID: "p1"},
		{Title: "Paris", Subtitle: "Texas, United States", PlaceID: "p2"},
	}
	places.EXPECT().Autocomplete(mock.Anything, "Paris").Return(suggestions, nil)

	gen := svc.Search(ctx, sess, "  Paris  ")
	out := svc.Await(ctx, sess, gen)
	waitBackground(t, bg)

	assert.Equal(t, "Paris", out.Query)
	assert.False(t, out.Pending)
	assert.Equal(t, suggestions, out.Suggestions)
}

func TestSearchService_Search_BlankClearsWithoutProviderCall(t *testing.T) {
	svc, places, bg := createTestSearchService(t)
	_, sess := newTestSession(t, "uid-ada")
	ctx := context.Background()

	places.EXPECT().Autocomplete(mock.Anything, "Rome").
		Return([]entity.PlaceSuggestion{{Title: "Rome", Subtitle: "Italy"}}, nil).Once()

	svc.Await(ctx, sess, svc.Search(ctx, sess, "Rome"))
	waitBackground(t, bg)

	gen := svc.Search(ctx, sess, "   ")
	out := svc.Suggestions(ctx, sess)

	assert.Equal(t, gen, out.Generation)
	assert.False(t, out.Pending)
	assert.Empty(t, out.Suggestions)
}

func TestSearchService_Search_DropsStaleResults(t *testing.T) {
	svc, places, bg := createTestSearchService(t)
	_, sess := newTestSession(t, "uid-ada")
	ctx := context.Background()

	release := make(chan struct{})
	places.EXPECT().Autocomplete(mock.Anything, "Lon").
		RunAndReturn(func(context.Context, string) ([]entity.PlaceSuggestion, error) {
			<-release

			return []entity.PlaceSuggestion{{Title: "Long Beach"}}, nil
		})
	places.EXPECT().Autocomplete(mock.Anything, "London").
		Return([]entity.PlaceSuggestion{{Title: "London", Subtitle: "England"}}, nil)

	first := svc.Search(ctx, sess, "Lon")
	second := svc.Search(ctx, sess, "London")
	require.Greater(t, second, first)

	out := svc.Await(ctx, sess, second)
	require.Len(t, out.Suggestions, 1)
	assert.Equal(t, "London", out.Suggestions[0].Title)

	close(release)
	waitBackground(t, bg)

	out = svc.Suggestions(ctx, sess)
	require.Len(t, out.Suggestions, 1)
	assert.Equal(t, "London", out.Suggestions[0].Title)
	assert.Equal(t, "London", out.Query)
}

func TestSearchService_Search_ProviderErrorKeepsSuggestions(t *testing.T) {
	svc, places, bg := createTestSearchService(t)
	_, sess := newTestSession(t, "uid-ada")
	ctx := context.Background()

	places.EXPECT().Autocomplete(mock.Anything, "Rome").
		Return([]entity.PlaceSuggestion{{Title: "Rome"}}, nil)
	places.EXPECT().Autocomplete(mock.Anything, "Romex").
		Return(nil, errors.New("rate limited"))

	svc.Await(ctx, sess, svc.Search(ctx, sess, "Rome"))
	out := svc.Await(ctx, sess, svc.Search(ctx, sess, "Romex"))
	waitBackground(t, bg)

	assert.False(t, out.Pending)
	require.Len(t, out.Suggestions, 1)
	assert.Equal(t, "Rome", out.Suggestions[0].Title)
}

func TestSearchService_Await_ReturnsOnContextEnd(t *testing.T) {
	svc, places, bg := createTestSearchService(t)
	_, sess := newTestSession(t, "uid-ada")

	release := make(chan struct{})
	places.EXPECT().Autocomplete(mock.Anything, "Oslo").
		RunAndReturn(func(context.Context, string) ([]entity.PlaceSuggestion, error) {
			<-release

			return nil, nil
		})

	ctx, cancel := context.WithCancel(context.Background())
	gen := svc.Search(ctx, sess, "Oslo")
	cancel()

	out := svc.Await(ctx, sess, gen)
	assert.True(t, out.Pending)

	close(release)
	waitBackground(t, bg)
}

func TestSearchService_SelectLocation(t *testing.T) {
	ctx := context.Background()
	suggestion := entity.PlaceSuggestion{Title: "Paris", Subtitle: "France", PlaceID: "p1"}

	t.Run("first coordinate wins", func(t *testing.T) {
		svc, places, _ := createTestSearchService(t)
		_, sess := newTestSession(t, "uid-ada")

		places.EXPECT().Lookup(ctx, suggestion).Return([]entity.Coordinate{
			{Latitude: 48.8566, Longitude: 2.3522},
			{Latitude: 33.6609, Longitude: -95.5555},
		}, nil)

		out := svc.SelectLocation(ctx, sess, suggestion)
		require.NotNil(t, out)

		assert.Equal(t, entity.Coordinate{Latitude: 48.8566, Longitude: 2.3522}, out.Coordinate)
		assert.InDelta(t, 0.03, out.Viewport.LatitudeDelta, 1e-9)
		assert.InDelta(t, 0.03, out.Viewport.LongitudeDelta, 1e-9)
		assert.Equal(t, "Paris France", out.DisplayText)
		assert.Equal(t, &out.Coordinate, sess.SelectedCoordinate())
	})

	t.Run("empty result leaves selection", func(t *testing.T) {
		svc, places, _ := createTestSearchService(t)
		_, sess := newTestSession(t, "uid-ada")

		places.EXPECT().Lookup(ctx, suggestion).Return(nil, nil)

		assert.Nil(t, svc.SelectLocation(ctx, sess, suggestion))
		assert.Nil(t, sess.SelectedCoordinate())
	})

	t.Run("lookup error leaves selection", func(t *testing.T) {
		svc, places, _ := createTestSearchService(t)
		_, sess := newTestSession(t, "uid-ada")

		previous := entity.Coordinate{Latitude: 1, Longitude: 2}
		sess.SetSelectedCoordinate(previous)
		places.EXPECT().Lookup(ctx, suggestion).Return(nil, errors.New("not found"))

		assert.Nil(t, svc.SelectLocation(ctx, sess, suggestion))
		assert.Equal(t, &previous, sess.SelectedCoordinate())
	})
}
