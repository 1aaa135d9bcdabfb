package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"keepposted/config"
	"keepposted/internal/delivery/api/middleware"
	"keepposted/internal/delivery/api/router"
	"keepposted/internal/delivery/api/router/handler"
	"keepposted/internal/domain/entity"
	domainerrors "keepposted/internal/domain/errors"
	"keepposted/internal/domain/service"
	mockSvc "keepposted/internal/mocks/service"
	mockUsecase "keepposted/internal/mocks/usecase"
	"keepposted/internal/usecase"
	"keepposted/internal/usecase/session"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testToken = "session-token"

type testAPI struct {
	echo     *echo.Echo
	sessions *session.Store
	tokens   *mockSvc.MockTokenService
	auth     *mockUsecase.MockAuthUsecase
	profile  *mockUsecase.MockProfileUsecase
	search   *mockUsecase.MockSearchUsecase
	device   *mockUsecase.MockDeviceLocationUsecase
	geocode  *mockUsecase.MockGeocodeUsecase
	places   *mockUsecase.MockSavedPlaceUsecase
	postcard *mockUsecase.MockPostcardUsecase
}

func newTestAPI(t *testing.T, registry *prometheus.Registry) *testAPI {
	t.Helper()

	cfg := &config.Config{}
	cfg.ApplyDefaults()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	a := &testAPI{
		sessions: session.NewStore(cfg),
		tokens:   mockSvc.NewMockTokenService(t),
		auth:     mockUsecase.NewMockAuthUsecase(t),
		profile:  mockUsecase.NewMockProfileUsecase(t),
		search:   mockUsecase.NewMockSearchUsecase(t),
		device:   mockUsecase.NewMockDeviceLocationUsecase(t),
		geocode:  mockUsecase.NewMockGeocodeUsecase(t),
		places:   mockUsecase.NewMockSavedPlaceUsecase(t),
		postcard: mockUsecase.NewMockPostcardUsecase(t),
	}

	a.echo = newEcho(cfg, logger, router.RouterParams{
		AuthHandler:           handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: a.auth, Logger: logger}),
		ProfileHandler:        handler.NewProfileHandler(handler.ProfileHandlerParams{ProfileUC: a.profile, Logger: logger}),
		SearchHandler:         handler.NewSearchHandler(handler.SearchHandlerParams{SearchUC: a.search, Logger: logger}),
		DeviceLocationHandler: handler.NewDeviceLocationHandler(handler.DeviceLocationHandlerParams{DeviceLocationUC: a.device, Logger: logger}),
		GeocodeHandler:        handler.NewGeocodeHandler(handler.GeocodeHandlerParams{GeocodeUC: a.geocode, Logger: logger}),
		SavedPlaceHandler:     handler.NewSavedPlaceHandler(handler.SavedPlaceHandlerParams{PlaceUC: a.places, Logger: logger}),
		PostcardHandler:       handler.NewPostcardHandler(handler.PostcardHandlerParams{PostcardUC: a.postcard, Logger: logger}),
		AuthMiddleware: middleware.NewAuthMiddleware(middleware.AuthMiddlewareParams{
			TokenService: a.tokens,
			Sessions:     a.sessions,
			Logger:       logger,
		}),
		Config:   cfg,
		Registry: registry,
	})

	return a
}

// signIn opens a session and makes testToken resolve to it.
func (a *testAPI) signIn() *session.Session {
	sess := a.sessions.Create("uid-1", "ada@example.com")
	a.tokens.EXPECT().ValidateToken(testToken).
		Return(&service.Claims{SessionID: sess.ID(), UserID: "uid-1"}, nil).Maybe()

	return sess
}

func (a *testAPI) do(method, path, body string, authorized bool) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if authorized {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+testToken)
	}
	rec := httptest.NewRecorder()
	a.echo.ServeHTTP(rec, req)

	return rec
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

func TestHealth(t *testing.T) {
	a := newTestAPI(t, nil)

	rec := a.do(http.MethodGet, "/health", "", false)
	assert.Equal(t, http.StatusOK, rec.Code)
	env := decode(t, rec)
	assert.JSONEq(t, `{"status":"ok"}`, string(env.Data))
	assert.Equal(t, rec.Header().Get("X-Request-Id"), env.Meta.RequestID)
}

func TestAuthenticate(t *testing.T) {
	t.Run("missing header", func(t *testing.T) {
		a := newTestAPI(t, nil)

		rec := a.do(http.MethodGet, "/api/v1/profile", "", false)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "MISSING_TOKEN", decode(t, rec).Error.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		a := newTestAPI(t, nil)
		a.tokens.EXPECT().ValidateToken(testToken).Return(nil, domainerrors.ErrUnauthorized)

		rec := a.do(http.MethodGet, "/api/v1/profile", "", true)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "INVALID_TOKEN", decode(t, rec).Error.Code)
	})

	t.Run("closed session", func(t *testing.T) {
		a := newTestAPI(t, nil)
		a.tokens.EXPECT().ValidateToken(testToken).
			Return(&service.Claims{SessionID: "gone", UserID: "uid-1"}, nil)

		rec := a.do(http.MethodGet, "/api/v1/profile", "", true)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "SESSION_NOT_FOUND", decode(t, rec).Error.Code)
	})

	t.Run("resolves session", func(t *testing.T) {
		a := newTestAPI(t, nil)
		sess := a.signIn()
		a.profile.EXPECT().GetProfile(mock.Anything, sess).
			Return(&usecase.ProfileOutput{UserID: "uid-1", FullName: "Ada Lovelace", Activities: []usecase.ActivityOutput{}})

		rec := a.do(http.MethodGet, "/api/v1/profile", "", true)
		assert.Equal(t, http.StatusOK, rec.Code)

		var out usecase.ProfileOutput
		require.NoError(t, json.Unmarshal(decode(t, rec).Data, &out))
		assert.Equal(t, "Ada Lovelace", out.FullName)
	})
}

func TestSignUp(t *testing.T) {
	t.Run("provider message is surfaced", func(t *testing.T) {
		a := newTestAPI(t, nil)
		a.auth.EXPECT().SignUp(mock.Anything, &usecase.SignUpInput{
			FullName: "Ada", Email: "ada@example.com", Password: "pw",
		}).Return(nil, domainerrors.ErrIdentityFailed.WithMessage("The password must be 6 characters long or more."))

		rec := a.do(http.MethodPost, "/auth/signup", `{"full_name":"Ada","email":"ada@example.com","password":"pw"}`, false)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "The password must be 6 characters long or more.", decode(t, rec).Error.Message)
	})

	t.Run("missing fields fail validation", func(t *testing.T) {
		a := newTestAPI(t, nil)

		rec := a.do(http.MethodPost, "/auth/signup", `{"email":"ada@example.com"}`, false)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		env := decode(t, rec)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
		assert.NotEmpty(t, env.Error.Details)
	})
}

func TestSignOut(t *testing.T) {
	a := newTestAPI(t, nil)
	sess := a.signIn()
	a.auth.EXPECT().SignOut(mock.Anything, sess).Return(nil)

	rec := a.do(http.MethodPost, "/auth/signout", "", true)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestGoogleSignIn_FormField(t *testing.T) {
	a := newTestAPI(t, nil)
	a.auth.EXPECT().SignInWithGoogle(mock.Anything, &usecase.FederatedSignInInput{IDToken: "google-token"}).
		Return(&usecase.AuthOutput{SessionID: "s1", UserID: "uid-1"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/oauth/google", strings.NewReader("id_token=google-token"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	a.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSaveLocation_RequiresName(t *testing.T) {
	a := newTestAPI(t, nil)
	a.signIn()

	rec := a.do(http.MethodPut, "/api/v1/profile/location", `{"coordinate":{"latitude":48.85,"longitude":2.35}}`, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decode(t, rec).Error.Code)
}

func TestConfirmLocation_NoSelection(t *testing.T) {
	a := newTestAPI(t, nil)
	sess := a.signIn()
	a.profile.EXPECT().ConfirmHomeLocation(mock.Anything, sess, &usecase.ConfirmLocationInput{}).
		Return(nil, domainerrors.ErrNoLocationSelected)

	rec := a.do(http.MethodPost, "/api/v1/profile/location/confirm", "", true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "NO_LOCATION_SELECTED", decode(t, rec).Error.Code)
}

func TestSearch(t *testing.T) {
	t.Run("returns generation without waiting", func(t *testing.T) {
		a := newTestAPI(t, nil)
		sess := a.signIn()
		a.search.EXPECT().Search(mock.Anything, sess, "paris").Return(uint64(3))

		rec := a.do(http.MethodPost, "/api/v1/search", `{"query":"paris"}`, true)
		assert.Equal(t, http.StatusAccepted, rec.Code)

		var out usecase.SuggestionsOutput
		require.NoError(t, json.Unmarshal(decode(t, rec).Data, &out))
		assert.Equal(t, uint64(3), out.Generation)
		assert.True(t, out.Pending)
	})

	t.Run("blank query resolves without pending", func(t *testing.T) {
		a := newTestAPI(t, nil)
		sess := a.signIn()
		a.search.EXPECT().Search(mock.Anything, sess, "   ").Return(uint64(5))
		a.search.EXPECT().Suggestions(mock.Anything, sess).Return(&usecase.SuggestionsOutput{
			Generation:  5,
			Suggestions: []entity.PlaceSuggestion{},
		})

		rec := a.do(http.MethodPost, "/api/v1/search", `{"query":"   "}`, true)
		assert.Equal(t, http.StatusOK, rec.Code)

		var out usecase.SuggestionsOutput
		require.NoError(t, json.Unmarshal(decode(t, rec).Data, &out))
		assert.Equal(t, uint64(5), out.Generation)
		assert.False(t, out.Pending)
		assert.Empty(t, out.Query)
		assert.Empty(t, out.Suggestions)
	})

	t.Run("trims the echoed query", func(t *testing.T) {
		a := newTestAPI(t, nil)
		sess := a.signIn()
		a.search.EXPECT().Search(mock.Anything, sess, "  paris ").Return(uint64(6))

		rec := a.do(http.MethodPost, "/api/v1/search", `{"query":"  paris "}`, true)
		assert.Equal(t, http.StatusAccepted, rec.Code)

		var out usecase.SuggestionsOutput
		require.NoError(t, json.Unmarshal(decode(t, rec).Data, &out))
		assert.Equal(t, "paris", out.Query)
	})

	t.Run("waits when asked", func(t *testing.T) {
		a := newTestAPI(t, nil)
		sess := a.signIn()
		a.search.EXPECT().Search(mock.Anything, sess, "paris").Return(uint64(4))
		a.search.EXPECT().Await(mock.Anything, sess, uint64(4)).Return(&usecase.SuggestionsOutput{
			Generation:  4,
			Query:       "paris",
			Suggestions: []entity.PlaceSuggestion{{Title: "Paris", Subtitle: "France"}},
		})

		rec := a.do(http.MethodPost, "/api/v1/search", `{"query":"paris","wait":true}`, true)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("bad generation", func(t *testing.T) {
		a := newTestAPI(t, nil)
		a.signIn()

		rec := a.do(http.MethodGet, "/api/v1/search/suggestions?generation=abc", "", true)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("select without match returns null", func(t *testing.T) {
		a := newTestAPI(t, nil)
		sess := a.signIn()
		a.search.EXPECT().SelectLocation(mock.Anything, sess, entity.PlaceSuggestion{Title: "Nowhere"}).Return(nil)

		rec := a.do(http.MethodPost, "/api/v1/search/select", `{"title":"Nowhere"}`, true)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "null", string(decode(t, rec).Data))
	})
}

func TestDeviceLocation(t *testing.T) {
	t.Run("unknown permission status", func(t *testing.T) {
		a := newTestAPI(t, nil)
		a.signIn()

		rec := a.do(http.MethodPut, "/api/v1/device/location/permission", `{"status":"maybe"}`, true)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("request without signals", func(t *testing.T) {
		a := newTestAPI(t, nil)
		sess := a.signIn()
		a.device.EXPECT().RequestCurrentLocation(mock.Anything, sess, (*entity.LocationSignals)(nil)).
			Return(&usecase.DeviceLocationOutput{Permission: entity.LocationRequested})

		rec := a.do(http.MethodPost, "/api/v1/device/location/request", "", true)
		assert.Equal(t, http.StatusAccepted, rec.Code)
	})

	t.Run("current location waits", func(t *testing.T) {
		a := newTestAPI(t, nil)
		sess := a.signIn()
		a.device.EXPECT().CurrentLocation(mock.Anything, sess, true).
			Return(&usecase.DeviceLocationOutput{Permission: entity.LocationGranted})

		rec := a.do(http.MethodGet, "/api/v1/device/location?wait=true", "", true)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestReverseGeocode(t *testing.T) {
	t.Run("label", func(t *testing.T) {
		a := newTestAPI(t, nil)
		sess := a.signIn()
		coordinate := entity.Coordinate{Latitude: 37.33, Longitude: -122.03}
		a.geocode.EXPECT().ReverseGeocode(mock.Anything, sess, coordinate).Return("Cupertino, CA", nil)

		rec := a.do(http.MethodPost, "/api/v1/geocode/reverse", `{"coordinate":{"latitude":37.33,"longitude":-122.03}}`, true)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"label":"Cupertino, CA"}`, string(decode(t, rec).Data))
	})

	t.Run("pending", func(t *testing.T) {
		a := newTestAPI(t, nil)
		sess := a.signIn()
		a.geocode.EXPECT().ReverseGeocode(mock.Anything, sess, mock.Anything).Return("", domainerrors.ErrGeocodePending)

		rec := a.do(http.MethodPost, "/api/v1/geocode/reverse", `{"coordinate":{"latitude":1,"longitude":2}}`, true)
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "GEOCODE_PENDING", decode(t, rec).Error.Code)
	})

	t.Run("out of range", func(t *testing.T) {
		a := newTestAPI(t, nil)
		a.signIn()

		rec := a.do(http.MethodPost, "/api/v1/geocode/reverse", `{"coordinate":{"latitude":91,"longitude":0}}`, true)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestPlaces(t *testing.T) {
	t.Run("list binds the signed-in user", func(t *testing.T) {
		a := newTestAPI(t, nil)
		sess := a.signIn()
		a.places.EXPECT().Initialize(mock.Anything, sess, "uid-1").Return()
		a.places.EXPECT().Places(mock.Anything, sess).Return(&usecase.PlacesOutput{UserID: "uid-1", Places: []usecase.PlaceView{}})

		rec := a.do(http.MethodGet, "/api/v1/places", "", true)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("create is accepted", func(t *testing.T) {
		a := newTestAPI(t, nil)
		sess := a.signIn()
		a.places.EXPECT().Initialize(mock.Anything, sess, "uid-1").Return()
		a.places.EXPECT().Create(mock.Anything, sess, &usecase.CreatePlaceInput{
			Name:       "Louvre",
			Coordinate: entity.Coordinate{Latitude: 48.86, Longitude: 2.34},
		}).Return(nil)

		rec := a.do(http.MethodPost, "/api/v1/places", `{"name":"Louvre","coordinate":{"latitude":48.86,"longitude":2.34}}`, true)
		assert.Equal(t, http.StatusAccepted, rec.Code)
	})

	t.Run("focus returns corners", func(t *testing.T) {
		a := newTestAPI(t, nil)
		sess := a.signIn()
		a.places.EXPECT().Initialize(mock.Anything, sess, "uid-1").Return()
		viewport := entity.NewViewport(entity.Coordinate{Latitude: 10, Longitude: 20}, 0.02)
		a.places.EXPECT().Focus(mock.Anything, sess, "p1").Return(&viewport, nil)

		rec := a.do(http.MethodGet, "/api/v1/places/p1/focus", "", true)
		assert.Equal(t, http.StatusOK, rec.Code)

		var out handler.FocusResponse
		require.NoError(t, json.Unmarshal(decode(t, rec).Data, &out))
		assert.InDelta(t, 9.99, out.Southwest.Latitude, 1e-9)
		assert.InDelta(t, 20.01, out.Northeast.Longitude, 1e-9)
	})

	t.Run("focus unknown place", func(t *testing.T) {
		a := newTestAPI(t, nil)
		sess := a.signIn()
		a.places.EXPECT().Initialize(mock.Anything, sess, "uid-1").Return()
		a.places.EXPECT().Focus(mock.Anything, sess, "missing").Return(nil, domainerrors.ErrSavedPlaceNotFound)

		rec := a.do(http.MethodGet, "/api/v1/places/missing/focus", "", true)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("stream writes events until the channel closes", func(t *testing.T) {
		a := newTestAPI(t, nil)
		sess := a.signIn()
		a.places.EXPECT().Initialize(mock.Anything, sess, "uid-1").Return()

		updates := make(chan *usecase.PlacesOutput, 1)
		updates <- &usecase.PlacesOutput{UserID: "uid-1", Places: []usecase.PlaceView{}}
		close(updates)
		cancelled := false
		a.places.EXPECT().Subscribe(mock.Anything, sess).
			Return((<-chan *usecase.PlacesOutput)(updates), func() { cancelled = true })

		rec := a.do(http.MethodGet, "/api/v1/places/stream", "", true)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "text/event-stream", rec.Header().Get(echo.HeaderContentType))
		assert.Contains(t, rec.Body.String(), "event: places\ndata: {\"user_id\":\"uid-1\",\"places\":[]}\n\n")
		assert.True(t, cancelled)
	})
}

func TestPostcards(t *testing.T) {
	t.Run("send without recipient", func(t *testing.T) {
		a := newTestAPI(t, nil)
		sess := a.signIn()
		a.postcard.EXPECT().Send(mock.Anything, sess, &usecase.PostcardInput{Message: "Hi"}).
			Return(nil, domainerrors.ErrRecipientRequired)

		rec := a.do(http.MethodPost, "/api/v1/postcards/send", `{"message":"Hi"}`, true)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Select a Contact", decode(t, rec).Error.Message)
	})

	t.Run("contacts use the delegated token", func(t *testing.T) {
		a := newTestAPI(t, nil)
		a.signIn()
		a.postcard.EXPECT().Contacts(mock.Anything, "people-token").
			Return(&usecase.ContactsOutput{Contacts: []entity.Contact{{GivenName: "Ada"}}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/contacts", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+testToken)
		req.Header.Set(handler.HeaderContactsToken, "people-token")
		rec := httptest.NewRecorder()
		a.echo.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestMetricsRoute(t *testing.T) {
	t.Run("enabled", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "test_total", Help: "test"})
		reg.MustRegister(counter)
		counter.Inc()
		a := newTestAPI(t, reg)

		rec := a.do(http.MethodGet, "/metrics", "", false)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "test_total 1")
	})

	t.Run("disabled", func(t *testing.T) {
		a := newTestAPI(t, nil)

		rec := a.do(http.MethodGet, "/metrics", "", false)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
