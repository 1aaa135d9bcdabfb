// Package router registers the API routes.
package router

import (
	"keepposted/config"
	"keepposted/internal/delivery/api/middleware"
	"keepposted/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler           *handler.AuthHandler
	ProfileHandler        *handler.ProfileHandler
	SearchHandler         *handler.SearchHandler
	DeviceLocationHandler *handler.DeviceLocationHandler
	GeocodeHandler        *handler.GeocodeHandler
	SavedPlaceHandler     *handler.SavedPlaceHandler
	PostcardHandler       *handler.PostcardHandler
	AuthMiddleware        *middleware.AuthMiddleware
	Config                *config.Config
	// Registry is nil when metrics are disabled.
	Registry *prometheus.Registry `optional:"true"`
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler           *handler.AuthHandler
	profileHandler        *handler.ProfileHandler
	searchHandler         *handler.SearchHandler
	deviceLocationHandler *handler.DeviceLocationHandler
	geocodeHandler        *handler.GeocodeHandler
	savedPlaceHandler     *handler.SavedPlaceHandler
	postcardHandler       *handler.PostcardHandler
	authMiddleware        *middleware.AuthMiddleware
	config                *config.Config
	registry              *prometheus.Registry
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:           params.AuthHandler,
		profileHandler:        params.ProfileHandler,
		searchHandler:         params.SearchHandler,
		deviceLocationHandler: params.DeviceLocationHandler,
		geocodeHandler:        params.GeocodeHandler,
		savedPlaceHandler:     params.SavedPlaceHandler,
		postcardHandler:       params.PostcardHandler,
		authMiddleware:        params.AuthMiddleware,
		config:                params.Config,
		registry:              params.Registry,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.SignUp)
		authGroup.POST("/signin", r.authHandler.SignIn)
		authGroup.POST("/signout", r.authHandler.SignOut, r.authMiddleware.Authenticate)
	}

	oauthGroup := e.Group("/oauth")
	{
		oauthGroup.POST("/google", r.authHandler.GoogleSignIn)
	}

	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate)

	profileGroup := apiV1.Group("/profile")
	{
		profileGroup.GET("", r.profileHandler.GetProfile)
		profileGroup.PUT("/location", r.profileHandler.SaveLocation)
		profileGroup.POST("/location/confirm", r.profileHandler.ConfirmLocation)
	}
	apiV1.GET("/activities", r.profileHandler.ActivityLog)

	searchGroup := apiV1.Group("/search")
	{
		searchGroup.POST("", r.searchHandler.Search)
		searchGroup.GET("/suggestions", r.searchHandler.Suggestions)
		searchGroup.POST("/select", r.searchHandler.SelectLocation)
	}

	deviceGroup := apiV1.Group("/device/location")
	{
		deviceGroup.GET("", r.deviceLocationHandler.CurrentLocation)
		deviceGroup.POST("/request", r.deviceLocationHandler.RequestLocation)
		deviceGroup.PUT("/permission", r.deviceLocationHandler.UpdatePermission)
	}

	apiV1.POST("/geocode/reverse", r.geocodeHandler.ReverseGeocode)

	placesGroup := apiV1.Group("/places")
	{
		placesGroup.GET("", r.savedPlaceHandler.ListPlaces)
		placesGroup.GET("/stream", r.savedPlaceHandler.StreamPlaces)
		placesGroup.POST("", r.savedPlaceHandler.CreatePlace)
		placesGroup.POST("/pin", r.savedPlaceHandler.PinPlace)
		placesGroup.GET("/:id/focus", r.savedPlaceHandler.FocusPlace)
	}

	postcardsGroup := apiV1.Group("/postcards")
	{
		postcardsGroup.GET("/templates", r.postcardHandler.Templates)
		postcardsGroup.POST("/preview", r.postcardHandler.Preview)
		postcardsGroup.POST("/send", r.postcardHandler.Send)
	}
	apiV1.GET("/contacts", r.postcardHandler.Contacts)
}

// RegisterMetricsRoute exposes the Prometheus registry when metrics are enabled.
func (r *router) RegisterMetricsRoute(e *echo.Echo) {
	if r.registry == nil {
		return
	}

	e.GET(r.config.Metrics.Path, echo.WrapHandler(promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})))
}
