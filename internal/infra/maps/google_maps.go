// Package maps implements place search, geocoding and geolocation on the Google Maps Platform.
package maps

import (
	"context"
	"log/slog"
	"time"

	"keepposted/config"
	"keepposted/internal/domain/entity"
	"keepposted/internal/domain/service"
	"keepposted/internal/infra/metrics"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"googlemaps.github.io/maps"
)

// Client is the Google Maps adapter. One value serves search, geocoding and geolocation.
type Client struct {
	client   *maps.Client
	language string
	region   string
	metrics  *metrics.ProviderMetrics
	logger   *slog.Logger
}

// Params holds dependencies for the maps adapter, injected by Fx.
type Params struct {
	fx.In

	Config  *config.Config
	Metrics *metrics.ProviderMetrics
	Logger  *slog.Logger
}

// New creates the maps adapter from configuration.
func New(params Params) (*Client, error) {
	return newClient(params.Config.Maps, params.Metrics, params.Logger)
}

func newClient(cfg *config.MapsConfig, m *metrics.ProviderMetrics, logger *slog.Logger, opts ...maps.ClientOption) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("maps API key must be provided")
	}

	client, err := maps.NewClient(append([]maps.ClientOption{maps.WithAPIKey(cfg.APIKey)}, opts...)...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create maps client")
	}

	return &Client{
		client:   client,
		language: cfg.Language,
		region:   cfg.Region,
		metrics:  m,
		logger:   logger,
	}, nil
}

// Autocomplete returns place completions for query.
func (c *Client) Autocomplete(ctx context.Context, query string) (_ []entity.PlaceSuggestion, err error) {
	start := time.Now()
	defer func() { c.metrics.Observe("maps.autocomplete", start, err) }()

	resp, err := c.client.PlaceAutocomplete(ctx, &maps.PlaceAutocompleteRequest{
		Input:    query,
		Language: c.language,
	})
	if err != nil {
		return nil, errors.Wrap(err, "place autocomplete")
	}

	suggestions := make([]entity.PlaceSuggestion, 0, len(resp.Predictions))
	for _, prediction := range resp.Predictions {
		suggestions = append(suggestions, toSuggestion(prediction))
	}

	return suggestions, nil
}

// Lookup resolves a suggestion to coordinates. Suggestions without a place id are geocoded by text.
func (c *Client) Lookup(ctx context.Context, suggestion entity.PlaceSuggestion) (_ []entity.Coordinate, err error) {
	start := time.Now()
	defer func() { c.metrics.Observe("maps.lookup", start, err) }()

	var results []maps.GeocodingResult
	if suggestion.PlaceID != "" {
		results, err = c.client.ReverseGeocode(ctx, &maps.GeocodingRequest{
			PlaceID:  suggestion.PlaceID,
			Language: c.language,
		})
	} else {
		results, err = c.client.Geocode(ctx, &maps.GeocodingRequest{
			Address:  suggestion.DisplayText(),
			Language: c.language,
			Region:   c.region,
		})
	}
	if err != nil {
		return nil, errors.Wrap(err, "place lookup")
	}

	coordinates := make([]entity.Coordinate, 0, len(results))
	for _, result := range results {
		coordinates = append(coordinates, toCoordinate(result.Geometry.Location))
	}

	return coordinates, nil
}

// ReverseGeocode returns the placemarks at coordinate, best first.
func (c *Client) ReverseGeocode(ctx context.Context, coordinate entity.Coordinate) (_ []entity.Placemark, err error) {
	start := time.Now()
	defer func() { c.metrics.Observe("maps.reverse_geocode", start, err) }()

	results, err := c.client.ReverseGeocode(ctx, &maps.GeocodingRequest{
		LatLng:   &maps.LatLng{Lat: coordinate.Latitude, Lng: coordinate.Longitude},
		Language: c.language,
		Region:   c.region,
	})
	if err != nil {
		return nil, errors.Wrap(err, "reverse geocode")
	}

	placemarks := make([]entity.Placemark, 0, len(results))
	for _, result := range results {
		placemarks = append(placemarks, toPlacemark(result.AddressComponents))
	}

	return placemarks, nil
}

// Locate asks the geolocation API for a fix from the client's radio signals.
func (c *Client) Locate(ctx context.Context, signals *entity.LocationSignals) (_ *entity.LocationFix, err error) {
	start := time.Now()
	defer func() { c.metrics.Observe("maps.geolocate", start, err) }()

	result, err := c.client.Geolocate(ctx, toGeolocationRequest(signals))
	if err != nil {
		return nil, errors.Wrap(err, "geolocate")
	}

	c.logger.Debug("Geolocation fix received", slog.Float64("accuracy", result.Accuracy))

	return &entity.LocationFix{
		Coordinate: toCoordinate(result.Location),
		Accuracy:   result.Accuracy,
	}, nil
}

// Module provides the maps adapter under each provider interface it satisfies.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		New,
		func(c *Client) service.PlaceSearchProvider { return c },
		func(c *Client) service.GeocodingProvider { return c },
		func(c *Client) service.GeolocationProvider { return c },
	),
)
