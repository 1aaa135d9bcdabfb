package maps

import (
	"slices"

	"keepposted/internal/domain/entity"

	"googlemaps.github.io/maps"
)

const (
	componentRoute       = "route"
	componentLocality    = "locality"
	componentPostalTown  = "postal_town"
	componentSublocality = "sublocality"
	componentAdminLevel1 = "administrative_area_level_1"
)

func toSuggestion(p maps.AutocompletePrediction) entity.PlaceSuggestion {
	title := p.StructuredFormatting.MainText
	subtitle := p.StructuredFormatting.SecondaryText
	if title == "" {
		title, subtitle = p.Description, ""
	}

	return entity.PlaceSuggestion{
		Title:    title,
		Subtitle: subtitle,
		PlaceID:  p.PlaceID,
	}
}

func toCoordinate(ll maps.LatLng) entity.Coordinate {
	return entity.Coordinate{Latitude: ll.Lat, Longitude: ll.Lng}
}

// toPlacemark keeps the street name without its number, the locality and the short state code.
func toPlacemark(components []maps.AddressComponent) entity.Placemark {
	var placemark entity.Placemark
	if c, ok := findComponent(components, componentRoute); ok {
		placemark.Street = c.LongName
	}

	for _, kind := range []string{componentLocality, componentPostalTown, componentSublocality} {
		if c, ok := findComponent(components, kind); ok {
			placemark.City = c.LongName

			break
		}
	}

	if c, ok := findComponent(components, componentAdminLevel1); ok {
		placemark.State = c.ShortName
	}

	return placemark
}

func findComponent(components []maps.AddressComponent, kind string) (maps.AddressComponent, bool) {
	for _, c := range components {
		if slices.Contains(c.Types, kind) {
			return c, true
		}
	}

	return maps.AddressComponent{}, false
}

func toGeolocationRequest(signals *entity.LocationSignals) *maps.GeolocationRequest {
	if signals == nil {
		return &maps.GeolocationRequest{ConsiderIP: true}
	}

	req := &maps.GeolocationRequest{ConsiderIP: signals.ConsiderIP}
	for _, ap := range signals.WiFiAccessPoints {
		req.WiFiAccessPoints = append(req.WiFiAccessPoints, maps.WiFiAccessPoint{
			MACAddress:     ap.MACAddress,
			SignalStrength: ap.SignalStrength,
		})
	}

	return req
}
