// Package entity contains the core business objects of the project.
package entity

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// Coordinate is a WGS84 latitude/longitude pair.
type Coordinate struct {
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
}

// CoordinateFromPoint converts an orb point (lon, lat order) to a Coordinate.
func CoordinateFromPoint(p orb.Point) Coordinate {
	return Coordinate{Latitude: p.Lat(), Longitude: p.Lon()}
}

// Point returns the coordinate as an orb point.
func (c Coordinate) Point() orb.Point {
	return orb.Point{c.Longitude, c.Latitude}
}

// Valid reports whether the pair lies within WGS84 bounds.
func (c Coordinate) Valid() bool {
	return c.Latitude >= -90 && c.Latitude <= 90 && c.Longitude >= -180 && c.Longitude <= 180
}

// DistanceTo returns the great-circle distance in metres.
func (c Coordinate) DistanceTo(other Coordinate) float64 {
	return geo.Distance(c.Point(), other.Point())
}

// Viewport is the visible map region: a centre plus a span in degrees on each axis.
type Viewport struct {
	Center         Coordinate `json:"center"`
	LatitudeDelta  float64    `json:"latitude_delta"`
	LongitudeDelta float64    `json:"longitude_delta"`
}

// NewViewport centres a square span of the given size on c.
func NewViewport(c Coordinate, span float64) Viewport {
	return Viewport{Center: c, LatitudeDelta: span, LongitudeDelta: span}
}

// Bound returns the viewport as an orb bound.
func (v Viewport) Bound() orb.Bound {
	halfLat := v.LatitudeDelta / 2
	halfLon := v.LongitudeDelta / 2

	return orb.Bound{
		Min: orb.Point{v.Center.Longitude - halfLon, v.Center.Latitude - halfLat},
		Max: orb.Point{v.Center.Longitude + halfLon, v.Center.Latitude + halfLat},
	}
}
