package entity

// Placemark is the subset of a reverse-geocoding result used to build labels.
type Placemark struct {
	Street string // Thoroughfare.
	City   string // Locality.
	State  string // Administrative area.
}
