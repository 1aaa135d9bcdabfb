package entity

// LocationAuthorization mirrors the platform's location permission states.
type LocationAuthorization string

const (
	LocationNotDetermined LocationAuthorization = "not_determined"
	// LocationRequested means authorization was asked for and the answer is pending.
	LocationRequested LocationAuthorization = "requested"
	LocationGranted   LocationAuthorization = "granted"
	LocationDenied    LocationAuthorization = "denied"
)

// IsValid reports whether the value is a known status a client may report.
func (a LocationAuthorization) IsValid() bool {
	switch a {
	case LocationNotDetermined, LocationRequested, LocationGranted, LocationDenied:
		return true
	default:
		return false
	}
}

// LocationSignals are optional radio observations a client may attach to a fix request.
type LocationSignals struct {
	WiFiAccessPoints []WiFiAccessPoint `json:"wifi_access_points,omitempty"`
	ConsiderIP       bool              `json:"consider_ip"`
}

// WiFiAccessPoint is one observed access point.
type WiFiAccessPoint struct {
	MACAddress     string  `json:"mac_address"`
	SignalStrength float64 `json:"signal_strength,omitempty"`
}

// LocationFix is a one-shot position with its accuracy radius in metres.
type LocationFix struct {
	Coordinate Coordinate `json:"coordinate"`
	Accuracy   float64    `json:"accuracy"`
}
