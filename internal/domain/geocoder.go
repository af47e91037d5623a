package domain

import "context"

// GeocodingResult contains place data returned by a geocoding provider.
type GeocodingResult struct {
	Lat              float64
	Lon              float64
	FormattedAddress string
	PlaceName        string
	Confidence       float64 // 0.0–1.0 provider confidence score
}

// Geocoder turns device coordinates into place details.
type Geocoder interface {
	ReverseGeocode(ctx context.Context, lat, lon float64) (GeocodingResult, error)
}

// LocationProvider supplies the display-only location label attached to a report.
type LocationProvider interface {
	CurrentLocationLabel(ctx context.Context) (string, error)
}

// Dispatcher routes a submitted report to responders.
type Dispatcher interface {
	SubmitReport(ctx context.Context, report EmergencyReport) (DispatchReceipt, error)
}
