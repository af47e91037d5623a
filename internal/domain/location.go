package domain

import (
	"context"
	"log/slog"
)

// AutoDetectedLocation is the label used when no geocoder is available.
const AutoDetectedLocation = "Current Location (Auto-detected)"

// StaticLocation is a LocationProvider that always returns the same label.
type StaticLocation string

func (s StaticLocation) CurrentLocationLabel(_ context.Context) (string, error) {
	if s == "" {
		return AutoDetectedLocation, nil
	}
	return string(s), nil
}

// GeocodedLocation labels reports with the reverse-geocoded place of fixed
// device coordinates. Geocoding failures degrade to AutoDetectedLocation.
type GeocodedLocation struct {
	geocoder Geocoder
	lat, lon float64
	logger   *slog.Logger
}

// NewGeocodedLocation creates a provider for the given coordinates. A nil
// geocoder always yields AutoDetectedLocation.
func NewGeocodedLocation(geocoder Geocoder, lat, lon float64, logger *slog.Logger) *GeocodedLocation {
	return &GeocodedLocation{geocoder: geocoder, lat: lat, lon: lon, logger: logger}
}

func (g *GeocodedLocation) CurrentLocationLabel(ctx context.Context) (string, error) {
	if g.geocoder == nil || (g.lat == 0 && g.lon == 0) {
		return AutoDetectedLocation, nil
	}

	result, err := g.geocoder.ReverseGeocode(ctx, g.lat, g.lon)
	if err != nil {
		g.logger.Warn("reverse geocoding failed",
			"lat", g.lat,
			"lon", g.lon,
			"error", err,
		)
		return AutoDetectedLocation, nil
	}

	switch {
	case result.FormattedAddress != "":
		return result.FormattedAddress, nil
	case result.PlaceName != "":
		return result.PlaceName, nil
	default:
		return AutoDetectedLocation, nil
	}
}
