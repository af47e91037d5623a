package domain

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- mock geocoder ---

type mockGeocoder struct {
	result GeocodingResult
	err    error
	calls  int
}

func (m *mockGeocoder) ReverseGeocode(_ context.Context, _, _ float64) (GeocodingResult, error) {
	m.calls++
	return m.result, m.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// --- tests ---

func TestStaticLocation(t *testing.T) {
	label, err := StaticLocation("").CurrentLocationLabel(context.Background())
	require.NoError(t, err)
	assert.Equal(t, AutoDetectedLocation, label)

	label, err = StaticLocation("Sector 15, Gurgaon").CurrentLocationLabel(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Sector 15, Gurgaon", label)
}

func TestGeocodedLocation_NilGeocoder(t *testing.T) {
	loc := NewGeocodedLocation(nil, 28.45, 77.02, discardLogger())

	label, err := loc.CurrentLocationLabel(context.Background())
	require.NoError(t, err)
	assert.Equal(t, AutoDetectedLocation, label)
}

func TestGeocodedLocation_NoCoordinates(t *testing.T) {
	geo := &mockGeocoder{result: GeocodingResult{FormattedAddress: "Somewhere"}}
	loc := NewGeocodedLocation(geo, 0, 0, discardLogger())

	label, err := loc.CurrentLocationLabel(context.Background())
	require.NoError(t, err)
	assert.Equal(t, AutoDetectedLocation, label)
	assert.Equal(t, 0, geo.calls)
}

func TestGeocodedLocation_PrefersFormattedAddress(t *testing.T) {
	geo := &mockGeocoder{result: GeocodingResult{
		FormattedAddress: "Sector 15, Gurugram, Haryana, India",
		PlaceName:        "Sector 15",
		Confidence:       0.9,
	}}
	loc := NewGeocodedLocation(geo, 28.4595, 77.0266, discardLogger())

	label, err := loc.CurrentLocationLabel(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Sector 15, Gurugram, Haryana, India", label)
	assert.Equal(t, 1, geo.calls)
}

func TestGeocodedLocation_FallsBackToPlaceName(t *testing.T) {
	geo := &mockGeocoder{result: GeocodingResult{PlaceName: "Old City"}}
	loc := NewGeocodedLocation(geo, 28.65, 77.23, discardLogger())

	label, err := loc.CurrentLocationLabel(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Old City", label)
}

func TestGeocodedLocation_Error_GracefulDegradation(t *testing.T) {
	geo := &mockGeocoder{err: errors.New("rate limited")}
	loc := NewGeocodedLocation(geo, 28.65, 77.23, discardLogger())

	label, err := loc.CurrentLocationLabel(context.Background())
	require.NoError(t, err)
	assert.Equal(t, AutoDetectedLocation, label)
}

func TestGeocodedLocation_EmptyResult(t *testing.T) {
	geo := &mockGeocoder{}
	loc := NewGeocodedLocation(geo, 28.65, 77.23, discardLogger())

	label, err := loc.CurrentLocationLabel(context.Background())
	require.NoError(t, err)
	assert.Equal(t, AutoDetectedLocation, label)
}
