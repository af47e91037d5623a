package domain_test

import (
	"testing"

	"github.com/couchcryptid/heatguard-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRiskForTemperature(t *testing.T) {
	cases := []struct {
		celsius float64
		want    domain.RiskLevel
	}{
		{45, domain.RiskHigh},
		{40, domain.RiskHigh},
		{39.9, domain.RiskMedium},
		{35, domain.RiskMedium},
		{34.9, domain.RiskLow},
		{20, domain.RiskLow},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, domain.RiskForTemperature(tc.celsius), "%.1f°C", tc.celsius)
	}
}

func TestHeatZone_RiskMismatch(t *testing.T) {
	greenValley := domain.HeatZone{Name: "Green Valley", TemperatureCelsius: 35, Risk: domain.RiskLow}
	assert.Equal(t, domain.RiskMedium, greenValley.DerivedRisk())
	assert.True(t, greenValley.RiskMismatch())
	assert.Equal(t, domain.RiskLow, greenValley.Risk, "assigned risk is kept")

	sector := domain.HeatZone{Name: "Sector 15", TemperatureCelsius: 45, Risk: domain.RiskHigh}
	assert.False(t, sector.RiskMismatch())
}

func TestDisplayLabels(t *testing.T) {
	assert.Equal(t, "#DC2626", domain.RiskHigh.Color())
	assert.Equal(t, "Medium Risk", domain.RiskMedium.Label())
	assert.Equal(t, "#6B7280", domain.RiskLevel("other").Color())

	assert.Equal(t, "Available", domain.StatusOpen.Label())
	assert.Equal(t, "#EA580C", domain.StatusCrowded.Color())

	assert.Equal(t, "Critical", domain.ImportanceCritical.Label())
	assert.Empty(t, domain.Importance("other").Label())

	assert.Equal(t, "Transit Cooling", domain.CategoryTransit.Label())
	assert.Equal(t, "Muscle Cramps", domain.SymptomCramping.Label())
	assert.Equal(t, "Life-threatening situation", domain.SeverityEmergency.Description())
}

func TestParseSeverity(t *testing.T) {
	s, err := domain.ParseSeverity(" Urgent ")
	require.NoError(t, err)
	assert.Equal(t, domain.SeverityUrgent, s)

	_, err = domain.ParseSeverity("none")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownSeverity)
}

func TestSymptomID_Valid(t *testing.T) {
	for _, id := range domain.Symptoms {
		assert.True(t, id.Valid(), id)
	}
	assert.False(t, domain.SymptomID("fever").Valid())
}
