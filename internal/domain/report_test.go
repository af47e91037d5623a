package domain_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/couchcryptid/heatguard-service/internal/domain"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSymptomSet_ToggleTwiceRestores(t *testing.T) {
	start := domain.NewSymptomSet(domain.SymptomHeadache)

	once := start.Toggle(domain.SymptomNausea)
	assert.True(t, once.Has(domain.SymptomNausea))
	assert.False(t, start.Has(domain.SymptomNausea), "toggle must not mutate the receiver")

	twice := once.Toggle(domain.SymptomNausea)
	assert.True(t, twice.Equal(start))
}

func TestSymptomSet_DeduplicatesAndSorts(t *testing.T) {
	s := domain.NewSymptomSet(domain.SymptomNausea, domain.SymptomDizziness, domain.SymptomNausea)
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []domain.SymptomID{domain.SymptomDizziness, domain.SymptomNausea}, s.Sorted())
}

func TestSymptomSet_JSON(t *testing.T) {
	s := domain.NewSymptomSet(domain.SymptomHeadache, domain.SymptomDehydration)
	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `["dehydration","headache"]`, string(data))

	var back domain.SymptomSet
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, back.Equal(s))
}

func TestNewEmergencyReport_Defaults(t *testing.T) {
	fakeClock := clockwork.NewFakeClockAt(time.Date(2024, time.May, 28, 14, 0, 0, 0, time.UTC))
	domain.SetClock(fakeClock)
	t.Cleanup(func() { domain.SetClock(nil) })

	r := domain.NewEmergencyReport(domain.AutoDetectedLocation)
	assert.Equal(t, 0, r.Symptoms.Len())
	assert.Equal(t, domain.SeverityModerate, r.Severity)
	assert.Empty(t, r.Description)
	assert.Equal(t, domain.AutoDetectedLocation, r.Location)
	assert.Equal(t, fakeClock.Now(), r.CreatedAt)
}

func TestEmergencyReport_Validate(t *testing.T) {
	r := domain.NewEmergencyReport("")
	err := r.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrValidation))
	assert.Equal(t, "at least one symptom required", err.Error())

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "symptoms", verr.Field)

	r.Symptoms = r.Symptoms.Toggle(domain.SymptomDizziness)
	assert.NoError(t, r.Validate())

	r.Severity = "catastrophic"
	assert.ErrorIs(t, r.Validate(), domain.ErrValidation)
}

func TestDispatchError(t *testing.T) {
	cause := errors.New("broker unavailable")
	err := error(&domain.DispatchError{Cause: cause})

	assert.ErrorIs(t, err, domain.ErrDispatch)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "broker unavailable")
}
