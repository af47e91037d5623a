package domain_test

import (
	"testing"

	"github.com/couchcryptid/heatguard-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggle(t *testing.T) {
	x := "x"

	got := domain.Toggle[string](nil, "x")
	require.NotNil(t, got)
	assert.Equal(t, "x", *got)

	assert.Nil(t, domain.Toggle(&x, "x"))

	got = domain.Toggle(&x, "y")
	require.NotNil(t, got)
	assert.Equal(t, "y", *got)
	assert.Equal(t, "x", x, "current must not be modified")
}

func TestToggle_IntKeys(t *testing.T) {
	sel := domain.Toggle[int](nil, 3)
	sel = domain.Toggle(sel, 3)
	assert.Nil(t, sel)
}

func TestExclusive(t *testing.T) {
	sev := domain.NewExclusive(domain.SeverityModerate)
	assert.Equal(t, domain.SeverityModerate, sev.Value())

	sev = sev.Select(domain.SeverityUrgent)
	assert.Equal(t, domain.SeverityUrgent, sev.Value())

	// Reselecting the active value never clears it.
	sev = sev.Select(domain.SeverityUrgent)
	assert.Equal(t, domain.SeverityUrgent, sev.Value())

	assert.Equal(t, domain.SeverityModerate, sev.Reset().Value())
}
