package httpadapter

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticCheck struct{ err error }

func (s staticCheck) CheckReadiness(context.Context) error { return s.err }

func TestAllReady(t *testing.T) {
	ctx := context.Background()
	require.NoError(t, AllReady().CheckReadiness(ctx))
	require.NoError(t, AllReady(staticCheck{}, nil).CheckReadiness(ctx))

	brokers := errors.New("kafka brokers unreachable")
	err := AllReady(staticCheck{}, staticCheck{err: brokers}).CheckReadiness(ctx)
	require.ErrorIs(t, err, brokers)
	assert.Equal(t, "kafka brokers unreachable", err.Error())
}
