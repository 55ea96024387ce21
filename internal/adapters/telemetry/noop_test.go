package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/voltdev/internal/adapters/telemetry"
	"go.trai.ch/voltdev/internal/core/ports"
)

func TestNoop(t *testing.T) {
	var tel ports.Telemetry = telemetry.Noop{}

	ctx, v := tel.Record(context.Background(), "configure")
	got, ok := ports.VertexFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, v, got)

	n, err := v.Stdout().Write([]byte("ignored"))
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	v.Complete(errors.New("boom"))
	assert.NoError(t, tel.Close())
}
