package telemetry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"

	"github.com/neexbeast/tripwise/internal/config"
	"github.com/neexbeast/tripwise/internal/telemetry"
)

func TestInit_InstallsProvider(t *testing.T) {
	shutdown, err := telemetry.Init(config.Telemetry{ServiceName: "tripwise-test"})
	require.NoError(t, err)

	_, span := otel.Tracer("test").Start(context.Background(), "op")
	assert.True(t, span.SpanContext().IsValid())
	assert.True(t, span.SpanContext().IsSampled())
	span.End()

	require.NoError(t, shutdown(context.Background()))
}
