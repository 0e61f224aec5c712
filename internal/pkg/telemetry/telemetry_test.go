package telemetry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	semconv "go.opentelemetry.io/otel/semconv/v1.34.0"
)

func TestNewResource(t *testing.T) {
	res, err := newResource("ledgerwatch-test")

	require.NoError(t, err)
	require.NotNil(t, res)

	var found bool
	for _, attr := range res.Attributes() {
		if attr.Key == semconv.ServiceNameKey {
			found = true
			assert.Equal(t, "ledgerwatch-test", attr.Value.AsString())
		}
	}
	assert.True(t, found, "resource should carry the service name attribute")
}

func TestLoggerProvider(t *testing.T) {
	t.Run("nil before init", func(t *testing.T) {
		prev := loggerProvider
		loggerProvider = nil
		t.Cleanup(func() { loggerProvider = prev })

		assert.Nil(t, LoggerProvider())
	})
}
