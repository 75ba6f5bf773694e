package telemetry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLogger(t *testing.T) {
	// Unknown formats fall back to the console encoder.
	for _, format := range []string{"pretty", "json", "xml"} {
		logger, err := NewLogger("info", format)
		assert.NoError(t, err, "format %q", format)
		assert.NotNil(t, logger)
	}

	_, err := NewLogger("loud", "pretty")
	assert.Error(t, err)
}
