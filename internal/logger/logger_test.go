package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestSetup(t *testing.T) {
	t.Run("applies the configured level", func(t *testing.T) {
		Setup("debug", "json")
		assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
	})

	t.Run("unknown level falls back to info", func(t *testing.T) {
		Setup("loud", "json")
		assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
	})
}
