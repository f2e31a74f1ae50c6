package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValidade(t *testing.T) {
	t.Run("plain date", func(t *testing.T) {
		got, err := ParseValidade("2027-06-15")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2027, 6, 15, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("RFC 3339 timestamp", func(t *testing.T) {
		got, err := ParseValidade("2027-06-15T10:30:00Z")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2027, 6, 15, 10, 30, 0, 0, time.UTC), got)
	})

	t.Run("rejects other formats", func(t *testing.T) {
		for _, raw := range []string{"", "15/06/2027", "junho", "2027-13-40"} {
			_, err := ParseValidade(raw)
			assert.Error(t, err, "raw=%q", raw)
		}
	})
}

func TestFormatHora(t *testing.T) {
	hora := time.Date(2026, 3, 1, 14, 5, 9, 0, time.UTC)
	assert.Equal(t, "01/03/2026 14:05:09", FormatHora(hora))
}
