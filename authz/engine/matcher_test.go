package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPatternMatches(t *testing.T) {
	pattern := parsePattern("/api/v1/leaves/:id")

	t.Run("NumericParam", func(t *testing.T) {
		assert.True(t, pattern.matches("/api/v1/leaves/17"))
	})

	t.Run("NonNumericParam", func(t *testing.T) {
		assert.False(t, pattern.matches("/api/v1/leaves/abc"))
		assert.False(t, pattern.matches("/api/v1/leaves/17a"))
		assert.False(t, pattern.matches("/api/v1/leaves/-3"))
	})

	t.Run("SegmentCountMismatch", func(t *testing.T) {
		assert.False(t, pattern.matches("/api/v1/leaves"))
		assert.False(t, pattern.matches("/api/v1/leaves/17/status"))
	})

	t.Run("LiteralMismatch", func(t *testing.T) {
		assert.False(t, pattern.matches("/api/v1/users/17"))
	})

	t.Run("TrailingSlashNormalized", func(t *testing.T) {
		assert.True(t, pattern.matches("/api/v1/leaves/17/"))
	})
}

func TestPatternSuffixSegments(t *testing.T) {
	pattern := parsePattern("/api/v1/leaves/:id/status")

	assert.True(t, pattern.matches("/api/v1/leaves/17/status"))
	assert.False(t, pattern.matches("/api/v1/leaves/17"))
	assert.False(t, pattern.matches("/api/v1/leaves/abc/status"))
}

func TestExtractParam(t *testing.T) {
	pattern := parsePattern("/api/v1/users/:id/attendance")

	param, ok := pattern.extractParam("/api/v1/users/42/attendance")
	assert.True(t, ok)
	assert.Equal(t, "42", param)

	_, ok = pattern.extractParam("/api/v1/users/42")
	assert.False(t, ok)

	literal := parsePattern("/api/v1/users")
	_, ok = literal.extractParam("/api/v1/users")
	assert.False(t, ok)
}

func TestIsNumericToken(t *testing.T) {
	assert.True(t, isNumericToken("0"))
	assert.True(t, isNumericToken("123456789"))
	assert.False(t, isNumericToken(""))
	assert.False(t, isNumericToken("12.5"))
	assert.False(t, isNumericToken("1e3"))
	assert.False(t, isNumericToken("latest"))
}
