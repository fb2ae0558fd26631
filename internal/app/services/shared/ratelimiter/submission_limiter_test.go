package ratelimiter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubmissionLimiterAllow(t *testing.T) {
	t.Run("burst consumed per key", func(t *testing.T) {
		limiter := NewSubmissionLimiter(1, 2)

		assert.True(t, limiter.Allow("patient-1"))
		assert.True(t, limiter.Allow("patient-1"))
		assert.False(t, limiter.Allow("patient-1"), "third submission inside the window is rejected")
	})

	t.Run("keys are throttled independently", func(t *testing.T) {
		limiter := NewSubmissionLimiter(1, 1)

		assert.True(t, limiter.Allow("patient-1"))
		assert.False(t, limiter.Allow("patient-1"))
		assert.True(t, limiter.Allow("patient-2"), "a busy patient must not starve the others")
	})

	t.Run("non-positive settings fall back to defaults", func(t *testing.T) {
		limiter := NewSubmissionLimiter(0, 0)
		assert.True(t, limiter.Allow("patient-1"))
	})
}
