package middleware

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiterEnforcesBucket(t *testing.T) {
	rl := NewRateLimiter(2, time.Minute)

	assert.True(t, rl.allow("10.0.0.1"))
	assert.True(t, rl.allow("10.0.0.1"))
	assert.False(t, rl.allow("10.0.0.1"))

	// Other clients keep their own bucket.
	assert.True(t, rl.allow("10.0.0.2"))
}

func TestRateLimiterRefillsDespiteFrequentRetries(t *testing.T) {
	rl := NewRateLimiter(2, 100*time.Millisecond)

	assert.True(t, rl.allow("10.0.0.1"))
	assert.True(t, rl.allow("10.0.0.1"))
	assert.False(t, rl.allow("10.0.0.1"))

	// Retrying faster than the window must still regain a token once a
	// full window has elapsed.
	regained := false
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		time.Sleep(60 * time.Millisecond)
		if rl.allow("10.0.0.1") {
			regained = true
			break
		}
	}
	assert.True(t, regained)
}

func TestRateLimiterCapsRefillAtBucketSize(t *testing.T) {
	rl := NewRateLimiter(2, 50*time.Millisecond)

	assert.True(t, rl.allow("10.0.0.1"))

	// Several idle windows credit at most one full bucket.
	time.Sleep(200 * time.Millisecond)
	assert.True(t, rl.allow("10.0.0.1"))
	assert.True(t, rl.allow("10.0.0.1"))
	assert.False(t, rl.allow("10.0.0.1"))
}
