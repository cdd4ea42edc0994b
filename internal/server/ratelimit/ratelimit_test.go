package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenBucket_AllowUntilEmpty(t *testing.T) {
	// Very slow refill so the test is not timing sensitive.
	bucket := newTokenBucket(3, 0.001)

	for i := 0; i < 3; i++ {
		assert.True(t, bucket.allow(), "request %d should be allowed", i)
	}
	assert.False(t, bucket.allow())
}

func TestTokenBucket_Refill(t *testing.T) {
	// 100 tokens per second refills a drained bucket quickly.
	bucket := newTokenBucket(1, 100)

	require.True(t, bucket.allow())
	require.False(t, bucket.allow())

	time.Sleep(50 * time.Millisecond)
	assert.True(t, bucket.allow())
}

func TestTokenBucket_CapacityCap(t *testing.T) {
	bucket := newTokenBucket(2, 1000)
	time.Sleep(20 * time.Millisecond)

	remaining, _ := bucket.getStatus()
	assert.Equal(t, 2, remaining)
}

func newTestLimiter(configs []EndpointConfig) *Limiter {
	return NewLimiter(&Config{
		Enabled:         true,
		DefaultLimit:    1000,
		DefaultWindow:   time.Minute,
		Whitelist:       make(map[string]bool),
		Blacklist:       make(map[string]bool),
		EndpointConfigs: configs,
	})
}

func TestLimiter_EndpointLimit(t *testing.T) {
	limiter := newTestLimiter([]EndpointConfig{
		{Path: "/api/pathways/query", Method: "POST", Limit: 2, Window: time.Hour, Burst: 2},
	})
	defer limiter.Stop()

	allowed, info := limiter.Allow("10.0.0.1", "/api/pathways/query", "POST")
	assert.True(t, allowed)
	assert.Equal(t, 2, info.Limit)

	allowed, _ = limiter.Allow("10.0.0.1", "/api/pathways/query", "POST")
	assert.True(t, allowed)

	allowed, info = limiter.Allow("10.0.0.1", "/api/pathways/query", "POST")
	assert.False(t, allowed)
	assert.Greater(t, info.RetryAfter, time.Duration(0))
}

func TestLimiter_ClientsAreIndependent(t *testing.T) {
	limiter := newTestLimiter([]EndpointConfig{
		{Path: "/api/pathways/query", Method: "POST", Limit: 1, Window: time.Hour, Burst: 1},
	})
	defer limiter.Stop()

	allowed, _ := limiter.Allow("10.0.0.1", "/api/pathways/query", "POST")
	require.True(t, allowed)
	allowed, _ = limiter.Allow("10.0.0.1", "/api/pathways/query", "POST")
	require.False(t, allowed)

	allowed, _ = limiter.Allow("10.0.0.2", "/api/pathways/query", "POST")
	assert.True(t, allowed)
}

func TestLimiter_Whitelist(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  1,
		DefaultWindow: time.Hour,
		Whitelist:     map[string]bool{"10.0.0.1": true},
		Blacklist:     make(map[string]bool),
	})
	defer limiter.Stop()

	for i := 0; i < 5; i++ {
		allowed, _ := limiter.Allow("10.0.0.1", "/api/organizations", "GET")
		assert.True(t, allowed)
	}
}

func TestLimiter_Blacklist(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
		Whitelist:     make(map[string]bool),
		Blacklist:     map[string]bool{"10.0.0.9": true},
	})
	defer limiter.Stop()

	allowed, info := limiter.Allow("10.0.0.9", "/api/organizations", "GET")
	assert.False(t, allowed)
	assert.False(t, info.Allowed)
}

func TestLimiter_Disabled(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: false})
	defer limiter.Stop()

	for i := 0; i < 10; i++ {
		allowed, _ := limiter.Allow("10.0.0.1", "/api/pathways/query", "POST")
		assert.True(t, allowed)
	}
}

func TestMatchEndpoint_Exact(t *testing.T) {
	configs := DefaultEndpointConfigs()

	config := MatchEndpoint("/api/pathways/query", "POST", configs)
	require.NotNil(t, config)
	assert.Equal(t, 20, config.Limit)
	assert.Equal(t, time.Hour, config.Window)
}

func TestMatchEndpoint_PrefixForWrites(t *testing.T) {
	configs := DefaultEndpointConfigs()

	config := MatchEndpoint("/api/organizations/42", "PUT", configs)
	require.NotNil(t, config)
	assert.Equal(t, "/api/organizations/", config.Path)
}

func TestMatchEndpoint_ExactWinsOverPrefix(t *testing.T) {
	configs := []EndpointConfig{
		{Path: "/api/programs/", Method: "POST", Limit: 100, Window: time.Minute},
		{Path: "/api/programs/categorize", Method: "POST", Limit: 10, Window: time.Hour},
	}

	config := MatchEndpoint("/api/programs/categorize", "POST", configs)
	require.NotNil(t, config)
	assert.Equal(t, 10, config.Limit)
}

func TestMatchEndpoint_HealthUnlimited(t *testing.T) {
	config := MatchEndpoint("/health", "GET", DefaultEndpointConfigs())
	require.NotNil(t, config)
	assert.Equal(t, 0, config.Limit)
}

func TestMatchEndpoint_NoMatch(t *testing.T) {
	config := MatchEndpoint("/api/organizations", "GET", DefaultEndpointConfigs())
	assert.Nil(t, config)
}

func TestMatchEndpoint_MethodMustMatch(t *testing.T) {
	configs := DefaultEndpointConfigs()

	config := MatchEndpoint("/api/organizations/42", "GET", configs)
	assert.Nil(t, config)
}
