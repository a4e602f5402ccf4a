package ratelimiter

import (
	"strings"
	"sync"
	"time"
)

// Namespaces used by the auth endpoints
const (
	NamespaceLogin          = "login"
	NamespaceRegister       = "register"
	NamespaceForgotPassword = "forgot_password"
	NamespaceResetPassword  = "reset_password"
)

// RatePolicy defines the rate limit configuration for a namespace
type RatePolicy struct {
	MaxAttempts int
	Window      time.Duration
}

// DefaultAuthPolicies are applied to the unauthenticated auth routes, keyed by client IP
var DefaultAuthPolicies = map[string]RatePolicy{
	NamespaceLogin:          {MaxAttempts: 10, Window: 5 * time.Minute},
	NamespaceRegister:       {MaxAttempts: 5, Window: time.Hour},
	NamespaceForgotPassword: {MaxAttempts: 5, Window: 15 * time.Minute},
	NamespaceResetPassword:  {MaxAttempts: 10, Window: 15 * time.Minute},
}

// RateLimiter is an in-memory sliding window limiter. Attempts are tracked
// per namespace:key and each namespace carries its own policy.
type RateLimiter struct {
	mu          sync.Mutex
	attempts    map[string][]time.Time
	policies    map[string]RatePolicy
	now         func() time.Time
	stopCleanup chan struct{}
	stopped     bool
}

// NewRateLimiter creates a limiter and starts its background cleanup goroutine.
// Call Stop to release it.
func NewRateLimiter() *RateLimiter {
	return newRateLimiter(time.Now, time.Minute)
}

// NewAuthRateLimiter returns a limiter configured with DefaultAuthPolicies
func NewAuthRateLimiter() *RateLimiter {
	rl := NewRateLimiter()
	for namespace, policy := range DefaultAuthPolicies {
		rl.SetPolicy(namespace, policy.MaxAttempts, policy.Window)
	}
	return rl
}

func newRateLimiter(now func() time.Time, cleanupEvery time.Duration) *RateLimiter {
	rl := &RateLimiter{
		attempts:    make(map[string][]time.Time),
		policies:    make(map[string]RatePolicy),
		now:         now,
		stopCleanup: make(chan struct{}),
	}
	go rl.cleanupLoop(cleanupEvery)
	return rl
}

// SetPolicy configures the rate limit policy for a namespace
func (rl *RateLimiter) SetPolicy(namespace string, maxAttempts int, window time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	rl.policies[namespace] = RatePolicy{
		MaxAttempts: maxAttempts,
		Window:      window,
	}
}

// Allow records an attempt and reports whether it is within the namespace policy.
// A namespace without a policy is denied.
func (rl *RateLimiter) Allow(namespace, key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	policy, exists := rl.policies[namespace]
	if !exists {
		return false
	}

	now := rl.now()
	compositeKey := namespace + ":" + key
	valid := recent(rl.attempts[compositeKey], now.Add(-policy.Window))

	if len(valid) >= policy.MaxAttempts {
		rl.attempts[compositeKey] = valid
		return false
	}

	rl.attempts[compositeKey] = append(valid, now)
	return true
}

// Reset forgets every attempt of namespace:key, e.g. after a successful login
func (rl *RateLimiter) Reset(namespace, key string) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	delete(rl.attempts, namespace+":"+key)
}

// RetryAfter returns how long until the oldest attempt in the window expires,
// rounded up to the second. Zero means the key is not throttled.
func (rl *RateLimiter) RetryAfter(namespace, key string) time.Duration {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	policy, exists := rl.policies[namespace]
	if !exists {
		return 0
	}

	now := rl.now()
	valid := recent(rl.attempts[namespace+":"+key], now.Add(-policy.Window))
	if len(valid) == 0 {
		return 0
	}

	remaining := valid[0].Add(policy.Window).Sub(now)
	if remaining <= 0 {
		return 0
	}
	return remaining.Truncate(time.Second) + time.Second
}

// recent returns the attempts after cutoff. Attempts are appended in order so the slice stays sorted.
func recent(attempts []time.Time, cutoff time.Time) []time.Time {
	for i, t := range attempts {
		if t.After(cutoff) {
			return attempts[i:]
		}
	}
	return attempts[:0]
}

func (rl *RateLimiter) cleanupLoop(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanup()
		case <-rl.stopCleanup:
			return
		}
	}
}

// cleanup drops keys with no attempt left inside their namespace window
func (rl *RateLimiter) cleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	for compositeKey, attempts := range rl.attempts {
		namespace, _, _ := strings.Cut(compositeKey, ":")

		policy, exists := rl.policies[namespace]
		if !exists || len(recent(attempts, now.Add(-policy.Window))) == 0 {
			delete(rl.attempts, compositeKey)
		}
	}
}

// Stop stops the cleanup goroutine. It is safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if !rl.stopped {
		close(rl.stopCleanup)
		rl.stopped = true
	}
}
