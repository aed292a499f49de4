package generation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestAccountLimiter_QuotaWithinWindow(t *testing.T) {
	l := NewAccountLimiter(10, time.Minute)

	for i := 0; i < 10; i++ {
		require.True(t, l.Allow(1), "call %d should be allowed", i+1)
	}
	require.False(t, l.Allow(1), "11th call within the window must be denied")
}

func TestAccountLimiter_QuotaIsPerAccount(t *testing.T) {
	l := NewAccountLimiter(2, time.Minute)

	require.True(t, l.Allow(1))
	require.True(t, l.Allow(1))
	require.False(t, l.Allow(1))

	// A different account still has its full quota.
	require.True(t, l.Allow(2))
}

func TestAccountLimiter_WindowSlides(t *testing.T) {
	current := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	l := NewAccountLimiter(3, time.Minute)
	l.now = func() time.Time { return current }

	require.True(t, l.Allow(1))
	require.True(t, l.Allow(1))
	require.True(t, l.Allow(1))
	require.False(t, l.Allow(1))

	// 30s later the three calls are still inside the window.
	current = current.Add(30 * time.Second)
	require.False(t, l.Allow(1))

	// Once they age past the window the quota is back in full.
	current = current.Add(31 * time.Second)
	require.True(t, l.Allow(1))
	require.True(t, l.Allow(1))
	require.True(t, l.Allow(1))
	require.False(t, l.Allow(1))
}

func TestAccountLimiter_DeniedCallDoesNotConsumeQuota(t *testing.T) {
	current := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	l := NewAccountLimiter(1, time.Minute)
	l.now = func() time.Time { return current }

	require.True(t, l.Allow(1))
	require.False(t, l.Allow(1))
	require.False(t, l.Allow(1))

	// Only the single allowed call occupies the window, so quota returns
	// exactly one window after it, regardless of how many denials happened.
	current = current.Add(time.Minute + time.Second)
	require.True(t, l.Allow(1))
}

func TestAccountLimiter_EvictsIdleAccounts(t *testing.T) {
	current := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	l := NewAccountLimiter(3, time.Minute)
	l.now = func() time.Time { return current }

	require.True(t, l.Allow(1))
	require.True(t, l.Allow(2))
	require.Len(t, l.calls, 2)

	// Account 1 goes idle; a call from another account past the window
	// triggers the sweep and drops its entry entirely.
	current = current.Add(2 * time.Minute)
	require.True(t, l.Allow(2))

	_, tracked := l.calls[1]
	require.False(t, tracked, "idle account must be evicted, not kept forever")
	require.Len(t, l.calls, 1)
}
