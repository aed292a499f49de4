package generation

import (
	"sync"
	"time"
)

// AccountLimiter enforces the per-account generation quota over a rolling
// window. A token-bucket would refill gradually; the contract here is that
// the full quota returns as soon as old calls leave the window, so timestamps
// are kept and pruned instead.
type AccountLimiter struct {
	mu        sync.Mutex
	limit     int
	window    time.Duration
	calls     map[uint64][]time.Time
	lastSweep time.Time
	now       func() time.Time
}

func NewAccountLimiter(limit int, window time.Duration) *AccountLimiter {
	return &AccountLimiter{
		limit:  limit,
		window: window,
		calls:  make(map[uint64][]time.Time),
		now:    time.Now,
	}
}

// Allow records and permits the call if the account has quota left in the
// current window. Safe for concurrent use; check and increment are one
// critical section so racing requests cannot both claim the last slot.
func (l *AccountLimiter) Allow(accountID uint64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	cutoff := now.Add(-l.window)
	l.sweep(now, cutoff)

	kept := l.calls[accountID][:0]
	for _, t := range l.calls[accountID] {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}

	if len(kept) >= l.limit {
		l.calls[accountID] = kept
		return false
	}

	l.calls[accountID] = append(kept, now)
	return true
}

// sweep drops accounts whose newest call has left the window, at most once
// per window, so the map does not grow with every account ever seen.
// Timestamps per account are appended in order, so checking the last one is
// enough. Caller holds the lock.
func (l *AccountLimiter) sweep(now, cutoff time.Time) {
	if now.Sub(l.lastSweep) < l.window {
		return
	}
	for id, ts := range l.calls {
		if len(ts) == 0 || !ts[len(ts)-1].After(cutoff) {
			delete(l.calls, id)
		}
	}
	l.lastSweep = now
}
