// internal/application/usecase/visitor_tracker.go
package usecase

import (
	"context"
	"log"
)

const visitorTrackedKey = "v_tracked"

// VisitorTracker guards one counter increment per session.
//
// The session flag is set before the write goes out, so a failed write marks
// the session as tracked anyway and is never retried. That is the contract:
// at most one increment attempt per session, not exactly one successful
// increment. (Sessions whose only attempt fails are undercounted; accepted.)
type VisitorTracker struct {
	session KV
	counter VisitorCounter
}

func NewVisitorTracker(session KV, counter VisitorCounter) *VisitorTracker {
	return &VisitorTracker{session: session, counter: counter}
}

// Track runs the once-per-session increment. It reports whether an attempt
// was made this call; counter failures are logged and swallowed (the counter
// is telemetry, not a feature).
func (t *VisitorTracker) Track(ctx context.Context) bool {
	if t == nil || t.session == nil || t.counter == nil {
		return false
	}

	if _, tracked := t.session.Get(visitorTrackedKey); tracked {
		return false
	}
	if err := t.session.Set(visitorTrackedKey, "1"); err != nil {
		log.Printf("[visitor_tracker] WARN: could not set session flag: %v (skipping increment)", err)
		return false
	}

	if err := t.counter.IncrementTotalVisitors(ctx); err != nil {
		log.Printf("[visitor_tracker] WARN: visitor increment failed: %v (not retrying)", err)
	}
	return true
}
