package domain

import (
	"fmt"
	"time"
)

// Window is the half-open time range [From, To).
type Window struct {
	From time.Time
	To   time.Time
}

// Validate checks that the window is non-empty.
func (w Window) Validate() error {
	if w.From.IsZero() || w.To.IsZero() {
		return fmt.Errorf("%w: both bounds are required", ErrInvalidWindow)
	}
	if !w.To.After(w.From) {
		return fmt.Errorf("%w: %s is not after %s", ErrInvalidWindow, w.To.Format(time.RFC3339), w.From.Format(time.RFC3339))
	}
	return nil
}

// Contains reports whether t falls inside the window.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.From) && t.Before(w.To)
}

// WindowDefaults fills in omitted window bounds.
type WindowDefaults struct {
	// Trailing is the window length used when both bounds are omitted.
	Trailing time.Duration
	// Lookback is how far before To the window starts when only From is omitted.
	Lookback time.Duration
}

// DefaultWindowDefaults matches the trailing 30 days used by the accounting
// download and the six month lookback of the self-service export.
var DefaultWindowDefaults = WindowDefaults{
	Trailing: 30 * 24 * time.Hour,
	Lookback: 186 * 24 * time.Hour,
}

// ResolveWindow builds a window from optional bounds.
func ResolveWindow(from, to *time.Time, now time.Time, d WindowDefaults) (Window, error) {
	var w Window

	switch {
	case from == nil && to == nil:
		w = Window{From: now.Add(-d.Trailing), To: now}
	case from == nil:
		w = Window{From: to.Add(-d.Lookback), To: *to}
	case to == nil:
		w = Window{From: *from, To: now}
	default:
		w = Window{From: *from, To: *to}
	}

	w.From = w.From.UTC()
	w.To = w.To.UTC()

	if err := w.Validate(); err != nil {
		return Window{}, err
	}

	return w, nil
}
