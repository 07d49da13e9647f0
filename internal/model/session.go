package model

import (
	"time"
)

// Progress bounds for a single page load
const (
	ProgressMin = 0
	ProgressMax = 100
)

// PageSession represents the single active page session
type PageSession struct {
	ID           string
	URL          string
	Phase        LoadPhase
	Connectivity ConnectivityStatus
	Progress     int       // 0 to 100, non-decreasing within one load
	StartedAt    time.Time // when the session was created
	LoadStarted  time.Time // when the current load began
	FinishedAt   time.Time // when the last load finished

	// Counters for the teardown summary
	LoadCount      int // navigations observed (page-started events)
	FinishCount    int // completed loads
	ResourceErrors int // renderer resource errors, logged only
	Injections     int // cosmetic script injections performed
	LastError      string
}

// NewPageSession creates a session in its initial state for the given target
func NewPageSession(id, url string) *PageSession {
	return &PageSession{
		ID:           id,
		URL:          url,
		Phase:        PhaseCheckingConnection,
		Connectivity: ConnectivityUnknown,
		Progress:     ProgressMin,
		StartedAt:    time.Now(),
	}
}

// ClampProgress bounds a raw renderer progress value to the valid range
func ClampProgress(p int) int {
	if p < ProgressMin {
		return ProgressMin
	}
	if p > ProgressMax {
		return ProgressMax
	}
	return p
}

// Uptime returns how long the session has existed
func (ps *PageSession) Uptime() time.Duration {
	return time.Since(ps.StartedAt)
}

// LoadElapsed returns the duration of the current or last load, or zero
// if no load has started yet
func (ps *PageSession) LoadElapsed() time.Duration {
	if ps.LoadStarted.IsZero() {
		return 0
	}
	if ps.Phase == PhaseLoaded && !ps.FinishedAt.IsZero() {
		return ps.FinishedAt.Sub(ps.LoadStarted)
	}
	return time.Since(ps.LoadStarted)
}
