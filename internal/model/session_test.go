package model

import (
	"testing"
	"time"
)

func TestNewPageSession(t *testing.T) {
	session := NewPageSession("session-1", "https://example.com")

	if session.ID != "session-1" {
		t.Errorf("Expected ID 'session-1', got '%s'", session.ID)
	}

	if session.URL != "https://example.com" {
		t.Errorf("Expected URL 'https://example.com', got '%s'", session.URL)
	}

	if session.Phase != PhaseCheckingConnection {
		t.Errorf("Expected initial phase %s, got %s", PhaseCheckingConnection, session.Phase)
	}

	if session.Connectivity != ConnectivityUnknown {
		t.Errorf("Expected initial connectivity %s, got %s", ConnectivityUnknown, session.Connectivity)
	}

	if session.Progress != ProgressMin {
		t.Errorf("Expected initial progress %d, got %d", ProgressMin, session.Progress)
	}

	if session.StartedAt.IsZero() {
		t.Error("Expected StartedAt to be set")
	}
}

func TestClampProgress(t *testing.T) {
	tests := []struct {
		input    int
		expected int
	}{
		{-10, 0},
		{0, 0},
		{40, 40},
		{100, 100},
		{150, 100},
	}

	for _, test := range tests {
		result := ClampProgress(test.input)
		if result != test.expected {
			t.Errorf("ClampProgress(%d) = %d, expected %d", test.input, result, test.expected)
		}
	}
}

func TestPageSession_LoadElapsed(t *testing.T) {
	session := NewPageSession("session-1", "https://example.com")

	// No load started yet
	if elapsed := session.LoadElapsed(); elapsed != 0 {
		t.Errorf("Expected zero elapsed before first load, got %v", elapsed)
	}

	// Finished load reports the started-to-finished window
	session.LoadStarted = time.Now().Add(-3 * time.Second)
	session.FinishedAt = session.LoadStarted.Add(2 * time.Second)
	session.Phase = PhaseLoaded

	elapsed := session.LoadElapsed()
	if elapsed != 2*time.Second {
		t.Errorf("Expected elapsed 2s for finished load, got %v", elapsed)
	}

	// In-flight load keeps counting
	session.Phase = PhaseLoading
	if elapsed := session.LoadElapsed(); elapsed < 3*time.Second {
		t.Errorf("Expected elapsed >= 3s for in-flight load, got %v", elapsed)
	}
}
