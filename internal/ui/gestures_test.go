package ui

import (
	"testing"
)

func TestDetectSwipeDirection(t *testing.T) {
	tests := []struct {
		name     string
		dx, dy   float32
		expected GestureType
	}{
		{"swipe right", 100, 10, GestureSwipeRight},
		{"swipe left", -100, 10, GestureSwipeLeft},
		{"swipe down", 10, 100, GestureSwipeDown},
		{"swipe up", 10, -100, GestureSwipeUp},
		{"diagonal favors larger axis", 60, 90, GestureSwipeDown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got GestureType
			fired := false
			gh := NewGestureHandler(func(g GestureType) {
				got = g
				fired = true
			})

			gh.detectSwipeDirection(tt.dx, tt.dy)

			if !fired {
				t.Fatal("Expected a gesture to fire")
			}
			if got != tt.expected {
				t.Errorf("Expected gesture %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestTriggerGestureNilCallback(t *testing.T) {
	gh := NewGestureHandler(nil)

	// Must not panic
	gh.triggerGesture(GestureTap)
}

func TestNewGestureHandlerDefaults(t *testing.T) {
	gh := NewGestureHandler(nil)

	if gh.swipeThreshold != DefaultSwipeThreshold {
		t.Errorf("Expected swipe threshold %v, got %v", DefaultSwipeThreshold, gh.swipeThreshold)
	}
	if gh.longPressDuration != DefaultLongPressDuration {
		t.Errorf("Expected long press duration %v, got %v", DefaultLongPressDuration, gh.longPressDuration)
	}
}
