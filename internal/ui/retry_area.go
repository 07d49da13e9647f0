package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/mobile"
)

// Cooldown between gesture-triggered retries so a long pull does not fire
// several re-checks
const retryCooldown = 2 * time.Second

// RetryArea wraps the offline screen and triggers a connectivity re-check on
// a pull-down gesture, in addition to the explicit retry button
type RetryArea struct {
	*fyne.Container
	gestureHandler *GestureHandler
	retryFunc      func()
	isRetrying     bool
}

// NewRetryArea creates a pull-to-retry wrapper around the given content
func NewRetryArea(content fyne.CanvasObject, retryFunc func()) *RetryArea {
	ra := &RetryArea{
		Container: container.NewStack(content),
		retryFunc: retryFunc,
	}

	ra.gestureHandler = NewGestureHandler(ra.handleGesture)
	return ra
}

// handleGesture maps a pull-down to a retry
func (ra *RetryArea) handleGesture(gesture GestureType) {
	if gesture == GestureSwipeDown && !ra.isRetrying {
		ra.triggerRetry()
	}
}

// triggerRetry invokes the retry callback with a cooldown
func (ra *RetryArea) triggerRetry() {
	if ra.retryFunc == nil || ra.isRetrying {
		return
	}
	ra.isRetrying = true
	ra.retryFunc()

	go func() {
		time.Sleep(retryCooldown)
		ra.isRetrying = false
	}()
}

// TouchDown handles touch down events
func (ra *RetryArea) TouchDown(event *mobile.TouchEvent) {
	if ra.gestureHandler != nil {
		ra.gestureHandler.TouchDown(event)
	}
}

// TouchUp handles touch up events
func (ra *RetryArea) TouchUp(event *mobile.TouchEvent) {
	if ra.gestureHandler != nil {
		ra.gestureHandler.TouchUp(event)
	}
}

// TouchCancel handles touch cancel events
func (ra *RetryArea) TouchCancel(event *mobile.TouchEvent) {
	if ra.gestureHandler != nil {
		ra.gestureHandler.TouchCancel(event)
	}
}
