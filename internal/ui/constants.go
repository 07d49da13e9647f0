package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconGlobe   = "🌐"
	IconOffline = "📡"
	IconRetry   = "↻"
	IconWarning = "⚠"
)

// Text fragments
const (
	MiddleDotSeparator  = " · "
	ProgressLabelFormat = "%d%%"
)

// Layout sizing (status screens)
const (
	StatusIconTextSize float32 = 48
	ProgressBarWidth   float32 = 260
	RetryButtonWidth   float32 = 180

	// Touch target minimum sizes (iOS/Android guidelines)
	MinTouchTargetSize float32 = 44
	MobileButtonHeight float32 = 48
)
