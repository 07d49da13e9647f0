package config

import (
	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyLanguage       = "app_language"
	KeyImmersiveMode  = "immersive_mode"
	KeyLastConnected  = "last_connected"
	KeyCompletedLoads = "completed_loads"
)

// Default values
const (
	DefaultLanguage      = "system"
	DefaultImmersiveMode = true
)

// Settings manages the user-persisted preferences of the shell
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetLanguage returns the configured UI language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the UI language
func (s *Settings) SetLanguage(lang string) {
	if lang == "" {
		lang = DefaultLanguage
	}
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetImmersiveMode returns whether the shell hides platform chrome
func (s *Settings) GetImmersiveMode() bool {
	return s.app.Preferences().BoolWithFallback(KeyImmersiveMode, DefaultImmersiveMode)
}

// SetImmersiveMode sets the immersive mode toggle
func (s *Settings) SetImmersiveMode(enabled bool) {
	s.app.Preferences().SetBool(KeyImmersiveMode, enabled)
}

// GetLastConnected returns whether the last run ended with connectivity.
// Used only to pick the first screen shown while the initial check runs.
func (s *Settings) GetLastConnected() bool {
	return s.app.Preferences().BoolWithFallback(KeyLastConnected, true)
}

// SetLastConnected records the connectivity state for the next launch
func (s *Settings) SetLastConnected(connected bool) {
	s.app.Preferences().SetBool(KeyLastConnected, connected)
}

// GetCompletedLoads returns the lifetime count of finished page loads
func (s *Settings) GetCompletedLoads() int {
	return s.app.Preferences().Int(KeyCompletedLoads)
}

// AddCompletedLoads increments the lifetime count of finished page loads
func (s *Settings) AddCompletedLoads(n int) {
	if n <= 0 {
		return
	}
	current := s.app.Preferences().Int(KeyCompletedLoads)
	s.app.Preferences().SetInt(KeyCompletedLoads, current+n)
}
