package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if lang := settings.GetLanguage(); lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("hi")
	if lang := settings.GetLanguage(); lang != "hi" {
		t.Errorf("Expected language 'hi', got %s", lang)
	}

	// Empty resets to default
	settings.SetLanguage("")
	if lang := settings.GetLanguage(); lang != DefaultLanguage {
		t.Errorf("Expected language reset to %s, got %s", DefaultLanguage, lang)
	}
}

func TestImmersiveMode(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if !settings.GetImmersiveMode() {
		t.Error("Expected immersive mode enabled by default")
	}

	settings.SetImmersiveMode(false)
	if settings.GetImmersiveMode() {
		t.Error("Expected immersive mode disabled after toggle")
	}
}

func TestLastConnected(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if !settings.GetLastConnected() {
		t.Error("Expected optimistic last-connected default")
	}

	settings.SetLastConnected(false)
	if settings.GetLastConnected() {
		t.Error("Expected last-connected false after set")
	}
}

func TestCompletedLoads(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if count := settings.GetCompletedLoads(); count != 0 {
		t.Errorf("Expected zero completed loads initially, got %d", count)
	}

	settings.AddCompletedLoads(3)
	settings.AddCompletedLoads(2)
	settings.AddCompletedLoads(0)  // ignored
	settings.AddCompletedLoads(-5) // ignored

	if count := settings.GetCompletedLoads(); count != 5 {
		t.Errorf("Expected 5 completed loads, got %d", count)
	}
}
