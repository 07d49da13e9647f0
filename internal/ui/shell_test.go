package ui

import (
	"strings"
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/Shriram2005/MindVora-WebApp/internal/config"
	"github.com/Shriram2005/MindVora-WebApp/internal/model"
)

type fakeControls struct {
	retries    int
	backResult bool
}

func (f *fakeControls) Retry() {
	f.retries++
}

func (f *fakeControls) HandleBack() bool {
	return f.backResult
}

func newTestShell(t *testing.T) (*StatusShell, *fakeControls) {
	t.Helper()

	app := test.NewApp()
	window := app.NewWindow("test")
	controls := &fakeControls{}
	settings := config.NewSettings(app)

	return NewStatusShell(window, app, controls, settings), controls
}

func TestNewStatusShellShowsCheckingScreen(t *testing.T) {
	shell, _ := newTestShell(t)

	if !shell.checkingScreen.Visible() {
		t.Error("Checking screen should be visible initially")
	}
	if shell.offlineScreen.Visible() {
		t.Error("Offline screen should be hidden initially")
	}
	if shell.loadingScreen.Visible() {
		t.Error("Loading screen should be hidden initially")
	}
	if shell.loadedScreen.Visible() {
		t.Error("Loaded screen should be hidden initially")
	}
}

func TestApplySnapshotSwitchesScreens(t *testing.T) {
	tests := []struct {
		name  string
		phase model.LoadPhase
	}{
		{"checking", model.PhaseCheckingConnection},
		{"offline", model.PhaseNoInternet},
		{"loading", model.PhaseLoading},
		{"loaded", model.PhaseLoaded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shell, _ := newTestShell(t)

			shell.applySnapshot(model.PageSession{Phase: tt.phase})

			visible := map[model.LoadPhase]bool{
				model.PhaseCheckingConnection: shell.checkingScreen.Visible(),
				model.PhaseNoInternet:         shell.offlineScreen.Visible(),
				model.PhaseLoading:            shell.loadingScreen.Visible(),
				model.PhaseLoaded:             shell.loadedScreen.Visible(),
			}

			for phase, isVisible := range visible {
				if phase == tt.phase && !isVisible {
					t.Errorf("Screen for phase %s should be visible", phase)
				}
				if phase != tt.phase && isVisible {
					t.Errorf("Screen for phase %s should be hidden", phase)
				}
			}
		})
	}
}

func TestApplySnapshotLoadingProgress(t *testing.T) {
	shell, _ := newTestShell(t)

	shell.applySnapshot(model.PageSession{Phase: model.PhaseLoading, Progress: 40})

	if shell.progressBar.Value != 0.4 {
		t.Errorf("Expected progress bar value 0.4, got %v", shell.progressBar.Value)
	}
	if !strings.Contains(shell.progressLabel.Text, "40%") {
		t.Errorf("Expected progress label to contain 40%%, got %q", shell.progressLabel.Text)
	}
}

func TestApplySnapshotLoadedShowsURL(t *testing.T) {
	shell, _ := newTestShell(t)

	shell.applySnapshot(model.PageSession{
		Phase: model.PhaseLoaded,
		URL:   "https://mindvora.example/app",
	})

	if !strings.Contains(shell.loadedLabel.Text, "https://mindvora.example/app") {
		t.Errorf("Expected loaded label to show URL, got %q", shell.loadedLabel.Text)
	}
}

func TestApplySnapshotRecordsConnectivity(t *testing.T) {
	app := test.NewApp()
	window := app.NewWindow("test")
	settings := config.NewSettings(app)
	shell := NewStatusShell(window, app, &fakeControls{}, settings)

	shell.applySnapshot(model.PageSession{Phase: model.PhaseNoInternet})
	if settings.GetLastConnected() {
		t.Error("Offline snapshot should record disconnected state")
	}

	shell.applySnapshot(model.PageSession{Phase: model.PhaseLoaded})
	if !settings.GetLastConnected() {
		t.Error("Loaded snapshot should record connected state")
	}
}

func TestApplySnapshotCountsCompletedLoads(t *testing.T) {
	app := test.NewApp()
	window := app.NewWindow("test")
	settings := config.NewSettings(app)
	shell := NewStatusShell(window, app, &fakeControls{}, settings)

	shell.applySnapshot(model.PageSession{Phase: model.PhaseLoaded, FinishCount: 1})
	shell.applySnapshot(model.PageSession{Phase: model.PhaseLoaded, FinishCount: 1})
	shell.applySnapshot(model.PageSession{Phase: model.PhaseLoaded, FinishCount: 2})

	if got := settings.GetCompletedLoads(); got != 2 {
		t.Errorf("Expected 2 completed loads recorded, got %d", got)
	}
}

func TestRetryButtonInvokesControls(t *testing.T) {
	shell, controls := newTestShell(t)

	test.Tap(shell.retryButton)

	if controls.retries != 1 {
		t.Errorf("Expected 1 retry, got %d", controls.retries)
	}
}
