package ui

import (
	"fmt"
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/Shriram2005/MindVora-WebApp/internal/config"
	"github.com/Shriram2005/MindVora-WebApp/internal/model"
)

// SessionControls is the slice of the controller the shell drives: manual
// retry and back interception.
type SessionControls interface {
	Retry()
	HandleBack() bool
}

// StatusShell is the Fyne status chrome. It implements the controller's
// Renderer by marshaling snapshots onto the UI thread and switching between
// the four status screens.
type StatusShell struct {
	window       fyne.Window
	controls     SessionControls
	localization *Localization
	settings     *config.Settings
	mobileUI     *MobileUI

	// Screens, exactly one visible at a time
	checkingScreen *fyne.Container
	offlineScreen  *RetryArea
	loadingScreen  *fyne.Container
	loadedScreen   *fyne.Container

	checkingSpinner *widget.ProgressBarInfinite
	progressBar     *widget.ProgressBar
	progressLabel   *widget.Label
	loadedLabel     *widget.Label
	retryButton     *widget.Button

	lastFinishCount int
}

// NewStatusShell creates and installs the status chrome on the given window.
func NewStatusShell(window fyne.Window, app fyne.App, controls SessionControls, settings *config.Settings) *StatusShell {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	s := &StatusShell{
		window:       window,
		controls:     controls,
		localization: localization,
		settings:     settings,
		mobileUI:     NewMobileUI(app),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))
	s.setupUI()

	// Platform back/close action: unwind in-page history before exiting
	window.SetCloseIntercept(func() {
		if !s.controls.HandleBack() {
			s.window.Close()
		}
	})

	return s
}

// Render implements session.Renderer. Called from the reducer goroutine.
func (s *StatusShell) Render(snapshot model.PageSession) {
	fyne.Do(func() {
		s.applySnapshot(snapshot)
	})
}

// setupUI creates the four status screens stacked on the window.
func (s *StatusShell) setupUI() {
	s.checkingScreen = s.buildCheckingScreen()
	s.offlineScreen = s.buildOfflineScreen()
	s.loadingScreen = s.buildLoadingScreen()
	s.loadedScreen = s.buildLoadedScreen()

	s.offlineScreen.Hide()
	s.loadingScreen.Hide()
	s.loadedScreen.Hide()

	s.window.SetContent(container.NewStack(
		s.checkingScreen,
		s.offlineScreen,
		s.loadingScreen,
		s.loadedScreen,
	))
}

// buildCheckingScreen shows an indeterminate spinner while reachability is
// probed.
func (s *StatusShell) buildCheckingScreen() *fyne.Container {
	s.checkingSpinner = widget.NewProgressBarInfinite()

	label := widget.NewLabelWithStyle(
		s.localization.GetText(KeyCheckingConnection),
		fyne.TextAlignCenter,
		fyne.TextStyle{},
	)

	return s.mobileUI.CreateStatusCard(
		s.statusIcon(IconGlobe),
		container.NewVBox(label, s.checkingSpinner),
	)
}

// buildOfflineScreen shows the no-internet card with an explicit retry
// button; on mobile a pull-down also retries.
func (s *StatusShell) buildOfflineScreen() *RetryArea {
	title := widget.NewLabelWithStyle(
		s.localization.GetText(KeyNoInternetTitle),
		fyne.TextAlignCenter,
		fyne.TextStyle{Bold: true},
	)
	body := widget.NewLabelWithStyle(
		s.localization.GetText(KeyNoInternetBody),
		fyne.TextAlignCenter,
		fyne.TextStyle{},
	)

	s.retryButton = s.mobileUI.CreateStatusButton(
		IconRetry+" "+s.localization.GetText(KeyRetry),
		s.controls.Retry,
	)

	hint := widget.NewLabelWithStyle(
		s.localization.GetText(KeyPullToRetry),
		fyne.TextAlignCenter,
		fyne.TextStyle{Italic: true},
	)
	if !s.mobileUI.IsMobileDevice() {
		hint.Hide()
	}

	card := s.mobileUI.CreateStatusCard(
		s.statusIcon(IconOffline),
		container.NewVBox(title, body, s.retryButton, hint),
	)

	return NewRetryArea(card, s.controls.Retry)
}

// buildLoadingScreen shows the progress overlay during a page load.
func (s *StatusShell) buildLoadingScreen() *fyne.Container {
	s.progressBar = widget.NewProgressBar()
	s.progressLabel = widget.NewLabelWithStyle(
		s.localization.GetText(KeyLoading),
		fyne.TextAlignCenter,
		fyne.TextStyle{},
	)

	bar := container.NewGridWrap(fyne.NewSize(ProgressBarWidth, 0), s.progressBar)

	return s.mobileUI.CreateStatusCard(
		s.statusIcon(IconGlobe),
		container.NewVBox(s.progressLabel, bar),
	)
}

// buildLoadedScreen shows the post-load status line while the renderer owns
// the page window.
func (s *StatusShell) buildLoadedScreen() *fyne.Container {
	s.loadedLabel = widget.NewLabelWithStyle(
		s.localization.GetText(KeyLoaded),
		fyne.TextAlignCenter,
		fyne.TextStyle{Bold: true},
	)

	return s.mobileUI.CreateStatusCard(
		s.statusIcon(IconGlobe),
		container.NewVBox(s.loadedLabel),
	)
}

// statusIcon renders a large emoji glyph for a status card.
func (s *StatusShell) statusIcon(glyph string) fyne.CanvasObject {
	text := canvas.NewText(glyph, color.NRGBA{R: 230, G: 237, B: 243, A: 255})
	text.TextSize = StatusIconTextSize
	text.Alignment = fyne.TextAlignCenter
	return container.NewCenter(text)
}

// applySnapshot switches screens. Must run on the UI thread.
func (s *StatusShell) applySnapshot(snapshot model.PageSession) {
	s.checkingScreen.Hide()
	s.offlineScreen.Hide()
	s.loadingScreen.Hide()
	s.loadedScreen.Hide()

	switch snapshot.Phase {
	case model.PhaseCheckingConnection:
		s.checkingSpinner.Start()
		s.checkingScreen.Show()

	case model.PhaseNoInternet:
		s.checkingSpinner.Stop()
		s.settings.SetLastConnected(false)
		s.offlineScreen.Show()

	case model.PhaseLoading:
		s.checkingSpinner.Stop()
		s.progressBar.SetValue(float64(snapshot.Progress) / float64(model.ProgressMax))
		s.progressLabel.SetText(fmt.Sprintf("%s%s"+ProgressLabelFormat,
			s.localization.GetText(KeyLoading), MiddleDotSeparator, snapshot.Progress))
		s.loadingScreen.Show()

	case model.PhaseLoaded:
		s.checkingSpinner.Stop()
		s.settings.SetLastConnected(true)
		if snapshot.FinishCount > s.lastFinishCount {
			s.settings.AddCompletedLoads(snapshot.FinishCount - s.lastFinishCount)
			s.lastFinishCount = snapshot.FinishCount
		}
		s.loadedLabel.SetText(s.localization.GetText(KeyLoaded) + MiddleDotSeparator + snapshot.URL)
		s.loadedScreen.Show()

	default:
		log.Printf("ui: unknown load phase %q", snapshot.Phase)
		s.checkingScreen.Show()
	}

	s.window.Canvas().Refresh(s.window.Content())
}
