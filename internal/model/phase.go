package model

// LoadPhase represents the high-level UI state of the page session
type LoadPhase string

const (
	// PhaseCheckingConnection means the initial reachability check is running
	PhaseCheckingConnection LoadPhase = "CheckingConnection"

	// PhaseNoInternet means the device is offline and the retry screen is shown
	PhaseNoInternet LoadPhase = "NoInternet"

	// PhaseLoading means the target page is being loaded by the renderer
	PhaseLoading LoadPhase = "Loading"

	// PhaseLoaded means the renderer reported the page finished
	PhaseLoaded LoadPhase = "Loaded"
)

// String returns the string representation of LoadPhase
func (lp LoadPhase) String() string {
	return string(lp)
}

// IsBrowsing returns true if the renderer owns the screen (page visible
// or actively loading)
func (lp LoadPhase) IsBrowsing() bool {
	return lp == PhaseLoading || lp == PhaseLoaded
}

// AcceptsProgress returns true if progress events are meaningful in this phase
func (lp LoadPhase) AcceptsProgress() bool {
	return lp == PhaseLoading
}
