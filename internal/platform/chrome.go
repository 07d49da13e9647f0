package platform

import (
	"log"

	"fyne.io/fyne/v2"

	"github.com/Shriram2005/MindVora-WebApp/internal/config"
)

// Orientation preference values
const (
	OrientationPortrait  = "portrait"
	OrientationLandscape = "landscape"
	OrientationAny       = "any"
)

// Chrome abstracts host-environment boot flags so the session core never
// touches the windowing layer directly.
type Chrome interface {
	Apply(window fyne.Window)
}

// FyneChrome applies boot flags to a Fyne window.
type FyneChrome struct {
	width       float32
	height      float32
	fixed       bool
	immersive   bool
	orientation string
}

// NewFyneChrome builds chrome from the launch configuration. The immersive
// flag may be overridden by the persisted user setting at the call site.
func NewFyneChrome(cfg *config.Config, immersive bool) *FyneChrome {
	return &FyneChrome{
		width:       float32(cfg.Window.Width),
		height:      float32(cfg.Window.Height),
		fixed:       cfg.Window.Fixed,
		immersive:   immersive,
		orientation: normalizeOrientation(cfg.Chrome.Orientation),
	}
}

// Apply configures the shell window. Orientation is a packaging-time concern
// on mobile; here it is only recorded for diagnostics.
func (c *FyneChrome) Apply(window fyne.Window) {
	window.SetMaster()
	window.Resize(fyne.NewSize(c.width, c.height))

	if c.fixed {
		window.SetFixedSize(true)
	}

	if c.immersive {
		window.SetPadded(false)
		if !fyne.CurrentDevice().IsMobile() {
			window.SetFullScreen(true)
		}
	}

	if c.orientation != OrientationAny {
		log.Printf("platform: preferred orientation %s (applied at packaging time on mobile)", c.orientation)
	}
}

// Orientation returns the normalized orientation preference.
func (c *FyneChrome) Orientation() string {
	return c.orientation
}

// normalizeOrientation maps unknown values to "any".
func normalizeOrientation(orientation string) string {
	switch orientation {
	case OrientationPortrait, OrientationLandscape:
		return orientation
	default:
		return OrientationAny
	}
}
