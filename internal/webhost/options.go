package webhost

// Window defaults for the renderer surface
const (
	DefaultWindowWidth  = 420
	DefaultWindowHeight = 860
	DefaultTitle        = "MindVora"
)

// Options configures the embedded renderer before the first navigation
type Options struct {
	Title           string
	Width           int
	Height          int
	UserAgentTag    string // identification string exposed to page scripts
	BackgroundColor string // CSS color painted behind the page
	DisableZoom     bool   // suppress pinch-zoom and double-tap zoom
	Debug           bool   // enable the renderer's developer tools
}

// DefaultOptions returns the options used by the production shell
func DefaultOptions() Options {
	return Options{
		Title:           DefaultTitle,
		Width:           DefaultWindowWidth,
		Height:          DefaultWindowHeight,
		UserAgentTag:    "MindVoraApp/1.0",
		BackgroundColor: "#0d1117",
		DisableZoom:     true,
	}
}

// normalized fills zero values with defaults
func (o Options) normalized() Options {
	if o.Title == "" {
		o.Title = DefaultTitle
	}
	if o.Width <= 0 {
		o.Width = DefaultWindowWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultWindowHeight
	}
	return o
}
