package main

import (
	"log"
	"net/url"

	"fyne.io/fyne/v2/app"

	"github.com/Shriram2005/MindVora-WebApp/internal/config"
	"github.com/Shriram2005/MindVora-WebApp/internal/connectivity"
	"github.com/Shriram2005/MindVora-WebApp/internal/model"
	"github.com/Shriram2005/MindVora-WebApp/internal/platform"
	"github.com/Shriram2005/MindVora-WebApp/internal/session"
	"github.com/Shriram2005/MindVora-WebApp/internal/ui"
	"github.com/Shriram2005/MindVora-WebApp/internal/webhost"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

// Target URL override set via -ldflags "-X main.targetURL=https://..."
var targetURL = ""

const (
	AppID   = "com.shriram2005.mindvora"
	AppName = "MindVora"
)

func main() {
	// Log version information
	log.Printf("%s v%s starting...", AppName, version)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Printf("config: %v, falling back to defaults", err)
		cfg = config.DefaultConfig()
	}
	if targetURL != "" {
		cfg.Target.URL = targetURL
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply branded theme
	myApp.Settings().SetTheme(ui.NewShellTheme())

	if icon, err := ui.LoadLogoResource(); err == nil {
		myApp.SetIcon(icon)
	} else {
		log.Printf("icon: %v", err)
	}

	settings := config.NewSettings(myApp)

	myWindow := myApp.NewWindow(AppName)
	chrome := platform.NewFyneChrome(cfg, settings.GetImmersiveMode())
	chrome.Apply(myWindow)

	// Initialize services
	probeAddr := ""
	if cfg.Connectivity.DialProbe {
		probeAddr = connectivity.ProbeAddrForURL(cfg.TargetHost())
	}
	monitor := connectivity.NewMonitor(cfg.PollInterval(), probeAddr)

	host := webhost.NewWebviewHost(webhost.Options{
		Title:           AppName,
		Width:           cfg.Window.Width,
		Height:          cfg.Window.Height,
		UserAgentTag:    cfg.Target.UserAgentTag,
		BackgroundColor: cfg.Target.BackgroundColor,
		DisableZoom:     true,
		Debug:           cfg.Window.Debug,
	})

	var shell *ui.StatusShell
	controller := session.NewController(session.Params{
		TargetURL:       cfg.Target.URL,
		InjectionScript: webhost.PolishScript,
		Host:            host,
		Watcher:         monitor,
		Renderer: session.RendererFunc(func(snapshot model.PageSession) {
			shell.Render(snapshot)
		}),
	})

	host.OnPageStarted = controller.PageStarted
	host.OnProgress = controller.Progress
	host.OnPageFinished = controller.PageFinished
	host.OnResourceError = controller.ResourceError
	host.OnNavigationRequest = func(target string) bool {
		return sameHost(target, cfg.TargetHost())
	}

	// Create and setup UI
	shell = ui.NewStatusShell(myWindow, myApp, controller, settings)

	if err := host.Start(); err != nil {
		log.Fatalf("renderer: %v", err)
	}
	monitor.Start()
	controller.Start()

	// Show and run
	myWindow.ShowAndRun()

	controller.Close()
	monitor.Close()
}

// sameHost reports whether target points at the configured page host.
func sameHost(target, host string) bool {
	u, err := url.Parse(target)
	if err != nil {
		return false
	}
	return u.Host == host
}
