package webhost

import (
	"fmt"
	"log"
	"runtime"
	"sync"
	"sync/atomic"

	webview "github.com/webview/webview_go"
)

// WebviewHost wraps the embedded renderer with Go-level state tracking and
// callbacks. Commands are marshaled onto the renderer thread via Dispatch;
// events arrive through the bound bridge functions and are forwarded to the
// callbacks, which are expected to enqueue rather than block.
type WebviewHost struct {
	opts Options

	view    webview.WebView
	started atomic.Bool
	ready   chan struct{}
	doneRun chan struct{}

	destroyed   atomic.Bool
	destroyOnce sync.Once

	// State (protected by mutex)
	mu         sync.Mutex
	currentURL string
	historyLen int
	loading    bool

	// Callbacks (set by the wiring layer before Start)
	OnPageStarted       func(url string)
	OnProgress          func(percent int)
	OnPageFinished      func(url string)
	OnResourceError     func(description string)
	OnNavigationRequest func(url string) bool
}

// NewWebviewHost creates an unstarted host with the given options.
func NewWebviewHost(opts Options) *WebviewHost {
	return &WebviewHost{
		opts:    opts.normalized(),
		ready:   make(chan struct{}),
		doneRun: make(chan struct{}),
	}
}

// Start brings up the renderer on a dedicated OS thread and returns once it
// accepts commands. Calling Start twice or after Destroy is an error.
func (h *WebviewHost) Start() error {
	if h.destroyed.Load() {
		return fmt.Errorf("webhost is destroyed")
	}
	if !h.started.CompareAndSwap(false, true) {
		return fmt.Errorf("webhost already started")
	}

	go h.run()

	<-h.ready
	return nil
}

// run owns the renderer event loop until Terminate.
func (h *WebviewHost) run() {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	h.view = webview.New(h.opts.Debug)
	h.configure()
	close(h.ready)

	h.view.Run()
	close(h.doneRun)
}

// configure applies Options and installs the lifecycle bridge. Must run on
// the renderer thread before the first navigation.
func (h *WebviewHost) configure() {
	h.view.SetTitle(h.opts.Title)
	h.view.SetSize(h.opts.Width, h.opts.Height, webview.HintNone)

	if err := h.view.Bind(fnPageStarted, h.pageStarted); err != nil {
		log.Printf("webhost: bind %s: %v", fnPageStarted, err)
	}
	if err := h.view.Bind(fnProgress, h.progress); err != nil {
		log.Printf("webhost: bind %s: %v", fnProgress, err)
	}
	if err := h.view.Bind(fnPageFinished, h.pageFinished); err != nil {
		log.Printf("webhost: bind %s: %v", fnPageFinished, err)
	}
	if err := h.view.Bind(fnResourceError, h.resourceError); err != nil {
		log.Printf("webhost: bind %s: %v", fnResourceError, err)
	}
	if err := h.view.Bind(fnNavigate, h.navigate); err != nil {
		log.Printf("webhost: bind %s: %v", fnNavigate, err)
	}

	h.view.Init(bootstrapScript(h.opts))
	h.view.Init(BridgeScript)
}

// Load begins navigation to the given URL. A load issued while another is in
// flight replaces it per renderer semantics.
func (h *WebviewHost) Load(url string) error {
	if err := h.commandable(); err != nil {
		return err
	}

	h.mu.Lock()
	h.currentURL = url
	h.mu.Unlock()

	h.view.Dispatch(func() {
		h.view.Navigate(url)
	})
	return nil
}

// Reload re-issues the last navigation.
func (h *WebviewHost) Reload() error {
	if err := h.commandable(); err != nil {
		return err
	}

	h.view.Dispatch(func() {
		h.view.Eval(safeEval("location.reload()"))
	})
	return nil
}

// CanGoBack reports whether in-page history can be unwound.
func (h *WebviewHost) CanGoBack() bool {
	if h.destroyed.Load() {
		return false
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	return h.historyLen > 1
}

// GoBack unwinds one entry of in-page history.
func (h *WebviewHost) GoBack() error {
	if err := h.commandable(); err != nil {
		return err
	}

	h.view.Dispatch(func() {
		h.view.Eval(safeEval("history.back()"))
	})
	return nil
}

// RunScript evaluates a fire-and-forget script in the page. The script is
// wrapped so it cannot throw even if the page has navigated away.
func (h *WebviewHost) RunScript(src string) error {
	if err := h.commandable(); err != nil {
		return err
	}

	h.view.Dispatch(func() {
		h.view.Eval(safeEval(src))
	})
	return nil
}

// CurrentURL returns the last URL commanded or reported.
func (h *WebviewHost) CurrentURL() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.currentURL
}

// Destroy tears down the renderer. Safe to call more than once; all commands
// after Destroy return an error and late bridge events are dropped.
func (h *WebviewHost) Destroy() {
	h.destroyOnce.Do(func() {
		h.destroyed.Store(true)

		if !h.started.Load() {
			return
		}

		<-h.ready
		h.view.Dispatch(func() {
			h.view.Terminate()
		})
		<-h.doneRun
		h.view.Destroy()
	})
}

// commandable guards every renderer command.
func (h *WebviewHost) commandable() error {
	if h.destroyed.Load() {
		return fmt.Errorf("webhost is destroyed")
	}
	if !h.started.Load() {
		return fmt.Errorf("webhost not started")
	}
	return nil
}

// pageStarted handles the bridge page-started report.
func (h *WebviewHost) pageStarted(url string, historyLen int) {
	if h.destroyed.Load() {
		return
	}

	h.mu.Lock()
	h.currentURL = url
	h.historyLen = historyLen
	h.loading = true
	h.mu.Unlock()

	if h.OnPageStarted != nil {
		h.OnPageStarted(url)
	}
}

// progress handles the bridge progress report.
func (h *WebviewHost) progress(percent int) {
	if h.destroyed.Load() {
		return
	}

	if h.OnProgress != nil {
		h.OnProgress(percent)
	}
}

// pageFinished handles the bridge page-finished report.
func (h *WebviewHost) pageFinished(url string) {
	if h.destroyed.Load() {
		return
	}

	h.mu.Lock()
	h.currentURL = url
	h.loading = false
	h.mu.Unlock()

	if h.OnPageFinished != nil {
		h.OnPageFinished(url)
	}
}

// resourceError handles the bridge resource-error report.
func (h *WebviewHost) resourceError(description string) {
	if h.destroyed.Load() {
		return
	}

	if h.OnResourceError != nil {
		h.OnResourceError(description)
	}
}

// navigate handles the bridge navigation report. The shell always allows
// navigation; a veto from the callback is logged, not enforced.
func (h *WebviewHost) navigate(url string) {
	if h.destroyed.Load() {
		return
	}

	if h.OnNavigationRequest != nil {
		if allowed := h.OnNavigationRequest(url); !allowed {
			log.Printf("webhost: navigation veto ignored for %s", url)
		}
	}
}
