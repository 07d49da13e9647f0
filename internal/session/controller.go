package session

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Shriram2005/MindVora-WebApp/internal/connectivity"
	"github.com/Shriram2005/MindVora-WebApp/internal/model"
)

// Buffer for the reducer event channel. Producers block only if the reducer
// falls this far behind, which keeps event order intact without unbounded
// memory.
const eventQueueSize = 64

// Progress renders are limited to this step, plus completion.
const progressRenderStep = 10

// Params carries the explicit dependencies of a controller. No ambient
// state: everything the session touches is injected here.
type Params struct {
	TargetURL       string
	InjectionScript string // cosmetic script run once per finished load
	Host            Host
	Watcher         connectivity.Watcher
	Renderer        Renderer
}

// Controller owns the single page session: the load phase state machine fed
// by connectivity and renderer events.
type Controller struct {
	params      Params
	unsubscribe func()

	events   chan event
	done     chan struct{}
	loopDone chan struct{}
	stopOnce sync.Once

	// session is mutated only by the reducer goroutine; the mutex guards
	// snapshot reads from other goroutines.
	mu           sync.Mutex
	session      *model.PageSession
	injectedLoad bool // cosmetic script already ran for the current load
	lastRendered int  // progress value of the last render
}

// NewController creates a controller for the given target. Start must be
// called before events flow.
func NewController(params Params) *Controller {
	return &Controller{
		params:       params,
		events:       make(chan event, eventQueueSize),
		done:         make(chan struct{}),
		loopDone:     make(chan struct{}),
		session:      model.NewPageSession(uuid.NewString(), params.TargetURL),
		lastRendered: -1,
	}
}

// Start subscribes to connectivity changes, launches the reducer, renders
// the initial CheckingConnection state, and kicks off the first check.
func (c *Controller) Start() {
	c.unsubscribe = c.params.Watcher.Subscribe(c.OnConnectivityChange)

	go c.loop()

	c.render(c.Snapshot())

	// The initial check runs off the caller's thread; its result arrives
	// as a regular connectivity event.
	go func() {
		c.OnConnectivityChange(c.params.Watcher.CheckNow())
	}()
}

// Close tears the session down: unsubscribes the monitor, stops the reducer,
// destroys the host. Events arriving afterwards are discarded. Safe to call
// more than once.
func (c *Controller) Close() {
	c.stopOnce.Do(func() {
		if c.unsubscribe != nil {
			c.unsubscribe()
		}
		close(c.done)
		<-c.loopDone
		c.params.Host.Destroy()

		snapshot := c.Snapshot()
		log.Printf("session %s closed: loads=%d finished=%d resource_errors=%d injections=%d uptime=%s",
			snapshot.ID, snapshot.LoadCount, snapshot.FinishCount,
			snapshot.ResourceErrors, snapshot.Injections,
			snapshot.Uptime().Round(time.Second))
	})
}

// HandleBack intercepts the platform back action. It returns true when the
// event was consumed (in-page history unwound) and false when the session
// should be allowed to exit.
func (c *Controller) HandleBack() bool {
	if !c.params.Host.CanGoBack() {
		return false
	}
	if err := c.params.Host.GoBack(); err != nil {
		log.Printf("session: go back failed: %v", err)
		return false
	}
	return true
}

// Snapshot returns a copy of the current session state.
func (c *Controller) Snapshot() model.PageSession {
	c.mu.Lock()
	defer c.mu.Unlock()
	return *c.session
}

// dispatch enqueues an event unless the session is closed.
func (c *Controller) dispatch(ev event) {
	select {
	case <-c.done:
		return
	default:
	}

	select {
	case c.events <- ev:
	case <-c.done:
	}
}

// loop is the reducer goroutine. It drains events until Close.
func (c *Controller) loop() {
	defer close(c.loopDone)

	for {
		select {
		case <-c.done:
			return
		default:
		}

		select {
		case <-c.done:
			return
		case ev := <-c.events:
			c.apply(ev)
		}
	}
}

// apply performs one state transition. Runs on the reducer goroutine only.
func (c *Controller) apply(ev event) {
	c.mu.Lock()
	render := false

	switch ev.kind {
	case evConnectivity:
		render = c.applyConnectivity(ev.status)

	case evRetry:
		render = c.applyRetry()

	case evPageStarted:
		render = c.applyPageStarted()

	case evProgress:
		render = c.applyProgress(ev.progress)

	case evPageFinished:
		render = c.applyPageFinished()

	case evResourceError:
		c.session.ResourceErrors++
		c.session.LastError = ev.description
		log.Printf("session: resource error (phase stays %s): %s", c.session.Phase, ev.description)
	}

	snapshot := *c.session
	c.mu.Unlock()

	if render {
		c.render(snapshot)
	}
}

// applyConnectivity handles both the initial check result and change events.
func (c *Controller) applyConnectivity(status model.ConnectivityStatus) bool {
	if !status.IsKnown() {
		return false
	}

	c.session.Connectivity = status

	if !status.Online() {
		// A disconnect forces the offline screen from any phase.
		if c.session.Phase != model.PhaseNoInternet {
			c.session.Phase = model.PhaseNoInternet
			return true
		}
		return false
	}

	// Connected: start a load if nothing is on screen yet. CheckingConnection
	// covers the startup path, NoInternet the auto-recovery path.
	switch c.session.Phase {
	case model.PhaseCheckingConnection, model.PhaseNoInternet:
		c.beginLoad()
		return true
	}
	return false
}

// applyRetry handles the user's manual re-check request.
func (c *Controller) applyRetry() bool {
	if c.session.Phase != model.PhaseNoInternet {
		return false
	}
	c.session.Phase = model.PhaseCheckingConnection

	go func() {
		c.OnConnectivityChange(c.params.Watcher.CheckNow())
	}()
	return true
}

// applyPageStarted handles a navigation (re)start from the renderer.
func (c *Controller) applyPageStarted() bool {
	// A started event is only meaningful while the renderer owns the screen;
	// a stale one arriving after a disconnect must not revive the session.
	if !c.session.Phase.IsBrowsing() {
		return false
	}

	c.session.Phase = model.PhaseLoading
	c.session.Progress = model.ProgressMin
	c.session.LoadStarted = time.Now()
	c.session.LoadCount++
	c.injectedLoad = false
	c.lastRendered = -1
	return true
}

// applyProgress handles a renderer progress event with render rate limiting.
func (c *Controller) applyProgress(percent int) bool {
	if !c.session.Phase.AcceptsProgress() {
		return false
	}

	clamped := model.ClampProgress(percent)
	if clamped <= c.session.Progress {
		return false
	}
	c.session.Progress = clamped

	// Re-render only on step multiples and on completion; the final 100%
	// always lands on the step boundary.
	if clamped%progressRenderStep != 0 && clamped != model.ProgressMax {
		return false
	}
	if clamped == c.lastRendered {
		return false
	}
	c.lastRendered = clamped
	return true
}

// applyPageFinished completes the current load and injects the cosmetic
// script exactly once for it.
func (c *Controller) applyPageFinished() bool {
	if c.session.Phase != model.PhaseLoading {
		// Late or duplicate finish: ignored, including after a disconnect.
		return false
	}

	c.session.Phase = model.PhaseLoaded
	c.session.Progress = model.ProgressMax
	c.session.FinishedAt = time.Now()
	c.session.FinishCount++

	if !c.injectedLoad && c.params.InjectionScript != "" {
		c.injectedLoad = true
		c.session.Injections++
		if err := c.params.Host.RunScript(c.params.InjectionScript); err != nil {
			log.Printf("session: cosmetic injection failed: %v", err)
		}
	}
	return true
}

// beginLoad transitions into Loading and commands the host. Caller holds the
// state lock.
func (c *Controller) beginLoad() {
	c.session.Phase = model.PhaseLoading
	c.session.Progress = model.ProgressMin
	c.session.LoadStarted = time.Now()
	c.injectedLoad = false
	c.lastRendered = -1

	if err := c.params.Host.Load(c.params.TargetURL); err != nil {
		log.Printf("session: load request failed: %v", err)
	}
}

// render forwards a snapshot to the renderer, if any.
func (c *Controller) render(snapshot model.PageSession) {
	if c.params.Renderer != nil {
		c.params.Renderer.Render(snapshot)
	}
}
