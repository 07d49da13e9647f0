package connectivity

import (
	"log"
	"net"
	"sync"
	"time"

	"github.com/Shriram2005/MindVora-WebApp/internal/model"
)

// DefaultPollInterval is how often the monitor re-checks reachability when
// no platform change notifications are available.
const DefaultPollInterval = 5 * time.Second

// Watcher is the subscription surface the session controller depends on.
type Watcher interface {
	CheckNow() model.ConnectivityStatus
	Subscribe(onChange func(model.ConnectivityStatus)) (unsubscribe func())
}

// Monitor polls network reachability and notifies subscribers on transitions.
// Callbacks are delivered from the poll goroutine; subscribers are expected
// to marshal onto their own thread before mutating state.
type Monitor struct {
	pollInterval time.Duration
	probeAddr    string // optional host:port confirmed by a TCP dial
	dialTimeout  time.Duration

	mu          sync.Mutex
	subscribers map[int]func(model.ConnectivityStatus)
	nextID      int
	last        model.ConnectivityStatus

	done     chan struct{}
	stopOnce sync.Once

	// checkFn is swapped in tests to avoid touching real interfaces
	checkFn func() model.ConnectivityStatus
}

// NewMonitor creates a monitor. probeAddr may be empty to rely on the
// interface scan alone.
func NewMonitor(pollInterval time.Duration, probeAddr string) *Monitor {
	if pollInterval <= 0 {
		pollInterval = DefaultPollInterval
	}

	m := &Monitor{
		pollInterval: pollInterval,
		probeAddr:    probeAddr,
		dialTimeout:  DefaultDialTimeout,
		subscribers:  make(map[int]func(model.ConnectivityStatus)),
		last:         model.ConnectivityUnknown,
		done:         make(chan struct{}),
	}
	m.checkFn = m.check
	return m
}

// CheckNow performs a reachability check and returns the classification.
// A platform query failure is logged and classified as Disconnected; it is
// never surfaced as an error.
func (m *Monitor) CheckNow() model.ConnectivityStatus {
	status := m.checkFn()

	m.mu.Lock()
	m.last = status
	m.mu.Unlock()

	return status
}

// Subscribe registers a persistent listener for future transitions. The
// returned unsubscribe function is idempotent and safe to call after Close.
func (m *Monitor) Subscribe(onChange func(model.ConnectivityStatus)) (unsubscribe func()) {
	m.mu.Lock()
	id := m.nextID
	m.nextID++
	m.subscribers[id] = onChange
	m.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			m.mu.Lock()
			delete(m.subscribers, id)
			m.mu.Unlock()
		})
	}
}

// Start launches the poll loop. It returns immediately.
func (m *Monitor) Start() {
	go m.pollLoop()
}

// Close stops the poll loop. Safe to call more than once.
func (m *Monitor) Close() {
	m.stopOnce.Do(func() {
		close(m.done)
	})
}

// Last returns the most recently observed status.
func (m *Monitor) Last() model.ConnectivityStatus {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.last
}

// pollLoop re-checks reachability and fans out transitions to subscribers.
func (m *Monitor) pollLoop() {
	ticker := time.NewTicker(m.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-m.done:
			return
		case <-ticker.C:
			m.poll()
		}
	}
}

func (m *Monitor) poll() {
	status := m.checkFn()

	m.mu.Lock()
	changed := status != m.last && status.IsKnown()
	m.last = status

	var listeners []func(model.ConnectivityStatus)
	if changed {
		listeners = make([]func(model.ConnectivityStatus), 0, len(m.subscribers))
		for _, fn := range m.subscribers {
			listeners = append(listeners, fn)
		}
	}
	m.mu.Unlock()

	// Callbacks run outside the lock so a subscriber may unsubscribe itself
	for _, fn := range listeners {
		fn(status)
	}
}

// check classifies reachability from the OS interface list, optionally
// confirmed by a TCP dial against the probe address.
func (m *Monitor) check() model.ConnectivityStatus {
	ifaces, err := net.Interfaces()
	if err != nil {
		log.Printf("connectivity: interface query failed: %v", err)
		return model.ConnectivityDisconnected
	}

	if !hasUsableInterface(ifaces) {
		return model.ConnectivityDisconnected
	}

	if m.probeAddr != "" {
		result := Probe(m.probeAddr, m.dialTimeout)
		if !result.OK {
			log.Printf("connectivity: probe %s failed after %dms: %s", result.Target, result.LatencyMs, result.Error)
			return model.ConnectivityDisconnected
		}
	}

	return model.ConnectivityConnected
}

// hasUsableInterface returns true if at least one interface is up, is not a
// loopback, and has an assigned address.
func hasUsableInterface(ifaces []net.Interface) bool {
	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 {
			continue
		}
		if iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		addrs, err := iface.Addrs()
		if err != nil || len(addrs) == 0 {
			continue
		}
		return true
	}
	return false
}
