package connectivity

import (
	"net"
	"time"
)

// Default probe parameters
const (
	DefaultDialTimeout = 3 * time.Second
	DefaultProbePort   = "443"
)

// ProbeResult captures the outcome of a single connectivity probe
type ProbeResult struct {
	Target    string
	OK        bool
	LatencyMs int64
	Error     string
	CheckedAt time.Time
}

// Probe dials the target address (host:port) over TCP and reports whether it
// was reachable. A failed dial is a normal result, never an error to the
// caller.
func Probe(target string, timeout time.Duration) ProbeResult {
	if timeout <= 0 {
		timeout = DefaultDialTimeout
	}

	result := ProbeResult{
		Target:    target,
		CheckedAt: time.Now(),
	}

	started := time.Now()
	conn, err := net.DialTimeout("tcp", target, timeout)
	result.LatencyMs = time.Since(started).Milliseconds()

	if err != nil {
		result.Error = err.Error()
		return result
	}

	conn.Close()
	result.OK = true
	return result
}

// ProbeAddrForURL derives a dialable host:port from a page URL host.
// An explicit port in the host is kept, otherwise the HTTPS port is assumed.
func ProbeAddrForURL(host string) string {
	if host == "" {
		return ""
	}
	if _, _, err := net.SplitHostPort(host); err == nil {
		return host
	}
	return net.JoinHostPort(host, DefaultProbePort)
}
