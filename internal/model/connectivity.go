package model

// ConnectivityStatus classifies network reachability as seen by the monitor
type ConnectivityStatus string

const (
	// ConnectivityUnknown means no reachability check has completed yet
	ConnectivityUnknown ConnectivityStatus = "Unknown"

	// ConnectivityConnected means at least one usable interface is up
	ConnectivityConnected ConnectivityStatus = "Connected"

	// ConnectivityDisconnected means no usable interface was found,
	// or the platform query itself failed
	ConnectivityDisconnected ConnectivityStatus = "Disconnected"
)

// String returns the string representation of ConnectivityStatus
func (cs ConnectivityStatus) String() string {
	return string(cs)
}

// IsKnown returns true once the initial reachability check has resolved
func (cs ConnectivityStatus) IsKnown() bool {
	return cs == ConnectivityConnected || cs == ConnectivityDisconnected
}

// Online returns true if the status allows starting a page load
func (cs ConnectivityStatus) Online() bool {
	return cs == ConnectivityConnected
}
