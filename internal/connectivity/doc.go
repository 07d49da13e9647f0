package connectivity

// Package connectivity implements network reachability detection for the page
// session: a one-shot check (interface scan plus an optional dial probe
// against the target host) and a polling monitor that notifies subscribers
// about transitions between Connected and Disconnected.
