package session

// Package session implements the page session controller: a single-goroutine
// reducer that consumes connectivity and renderer events from one channel and
// drives the load phase state machine, the content host, and the status
// renderer. All state mutations happen on the reducer goroutine; producers
// only enqueue.
