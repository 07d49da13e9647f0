package webhost

// Package webhost adapts the embedded web renderer (github.com/webview/webview_go)
// for the page session: command surface (load, reload, back, script injection),
// option-driven configuration, and a JS lifecycle bridge that reports
// page-started, progress, page-finished and resource errors back to Go.
