package session

import (
	"github.com/Shriram2005/MindVora-WebApp/internal/model"
)

// eventKind classifies reducer input events.
type eventKind int

const (
	evConnectivity  eventKind = iota // monitor check result or change
	evRetry                          // user asked for a manual re-check
	evPageStarted                    // renderer began a navigation
	evProgress                       // renderer load progress 0-100
	evPageFinished                   // renderer finished the page
	evResourceError                  // renderer reported a failed resource
)

// event carries one reducer input. Producers fill only the fields their kind
// uses.
type event struct {
	kind        eventKind
	status      model.ConnectivityStatus
	url         string
	progress    int
	description string
}

// OnConnectivityChange enqueues a connectivity result. Wired to the monitor
// subscription and used for the initial check result as well.
func (c *Controller) OnConnectivityChange(status model.ConnectivityStatus) {
	c.dispatch(event{kind: evConnectivity, status: status})
}

// Retry enqueues a manual connectivity re-check request from the UI.
func (c *Controller) Retry() {
	c.dispatch(event{kind: evRetry})
}

// PageStarted enqueues a renderer page-started event.
func (c *Controller) PageStarted(url string) {
	c.dispatch(event{kind: evPageStarted, url: url})
}

// Progress enqueues a renderer progress event.
func (c *Controller) Progress(percent int) {
	c.dispatch(event{kind: evProgress, progress: percent})
}

// PageFinished enqueues a renderer page-finished event.
func (c *Controller) PageFinished(url string) {
	c.dispatch(event{kind: evPageFinished, url: url})
}

// ResourceError enqueues a renderer resource error.
func (c *Controller) ResourceError(description string) {
	c.dispatch(event{kind: evResourceError, description: description})
}
