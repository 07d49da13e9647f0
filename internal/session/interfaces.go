package session

import (
	"github.com/Shriram2005/MindVora-WebApp/internal/model"
)

// Host is the command surface of the embedded renderer the controller drives.
type Host interface {
	// Load begins navigation; a load issued while another is in flight
	// replaces it per renderer semantics.
	Load(url string) error

	// Reload re-issues the last navigation.
	Reload() error

	// CanGoBack reports whether in-page history can be unwound.
	CanGoBack() bool

	// GoBack unwinds one entry of in-page history.
	GoBack() error

	// RunScript evaluates a fire-and-forget script in the current page.
	RunScript(src string) error

	// Destroy tears the renderer down; commands after Destroy fail.
	Destroy()
}

// Renderer reacts to session state. Render receives a snapshot and is called
// from the reducer goroutine; implementations marshal onto their UI thread.
type Renderer interface {
	Render(snapshot model.PageSession)
}

// RendererFunc adapts a plain function to the Renderer interface.
type RendererFunc func(snapshot model.PageSession)

// Render implements Renderer.
func (f RendererFunc) Render(snapshot model.PageSession) {
	f(snapshot)
}
