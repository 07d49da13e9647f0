package webhost

import (
	_ "embed"
	"fmt"
	"strings"
)

// Bound host function names the bridge script reports through
const (
	fnPageStarted   = "mindvoraPageStarted"
	fnProgress      = "mindvoraProgress"
	fnPageFinished  = "mindvoraPageFinished"
	fnResourceError = "mindvoraResourceError"
	fnNavigate      = "mindvoraNavigate"
)

// BridgeScript reports page lifecycle (started, progress, finished, resource
// errors) through the bound host functions.
//
//go:embed assets/bridge.js
var BridgeScript string

// PolishScript is the fixed cosmetic script injected once per finished load.
//
//go:embed assets/polish.js
var PolishScript string

// bootstrapScript builds the init script applying Options to every document
// before its own scripts run: identification tag, background fill, and zoom
// suppression.
func bootstrapScript(opts Options) string {
	var b strings.Builder

	b.WriteString("(function(){")

	if opts.UserAgentTag != "" {
		fmt.Fprintf(&b, "try{Object.defineProperty(window,'mindvoraClient',{value:%q,writable:false});}catch(e){}", opts.UserAgentTag)
	}

	if opts.BackgroundColor != "" {
		fmt.Fprintf(&b, "try{document.documentElement.style.backgroundColor=%q;}catch(e){}", opts.BackgroundColor)
	}

	if opts.DisableZoom {
		b.WriteString("try{" +
			"var m=document.createElement('meta');" +
			"m.name='viewport';" +
			"m.content='width=device-width,initial-scale=1,maximum-scale=1,user-scalable=no';" +
			"(document.head||document.documentElement).appendChild(m);" +
			"document.addEventListener('gesturestart',function(e){e.preventDefault();},{passive:false});" +
			"}catch(e){}")
	}

	b.WriteString("})();")
	return b.String()
}

// safeEval wraps an arbitrary script so it cannot throw into the renderer
// even when the target page has already navigated away.
func safeEval(src string) string {
	return "try{" + src + "\n}catch(e){}"
}
