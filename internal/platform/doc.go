package platform

// Package platform contains host-environment glue: boot flags for the shell
// window (immersive display, fixed sizing, orientation preference) behind a
// small Chrome interface the session core never depends on.
