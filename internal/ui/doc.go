package ui

// Package ui contains the Fyne-based status chrome of the shell: the
// connection-check spinner, the offline retry screen, and the load progress
// overlay. It renders session snapshots delivered by the controller and owns
// no state of its own. All UI strings are localized via Localization.
