package model

// Package model defines domain data structures used across the app: the page
// session entity, the load phase and connectivity enums. Structures are
// designed for direct rendering in the UI and explicit state transitions.
