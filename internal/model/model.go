// Package model defines the domain models for Countdown.
package model

// Storage keys. The whole timer collection lives under a single key.
const (
	KeyTimers = "timers"
	KeyTheme  = "theme"
)
