// Package app provides the orchestration layer for perch.
//
// # Overview
//
// This package wires together configuration, preferences, the timer
// model, and the UI. It serves as the composition root where all
// dependencies are initialized and connected.
//
// # Architecture
//
// The app package follows a simple initialization pattern:
//
//  1. Load configuration from ~/.config/perch/config.toml
//  2. Apply command-line overrides (mode, target, tick cadence)
//  3. Load user preferences (theme, compact layout)
//  4. Build the timer model with the configured mode and target
//  5. Start the TUI and block until the user exits or the context cancels
package app
