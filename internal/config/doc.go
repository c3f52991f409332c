// Package config handles loading and parsing the perch configuration file.
//
// # Overview
//
// Perch reads a small TOML file for its startup settings: the initial
// counting mode, the countdown target, the poll cadence while the timer
// runs, and the completion flash parameters. Every field is optional.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/perch/config.toml (default)
//  3. If the config file doesn't exist, fall back to built-in defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// Malformed values (an unknown mode, an unparseable target) are errors;
// a silently wrong timer is worse than a startup failure.
//
// # Default Values
//
//   - mode: up
//   - target: 5m
//   - tick_ms: 50 (floored at 15)
//   - flash_count: 8
//   - flash_ms: 160
package config
