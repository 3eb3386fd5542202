// Package timeouts defines shared timeout constants used across services.
// Centralizing these values prevents drift between service boundaries and
// makes the durations discoverable.
package timeouts

import "time"

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// PageLoad caps how long a navigation waits for a deferred page unit.
const PageLoad = 10 * time.Second

// EventStreamKeepAlive is the interval between comment frames on
// server-sent event streams.
const EventStreamKeepAlive = 25 * time.Second
