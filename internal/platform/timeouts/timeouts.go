// Package timeouts defines shared timeout constants used by the web service.
// Centralizing these values keeps the durations discoverable and prevents
// drift between the server wiring and its tests.
package timeouts

import "time"

// ReadHeader limits how long the HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long the HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// SessionIdle is the idle lifetime of a browser session and the in-memory
// archive it owns. An expired session is indistinguishable from a fresh one.
const SessionIdle = 12 * time.Hour
