// Package timeouts defines shared timeout constants for HTTP surfaces.
package timeouts

import "time"

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// TelemetryShutdown caps how long span export may block process exit.
const TelemetryShutdown = 5 * time.Second
