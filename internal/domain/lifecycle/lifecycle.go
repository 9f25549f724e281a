// Package lifecycle holds constants shared by start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup and shutdown operations.
const DefaultTimeout = 30 * time.Second
