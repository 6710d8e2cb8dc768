// Package lifecycle holds shared start/stop settings for long-running components.
package lifecycle

import "time"

// DefaultTimeout bounds start-up probes and graceful shutdown of servers and clients.
const DefaultTimeout = 10 * time.Second
