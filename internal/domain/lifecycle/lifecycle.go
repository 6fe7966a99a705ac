// Package lifecycle holds shared shutdown parameters for delivery servers
// and background workers.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of servers and subscriptions.
const DefaultTimeout = 10 * time.Second
