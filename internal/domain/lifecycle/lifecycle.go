// Package lifecycle holds shared timeouts for fx start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds connection setup and graceful shutdown.
const DefaultTimeout = 10 * time.Second
