package ratelimit

import (
	"time"

	"loft442-server/config"
)

// Window and MaxRequests define the submission throttle: at most
// MaxRequests per client IP within each fixed Window.
const Window = config.RATE_LIMIT_WINDOW_MS * time.Millisecond
const MaxRequests = config.RATE_LIMIT_MAX

// Store decides whether the client identified by key may perform another
// request at the given instant. Implementations must be safe for
// concurrent use.
type Store interface {
	Allow(key string, now time.Time) bool
}
