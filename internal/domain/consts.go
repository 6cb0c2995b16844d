package domain

import "time"

// Delivery policy defaults, overridable via environment config
const (
	// DefaultMaxAttempts is how many delivery attempts a reminder gets
	// before it is marked as failed
	DefaultMaxAttempts = 3

	// DefaultRetryBackoff is the base delay before a failed delivery is
	// retried; the actual delay grows with the attempt count
	DefaultRetryBackoff = 30 * time.Second

	// DefaultDeliveryTimeout bounds a single Notifier call so a hung
	// transport cannot starve the retry path
	DefaultDeliveryTimeout = 10 * time.Second

	// DefaultPastDueGrace is how far in the past a requested due time may
	// be and still be accepted at registration
	DefaultPastDueGrace = 30 * time.Second

	// DefaultShutdownGrace bounds how long Stop waits for in-flight
	// deliveries to drain
	DefaultShutdownGrace = 15 * time.Second
)
