package contract

import "context"

// PersonaRenderer adapts raw reminder text to a persona's voice at delivery
// time. Render failures are recoverable: the scheduler falls back to the raw
// payload and records the fallback, it never blocks delivery on a renderer.
type PersonaRenderer interface {
	Render(ctx context.Context, personaID, payload string) (string, error)
}

// Delivery is one delivery attempt handed to a Notifier. AttemptToken is a
// fresh UUID per attempt so a transport can deduplicate the rare duplicate
// that at-least-once semantics allow.
type Delivery struct {
	ReminderID   int64
	Owner        string
	ChannelID    string
	Text         string
	AttemptToken string
}

// Notifier attempts to deliver rendered text to the recipient. The context
// carries the bounded delivery timeout; implementations must honor it.
type Notifier interface {
	Deliver(ctx context.Context, d Delivery) error
}

// EventSink receives structured scheduler events for logging/metrics.
// Implementations must be safe for concurrent use and must not block.
type EventSink interface {
	RenderFallback(reminderID int64, personaID string, err error)
	DeliveryFailed(reminderID int64, attempt int, err error)
	RetryScheduled(reminderID int64, attempt int, nextDueUnix int64)
	RetriesExhausted(reminderID int64, attempts int)
	ColdStartMissedFires(count int)
}
