// Package events implements the scheduler's observability hook on top of the
// standard logger.
package events

import "log"

// LogSink writes scheduler events as structured log lines. It satisfies
// contract.EventSink and is safe for concurrent use.
type LogSink struct{}

func NewLogSink() *LogSink {
	return &LogSink{}
}

func (s *LogSink) RenderFallback(reminderID int64, personaID string, err error) {
	log.Printf("event=fallback_render_used reminder=%d persona=%s error=%q", reminderID, personaID, err)
}

func (s *LogSink) DeliveryFailed(reminderID int64, attempt int, err error) {
	log.Printf("event=delivery_failure reminder=%d attempt=%d error=%q", reminderID, attempt, err)
}

func (s *LogSink) RetryScheduled(reminderID int64, attempt int, nextDueUnix int64) {
	log.Printf("event=retry_scheduled reminder=%d attempt=%d next_due_unix=%d", reminderID, attempt, nextDueUnix)
}

func (s *LogSink) RetriesExhausted(reminderID int64, attempts int) {
	log.Printf("event=exhausted_retries reminder=%d attempts=%d", reminderID, attempts)
}

func (s *LogSink) ColdStartMissedFires(count int) {
	log.Printf("event=cold_start_missed_fires count=%d", count)
}
