package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_reminderIndex_ordering(t *testing.T) {
	idx := newReminderIndex()
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	idx.push(3, base.Add(2*time.Minute))
	idx.push(1, base.Add(1*time.Minute))
	idx.push(2, base.Add(3*time.Minute))

	next, ok := idx.nextDue()
	require.True(t, ok)
	assert.Equal(t, base.Add(1*time.Minute), next)

	due := idx.popDue(base.Add(10 * time.Minute))
	assert.Equal(t, []int64{1, 3, 2}, due)
	assert.Zero(t, idx.len())
}

func Test_reminderIndex_equalDueTimesFireInInsertionOrder(t *testing.T) {
	idx := newReminderIndex()
	at := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	// ids are monotonic, so insertion order == id order
	idx.push(7, at)
	idx.push(5, at)
	idx.push(6, at)

	due := idx.popDue(at)
	assert.Equal(t, []int64{5, 6, 7}, due)
}

func Test_reminderIndex_popDueLeavesFutureEntries(t *testing.T) {
	idx := newReminderIndex()
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	idx.push(1, now.Add(-time.Minute))
	idx.push(2, now)
	idx.push(3, now.Add(time.Minute))

	due := idx.popDue(now)
	assert.Equal(t, []int64{1, 2}, due)

	next, ok := idx.nextDue()
	require.True(t, ok)
	assert.Equal(t, now.Add(time.Minute), next)
	assert.Equal(t, 1, idx.len())
}

func Test_reminderIndex_removeHidesEntry(t *testing.T) {
	idx := newReminderIndex()
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	idx.push(1, now)
	idx.push(2, now.Add(time.Minute))
	idx.remove(1)

	due := idx.popDue(now)
	assert.Empty(t, due)

	next, ok := idx.nextDue()
	require.True(t, ok)
	assert.Equal(t, now.Add(time.Minute), next)
}

func Test_reminderIndex_pushReplacesExistingEntry(t *testing.T) {
	idx := newReminderIndex()
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	idx.push(1, now)
	idx.push(1, now.Add(time.Hour)) // reschedule

	due := idx.popDue(now)
	assert.Empty(t, due, "old entry must be stale after reschedule")

	next, ok := idx.nextDue()
	require.True(t, ok)
	assert.Equal(t, now.Add(time.Hour), next)
	assert.Equal(t, 1, idx.len())
}

func Test_reminderIndex_emptyIndexHasNoNextDue(t *testing.T) {
	idx := newReminderIndex()

	_, ok := idx.nextDue()
	assert.False(t, ok)
	assert.Empty(t, idx.popDue(time.Now()))
}
