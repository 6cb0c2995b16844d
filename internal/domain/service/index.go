package service

import (
	"container/heap"
	"time"
)

// indexEntry is one reminder in the time-ordered index. Cancellations and
// reschedules mark the old entry stale instead of searching the heap; stale
// entries are dropped lazily when they surface at the top.
type indexEntry struct {
	id    int64
	dueAt time.Time
	stale bool
}

// entryHeap orders by (dueAt, id): earliest due first, ties broken by id,
// which is monotonic and therefore equals insertion order.
type entryHeap []*indexEntry

func (h entryHeap) Len() int { return len(h) }

func (h entryHeap) Less(i, j int) bool {
	if h[i].dueAt.Equal(h[j].dueAt) {
		return h[i].id < h[j].id
	}
	return h[i].dueAt.Before(h[j].dueAt)
}

func (h entryHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *entryHeap) Push(x interface{}) {
	*h = append(*h, x.(*indexEntry))
}

func (h *entryHeap) Pop() interface{} {
	old := *h
	n := len(old)
	entry := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return entry
}

// reminderIndex is the scheduler's in-memory view of pending reminders. It is
// a derived cache of the store, owned exclusively by the timing loop; it is
// never the source of truth.
type reminderIndex struct {
	heap    entryHeap
	entries map[int64]*indexEntry
}

func newReminderIndex() *reminderIndex {
	return &reminderIndex{
		entries: make(map[int64]*indexEntry),
	}
}

// push indexes a reminder at dueAt, replacing any previous entry for the id.
func (idx *reminderIndex) push(id int64, dueAt time.Time) {
	if old, ok := idx.entries[id]; ok {
		old.stale = true
	}

	entry := &indexEntry{id: id, dueAt: dueAt}
	idx.entries[id] = entry
	heap.Push(&idx.heap, entry)
}

// remove drops the reminder from the index if present.
func (idx *reminderIndex) remove(id int64) {
	if entry, ok := idx.entries[id]; ok {
		entry.stale = true
		delete(idx.entries, id)
	}
}

// nextDue returns the earliest due time in the index, discarding stale
// entries along the way. ok is false when the index is empty.
func (idx *reminderIndex) nextDue() (next time.Time, ok bool) {
	for idx.heap.Len() > 0 {
		top := idx.heap[0]
		if top.stale {
			heap.Pop(&idx.heap)
			continue
		}
		return top.dueAt, true
	}
	return time.Time{}, false
}

// popDue removes and returns every reminder due at or before now, in firing
// order: due time ascending, insertion order among equal due times.
func (idx *reminderIndex) popDue(now time.Time) []int64 {
	var due []int64
	for idx.heap.Len() > 0 {
		top := idx.heap[0]
		if top.stale {
			heap.Pop(&idx.heap)
			continue
		}
		if top.dueAt.After(now) {
			break
		}
		heap.Pop(&idx.heap)
		delete(idx.entries, top.id)
		due = append(due, top.id)
	}
	return due
}

func (idx *reminderIndex) len() int {
	return len(idx.entries)
}
