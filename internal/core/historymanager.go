// Package core provides the runtime core tier of the fsmx engine.
// HistoryManager records the linear path of visited states behind undo/redo.
// Not safe for concurrent use; the owning Machine serializes access.
package core

// HistoryManager tracks an ordered list of visited entries and a cursor into it.
// Entries after the cursor are the redo branch; Push discards them.
//
// Invariant: 0 <= cursor <= len(entries)-1. The list is never empty.
type HistoryManager[T any] struct {
	entries []T
	cursor  int
}

// NewHistoryManager creates a HistoryManager holding the single entry first.
func NewHistoryManager[T any](first T) *HistoryManager[T] {
	h := &HistoryManager[T]{}
	h.Reset(first)
	return h
}

// Reset drops every entry and starts over from first with the cursor at 0.
func (h *HistoryManager[T]) Reset(first T) {
	h.entries = []T{first}
	h.cursor = 0
}

// Current returns the entry under the cursor.
func (h *HistoryManager[T]) Current() T {
	return h.entries[h.cursor]
}

// Cursor returns the index of the current entry.
func (h *HistoryManager[T]) Cursor() int {
	return h.cursor
}

// Len returns the number of recorded entries, including the redo branch.
func (h *HistoryManager[T]) Len() int {
	return len(h.entries)
}

// Entries returns a copy of the recorded entries, oldest first.
func (h *HistoryManager[T]) Entries() []T {
	out := make([]T, len(h.entries))
	copy(out, h.entries)
	return out
}

// TruncateAfter discards every entry after index i.
// Out-of-range indexes are clamped; the first entry is always kept.
// The cursor is pulled back if it pointed into the discarded tail.
func (h *HistoryManager[T]) TruncateAfter(i int) {
	if i < 0 {
		i = 0
	}
	if i >= len(h.entries)-1 {
		return
	}
	clear(h.entries[i+1:])
	h.entries = h.entries[:i+1]
	if h.cursor > i {
		h.cursor = i
	}
}

// Push drops the redo branch, appends v and moves the cursor onto it.
func (h *HistoryManager[T]) Push(v T) {
	h.TruncateAfter(h.cursor)
	h.entries = append(h.entries, v)
	h.cursor++
}

// CanBack reports whether Back would move.
func (h *HistoryManager[T]) CanBack() bool {
	return h.cursor > 0
}

// CanForward reports whether Forward would move.
func (h *HistoryManager[T]) CanForward() bool {
	return h.cursor < len(h.entries)-1
}

// Back moves the cursor one entry towards the oldest and returns the new current entry.
// Returns false without moving when already at the first entry.
func (h *HistoryManager[T]) Back() (T, bool) {
	if !h.CanBack() {
		var zero T
		return zero, false
	}
	h.cursor--
	return h.entries[h.cursor], true
}

// Forward moves the cursor one entry towards the newest and returns the new current entry.
// Returns false without moving when already at the last entry.
func (h *HistoryManager[T]) Forward() (T, bool) {
	if !h.CanForward() {
		var zero T
		return zero, false
	}
	h.cursor++
	return h.entries[h.cursor], true
}

// Collapse keeps only the current entry and moves the cursor to 0.
func (h *HistoryManager[T]) Collapse() {
	h.Reset(h.Current())
}
