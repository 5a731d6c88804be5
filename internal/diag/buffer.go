// Package diag provides the bounded diagnostic log buffer and the response
// composer that folds buffered entries into a tool response.
//
// Each tool invocation works against its own scope, so concurrent
// invocations cannot drain each other's entries. Every append is mirrored
// to the process's standard diagnostic stream and tee'd into a shared
// bounded history that backs the non-draining log-inspection tool.
package diag

import (
	"fmt"
	"log"
	"sync"
	"time"
)

// DefaultCapacity bounds a buffer to the most recent 100 entries.
const DefaultCapacity = 100

// Entry is a single timestamped diagnostic message. Entries are immutable
// once appended.
type Entry struct {
	Timestamp string `json:"timestamp"`
	Message   string `json:"message"`
}

// Buffer is a bounded FIFO of diagnostic entries. When an append would
// exceed the capacity, the oldest entry is evicted first.
type Buffer struct {
	mu       sync.Mutex
	entries  []Entry
	capacity int

	// tee receives a copy of every appended entry. Scopes tee into the
	// shared history.
	tee *Buffer
	// mirror controls whether appends are also written to the process log
	// stream. The history itself does not mirror; it only receives entries
	// already mirrored by the scope that produced them.
	mirror bool
}

// NewHistory creates the shared, process-lifetime buffer read by the
// log-inspection tool. A capacity <= 0 falls back to DefaultCapacity.
func NewHistory(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Buffer{capacity: capacity}
}

// NewScope creates a fresh per-invocation buffer. Entries appended to the
// scope are mirrored to the process log stream and tee'd into history.
// A nil history is allowed (handy in tests).
func NewScope(history *Buffer) *Buffer {
	capacity := DefaultCapacity
	if history != nil && history.capacity > 0 {
		capacity = history.capacity
	}
	return &Buffer{capacity: capacity, tee: history, mirror: true}
}

// Append records a message with the current timestamp. It never fails.
func (b *Buffer) Append(message string) {
	entry := Entry{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Message:   message,
	}
	b.push(entry)
	if b.mirror {
		log.Printf("[diag] %s", message)
	}
	if b.tee != nil {
		b.tee.push(entry)
	}
}

// Appendf is Append with fmt.Sprintf formatting.
func (b *Buffer) Appendf(format string, args ...any) {
	b.Append(fmt.Sprintf(format, args...))
}

func (b *Buffer) push(entry Entry) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.entries = append(b.entries, entry)
	if excess := len(b.entries) - b.capacity; excess > 0 {
		b.entries = b.entries[excess:]
	}
}

// Drain returns a copy of the current contents in append order and empties
// the buffer. Intended for single-consumer use: the composer drains each
// scope exactly once.
func (b *Buffer) Drain() []Entry {
	b.mu.Lock()
	defer b.mu.Unlock()
	drained := make([]Entry, len(b.entries))
	copy(drained, b.entries)
	b.entries = b.entries[:0]
	return drained
}

// PeekLast returns the last min(k, length) entries without mutating the
// buffer.
func (b *Buffer) PeekLast(k int) []Entry {
	b.mu.Lock()
	defer b.mu.Unlock()
	if k > len(b.entries) {
		k = len(b.entries)
	}
	if k <= 0 {
		return nil
	}
	out := make([]Entry, k)
	copy(out, b.entries[len(b.entries)-k:])
	return out
}

// Len reports the number of buffered entries.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.entries)
}
