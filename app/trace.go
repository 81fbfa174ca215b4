package app

import (
	"io"
	"sync"
)

// traceEntries bounds the debug trace kept for a failed run
const traceEntries = 64

// trace keeps the most recent log entries in memory
// The alternate screen is active while a session runs, so entries are
// written out only after it has been restored
type trace struct {
	mu      sync.Mutex
	entries [][]byte
}

// Write stores p as one entry, dropping the oldest when full
func (t *trace) Write(p []byte) (int, error) {
	entry := append([]byte(nil), p...)

	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.entries) >= traceEntries {
		copy(t.entries, t.entries[1:])
		t.entries = t.entries[:traceEntries-1]
	}
	t.entries = append(t.entries, entry)
	return len(p), nil
}

// WriteTo writes the kept entries oldest first
func (t *trace) WriteTo(w io.Writer) (int64, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	var total int64
	for _, e := range t.entries {
		n, err := w.Write(e)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
