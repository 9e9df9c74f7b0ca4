package sinks

import (
	"fmt"
	"sync"

	"github.com/changyy/logcraft-go/pkg/internal/types"
	"github.com/changyy/logcraft-go/pkg/internal/utils"
)

// MemoryEntry is one captured log event.
type MemoryEntry struct {
	Message string
	Level   types.Severity
}

// MemorySink captures formatted lines in memory. It backs the library's own tests
// and gives downstream code a sink to assert against.
type MemorySink struct {
	componentMetadata types.ComponentMetadata
	mu                sync.Mutex
	entries           []MemoryEntry
	disposed          bool
	disposeCount      int
}

// NewMemorySink initializes a new MemorySink with configurable options.
func NewMemorySink(options ...types.Option[*MemorySink]) *MemorySink {
	s := &MemorySink{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "MEMORY_SINK",
		},
	}

	for _, option := range options {
		option(s)
	}

	return s
}

// Write records the message and its level.
func (s *MemorySink) Write(message string, level types.Severity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.disposed {
		return fmt.Errorf("memory sink is disposed")
	}
	s.entries = append(s.entries, MemoryEntry{Message: message, Level: level})
	return nil
}

// Dispose marks the sink closed. Further writes fail; captured entries remain
// readable.
func (s *MemorySink) Dispose() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.disposeCount++
	s.disposed = true
	return nil
}

// Entries returns a copy of the captured events.
func (s *MemorySink) Entries() []MemoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]MemoryEntry(nil), s.entries...)
}

// Messages returns the captured formatted lines in capture order.
func (s *MemorySink) Messages() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, e.Message)
	}
	return out
}

// Count returns the number of captured events.
func (s *MemorySink) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Disposed reports whether Dispose has been called.
func (s *MemorySink) Disposed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.disposed
}

// DisposeCount returns how many times Dispose has been invoked.
func (s *MemorySink) DisposeCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.disposeCount
}

// GetComponentMetadata returns the sink's identifying metadata.
func (s *MemorySink) GetComponentMetadata() types.ComponentMetadata {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.componentMetadata
}

// SetComponentMetadata sets the sink's name and id.
func (s *MemorySink) SetComponentMetadata(name string, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.componentMetadata.Name = name
	s.componentMetadata.ID = id
}
