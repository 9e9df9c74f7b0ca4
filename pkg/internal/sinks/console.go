package sinks

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/changyy/logcraft-go/pkg/internal/types"
	"github.com/changyy/logcraft-go/pkg/internal/utils"
)

// ConsoleSink writes formatted lines to a terminal stream, one line per write.
type ConsoleSink struct {
	componentMetadata types.ComponentMetadata
	mu                sync.Mutex
	out               io.Writer
	disposed          bool
}

// NewConsoleSink initializes a new ConsoleSink targeting stdout with configurable options.
func NewConsoleSink(options ...types.Option[*ConsoleSink]) *ConsoleSink {
	s := &ConsoleSink{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "CONSOLE_SINK",
		},
		out: os.Stdout,
	}

	for _, option := range options {
		option(s)
	}

	return s
}

// ConsoleSinkWithWriter redirects the sink's output to w, primarily for tests.
func ConsoleSinkWithWriter(w io.Writer) types.Option[*ConsoleSink] {
	return func(s *ConsoleSink) {
		s.out = w
	}
}

// Write emits message followed by a newline.
func (s *ConsoleSink) Write(message string, level types.Severity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.disposed {
		return fmt.Errorf("console sink is disposed")
	}
	_, err := io.WriteString(s.out, message+"\n")
	return err
}

// Dispose syncs the underlying stream when it is a file. Sync failures that are
// expected for terminal devices are swallowed.
func (s *ConsoleSink) Dispose() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.disposed {
		return nil
	}
	s.disposed = true

	if file, ok := s.out.(*os.File); ok {
		if err := file.Sync(); err != nil && !isIgnorableSyncError(err) {
			return err
		}
	}
	return nil
}

// GetComponentMetadata returns the sink's identifying metadata.
func (s *ConsoleSink) GetComponentMetadata() types.ComponentMetadata {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.componentMetadata
}

// SetComponentMetadata sets the sink's name and id.
func (s *ConsoleSink) SetComponentMetadata(name string, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.componentMetadata.Name = name
	s.componentMetadata.ID = id
}
