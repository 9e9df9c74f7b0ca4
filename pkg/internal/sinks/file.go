package sinks

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/changyy/logcraft-go/pkg/internal/types"
	"github.com/changyy/logcraft-go/pkg/internal/utils"
	"go.uber.org/multierr"
)

// FileSink appends formatted lines to a single file through a buffered writer.
type FileSink struct {
	componentMetadata types.ComponentMetadata
	mu                sync.Mutex
	file              *os.File
	writer            *bufio.Writer
	disposed          bool
}

// NewFileSink opens path in append mode, creating the parent directory when missing.
func NewFileSink(path string, options ...types.Option[*FileSink]) (*FileSink, error) {
	if path == "" {
		return nil, fmt.Errorf("file path configuration is missing or invalid")
	}

	dir := filepath.Dir(path)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory %s: %v", dir, err)
		}
	}
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %v", path, err)
	}

	s := &FileSink{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "FILE_SINK",
			Name: path,
		},
		file:   file,
		writer: bufio.NewWriter(file),
	}

	for _, option := range options {
		option(s)
	}

	return s, nil
}

// Write appends message followed by a newline to the buffered file.
func (s *FileSink) Write(message string, level types.Severity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.disposed {
		return fmt.Errorf("file sink is disposed")
	}
	_, err := s.writer.WriteString(message + "\n")
	return err
}

// Dispose flushes the buffer and closes the file.
func (s *FileSink) Dispose() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.disposed {
		return nil
	}
	s.disposed = true

	err := s.writer.Flush()
	return multierr.Append(err, s.file.Close())
}

// GetComponentMetadata returns the sink's identifying metadata.
func (s *FileSink) GetComponentMetadata() types.ComponentMetadata {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.componentMetadata
}

// SetComponentMetadata sets the sink's name and id.
func (s *FileSink) SetComponentMetadata(name string, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.componentMetadata.Name = name
	s.componentMetadata.ID = id
}
