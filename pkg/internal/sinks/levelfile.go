package sinks

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/changyy/logcraft-go/pkg/internal/types"
	"github.com/changyy/logcraft-go/pkg/internal/utils"
	"go.uber.org/multierr"
)

// LevelFileSink partitions output by severity: one <level>.log file per severity
// under a directory, opened lazily on the first write at that level.
type LevelFileSink struct {
	componentMetadata types.ComponentMetadata
	mu                sync.Mutex
	dir               string
	files             map[types.Severity]*levelFile
	disposed          bool
}

type levelFile struct {
	file   *os.File
	writer *bufio.Writer
}

// NewLevelFileSink creates dir when missing and returns a sink writing one file per
// severity underneath it.
func NewLevelFileSink(dir string, options ...types.Option[*LevelFileSink]) (*LevelFileSink, error) {
	if dir == "" {
		return nil, fmt.Errorf("directory configuration is missing or invalid")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory %s: %v", dir, err)
	}

	s := &LevelFileSink{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "LEVEL_FILE_SINK",
			Name: dir,
		},
		dir:   dir,
		files: make(map[types.Severity]*levelFile),
	}

	for _, option := range options {
		option(s)
	}

	return s, nil
}

// Write appends message to the file for its severity, opening it on first use.
func (s *LevelFileSink) Write(message string, level types.Severity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.disposed {
		return fmt.Errorf("level file sink is disposed")
	}

	lf, ok := s.files[level]
	if !ok {
		path := filepath.Join(s.dir, strings.ToLower(level.String())+".log")
		file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("failed to open file %s: %v", path, err)
		}
		lf = &levelFile{file: file, writer: bufio.NewWriter(file)}
		s.files[level] = lf
	}

	_, err := lf.writer.WriteString(message + "\n")
	return err
}

// Dispose flushes and closes every opened level file.
func (s *LevelFileSink) Dispose() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.disposed {
		return nil
	}
	s.disposed = true

	var err error
	for _, lf := range s.files {
		err = multierr.Append(err, lf.writer.Flush())
		err = multierr.Append(err, lf.file.Close())
	}
	s.files = nil
	return err
}

// GetComponentMetadata returns the sink's identifying metadata.
func (s *LevelFileSink) GetComponentMetadata() types.ComponentMetadata {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.componentMetadata
}

// SetComponentMetadata sets the sink's name and id.
func (s *LevelFileSink) SetComponentMetadata(name string, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.componentMetadata.Name = name
	s.componentMetadata.ID = id
}
