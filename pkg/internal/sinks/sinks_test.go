package sinks_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/changyy/logcraft-go/pkg/internal/sinks"
	"github.com/changyy/logcraft-go/pkg/internal/types"
)

func TestConsoleSink_WriteAndDispose(t *testing.T) {
	var buf bytes.Buffer
	sink := sinks.NewConsoleSink(sinks.ConsoleSinkWithWriter(&buf))

	if err := sink.Write("[ts][INFO] hello", types.InfoLevel); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	if got := buf.String(); got != "[ts][INFO] hello\n" {
		t.Fatalf("unexpected console output: %q", got)
	}

	if err := sink.Dispose(); err != nil {
		t.Fatalf("Dispose error: %v", err)
	}
	if err := sink.Dispose(); err != nil {
		t.Fatalf("second Dispose error: %v", err)
	}
	if err := sink.Write("late", types.InfoLevel); err == nil {
		t.Fatalf("expected error writing to disposed sink")
	}
}

func TestConsoleSink_DefaultsToStdout(t *testing.T) {
	sink := sinks.NewConsoleSink()
	meta := sink.GetComponentMetadata()
	if meta.Type != "CONSOLE_SINK" || meta.ID == "" {
		t.Fatalf("unexpected metadata: %+v", meta)
	}
}

func TestFileSink_WriteFlushCycle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")
	sink, err := sinks.NewFileSink(path)
	if err != nil {
		t.Fatalf("NewFileSink error: %v", err)
	}

	if err := sink.Write("line one", types.InfoLevel); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	if err := sink.Write("line two", types.ErrorLevel); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	if err := sink.Dispose(); err != nil {
		t.Fatalf("Dispose error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected log file to exist: %v", err)
	}
	if string(data) != "line one\nline two\n" {
		t.Fatalf("unexpected file contents: %q", string(data))
	}

	if err := sink.Write("late", types.InfoLevel); err == nil {
		t.Fatalf("expected error writing to disposed sink")
	}
	if err := sink.Dispose(); err != nil {
		t.Fatalf("second Dispose error: %v", err)
	}
}

func TestFileSink_InvalidPath(t *testing.T) {
	if _, err := sinks.NewFileSink(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestLevelFileSink_PartitionsBySeverity(t *testing.T) {
	dir := t.TempDir()
	sink, err := sinks.NewLevelFileSink(dir)
	if err != nil {
		t.Fatalf("NewLevelFileSink error: %v", err)
	}

	if err := sink.Write("info line", types.InfoLevel); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	if err := sink.Write("error line", types.ErrorLevel); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	if err := sink.Dispose(); err != nil {
		t.Fatalf("Dispose error: %v", err)
	}

	infoData, err := os.ReadFile(filepath.Join(dir, "info.log"))
	if err != nil {
		t.Fatalf("expected info.log to exist: %v", err)
	}
	if string(infoData) != "info line\n" {
		t.Fatalf("unexpected info.log contents: %q", string(infoData))
	}

	errorData, err := os.ReadFile(filepath.Join(dir, "error.log"))
	if err != nil {
		t.Fatalf("expected error.log to exist: %v", err)
	}
	if string(errorData) != "error line\n" {
		t.Fatalf("unexpected error.log contents: %q", string(errorData))
	}

	if _, err := os.Stat(filepath.Join(dir, "debug.log")); !os.IsNotExist(err) {
		t.Fatalf("expected no file for unused level, stat err: %v", err)
	}
}

func TestLevelFileSink_InvalidDir(t *testing.T) {
	if _, err := sinks.NewLevelFileSink(""); err == nil {
		t.Fatalf("expected error for empty directory")
	}
}

func TestMemorySink_ConcurrentCapture(t *testing.T) {
	sink := sinks.NewMemorySink()

	const writers = 50
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := sink.Write("captured", types.DebugLevel); err != nil {
				t.Errorf("Write error: %v", err)
			}
		}()
	}
	wg.Wait()

	if got := sink.Count(); got != writers {
		t.Fatalf("captured %d entries, expected %d", got, writers)
	}
	for _, entry := range sink.Entries() {
		if entry.Level != types.DebugLevel || entry.Message != "captured" {
			t.Fatalf("unexpected entry: %+v", entry)
		}
	}
}

func TestMemorySink_DisposeSemantics(t *testing.T) {
	sink := sinks.NewMemorySink()
	if err := sink.Write("kept", types.InfoLevel); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	if err := sink.Dispose(); err != nil {
		t.Fatalf("Dispose error: %v", err)
	}
	if err := sink.Write("late", types.InfoLevel); err == nil {
		t.Fatalf("expected error writing to disposed sink")
	}
	if !sink.Disposed() {
		t.Fatalf("expected sink to report disposed")
	}
	if got := strings.Join(sink.Messages(), ","); got != "kept" {
		t.Fatalf("expected captured entries to remain readable, got %q", got)
	}
}
