package logcraft

import (
	"fmt"
	"sync"
	"time"

	"github.com/changyy/logcraft-go/pkg/internal/types"
	"go.uber.org/multierr"
)

// Init adopts config and transitions the facade to the initialized state. When the
// facade is already initialized it first runs the full dispose sequence on the prior
// sink set, so re-initialization replaces state rather than failing. On any failure
// the facade is left uninitialized and an InitializationError is returned.
func (f *Facade) Init(config types.Config) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.initialized {
		if err := f.disposeLocked(); err != nil {
			return &InitializationError{Err: err}
		}
	}

	for i, sink := range config.Sinks {
		if sink == nil {
			return &InitializationError{Err: fmt.Errorf("sink at index %d is nil", i)}
		}
	}

	f.sinks = append([]types.Sink(nil), config.Sinks...)
	f.environment = config.Environment
	if config.InitialLevel != nil {
		f.threshold = *config.InitialLevel
	} else {
		f.threshold = config.Environment.DefaultThreshold()
	}
	f.initialized = true
	return nil
}

// Dispose flushes and releases every active sink concurrently, waits for all of them,
// and resets the facade to the uninitialized state. Calling it while uninitialized is
// a no-op, so back-to-back Dispose calls release each sink exactly once.
func (f *Facade) Dispose() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.initialized {
		return nil
	}
	return f.disposeLocked()
}

// disposeLocked tears down the active sinks concurrently and clears facade state.
// The transition to uninitialized always completes; individual sink failures are
// reported on the diagnostics channel and returned aggregated.
func (f *Facade) disposeLocked() error {
	sinks := f.sinks
	f.sinks = nil
	f.initialized = false

	var (
		wg     sync.WaitGroup
		errsMu sync.Mutex
		err    error
	)
	for _, sink := range sinks {
		wg.Add(1)
		go func(s types.Sink) {
			defer wg.Done()
			if derr := s.Dispose(); derr != nil {
				f.notifySinkFailure("dispose", s, derr)
				errsMu.Lock()
				err = multierr.Append(err, fmt.Errorf("sink %s: %w", s.GetComponentMetadata().ID, derr))
				errsMu.Unlock()
			}
		}(sink)
	}
	wg.Wait()
	return err
}

// SetEnvironment switches the deployment profile and re-derives the severity
// threshold from its default. Active sinks are untouched.
func (f *Facade) SetEnvironment(env types.Environment) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.environment = env
	f.threshold = env.DefaultThreshold()
}

// SetLevel overrides the severity threshold directly. The override holds until the
// next SetEnvironment or Init.
func (f *Facade) SetLevel(level types.Severity) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.threshold = level
}

// Log is the hot path. It returns without error when the facade is uninitialized or
// the message's rank exceeds the current threshold. Otherwise it formats the line
// once and dispatches it to every active sink concurrently, waiting for all of them;
// a failing sink degrades only its own output and is reported on the diagnostics
// channel, never to the caller.
func (f *Facade) Log(level types.Severity, message string, err error, trace string) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if !f.initialized {
		return
	}
	if level > f.threshold {
		return
	}

	line := formatEntry(time.Now(), level, message, err, trace)

	var wg sync.WaitGroup
	for _, sink := range f.sinks {
		wg.Add(1)
		go func(s types.Sink) {
			defer wg.Done()
			if werr := s.Write(line, level); werr != nil {
				f.notifySinkFailure("write", s, werr)
			}
		}(sink)
	}
	wg.Wait()
}

// Critical logs an unrecoverable failure with optional error and stack trace.
func (f *Facade) Critical(message string, err error, trace string) {
	f.Log(types.CriticalLevel, message, err, trace)
}

// Error logs an operation failure with optional error and stack trace.
func (f *Facade) Error(message string, err error, trace string) {
	f.Log(types.ErrorLevel, message, err, trace)
}

// Warning logs a recoverable anomaly.
func (f *Facade) Warning(message string) {
	f.Log(types.WarningLevel, message, nil, "")
}

// Info logs an informational message.
func (f *Facade) Info(message string) {
	f.Log(types.InfoLevel, message, nil, "")
}

// Debug logs a diagnostic message.
func (f *Facade) Debug(message string) {
	f.Log(types.DebugLevel, message, nil, "")
}

// Verbose logs a high-volume trace message.
func (f *Facade) Verbose(message string) {
	f.Log(types.VerboseLevel, message, nil, "")
}
