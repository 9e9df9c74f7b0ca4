// Package builder is the public surface of logcraft-go. It re-exports the contracts
// and constructors from the internal packages so callers never import internals
// directly.
package builder

import (
	"io"

	"github.com/changyy/logcraft-go/pkg/internal/logcraft"
	"github.com/changyy/logcraft-go/pkg/internal/sinks"
	"github.com/changyy/logcraft-go/pkg/internal/types"
	"go.uber.org/zap"
)

// Severity is exported from the internal types package.
type Severity = types.Severity

// Export severity levels to be accessible under the builder package
const (
	CriticalLevel = types.CriticalLevel
	ErrorLevel    = types.ErrorLevel
	WarningLevel  = types.WarningLevel
	InfoLevel     = types.InfoLevel
	DebugLevel    = types.DebugLevel
	VerboseLevel  = types.VerboseLevel
)

// Environment is exported from the internal types package.
type Environment = types.Environment

// Export environments to be accessible under the builder package
const (
	Development = types.Development
	Testing     = types.Testing
	Production  = types.Production
)

type Config = types.Config

type Sink = types.Sink

type Logger = types.Logger

type ComponentMetadata = types.ComponentMetadata

// InitializationError is returned by Init when adopting a configuration or disposing
// the prior one fails.
type InitializationError = logcraft.InitializationError

// NewLogger constructs an independent logging facade in the uninitialized state.
func NewLogger(options ...types.Option[*logcraft.Facade]) types.Logger {
	return logcraft.NewFacade(options...)
}

// Default returns the lazily constructed process-wide facade.
func Default() types.Logger {
	return logcraft.Default()
}

// LoggerWithDiagnostics attaches the zap logger that receives isolated per-sink
// failures.
func LoggerWithDiagnostics(logger *zap.Logger) types.Option[*logcraft.Facade] {
	return logcraft.FacadeWithDiagnostics(logger)
}

// LoggerWithComponentMetadata configures the facade with a custom name and identifier.
func LoggerWithComponentMetadata(name string, id string) types.Option[*logcraft.Facade] {
	return logcraft.FacadeWithComponentMetadata(name, id)
}

// NewConfig assembles an immutable configuration for Logger.Init.
func NewConfig(options ...types.Option[*types.Config]) types.Config {
	cfg := types.Config{Environment: types.Development}
	for _, option := range options {
		option(&cfg)
	}
	return cfg
}

// ConfigWithSinks appends output destinations, in order, to the configuration.
func ConfigWithSinks(s ...types.Sink) types.Option[*types.Config] {
	return func(cfg *types.Config) {
		cfg.Sinks = append(cfg.Sinks, s...)
	}
}

// ConfigWithEnvironment selects the deployment profile.
func ConfigWithEnvironment(env types.Environment) types.Option[*types.Config] {
	return func(cfg *types.Config) {
		cfg.Environment = env
	}
}

// ConfigWithLevel sets an explicit severity threshold that overrides the
// environment's default on Init.
func ConfigWithLevel(level types.Severity) types.Option[*types.Config] {
	return func(cfg *types.Config) {
		l := level
		cfg.InitialLevel = &l
	}
}

// ParseSeverity converts a string representation of the severity; unknown names fall
// back to InfoLevel.
func ParseSeverity(levelStr string) types.Severity {
	return logcraft.ParseSeverity(levelStr)
}

// ParseEnvironment converts a string representation of the environment; unknown names
// fall back to Development.
func ParseEnvironment(envStr string) types.Environment {
	return logcraft.ParseEnvironment(envStr)
}

// EnvironmentFromOS resolves the deployment profile from LOGCRAFT_ENV.
func EnvironmentFromOS() types.Environment {
	return logcraft.EnvironmentFromOS()
}

// NewConsoleSink returns a sink writing to stdout.
func NewConsoleSink(options ...types.Option[*sinks.ConsoleSink]) *sinks.ConsoleSink {
	return sinks.NewConsoleSink(options...)
}

// ConsoleSinkWithWriter redirects a console sink's output, primarily for tests.
func ConsoleSinkWithWriter(w io.Writer) types.Option[*sinks.ConsoleSink] {
	return sinks.ConsoleSinkWithWriter(w)
}

// NewFileSink returns a sink appending to a single file.
func NewFileSink(path string, options ...types.Option[*sinks.FileSink]) (*sinks.FileSink, error) {
	return sinks.NewFileSink(path, options...)
}

// NewLevelFileSink returns a sink writing one file per severity under dir.
func NewLevelFileSink(dir string, options ...types.Option[*sinks.LevelFileSink]) (*sinks.LevelFileSink, error) {
	return sinks.NewLevelFileSink(dir, options...)
}

// NewMemorySink returns an in-memory capture sink.
func NewMemorySink(options ...types.Option[*sinks.MemorySink]) *sinks.MemorySink {
	return sinks.NewMemorySink(options...)
}

// MemoryEntry is one event captured by a memory sink.
type MemoryEntry = sinks.MemoryEntry
