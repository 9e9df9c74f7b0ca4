// Package logcraft implements the logging facade: a state holder that gates leveled
// messages against the current severity threshold and fans the formatted line out to
// every adopted sink concurrently, isolating per-sink failures. The facade behaves as
// a single critical section over its mutable state; sink I/O for independent log
// events may proceed in parallel.
package logcraft

import (
	"os"
	"sync"

	"github.com/changyy/logcraft-go/pkg/internal/types"
	"github.com/changyy/logcraft-go/pkg/internal/utils"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Facade routes leveled log messages to the sinks adopted by the most recent Init
// call. It is the only mutable entity in the library: the initialized flag, the
// current threshold and environment, and the active sink set, all guarded by one
// read-write mutex. Mutating transitions (Init, Dispose, SetLevel, SetEnvironment)
// take the write lock; Log holds the read lock across its gate, format, and fan-out,
// so transitions are linearizable with every gate check and no write is in flight
// while a sink set is being disposed.
type Facade struct {
	componentMetadata types.ComponentMetadata
	diagnostics       *zap.Logger // Receives isolated sink failures; never part of the pipeline itself.
	mu                sync.RWMutex
	initialized       bool
	threshold         types.Severity
	environment       types.Environment
	sinks             []types.Sink
}

// NewFacade initializes a new Facade in the uninitialized state with configurable options.
// The returned facade is safe for concurrent use immediately; logging through it is a
// no-op until Init adopts a configuration.
func NewFacade(options ...types.Option[*Facade]) *Facade {
	f := &Facade{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "FACADE",
		},
		threshold:   types.InfoLevel,
		environment: types.Development,
	}

	for _, option := range options {
		option(f)
	}

	if f.diagnostics == nil {
		f.diagnostics = newDefaultDiagnostics()
	}

	return f
}

// newDefaultDiagnostics builds the fallback diagnostics logger: console-encoded
// warnings and above on stderr, kept apart from the sinks so a misbehaving sink can
// never trigger recursive logging.
func newDefaultDiagnostics() *zap.Logger {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.Lock(os.Stderr), zapcore.WarnLevel)
	return zap.New(core)
}
