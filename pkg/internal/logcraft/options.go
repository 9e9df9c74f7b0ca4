package logcraft

import (
	"github.com/changyy/logcraft-go/pkg/internal/types"
	"go.uber.org/zap"
)

// FacadeWithDiagnostics attaches the zap logger that receives isolated per-sink
// write and dispose failures. Without this option a console logger on stderr is
// installed.
func FacadeWithDiagnostics(logger *zap.Logger) types.Option[*Facade] {
	return func(f *Facade) {
		f.diagnostics = logger
	}
}

// FacadeWithComponentMetadata configures the facade with a custom name and
// identifier, used by the diagnostics channel to attribute failures.
func FacadeWithComponentMetadata(name string, id string) types.Option[*Facade] {
	return func(f *Facade) {
		f.componentMetadata.Name = name
		f.componentMetadata.ID = id
	}
}
