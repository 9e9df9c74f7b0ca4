package logcraft

import (
	"github.com/changyy/logcraft-go/pkg/internal/types"
	"go.uber.org/zap"
)

// notifySinkFailure reports an isolated per-sink failure on the diagnostics channel.
// Failures never reach the caller of Log and never re-enter the logging pipeline.
func (f *Facade) notifySinkFailure(op string, sink types.Sink, err error) {
	if f.diagnostics == nil {
		return
	}
	meta := sink.GetComponentMetadata()
	f.diagnostics.Warn("sink "+op+" failure",
		zap.String("facade", f.componentMetadata.ID),
		zap.String("sink_id", meta.ID),
		zap.String("sink_type", meta.Type),
		zap.String("sink_name", meta.Name),
		zap.Error(err),
	)
}
