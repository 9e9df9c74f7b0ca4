package types

// Sink is an output destination for formatted log lines. The facade holds a sink by
// exclusive reference for its registered lifetime; a sink must not be registered with
// two facades at the same time.
type Sink interface {
	// Write persists or displays one fully formatted line. The facade may invoke Write
	// concurrently across log events; implementations must serialize internally when
	// their backing resource requires it. A returned error is isolated by the facade's
	// dispatcher and reported on its diagnostics channel.
	Write(message string, level Severity) error

	// Dispose flushes and releases the sink's resources. The facade calls it exactly
	// once per registration, on Dispose or on the implicit teardown of a re-Init.
	Dispose() error

	GetComponentMetadata() ComponentMetadata // GetComponentMetadata returns the sink's identifying metadata.
	SetComponentMetadata(name string, id string)
}
