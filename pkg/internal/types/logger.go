package types

// Config describes one facade initialization. It is a plain immutable value with no
// identity beyond its fields, consumed exactly once per Init call; ownership of the
// listed sinks transfers to the facade when Init adopts it.
type Config struct {
	Sinks       []Sink      // Ordered output destinations; ownership transfers on Init.
	Environment Environment // Deployment profile; defaults to Development.

	// InitialLevel is the explicit severity threshold override. When nil the threshold
	// is derived from Environment.DefaultThreshold() on Init.
	InitialLevel *Severity
}

// Logger defines the facade interface for routing leveled log messages to the
// configured sinks. All methods are safe for concurrent use. Logging through an
// uninitialized facade is a silent no-op so that code may log unconditionally
// before setup has run.
type Logger interface {
	// Init adopts the configuration and transitions the facade to the initialized
	// state. When already initialized it first disposes the prior sink set; a failure
	// on either path leaves the facade uninitialized and returns an InitializationError.
	Init(config Config) error

	// Dispose flushes and releases every active sink concurrently, then resets the
	// facade to the uninitialized state. Calling it while uninitialized is a no-op.
	Dispose() error

	SetEnvironment(env Environment) // SetEnvironment re-derives the threshold from the environment default.
	SetLevel(level Severity)        // SetLevel overrides the threshold until the next SetEnvironment or Init.

	// Log gates, formats, and dispatches one message to every active sink. err and
	// trace are optional; pass nil and "" to omit the continuation lines.
	Log(level Severity, message string, err error, trace string)

	Critical(message string, err error, trace string) // Critical logs at CriticalLevel with optional error and stack trace.
	Error(message string, err error, trace string)    // Error logs at ErrorLevel with optional error and stack trace.
	Warning(message string)                           // Warning logs at WarningLevel.
	Info(message string)                              // Info logs at InfoLevel.
	Debug(message string)                             // Debug logs at DebugLevel.
	Verbose(message string)                           // Verbose logs at VerboseLevel.

	Initialized() bool           // Initialized reports whether the facade currently holds an adopted configuration.
	GetLevel() Severity          // GetLevel returns the current severity threshold.
	GetEnvironment() Environment // GetEnvironment returns the current environment.
	SinkCount() int              // SinkCount returns the number of active sinks.

	GetComponentMetadata() ComponentMetadata
	SetComponentMetadata(name string, id string)
}
