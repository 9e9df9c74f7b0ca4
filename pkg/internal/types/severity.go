package types

// Severity represents the severity rank of a log message. Lower ranks are more severe;
// a message is dispatched when its rank is at most the active threshold's rank.
type Severity int

const (
	CriticalLevel Severity = iota // CriticalLevel indicates unrecoverable failures.
	ErrorLevel                    // ErrorLevel indicates operation failures.
	WarningLevel                  // WarningLevel indicates recoverable anomalies.
	InfoLevel                     // InfoLevel indicates informational messages.
	DebugLevel                    // DebugLevel indicates diagnostic messages.
	VerboseLevel                  // VerboseLevel indicates high-volume trace messages.
)

// String returns the uppercase level name used in formatted log output.
func (s Severity) String() string {
	switch s {
	case CriticalLevel:
		return "CRITICAL"
	case ErrorLevel:
		return "ERROR"
	case WarningLevel:
		return "WARNING"
	case InfoLevel:
		return "INFO"
	case DebugLevel:
		return "DEBUG"
	case VerboseLevel:
		return "VERBOSE"
	default:
		return "UNKNOWN"
	}
}

// Environment identifies the deployment profile a facade runs under. Each environment
// maps deterministically to a default severity threshold.
type Environment int

const (
	Development Environment = iota // Development enables the full verbose output.
	Testing                        // Testing keeps warnings and above.
	Production                     // Production keeps errors and above.
)

// String returns the lowercase environment name.
func (e Environment) String() string {
	switch e {
	case Development:
		return "development"
	case Testing:
		return "testing"
	case Production:
		return "production"
	default:
		return "unknown"
	}
}

// DefaultThreshold returns the severity threshold implied by the environment.
func (e Environment) DefaultThreshold() Severity {
	switch e {
	case Testing:
		return WarningLevel
	case Production:
		return ErrorLevel
	default:
		return VerboseLevel
	}
}
