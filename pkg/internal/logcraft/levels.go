package logcraft

import (
	"os"
	"strings"

	"github.com/changyy/logcraft-go/pkg/internal/types"
)

// EnvironmentVariable names the process environment variable consulted by
// EnvironmentFromOS to select a deployment profile without code changes.
const EnvironmentVariable = "LOGCRAFT_ENV"

// ParseSeverity converts a string representation of the severity to types.Severity.
func ParseSeverity(levelStr string) types.Severity {
	switch levelStr {
	case "critical":
		return types.CriticalLevel
	case "error":
		return types.ErrorLevel
	case "warning":
		return types.WarningLevel
	case "info":
		return types.InfoLevel
	case "debug":
		return types.DebugLevel
	case "verbose":
		return types.VerboseLevel
	default:
		return types.InfoLevel // Default level is Info if unspecified
	}
}

// ParseEnvironment converts a string representation of the environment to
// types.Environment.
func ParseEnvironment(envStr string) types.Environment {
	switch envStr {
	case "development":
		return types.Development
	case "testing":
		return types.Testing
	case "production":
		return types.Production
	default:
		return types.Development // Default environment is development if unspecified
	}
}

// EnvironmentFromOS resolves the deployment profile from LOGCRAFT_ENV, falling back
// to development when the variable is unset or unrecognized.
func EnvironmentFromOS() types.Environment {
	return ParseEnvironment(strings.ToLower(strings.TrimSpace(os.Getenv(EnvironmentVariable))))
}
