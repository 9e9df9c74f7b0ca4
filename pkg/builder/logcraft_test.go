package builder_test

import (
	"testing"

	"github.com/changyy/logcraft-go/pkg/builder"
	"go.uber.org/zap"
)

func TestNewLoggerLifecycle(t *testing.T) {
	logger := builder.NewLogger(
		builder.LoggerWithDiagnostics(zap.NewNop()),
		builder.LoggerWithComponentMetadata("test-facade", "facade-1"),
	)

	mem := builder.NewMemorySink()
	cfg := builder.NewConfig(
		builder.ConfigWithSinks(mem),
		builder.ConfigWithEnvironment(builder.Testing),
	)

	if err := logger.Init(cfg); err != nil {
		t.Fatalf("Init error: %v", err)
	}
	if got := logger.GetLevel(); got != builder.WarningLevel {
		t.Fatalf("expected testing default threshold WARNING, got %v", got)
	}

	logger.Info("filtered")
	logger.Warning("kept")
	if got := mem.Count(); got != 1 {
		t.Fatalf("expected 1 dispatched message, got %d", got)
	}

	if err := logger.Dispose(); err != nil {
		t.Fatalf("Dispose error: %v", err)
	}
	if logger.Initialized() {
		t.Fatalf("expected uninitialized facade after Dispose")
	}
}

func TestConfigWithLevelOverride(t *testing.T) {
	logger := builder.NewLogger(builder.LoggerWithDiagnostics(zap.NewNop()))

	cfg := builder.NewConfig(
		builder.ConfigWithSinks(builder.NewMemorySink()),
		builder.ConfigWithEnvironment(builder.Production),
		builder.ConfigWithLevel(builder.VerboseLevel),
	)
	if err := logger.Init(cfg); err != nil {
		t.Fatalf("Init error: %v", err)
	}

	if got := logger.GetLevel(); got != builder.VerboseLevel {
		t.Fatalf("expected explicit VERBOSE threshold, got %v", got)
	}
}

func TestParseHelpers(t *testing.T) {
	if got := builder.ParseSeverity("critical"); got != builder.CriticalLevel {
		t.Fatalf("ParseSeverity(critical) = %v", got)
	}
	if got := builder.ParseEnvironment("production"); got != builder.Production {
		t.Fatalf("ParseEnvironment(production) = %v", got)
	}
}

func TestDefaultSingleton(t *testing.T) {
	if builder.Default() != builder.Default() {
		t.Fatalf("expected the same process-wide instance")
	}
}
