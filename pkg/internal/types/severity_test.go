package types

import "testing"

func TestSeverityRanks(t *testing.T) {
	ordered := []Severity{CriticalLevel, ErrorLevel, WarningLevel, InfoLevel, DebugLevel, VerboseLevel}
	for rank, level := range ordered {
		if int(level) != rank {
			t.Fatalf("expected %s to have rank %d, got %d", level, rank, int(level))
		}
	}
}

func TestSeverityString(t *testing.T) {
	cases := map[Severity]string{
		CriticalLevel: "CRITICAL",
		ErrorLevel:    "ERROR",
		WarningLevel:  "WARNING",
		InfoLevel:     "INFO",
		DebugLevel:    "DEBUG",
		VerboseLevel:  "VERBOSE",
		Severity(99):  "UNKNOWN",
	}

	for level, expect := range cases {
		if got := level.String(); got != expect {
			t.Fatalf("Severity(%d).String() = %q, expected %q", int(level), got, expect)
		}
	}
}

func TestEnvironmentDefaultThreshold(t *testing.T) {
	cases := map[Environment]Severity{
		Development:      VerboseLevel,
		Testing:          WarningLevel,
		Production:       ErrorLevel,
		Environment(99):  VerboseLevel,
	}

	for env, expect := range cases {
		if got := env.DefaultThreshold(); got != expect {
			t.Fatalf("%s.DefaultThreshold() = %v, expected %v", env, got, expect)
		}
	}
}

func TestEnvironmentString(t *testing.T) {
	cases := map[Environment]string{
		Development:      "development",
		Testing:          "testing",
		Production:       "production",
		Environment(99):  "unknown",
	}

	for env, expect := range cases {
		if got := env.String(); got != expect {
			t.Fatalf("Environment(%d).String() = %q, expected %q", int(env), got, expect)
		}
	}
}
