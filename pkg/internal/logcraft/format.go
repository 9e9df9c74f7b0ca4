package logcraft

import (
	"strings"
	"time"

	"github.com/changyy/logcraft-go/pkg/internal/types"
)

// timestampLayout renders local wall-clock time with millisecond precision,
// zero-padded: YYYY-MM-DD HH:MM:SS.mmm.
const timestampLayout = "2006-01-02 15:04:05.000"

// formatEntry builds the formatted output for one log event. The message line and the
// optional error and stack-trace continuation lines share an identical prefix
// computed once per call.
func formatEntry(now time.Time, level types.Severity, message string, err error, trace string) string {
	prefix := "[" + now.Format(timestampLayout) + "][" + level.String() + "]"

	var b strings.Builder
	b.WriteString(prefix)
	b.WriteByte(' ')
	b.WriteString(message)
	if err != nil {
		b.WriteByte('\n')
		b.WriteString(prefix)
		b.WriteString(" Error details: ")
		b.WriteString(err.Error())
	}
	if trace != "" {
		b.WriteByte('\n')
		b.WriteString(prefix)
		b.WriteString(" Stack trace:\n")
		b.WriteString(trace)
	}
	return b.String()
}
