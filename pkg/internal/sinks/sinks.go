// Package sinks provides the output adapters shipped with the library: console,
// single file, level-partitioned files, and an in-memory capture. Every adapter
// serializes its own writes, so the facade may dispatch to it concurrently across
// log events.
package sinks

import "strings"

// isIgnorableSyncError filters the errno noise that syncing a terminal stream
// produces on most platforms.
func isIgnorableSyncError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "inappropriate ioctl for device") ||
		strings.Contains(msg, "bad file descriptor") ||
		strings.Contains(msg, "invalid argument")
}
