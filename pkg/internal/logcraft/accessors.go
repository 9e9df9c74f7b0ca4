package logcraft

import "github.com/changyy/logcraft-go/pkg/internal/types"

// Initialized reports whether the facade currently holds an adopted configuration.
func (f *Facade) Initialized() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.initialized
}

// GetLevel returns the current severity threshold.
func (f *Facade) GetLevel() types.Severity {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.threshold
}

// GetEnvironment returns the current environment.
func (f *Facade) GetEnvironment() types.Environment {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.environment
}

// SinkCount returns the number of active sinks.
func (f *Facade) SinkCount() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.sinks)
}

// GetComponentMetadata returns the facade's identifying metadata.
func (f *Facade) GetComponentMetadata() types.ComponentMetadata {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.componentMetadata
}

// SetComponentMetadata sets the facade's name and id.
func (f *Facade) SetComponentMetadata(name string, id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.componentMetadata.Name = name
	f.componentMetadata.ID = id
}
