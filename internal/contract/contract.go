// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"github.com/datascope/datascope/schema"
)

// RunStore defines the interface for run history storage.
// This allows mocking the store for testing.
type RunStore interface {
	// RecordRun persists one invocation and returns its unique ID.
	RecordRun(run schema.RunRecord) (int64, error)

	// GetAllRuns returns every recorded run, newest first.
	GetAllRuns() ([]schema.RunRecord, error)

	// GetStatus returns status information about the run store.
	GetStatus() (schema.RunStatus, error)

	// Clear removes all recorded runs.
	Clear() error

	// Close closes the underlying connection.
	Close() error
}

// RunStoreManager defines the interface for managing the run store.
// This allows the persistence layer to be mocked for testing.
type RunStoreManager interface {
	GetRunStore() RunStore
}
