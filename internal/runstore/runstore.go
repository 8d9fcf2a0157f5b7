// Package runstore persists run history across invocations.
package runstore

import (
	"sync"

	"github.com/datascope/datascope/internal/contract"
)

// RunStoreManager manages the RunStore instance.
type RunStoreManager struct {
	sync.RWMutex // Protects the store pointer during initialization
	runs         contract.RunStore
}

var _ contract.RunStoreManager = &RunStoreManager{} // Compile-time check

// GetRunStore returns the run history RunStore.
func (mgr *RunStoreManager) GetRunStore() contract.RunStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.runs
}
