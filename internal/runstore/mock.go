package runstore

import (
	"github.com/datascope/datascope/internal/contract"
	"github.com/datascope/datascope/schema"
	"github.com/stretchr/testify/mock"
)

// MockRunStoreManager is a mock implementation of RunStoreManager for testing.
type MockRunStoreManager struct {
	mock.Mock
}

var _ contract.RunStoreManager = &MockRunStoreManager{} // Compile-time check

// GetRunStore implements the RunStoreManager interface.
func (m *MockRunStoreManager) GetRunStore() contract.RunStore {
	ret := m.Called()
	store, _ := ret.Get(0).(contract.RunStore)
	return store
}

// MockRunStore is a mock implementation of RunStore for testing.
type MockRunStore struct {
	mock.Mock
}

var _ contract.RunStore = &MockRunStore{} // Compile-time check

// RecordRun implements the RunStore interface.
func (m *MockRunStore) RecordRun(run schema.RunRecord) (int64, error) {
	args := m.Called(run)
	return args.Get(0).(int64), args.Error(1)
}

// GetAllRuns implements the RunStore interface.
func (m *MockRunStore) GetAllRuns() ([]schema.RunRecord, error) {
	args := m.Called()
	runs, _ := args.Get(0).([]schema.RunRecord)
	return runs, args.Error(1)
}

// GetStatus implements the RunStore interface.
func (m *MockRunStore) GetStatus() (schema.RunStatus, error) {
	args := m.Called()
	return args.Get(0).(schema.RunStatus), args.Error(1)
}

// Clear implements the RunStore interface.
func (m *MockRunStore) Clear() error {
	args := m.Called()
	return args.Error(0)
}

// Close implements the RunStore interface.
func (m *MockRunStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
