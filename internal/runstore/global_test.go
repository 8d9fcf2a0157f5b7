package runstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/datascope/datascope/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestClearRuns_SQLite(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "runs.db")

	store, err := NewRunStore(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	_, err = store.RecordRun(sampleRun(schema.ProfileRunKind, 90))
	require.NoError(t, err)
	require.NoError(t, store.Close())

	require.NoError(t, ClearRuns(schema.SQLiteBackend, dbPath, ""))

	_, err = os.Stat(dbPath)
	assert.True(t, os.IsNotExist(err))

	// Clearing an already-missing file is fine
	assert.NoError(t, ClearRuns(schema.SQLiteBackend, dbPath, ""))
}

func TestClearRuns_SQLiteRequiresPath(t *testing.T) {
	err := ClearRuns(schema.SQLiteBackend, "", "")
	assert.Error(t, err)
}

func TestClearRuns_NoneBackend(t *testing.T) {
	assert.NoError(t, ClearRuns(schema.NoneBackend, "", ""))
}

func TestMockRunStore(t *testing.T) {
	store := &MockRunStore{}
	store.On("RecordRun", mock.AnythingOfType("schema.RunRecord")).Return(int64(7), nil)
	store.On("GetAllRuns").Return([]schema.RunRecord{{RunID: 7}}, nil)

	id, err := store.RecordRun(sampleRun(schema.ScoreRunKind, 50))
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)

	runs, err := store.GetAllRuns()
	require.NoError(t, err)
	assert.Len(t, runs, 1)

	store.AssertExpectations(t)
}
