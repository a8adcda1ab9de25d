package test

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/tripbudget/backend/internal/models"
)

// TmpFile returns the path to a unique file to be used in tests
func TmpFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), uuid.New().String()+".db")
}

// Database connects models.DB to a fresh database in a temporary
// directory. The connection is closed when the test finishes.
func Database(t *testing.T) {
	require.Nil(t, models.Connect(TmpFile(t)), "database connection failed")

	t.Cleanup(func() {
		if sqlDB, err := models.DB.DB(); err == nil {
			sqlDB.Close()
		}
	})
}
