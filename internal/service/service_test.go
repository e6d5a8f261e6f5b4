package service_test

import (
	"testing"

	"ledger_system/internal/domain"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory database for a single test. The pool is
// pinned to one connection so the in-memory store is shared and
// concurrent transactions serialize the way a row-locking store would.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	database, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := database.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.AutoMigrate(&domain.Receiver{}, &domain.Operation{}))
	return database
}

// countOperations returns the number of operation rows in the store
func countOperations(t *testing.T, database *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, database.Model(&domain.Operation{}).Count(&n).Error)
	return n
}

// receiverBalance re-reads a receiver's balance from the store
func receiverBalance(t *testing.T, database *gorm.DB, id uint) float64 {
	t.Helper()
	var receiver domain.Receiver
	require.NoError(t, database.First(&receiver, id).Error)
	return receiver.Balance
}
