package migrations

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"gallera-api/packages/core/store"
)

func newTestMigrator(t *testing.T) (*Migrator, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	m, err := NewMigrator(db, zerolog.Nop())
	require.NoError(t, err)
	m.AddMigration(GetAllMigrations()...)
	return m, db
}

func TestMigrator_MigrateIsIdempotent(t *testing.T) {
	m, db := newTestMigrator(t)

	require.NoError(t, m.Migrate())
	require.NoError(t, m.Migrate())

	assert.True(t, db.Migrator().HasTable(&store.SessionRecord{}))
	assert.True(t, db.Migrator().HasTable(&store.SnapshotRecord{}))

	status, err := m.Status()
	require.NoError(t, err)
	require.Len(t, status, 2)
	assert.Equal(t, 1, status[0].Batch)
	assert.Equal(t, 1, status[1].Batch)
}

func TestMigrator_Rollback(t *testing.T) {
	m, db := newTestMigrator(t)

	require.NoError(t, m.Migrate())
	require.NoError(t, m.Rollback(1))

	assert.False(t, db.Migrator().HasTable(&store.SessionRecord{}))
	assert.False(t, db.Migrator().HasTable(&store.SnapshotRecord{}))

	status, err := m.Status()
	require.NoError(t, err)
	assert.Empty(t, status)

	require.NoError(t, m.Migrate())
	assert.True(t, db.Migrator().HasTable(&store.SessionRecord{}))
}

func TestMigrator_RollbackNeedsDefinition(t *testing.T) {
	m, db := newTestMigrator(t)
	require.NoError(t, m.Migrate())

	require.NoError(t, db.Create(&Migration{Name: "unknown", Batch: 2}).Error)
	require.Error(t, m.Rollback(1))
}
