package migrations

import (
	"gorm.io/gorm"

	"gallera-api/packages/core/store"
)

func GetCoreMigrations() []MigrationDefinition {
	return []MigrationDefinition{
		{
			Name: "2025_01_01_000000_create_tournament_sessions_table",
			Up: func(db *gorm.DB) error {
				return db.Migrator().CreateTable(&store.SessionRecord{})
			},
			Down: func(db *gorm.DB) error {
				return db.Migrator().DropTable(&store.SessionRecord{})
			},
		},
		{
			Name: "2025_01_01_000001_create_session_snapshots_table",
			Up: func(db *gorm.DB) error {
				return db.Migrator().CreateTable(&store.SnapshotRecord{})
			},
			Down: func(db *gorm.DB) error {
				return db.Migrator().DropTable(&store.SnapshotRecord{})
			},
		},
	}
}

// GetAllMigrations returns every migration in the order it must run.
func GetAllMigrations() []MigrationDefinition {
	return GetCoreMigrations()
}
