package migrations

import (
	"time"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type Migration struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"unique;not null"`
	Batch     int       `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

type MigrationFunc func(*gorm.DB) error

type MigrationDefinition struct {
	Name string
	Up   MigrationFunc
	Down MigrationFunc
}

type Migrator struct {
	db         *gorm.DB
	migrations []MigrationDefinition
	logger     zerolog.Logger
}

func NewMigrator(db *gorm.DB, logger zerolog.Logger) (*Migrator, error) {
	if err := db.AutoMigrate(&Migration{}); err != nil {
		return nil, eris.Wrap(err, "failed to create migrations table")
	}
	return &Migrator{
		db:     db,
		logger: logger.With().Str("component", "migrator").Logger(),
	}, nil
}

func (m *Migrator) AddMigration(migrations ...MigrationDefinition) {
	m.migrations = append(m.migrations, migrations...)
}

// Migrate runs every pending migration in one new batch.
func (m *Migrator) Migrate() error {
	m.logger.Info().Msg("Running database migrations")

	batch, err := m.latestBatch()
	if err != nil {
		return err
	}
	batch++

	for _, migration := range m.migrations {
		ran, err := m.hasRun(migration.Name)
		if err != nil {
			return err
		}
		if ran {
			continue
		}

		err = m.db.Transaction(func(tx *gorm.DB) error {
			if err := migration.Up(tx); err != nil {
				return eris.Wrapf(err, "migration %s failed", migration.Name)
			}
			if err := tx.Create(&Migration{Name: migration.Name, Batch: batch}).Error; err != nil {
				return eris.Wrapf(err, "failed to record migration %s", migration.Name)
			}
			return nil
		})
		if err != nil {
			return err
		}
		m.logger.Info().Str("migration", migration.Name).Int("batch", batch).Msg("Migrated")
	}

	m.logger.Info().Msg("Migration completed")
	return nil
}

// Rollback reverts the last steps batches.
func (m *Migrator) Rollback(steps int) error {
	if steps <= 0 {
		steps = 1
	}

	batch, err := m.latestBatch()
	if err != nil {
		return err
	}

	for i := 0; i < steps && batch > 0; i++ {
		var records []Migration
		if err := m.db.Where("batch = ?", batch).Order("id DESC").Find(&records).Error; err != nil {
			return eris.Wrapf(err, "failed to list batch %d", batch)
		}

		for _, record := range records {
			migration := m.findMigration(record.Name)
			if migration == nil {
				return eris.Errorf("migration definition not found: %s", record.Name)
			}
			if migration.Down == nil {
				return eris.Errorf("rollback not defined for migration: %s", record.Name)
			}

			err := m.db.Transaction(func(tx *gorm.DB) error {
				if err := migration.Down(tx); err != nil {
					return eris.Wrapf(err, "rollback failed for %s", record.Name)
				}
				if err := tx.Delete(&record).Error; err != nil {
					return eris.Wrapf(err, "failed to remove migration record %s", record.Name)
				}
				return nil
			})
			if err != nil {
				return err
			}
			m.logger.Info().Str("migration", record.Name).Msg("Rolled back")
		}

		batch--
	}

	return nil
}

// Status lists the migrations that have run, oldest first.
func (m *Migrator) Status() ([]Migration, error) {
	var records []Migration
	if err := m.db.Order("batch ASC, id ASC").Find(&records).Error; err != nil {
		return nil, eris.Wrap(err, "failed to read migration status")
	}
	return records, nil
}

func (m *Migrator) hasRun(name string) (bool, error) {
	var count int64
	if err := m.db.Model(&Migration{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return false, eris.Wrapf(err, "failed to check migration %s", name)
	}
	return count > 0, nil
}

func (m *Migrator) latestBatch() (int, error) {
	var batch int
	err := m.db.Model(&Migration{}).Select("COALESCE(MAX(batch), 0)").Scan(&batch).Error
	if err != nil {
		return 0, eris.Wrap(err, "failed to read latest batch")
	}
	return batch, nil
}

func (m *Migrator) findMigration(name string) *MigrationDefinition {
	for i := range m.migrations {
		if m.migrations[i].Name == name {
			return &m.migrations[i]
		}
	}
	return nil
}
