// Package store persists the tournament session.
package store

import (
	"context"
	"errors"

	"github.com/rotisserie/eris"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"gallera-api/packages/core/tournament"
)

// GormStore keeps the session as one row, rewritten whole on every save.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Load returns the last saved session. ok is false when nothing was saved yet.
func (s *GormStore) Load(ctx context.Context) (tournament.State, bool, error) {
	var rec SessionRecord
	err := s.db.WithContext(ctx).First(&rec, sessionRowID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return tournament.State{}, false, nil
	}
	if err != nil {
		return tournament.State{}, false, eris.Wrap(err, "failed to load tournament session")
	}
	return rec.State.Data().Normalized(), true, nil
}

// Save upserts the session row inside a transaction.
func (s *GormStore) Save(ctx context.Context, state tournament.State) error {
	rec := SessionRecord{
		ID:         sessionRowID,
		Phase:      string(state.Phase),
		CurrentDay: state.CurrentDay,
		Finished:   state.Finished,
		State:      datatypes.NewJSONType(state),
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"phase", "current_day", "finished", "state", "updated_at"}),
		}).Create(&rec).Error
	})
	if err != nil {
		return eris.Wrap(err, "failed to save tournament session")
	}
	return nil
}

// Clear removes the saved session.
func (s *GormStore) Clear(ctx context.Context) error {
	if err := s.db.WithContext(ctx).Delete(&SessionRecord{}, sessionRowID).Error; err != nil {
		return eris.Wrap(err, "failed to clear tournament session")
	}
	return nil
}

func (s *GormStore) CreateSnapshot(ctx context.Context, state tournament.State) (Snapshot, error) {
	rec := SnapshotRecord{
		Phase:      string(state.Phase),
		CurrentDay: state.CurrentDay,
		State:      datatypes.NewJSONType(state),
	}
	if err := s.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return Snapshot{}, eris.Wrap(err, "failed to create session snapshot")
	}
	return snapshotOf(rec), nil
}

// ListSnapshots returns the stored snapshots, newest first.
func (s *GormStore) ListSnapshots(ctx context.Context) ([]Snapshot, error) {
	var recs []SnapshotRecord
	err := s.db.WithContext(ctx).
		Select("id", "phase", "current_day", "created_at").
		Order("id DESC").
		Find(&recs).Error
	if err != nil {
		return nil, eris.Wrap(err, "failed to list session snapshots")
	}

	out := make([]Snapshot, 0, len(recs))
	for _, rec := range recs {
		out = append(out, snapshotOf(rec))
	}
	return out, nil
}

// PruneSnapshots keeps the newest keep snapshots and returns how many were removed.
func (s *GormStore) PruneSnapshots(ctx context.Context, keep int) (int64, error) {
	db := s.db.WithContext(ctx)
	newest := db.Model(&SnapshotRecord{}).Select("id").Order("id DESC").Limit(keep)

	res := db.Where("id NOT IN (?)", newest).Delete(&SnapshotRecord{})
	if res.Error != nil {
		return 0, eris.Wrap(res.Error, "failed to prune session snapshots")
	}
	return res.RowsAffected, nil
}

func snapshotOf(rec SnapshotRecord) Snapshot {
	return Snapshot{
		ID:         rec.ID,
		Phase:      rec.Phase,
		CurrentDay: rec.CurrentDay,
		CreatedAt:  rec.CreatedAt,
	}
}
