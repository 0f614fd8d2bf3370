package services

import (
	"context"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"

	"gallera-api/packages/core/store"
	"gallera-api/packages/core/tournament"
)

// SnapshotStore keeps point-in-time copies of the session.
type SnapshotStore interface {
	CreateSnapshot(ctx context.Context, state tournament.State) (store.Snapshot, error)
	ListSnapshots(ctx context.Context) ([]store.Snapshot, error)
	PruneSnapshots(ctx context.Context, keep int) (int64, error)
}

type BackupService struct {
	session   *Session
	snapshots SnapshotStore
	retention int
	logger    zerolog.Logger
}

func NewBackupService(session *Session, snapshots SnapshotStore, retention int, logger zerolog.Logger) *BackupService {
	return &BackupService{
		session:   session,
		snapshots: snapshots,
		retention: retention,
		logger:    logger.With().Str("component", "backup").Logger(),
	}
}

// BackupSession stores a snapshot of the current session and prunes old ones.
func (s *BackupService) BackupSession(ctx context.Context) (store.Snapshot, error) {
	snap, err := s.snapshots.CreateSnapshot(ctx, s.session.State())
	if err != nil {
		return store.Snapshot{}, eris.Wrap(err, "failed to back up session")
	}

	removed, err := s.snapshots.PruneSnapshots(ctx, s.retention)
	if err != nil {
		return snap, eris.Wrap(err, "failed to prune session backups")
	}

	s.logger.Info().
		Uint("snapshot_id", snap.ID).
		Int("current_day", snap.CurrentDay).
		Int64("pruned", removed).
		Msg("Session backed up")
	return snap, nil
}

func (s *BackupService) GetSnapshots(ctx context.Context) ([]store.Snapshot, error) {
	return s.snapshots.ListSnapshots(ctx)
}
