package cron

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gallera-api/packages/core/services"
	"gallera-api/packages/core/store"
)

func newBackupService(t *testing.T) (*services.BackupService, *store.MemoryStore) {
	t.Helper()
	st := store.NewMemoryStore()
	session, err := services.NewSession(context.Background(), st, zerolog.Nop())
	require.NoError(t, err)
	return services.NewBackupService(session, st, 5, zerolog.Nop()), st
}

func TestScheduler_RunNowCreatesSnapshot(t *testing.T) {
	t.Parallel()

	backups, st := newBackupService(t)
	s := NewScheduler(backups, "0 */15 * * * *", zerolog.Nop())

	s.RunNow()

	snaps, err := st.ListSnapshots(context.Background())
	require.NoError(t, err)
	assert.Len(t, snaps, 1)
}

func TestScheduler_StartRejectsBadSchedule(t *testing.T) {
	t.Parallel()

	backups, _ := newBackupService(t)
	s := NewScheduler(backups, "every now and then", zerolog.Nop())

	require.Error(t, s.Start())
}

func TestScheduler_StartStop(t *testing.T) {
	t.Parallel()

	backups, _ := newBackupService(t)
	s := NewScheduler(backups, "*/30 * * * * *", zerolog.Nop())

	require.NoError(t, s.Start())
	s.Stop()
}
