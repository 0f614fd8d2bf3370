package cron

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"

	"gallera-api/packages/core/services"
)

// backupTimeout bounds a single scheduled backup.
const backupTimeout = 30 * time.Second

type Scheduler struct {
	cron          *cron.Cron
	schedule      string
	backupService *services.BackupService
	logger        zerolog.Logger
}

// NewScheduler builds a scheduler. The schedule has a seconds field, e.g. "0 */15 * * * *".
func NewScheduler(backupService *services.BackupService, schedule string, logger zerolog.Logger) *Scheduler {
	logger = logger.With().Str("component", "scheduler").Logger()
	c := cron.New(cron.WithSeconds(), cron.WithLogger(cronLogger{logger: logger}))

	return &Scheduler{
		cron:          c,
		schedule:      schedule,
		backupService: backupService,
		logger:        logger,
	}
}

// Start registers the jobs and starts the scheduler.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.schedule, s.runBackup); err != nil {
		return eris.Wrapf(err, "failed to schedule session backup %q", s.schedule)
	}

	s.cron.Start()
	s.logger.Info().Str("schedule", s.schedule).Msg("Cron scheduler started")
	return nil
}

// Stop waits for running jobs to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.logger.Info().Msg("Cron scheduler stopped")
}

func (s *Scheduler) runBackup() {
	ctx, cancel := context.WithTimeout(context.Background(), backupTimeout)
	defer cancel()

	if _, err := s.backupService.BackupSession(ctx); err != nil {
		s.logger.Error().Err(err).Msg("Session backup failed")
	}
}

// RunNow triggers the backup job outside its schedule.
func (s *Scheduler) RunNow() {
	s.logger.Info().Msg("Manually triggering session backup")
	s.runBackup()
}

// cronLogger forwards robfig/cron's logging to zerolog.
type cronLogger struct {
	logger zerolog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debug().Fields(keysAndValues).Msg(msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Error().Err(err).Fields(keysAndValues).Msg(msg)
}
