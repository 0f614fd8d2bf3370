package core

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"gallera-api/packages/core/cron"
	"gallera-api/packages/core/handlers"
	"gallera-api/packages/core/services"
)

// Options tune the module's background behaviour.
type Options struct {
	MatchmakingDelay time.Duration
	BackupSchedule   string
	BackupRetention  int
}

type Module struct {
	SessionHandler     *handlers.SessionHandler
	TeamHandler        *handlers.TeamHandler
	RoosterHandler     *handlers.RoosterHandler
	RulesHandler       *handlers.RulesHandler
	MatchmakingHandler *handlers.MatchmakingHandler
	FightHandler       *handlers.FightHandler
	ResultsHandler     *handlers.ResultsHandler
	BackupHandler      *handlers.BackupHandler
	BackupService      *services.BackupService
	Scheduler          *cron.Scheduler
	logger             zerolog.Logger
}

func NewModule(session *services.Session, snapshots services.SnapshotStore, opts Options, logger zerolog.Logger) *Module {
	backupService := services.NewBackupService(session, snapshots, opts.BackupRetention, logger)

	return &Module{
		SessionHandler:     handlers.NewSessionHandler(services.NewTournamentService(session)),
		TeamHandler:        handlers.NewTeamHandler(services.NewTeamService(session)),
		RoosterHandler:     handlers.NewRoosterHandler(services.NewRoosterService(session)),
		RulesHandler:       handlers.NewRulesHandler(services.NewRulesService(session)),
		MatchmakingHandler: handlers.NewMatchmakingHandler(services.NewMatchmakingService(session, opts.MatchmakingDelay, logger)),
		FightHandler:       handlers.NewFightHandler(services.NewFightService(session)),
		ResultsHandler:     handlers.NewResultsHandler(services.NewResultsService(session)),
		BackupHandler:      handlers.NewBackupHandler(backupService),
		BackupService:      backupService,
		Scheduler:          cron.NewScheduler(backupService, opts.BackupSchedule, logger),
		logger:             logger,
	}
}

func (m *Module) SetupRoutes(r *gin.Engine) {
	session := r.Group("/session")
	{
		session.GET("", m.SessionHandler.GetSession)
		session.DELETE("", m.SessionHandler.Reset)
		session.POST("/days/:day/select", m.SessionHandler.SelectDay)
		session.POST("/live", m.SessionHandler.ResumeLive)
		session.POST("/matchmaking", m.SessionHandler.ShowMatchmaking)
		session.POST("/setup", m.SessionHandler.BackToSetup)
		session.POST("/tournament-results", m.SessionHandler.ShowTournamentResults)
		session.GET("/new-tournament/preview", m.SessionHandler.PreviewNewTournament)
		session.POST("/new-tournament", m.SessionHandler.NewTournament)
		session.GET("/reset/preview", m.SessionHandler.PreviewReset)
		session.POST("/demo", m.SessionHandler.LoadDemo)
		session.GET("/backups", m.BackupHandler.GetBackups)
		session.POST("/backups", m.BackupHandler.CreateBackup)
	}

	rules := r.Group("/rules")
	{
		rules.GET("", m.RulesHandler.GetRules)
		rules.PATCH("", m.RulesHandler.UpdateRules)
		rules.POST("/exceptions", m.RulesHandler.AddExceptions)
		rules.DELETE("/exceptions/:index", m.RulesHandler.RemoveException)
	}

	teams := r.Group("/teams")
	{
		teams.GET("", m.TeamHandler.GetAllTeams)
		teams.POST("", m.TeamHandler.CreateTeam)
		teams.PUT("/:id", m.TeamHandler.UpdateTeam)
		teams.DELETE("/:id", m.TeamHandler.DeleteTeam)
		teams.GET("/:id/delete-preview", m.TeamHandler.PreviewDelete)
		teams.GET("/:id/update-preview", m.TeamHandler.PreviewUpdate)
	}

	days := r.Group("/days/:day")
	{
		days.GET("/roosters", m.RoosterHandler.GetRoosters)
		days.GET("/matchmaking", m.MatchmakingHandler.GetResult)
	}

	roosters := r.Group("/roosters")
	{
		roosters.POST("", m.RoosterHandler.CreateRooster)
		roosters.PUT("/:id", m.RoosterHandler.UpdateRooster)
		roosters.DELETE("/:id", m.RoosterHandler.DeleteRooster)
	}

	matchmaking := r.Group("/matchmaking")
	{
		matchmaking.POST("", m.MatchmakingHandler.RunMatchmaking)
		matchmaking.POST("/manual-fights", m.MatchmakingHandler.AddManualFight)
		matchmaking.POST("/start", m.MatchmakingHandler.StartFights)
	}

	fights := r.Group("/fights")
	{
		fights.GET("/live", m.FightHandler.GetLiveFights)
		fights.POST("/:id/finish", m.FightHandler.FinishFight)
	}

	r.POST("/tournament/finish", m.FightHandler.FinishTournament)

	results := r.Group("/results")
	{
		results.GET("/days", m.ResultsHandler.GetDailyResults)
		results.GET("/days/:day", m.ResultsHandler.GetDayResults)
		results.GET("/tournament", m.ResultsHandler.GetTournamentResults)
	}
}

// StartScheduler starts the session backup job
func (m *Module) StartScheduler() error {
	m.logger.Info().Msg("Starting core module scheduler")
	return m.Scheduler.Start()
}

// StopScheduler stops the cron scheduler
func (m *Module) StopScheduler() {
	m.logger.Info().Msg("Stopping core module scheduler")
	m.Scheduler.Stop()
}

// RunBackupNow takes a session backup outside the schedule
func (m *Module) RunBackupNow() {
	m.Scheduler.RunNow()
}
