package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"gallera-api/config"
	_ "gallera-api/docs" // Swagger docs
	"gallera-api/migrations"
	"gallera-api/packages/core"
	"gallera-api/packages/core/handlers"
	"gallera-api/packages/core/services"
	"gallera-api/packages/core/store"
)

// @title           Gallera API
// @version         1.0
// @description     API para la gestión de torneos de gallos: equipos, gallos, cotejo, peleas y resultados.

// @license.name  MIT
// @license.url   http://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

const shutdownTimeout = 10 * time.Second

type sessionStore interface {
	services.SessionStore
	services.SnapshotStore
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}
	logger := config.SetupLogger(cfg)

	if err := run(cfg, logger); err != nil {
		logger.Fatal().Err(err).Msg("Server stopped")
	}
}

func run(cfg config.Config, logger zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, storeName, err := openStore(cfg, logger)
	if err != nil {
		return err
	}

	session, err := services.NewSession(ctx, st, logger)
	if err != nil {
		return err
	}

	coreModule := core.NewModule(session, st, core.Options{
		MatchmakingDelay: cfg.MatchmakingDelay,
		BackupSchedule:   cfg.BackupSchedule,
		BackupRetention:  cfg.BackupRetention,
	}, logger)

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), handlers.RequestLogger(logger), corsMiddleware(cfg))

	coreModule.SetupRoutes(r)

	// Swagger endpoint
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/health", healthHandler(storeName))

	if err := coreModule.StartScheduler(); err != nil {
		return err
	}
	defer coreModule.StopScheduler()

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("port", cfg.Port).Str("store", storeName).Msg("Server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return eris.Wrap(err, "http server failed")
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info().Msg("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return eris.Wrap(err, "failed to shut down http server")
	}

	// A last backup so the newest state survives in the snapshot history.
	coreModule.RunBackupNow()
	return nil
}

// openStore returns the postgres store when DATABASE_URL is set, after running
// pending migrations, and the in-memory store otherwise.
func openStore(cfg config.Config, logger zerolog.Logger) (sessionStore, string, error) {
	if cfg.DatabaseURL == "" {
		logger.Warn().Msg("DATABASE_URL not set, the session will not survive a restart")
		return store.NewMemoryStore(), "memory", nil
	}

	db, err := config.ConnectDatabase(cfg.DatabaseURL, cfg)
	if err != nil {
		return nil, "", err
	}

	migrator, err := migrations.NewMigrator(db, logger)
	if err != nil {
		return nil, "", err
	}
	migrator.AddMigration(migrations.GetAllMigrations()...)
	if err := migrator.Migrate(); err != nil {
		return nil, "", err
	}

	return store.NewGormStore(db), "postgres", nil
}

func corsMiddleware(cfg config.Config) gin.HandlerFunc {
	if len(cfg.CORSOrigins) == 0 {
		return cors.New(cors.Config{
			AllowAllOrigins: true,
			AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:    []string{"Origin", "Content-Type", "Accept"},
			MaxAge:          12 * time.Hour,
		})
	}
	return cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		MaxAge:       12 * time.Hour,
	})
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Message string `json:"message" example:"Server is running"`
	Store   string `json:"store" example:"postgres"`
}

// @Summary Health Check
// @Description Check if the server is running and which session store it uses
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func healthHandler(storeName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, HealthResponse{
			Message: "Server is running",
			Store:   storeName,
		})
	}
}
