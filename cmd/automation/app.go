package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/galactic-marines/gm-automation/internal/config"
	"github.com/galactic-marines/gm-automation/internal/database"
	"github.com/galactic-marines/gm-automation/internal/domain"
	"github.com/galactic-marines/gm-automation/internal/domain/contract"
	"github.com/galactic-marines/gm-automation/internal/domain/service"
	"github.com/galactic-marines/gm-automation/internal/events"
	"github.com/galactic-marines/gm-automation/internal/handlers"
	"github.com/galactic-marines/gm-automation/internal/notifier/discord"
	"github.com/galactic-marines/gm-automation/internal/scheduler"
	"github.com/galactic-marines/gm-automation/internal/seed"
	"github.com/galactic-marines/gm-automation/migrator/sqlite"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

const shutdownTimeout = 15 * time.Second

// app holds the wired dependencies shared by every command.
type app struct {
	db       *database.DB
	services *service.Instance
	closers  []func()
}

func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	if _, err := service.LoadLocation(cfg.DefaultTimezone); err != nil {
		return nil, fmt.Errorf("invalid DEFAULT_TIMEZONE: %w", err)
	}
	domain.DefaultTimezone = cfg.DefaultTimezone

	db, err := openDatabase(cfg)
	if err != nil {
		return nil, err
	}
	a := &app{db: db}
	a.closers = append(a.closers, func() { _ = db.Close() })

	notifier := discord.New(discord.Config{
		Timeout:       cfg.WebhookTimeout,
		RatePerSecond: cfg.WebhookRatePerSecond,
		Burst:         cfg.WebhookBurst,
	})

	a.services = service.NewInstance(database.NewInstance(db), notifier, a.eventPublisher(ctx, cfg))
	return a, nil
}

func (a *app) eventPublisher(ctx context.Context, cfg *config.Config) contract.EventPublisher {
	if strings.TrimSpace(cfg.NATSURL) == "" {
		return events.NoopPublisher{}
	}

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	publisher := events.NewNATSPublisher(cfg.NATSURL)
	if err := publisher.Connect(connectCtx); err != nil {
		log.Warnf("Automation events disabled: %v", err)
		return events.NoopPublisher{}
	}
	a.closers = append(a.closers, publisher.Close)
	return publisher
}

func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

func openDatabase(cfg *config.Config) (*database.DB, error) {
	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := sqlite.Migrate(db.DB()); err != nil {
		_ = db.Close()
		return nil, err
	}
	log.WithField("path", cfg.DatabasePath).Info("Database ready")
	return db, nil
}

func serve(ctx context.Context, cfg *config.Config) error {
	a, err := newApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	if cfg.AdminToken == "" {
		log.Warn("ADMIN_TOKEN is not set, the admin API is locked")
	}
	if cfg.CronSecret == "" {
		log.Warn("CRON_SECRET is not set, the cron endpoint is locked")
	}

	var sched *scheduler.Scheduler
	if cfg.AutomationCron != "" {
		if sched, err = scheduler.New(a.services.Automation, cfg.AutomationCron); err != nil {
			return err
		}
		if err := sched.Start(ctx); err != nil {
			return err
		}
	}

	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.Use(gin.Recovery())
	if len(cfg.AllowedOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:  cfg.AllowedOrigins,
			AllowMethods:  []string{"GET", "POST", "PUT", "DELETE"},
			AllowHeaders:  []string{"Origin", "Authorization", "Content-Type", "Content-Length"},
			ExposeHeaders: []string{"Content-Type", "Content-Length"},
			MaxAge:        12 * time.Hour,
		}))
	}
	handlers.New(a.services.PlannedMessage, a.services.Akten, a.services.Automation, cfg.AdminToken, cfg.CronSecret).AddRoutes(router)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("Server starting on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
	case <-ctx.Done():
		log.Info("Received shutdown signal, shutting down gracefully...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if sched != nil {
		sched.Stop(shutdownCtx)
	}
	return server.Shutdown(shutdownCtx)
}

// runOnce performs a single automation run and prints its result, for hosts
// that trigger the automation from an OS level cron.
func runOnce(ctx context.Context, cfg *config.Config) error {
	a, err := newApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	result := a.services.Automation.Run(ctx, time.Now())

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func seedFromFile(ctx context.Context, cfg *config.Config, path string) error {
	f, err := seed.Load(path)
	if err != nil {
		return err
	}

	a, err := newApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	_, err = seed.Apply(ctx, a.services.Akten, f)
	return err
}

func migrateOnly(cfg *config.Config) error {
	db, err := openDatabase(cfg)
	if err != nil {
		return err
	}
	return db.Close()
}
