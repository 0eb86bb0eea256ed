package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdg-garage/park-planner-api/internal/config"
	"github.com/gdg-garage/park-planner-api/internal/database"
	"github.com/gdg-garage/park-planner-api/internal/generator"
	"github.com/gdg-garage/park-planner-api/internal/handlers"
	"github.com/gdg-garage/park-planner-api/internal/logging"
	"github.com/gdg-garage/park-planner-api/internal/notifier"
	"github.com/gdg-garage/park-planner-api/internal/planner"
	"github.com/gdg-garage/park-planner-api/internal/session"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

func main() {
	// Load Configuration
	cfg := config.LoadConfig()

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	catalog, err := planner.LoadCatalog(cfg.CatalogPath)
	if err != nil {
		logger.Fatal("failed to load catalog", zap.String("path", cfg.CatalogPath), zap.Error(err))
	}

	// Connect to Database
	db := database.Connect(cfg)

	// Initialize Notifier
	var planNotifier notifier.Notifier
	if cfg.DiscordBotToken != "" {
		discordNotifier, err := notifier.NewDiscordBotNotifier(cfg.DiscordBotToken, cfg.DiscordNotificationsChannelID)
		if err != nil {
			logger.Warn("discord notifier not initialized", zap.Error(err))
		} else {
			planNotifier = discordNotifier
		}
	}

	// Initialize Handlers
	gen := generator.New(generator.Options{
		Delay:  cfg.GenerationDelay,
		Rate:   cfg.GenerationRate,
		Burst:  cfg.GenerationBurst,
		Logger: logger.Named("generator"),
	})
	tasks := generator.NewRegistry(gen)
	sessions := session.NewManager(cfg)

	plannerHandler := handlers.NewPlannerHandler(db, catalog, tasks, sessions, planNotifier, logger.Named("planner"))
	planHandler := handlers.NewPlanHandler(gen, catalog)

	// Initialize Router
	r := chi.NewRouter()

	// Register Routes
	handlers.RegisterRoutes(r, cfg, sessions, plannerHandler, planHandler)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	// Start Server
	g.Go(func() error {
		logger.Info("starting server", zap.String("port", cfg.Port), zap.Duration("generation_delay", gen.Delay()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		purgeSessions(ctx, db, cfg.PurgeInterval, logger)
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		err := srv.Shutdown(shutdownCtx)
		if tasksErr := tasks.Shutdown(shutdownCtx); tasksErr != nil {
			logger.Warn("pending generations did not finish", zap.Error(tasksErr))
		}
		return err
	})

	if err := g.Wait(); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

// purgeSessions deletes expired planner sessions until ctx is done.
func purgeSessions(ctx context.Context, db *gorm.DB, interval time.Duration, logger *zap.Logger) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			n, err := database.PurgeExpired(db, now)
			if err != nil {
				logger.Warn("failed to purge expired sessions", zap.Error(err))
				continue
			}
			if n > 0 {
				logger.Info("purged expired sessions", zap.Int64("count", n))
			}
		}
	}
}
