package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/georgemunganga/zenith-zap/internal/config"
	"github.com/georgemunganga/zenith-zap/internal/modules/auth"
	"github.com/georgemunganga/zenith-zap/internal/modules/catalog"
	"github.com/georgemunganga/zenith-zap/internal/modules/content"
	"github.com/georgemunganga/zenith-zap/internal/modules/dashboard"
	"github.com/georgemunganga/zenith-zap/internal/modules/nutro"
	"github.com/georgemunganga/zenith-zap/internal/modules/user"
	"github.com/georgemunganga/zenith-zap/internal/platform/database"
	"github.com/georgemunganga/zenith-zap/internal/platform/logging"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

const shutdownTimeout = 5 * time.Second

func main() {
	envFile := pflag.String("env-file", ".env", "dotenv file to load before reading the environment")
	migrateOnStart := pflag.Bool("migrate", true, "apply database migrations on start when DATABASE_URL is set")
	pflag.Parse()

	logger := logging.New(os.Stdout, "info")
	cfg, err := config.Load(*envFile, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}
	logger = logging.New(os.Stdout, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var db *sql.DB
	if cfg.UseDatabase() {
		if *migrateOnStart {
			if err := database.Migrate(cfg.DatabaseURL, logger); err != nil {
				logger.WithError(err).Fatal("Failed to migrate database")
			}
		}
		db, err = database.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.WithError(err).Fatal("Failed to connect to the database")
		}
		defer db.Close()
		logger.Info("Successfully connected to the database")
	} else {
		logger.Info("DATABASE_URL not set, serving the seeded in-memory catalog")
	}

	router, err := newRouter(ctx, cfg, db, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to build router")
	}

	srv := &http.Server{Addr: cfg.Addr(), Handler: router}
	go func() {
		logger.Infof("Zenith Zap API server starting on %s", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Error("HTTP server stopped")
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	logger.Info("Shutting down HTTP server")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("Failed to shut down gracefully")
	}
}

// newRouter wires every module onto one chi router. A nil db selects the
// in-memory repositories.
func newRouter(ctx context.Context, cfg *config.Config, db *sql.DB, logger logrus.FieldLogger) (http.Handler, error) {
	router := newBaseRouter(logger)

	// ── Catalog & Shop ──────────────────────────────────────
	var (
		catalogRepo catalog.Repository
		userRepo    user.Repository
	)
	if db != nil {
		var err error
		catalogRepo, err = catalog.NewPostgresRepository(ctx, db)
		if err != nil {
			return nil, err
		}
		userRepo = user.NewPostgresRepository(db)
	} else {
		catalogRepo = catalog.NewMemoryRepository(catalog.Seed())
		userRepo = user.NewMemoryRepository()
	}
	catalog.NewHandler(catalog.NewService(catalogRepo)).RegisterRoutes(router)

	// ── Identity ────────────────────────────────────────────
	userService := user.NewService(userRepo)
	user.NewHandler(userService).RegisterRoutes(router)

	authService := auth.NewService(
		auth.NewPasswordAuthenticator(userRepo, []byte(cfg.JWTSecret)),
		userService,
		auth.Options{TokenTTL: cfg.JWTTTL, LoginDelay: cfg.LoginDelay},
		logger,
	)
	auth.NewHandler(authService).RegisterRoutes(router)

	// ── Pages ───────────────────────────────────────────────
	dashboard.NewHandler(dashboard.NewService(catalogRepo)).RegisterRoutes(router)
	content.NewHandler(content.NewService()).RegisterRoutes(router)
	nutro.NewHandler(nutro.NewService(logger)).RegisterRoutes(router)

	return router, nil
}
