package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"parcels/cmd"
	httpin "parcels/internal/adapters/in/http"
	"parcels/internal/adapters/out/cache"
	"parcels/internal/core/ports"
	"parcels/internal/pkg/logger"
	"parcels/migrations"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// .env is optional; real deployments pass the environment directly.
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("error loading .env file: %w", err)
	}

	configs, err := cmd.LoadConfig()
	if err != nil {
		return fmt.Errorf("%w\n\n%s", err, cmd.Usage())
	}

	appLogger, err := logger.NewLogger(logger.Environment(configs.LogEnv), configs.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = appLogger.Sync() }()
	logger.SetGlobalLogger(appLogger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = migrations.Up(ctx, configs.DSN()); err != nil {
		return err
	}

	gormDB, err := openDatabase(configs)
	if err != nil {
		return err
	}

	statuses, err := openStatusCache(ctx, configs, appLogger)
	if err != nil {
		return err
	}
	var statusCache ports.StatusCache
	if statuses != nil {
		defer func() { _ = statuses.Close() }()
		statusCache = statuses
	}

	app, err := cmd.NewCompositionRoot(configs, gormDB, statusCache, appLogger)
	if err != nil {
		return err
	}
	if err = app.Ping(ctx); err != nil {
		return fmt.Errorf("database is unreachable: %w", err)
	}

	jobManager, err := app.CreateJobManager()
	if err != nil {
		return err
	}
	jobManager.StartAll()

	e, err := newEcho(ctx, app, appLogger)
	if err != nil {
		return err
	}

	serverErr := make(chan error, 1)
	go func() {
		appLogger.Info(ctx, "http server starting", zap.String("port", configs.HTTPPort))
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err = <-serverErr:
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), configs.ShutdownTimeout)
	defer cancel()

	appLogger.Info(shutdownCtx, "shutting down")
	if shutdownErr := e.Shutdown(shutdownCtx); shutdownErr != nil {
		appLogger.Error(shutdownCtx, "http server shutdown failed", zap.Error(shutdownErr))
	}
	jobManager.StopAll(shutdownCtx)

	return err
}

func openDatabase(configs cmd.Config) (*gorm.DB, error) {
	gormConfig := &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)}

	var dialector gorm.Dialector
	switch configs.DBDriver {
	case "postgres":
		sqlDB, err := sql.Open("postgres", configs.DSN())
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		dialector = postgres.New(postgres.Config{Conn: sqlDB})
	default:
		dialector = postgres.New(postgres.Config{DriverName: "pgx", DSN: configs.DSN()})
	}

	gormDB, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	return gormDB, nil
}

// openStatusCache returns nil when REDIS_ADDR is not set.
func openStatusCache(ctx context.Context, configs cmd.Config, appLogger *logger.Logger) (*cache.RedisStatusCache, error) {
	if configs.RedisAddr == "" {
		appLogger.Info(ctx, "status cache is disabled")
		return nil, nil
	}

	statuses, err := cache.NewRedisStatusCache(ctx, cache.Config{
		Addr:     configs.RedisAddr,
		Password: configs.RedisPassword,
		DB:       configs.RedisDB,
		TTL:      configs.StatusesTTL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return statuses, nil
}

func newEcho(ctx context.Context, app *cmd.CompositionRoot, appLogger *logger.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(log.WARN)
	e.HTTPErrorHandler = httpin.ErrorHandler

	e.Use(middleware.Recover())
	e.Use(httpin.RequestContext(appLogger))
	e.Use(httpin.RequestLogger())

	doc, err := httpin.LoadOpenAPI(ctx)
	if err != nil {
		return nil, err
	}
	httpin.RegisterDocs(e, doc)
	app.CreateHTTPServer().Register(e)

	return e, nil
}
