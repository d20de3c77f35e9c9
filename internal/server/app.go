// Package server wires the user service together: storage backend and
// migrations, password hashing, avatar storage, the account service and the
// gRPC endpoint, plus signal-driven graceful shutdown.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/bloghub/internal/logging"
	"github.com/dmitrijs2005/bloghub/internal/server/auth"
	"github.com/dmitrijs2005/bloghub/internal/server/config"
	"github.com/dmitrijs2005/bloghub/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/bloghub/internal/server/services"
	"github.com/dmitrijs2005/bloghub/internal/server/storage"

	gs "github.com/dmitrijs2005/bloghub/internal/server/grpc"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	repos       repomanager.RepositoryManager
	userService *services.UserService
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSONLogger(os.Stdout, c.LogLevel)

	repos, err := repomanager.New(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	if err := repos.RunMigrations(ctx); err != nil {
		_ = repos.Close()
		return nil, fmt.Errorf("db init error: %w", err)
	}

	avatars := storage.NewAvatarStore(storage.Config{
		Region:       c.S3Region,
		AccessKey:    c.S3AccessKey,
		SecretKey:    c.S3SecretKey,
		BaseEndpoint: c.S3BaseEndpoint,
		Bucket:       c.S3Bucket,
	})

	us := services.NewUserService(repos, auth.NewPasswordServiceWithCost(c.BcryptCost), avatars)

	return &App{config: c, logger: logger, repos: repos, userService: us}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves until ctx is cancelled or a termination signal arrives.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "storage", storageKind(app.config.DatabaseDSN))

	app.initSignalHandler(cancelFunc)

	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.userService, app.config.MaxWorkers)
	err := s.Run(ctx)

	if cerr := app.repos.Close(); cerr != nil {
		app.logger.Error(ctx, "closing storage", "error", cerr)
	}

	if err != nil {
		app.logger.Error(ctx, err.Error())
		return err
	}

	app.logger.Info(ctx, "App stopped")
	return nil
}

func storageKind(dsn string) string {
	if dsn == repomanager.MemoryDSN {
		return "memory"
	}
	return "postgres"
}
