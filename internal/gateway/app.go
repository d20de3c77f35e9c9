// Package gateway wires the public HTTP API: router, middleware, metrics and
// the gRPC client of the user service, plus signal-driven graceful shutdown.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmitrijs2005/bloghub/internal/gateway/client"
	"github.com/dmitrijs2005/bloghub/internal/gateway/config"
	"github.com/dmitrijs2005/bloghub/internal/gateway/handler"
	"github.com/dmitrijs2005/bloghub/internal/gateway/metrics"
	"github.com/dmitrijs2005/bloghub/internal/gateway/middleware"
	"github.com/dmitrijs2005/bloghub/internal/logging"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"google.golang.org/grpc"
)

const readHeaderTimeout = 5 * time.Second

type App struct {
	config  *config.Config
	logger  logging.Logger
	client  *client.Client
	metrics *metrics.Metrics
}

// NewApp connects to the user service lazily; dial options are passed to the
// gRPC client.
func NewApp(c *config.Config, opts ...grpc.DialOption) (*App, error) {
	logger := logging.NewJSONLogger(os.Stdout, c.LogLevel)

	cl, err := client.New(c.UserServiceAddr, opts...)
	if err != nil {
		return nil, fmt.Errorf("user service client: %w", err)
	}

	return &App{config: c, logger: logger, client: cl, metrics: metrics.New()}, nil
}

// Router builds the HTTP handler tree.
func (app *App) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.AccessLog(app.logger.With("module", "http")))
	r.Use(chimiddleware.Recoverer)
	r.Use(app.metrics.Middleware)

	h := handler.New(app.client.Users, app.client, []byte(app.config.SecretKey),
		app.config.AccessTokenValidityDuration, app.logger)
	h.Routes(r)

	r.Method(http.MethodGet, "/metrics", app.metrics.Handler())

	return r
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

	app.initSignalHandler(cancelFunc)

	lis, err := net.Listen("tcp", app.config.EndpointAddrHTTP)
	if err != nil {
		app.logger.Error(ctx, err.Error())
		_ = app.client.Close()
		return err
	}

	return app.Serve(ctx, lis)
}

// Serve handles requests on lis until ctx is cancelled, then drains
// in-flight requests for up to ShutdownTimeout and closes the client.
func (app *App) Serve(ctx context.Context, lis net.Listener) error {
	srv := &http.Server{
		Handler:           app.Router(),
		ReadHeaderTimeout: readHeaderTimeout,
		BaseContext:       func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}

	app.logger.Info(ctx, "Starting gateway...", "addr", lis.Addr().String(), "user_service", app.config.UserServiceAddr)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(lis)
	}()

	var err error
	select {
	case err = <-errCh:
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), app.config.ShutdownTimeout)
		err = srv.Shutdown(shutdownCtx)
		cancel()
	}

	if cerr := app.client.Close(); cerr != nil {
		app.logger.Error(ctx, "closing user service client", "error", cerr)
	}

	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		app.logger.Error(ctx, err.Error())
		return err
	}

	app.logger.Info(ctx, "Gateway stopped")
	return nil
}
