package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"skate/cmd"
	httpadapter "skate/internal/adapters/in/http"
	"skate/internal/adapters/out/storage"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"golang.org/x/sync/errgroup"
)

func main() {
	configs, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	logger := newLogger(configs)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := storage.Open(ctx, configs.Storage(), logger.With("component", "storage"))
	if err != nil {
		log.Fatalf("Error opening database: %v", err)
	}
	defer func() {
		if closeErr := storage.Close(db); closeErr != nil {
			logger.Error("Failed to close database", "error", closeErr)
		}
	}()

	app := cmd.NewCompositionRoot(configs, db, logger)

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	e, err := newWebServer(app, logger)
	if err != nil {
		log.Fatalf("Error creating web server: %v", err)
	}

	if err = run(ctx, e, configs, logger); err != nil {
		logger.Error("Server stopped with error", "error", err)
	}
}

func newLogger(configs cmd.Config) *slog.Logger {
	level, _ := configs.SlogLevel()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}

func newWebServer(app *cmd.CompositionRoot, logger *slog.Logger) (*echo.Echo, error) {
	server := httpadapter.NewServer(app.CreateOrderService(), logger)
	return httpadapter.NewRouter(server, logger, app.Registry())
}

// run serves HTTP until ctx is cancelled, then shuts the server down gracefully.
func run(ctx context.Context, e *echo.Echo, configs cmd.Config, logger *slog.Logger) error {
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		address := fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)
		logger.Info("HTTP server listening", "address", address)
		if err := e.Start(address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		logger.Info("Shutting down HTTP server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), configs.ShutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
