// Package keepsakeservice wires the keepsake HTTP server.
package keepsakeservice

import (
	"context"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/keepsakehq/keepsake/server/internal/api"
	"github.com/keepsakehq/keepsake/server/internal/config"
	"github.com/keepsakehq/keepsake/server/internal/logger"
	"github.com/keepsakehq/keepsake/server/internal/store/jsonfile"
	"github.com/keepsakehq/keepsake/server/internal/uploads"
)

// Run starts the keepsake HTTP server and blocks until shutdown or error.
func Run() error {
	log := logger.New("keepsake-server")

	cfg, err := config.New()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load configuration")
		return err
	}

	log.Info().
		Int("http_port", cfg.HTTPPort).
		Str("data_dir", cfg.DataDir).
		Str("static_dir", cfg.StaticDir).
		Str("upload_dir", cfg.UploadDir).
		Msg("Keepsake server starting")

	// Cancellable root context bound to SIGINT/SIGTERM
	ctx, stop := newServerContext()
	defer stop()

	st, intake, err := initDependencies(cfg, log)
	if err != nil {
		return err
	}

	router := api.NewRouter(cfg, st, intake, log)

	server := newHTTPServer(ctx, cfg, router)
	errCh := serveHTTP(server, log, cfg)

	// Graceful shutdown on context cancel or server error
	select {
	case <-ctx.Done():
		log.Info().Msg("Shutting down server")
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctxShutdown); err != nil {
			log.Error().Stack().Err(err).Msg("Server forced to shutdown")
			return err
		}
		log.Info().Msg("Server exited")
		return nil
	case err := <-errCh:
		log.Error().Stack().Err(err).Msg("HTTP server failed")
		return err
	}
}

// initDependencies constructs the record store and upload intake; both
// create their directories up front so a read-only deployment fails fast.
func initDependencies(cfg *config.Config, log zerolog.Logger) (*jsonfile.Store, *uploads.Intake, error) {
	st, err := jsonfile.New(cfg.DataDir, log)
	if err != nil {
		log.Error().Stack().Err(err).Msg("Record store unavailable")
		return nil, nil, err
	}
	intake, err := uploads.NewIntake(cfg.UploadDir, cfg.MaxUploadBytes)
	if err != nil {
		log.Error().Stack().Err(err).Msg("Upload directory unavailable")
		return nil, nil, err
	}
	return st, intake, nil
}

func newHTTPServer(ctx context.Context, cfg *config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.GetHTTPAddr(),
		Handler:           handler,
		ReadTimeout:       60 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}
}

func serveHTTP(server *http.Server, log zerolog.Logger, cfg *config.Config) <-chan error {
	errCh := make(chan error, 1)
	go func() {
		log.Info().Int("port", cfg.HTTPPort).Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()
	return errCh
}

// newServerContext returns a cancellable context that is cancelled on SIGINT/SIGTERM.
func newServerContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}
