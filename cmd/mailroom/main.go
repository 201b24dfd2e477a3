// Command mailroom serves the batch notification API: it fans a JSON batch
// out to an email provider, attaching per-record documents from object
// storage, and writes the enriched results back as a parquet artifact.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/notifika/mailroom/internal/attachment"
	"github.com/notifika/mailroom/internal/config"
	"github.com/notifika/mailroom/internal/dispatch"
	"github.com/notifika/mailroom/internal/export"
	"github.com/notifika/mailroom/internal/handler"
	"github.com/notifika/mailroom/internal/middleware"
	"github.com/notifika/mailroom/pkg/health"
	"github.com/notifika/mailroom/pkg/logger"
	"github.com/notifika/mailroom/pkg/mailer/resend"
	"github.com/notifika/mailroom/pkg/storage"
)

const (
	defaultReadTimeout       = 15 * time.Second
	defaultWriteTimeout      = 30 * time.Second
	defaultIdleTimeout       = 120 * time.Second
	defaultReadHeaderTimeout = 5 * time.Second
	defaultMaxHeaderBytes    = 1 << 20 // 1MB
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.New(cfg.Logger, middleware.RequestIDExtractor())

	store, err := storage.New(cfg.Storage)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}

	processor := dispatch.NewProcessor(
		attachment.NewResolver(store, cfg.Attachment, attachment.WithLogger(log)),
		resend.New(cfg.Resend),
		export.NewWriter(store, cfg.Export, export.WithLogger(log)),
		cfg.Dispatch,
		dispatch.WithLogger(log),
	)

	notifications := handler.NewNotifications(processor, handler.WithLogger(log))

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recover(log))

	r.Get("/healthz", health.LivenessHandler())
	r.Get("/readyz", health.ReadinessHandler(health.Checks{
		"storage": store.Healthcheck,
	}, health.WithLogger(log)))

	notifications.Routes(r)

	server := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           r,
		ReadTimeout:       defaultReadTimeout,
		WriteTimeout:      defaultWriteTimeout,
		IdleTimeout:       defaultIdleTimeout,
		ReadHeaderTimeout: defaultReadHeaderTimeout,
		MaxHeaderBytes:    defaultMaxHeaderBytes,
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	ln, err := net.Listen("tcp", server.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", server.Addr, err)
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server starting", slog.String("address", ln.Addr().String()))
		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	log.Info("shutdown completed")
	return nil
}
