package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MarkMiraclee/vvclient/internal/apiclient"
	"github.com/MarkMiraclee/vvclient/internal/app"
	"github.com/MarkMiraclee/vvclient/internal/config"
	"github.com/MarkMiraclee/vvclient/internal/handlers"
	"github.com/MarkMiraclee/vvclient/internal/notify"
	"github.com/MarkMiraclee/vvclient/internal/session"
	"github.com/MarkMiraclee/vvclient/internal/storage"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	cfg, err := config.New()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Warnf("unknown log level %q, using info", cfg.LogLevel)
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := openStorage(ctx, cfg, log)
	if err != nil {
		log.Fatalf("failed to initialize storage: %v", err)
	}
	defer st.Close()

	sess, err := session.New(ctx, st)
	if err != nil {
		log.Fatalf("failed to load session: %v", err)
	}

	api := apiclient.NewClient(cfg.APIAddress, sess, log, cfg.APITimeout)
	client := app.New(api, sess, notify.New(notify.NewTimerScheduler(), log), log)

	server := &http.Server{
		Addr:    cfg.RunAddress,
		Handler: handlers.NewRouter(handlers.NewUI(client, log)),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		client.Start(gctx)
		return nil
	})
	g.Go(func() error {
		log.Infof("client started on http://%s", cfg.RunAddress)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down client gracefully")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Errorf("client stopped with error: %v", err)
		return
	}
	log.Info("client exited properly")
}

// openStorage keeps the session in Postgres when a database is configured, otherwise in a local file.
func openStorage(ctx context.Context, cfg *config.Config, log *logrus.Logger) (storage.Storage, error) {
	if cfg.DatabaseURI != "" {
		return storage.NewPostgresStorage(ctx, cfg.DatabaseURI, log)
	}
	return storage.NewFileStorage(cfg.TokenFile)
}
