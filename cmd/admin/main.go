package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	firebase "firebase.google.com/go/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	log "github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"

	"contoso.dev/claims-admin/internal/admin/breadcrumbs"
	"contoso.dev/claims-admin/internal/admin/config"
	"contoso.dev/claims-admin/internal/admin/httpserver"
	"contoso.dev/claims-admin/internal/admin/httpserver/middleware"
	"contoso.dev/claims-admin/internal/admin/logging"
)

func main() {
	configPath := flag.String("config", os.Getenv("ADMIN_CONFIG"), "path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.WithError(err).Fatal("load config")
	}
	logger := logging.New(cfg.Log)

	rootCtx := context.Background()

	var registry *prometheus.Registry
	if cfg.Metrics.Enabled {
		registry = prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	srv := httpserver.New(httpserver.Config{
		Address:         cfg.HTTP.Address,
		BasePath:        cfg.HTTP.BasePath,
		LoginPath:       cfg.HTTP.LoginPath,
		Environment:     cfg.HTTP.Environment,
		FirebaseProject: cfg.Firebase.ProjectID,
		Authenticator:   buildAuthenticator(rootCtx, cfg.Firebase, logger),
		Breadcrumbs:     breadcrumbs.NewBuilder(cfg.Breadcrumbs.Builder()),
		Logger:          logger,
		MetricsEnabled:  cfg.Metrics.Enabled,
		MetricsPath:     cfg.Metrics.Path,
		Registry:        registry,
		ReadTimeout:     cfg.HTTP.ReadTimeout,
		WriteTimeout:    cfg.HTTP.WriteTimeout,
		IdleTimeout:     cfg.HTTP.IdleTimeout,
	})

	ctx, stop := signal.NotifyContext(rootCtx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("http server failed")
		}
	}()

	logger.WithFields(log.Fields{
		"address":     cfg.HTTP.Address,
		"base_path":   cfg.HTTP.BasePath,
		"environment": cfg.HTTP.Environment,
	}).Info("admin server listening")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("graceful shutdown failed")
		cancel()
		stop()
		os.Exit(1)
	}
	logger.Info("admin server stopped")
}

func buildAuthenticator(ctx context.Context, cfg config.FirebaseConfig, logger log.FieldLogger) middleware.Authenticator {
	if cfg.ProjectID == "" {
		logger.Warn("firebase project id not set; using passthrough authenticator")
		return nil
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{
		ProjectID: cfg.ProjectID,
	})
	if err != nil {
		logger.WithError(err).Error("failed to initialise Firebase app")
		return nil
	}

	client, err := app.Auth(ctx)
	if err != nil {
		logger.WithError(err).Error("failed to initialise Firebase auth client")
		return nil
	}

	logger.WithField("project", cfg.ProjectID).Info("Firebase authenticator enabled")
	return middleware.NewFirebaseAuthenticator(client)
}
