package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/mocksmith/mocksmith/pkg/admin"
	"github.com/mocksmith/mocksmith/pkg/config"
	"github.com/mocksmith/mocksmith/pkg/engine"
	"github.com/mocksmith/mocksmith/pkg/fault"
	"github.com/mocksmith/mocksmith/pkg/httputil"
	"github.com/mocksmith/mocksmith/pkg/logging"
	"github.com/mocksmith/mocksmith/pkg/policy"
	"github.com/mocksmith/mocksmith/pkg/resource"
	"github.com/mocksmith/mocksmith/pkg/store"
	"github.com/mocksmith/mocksmith/pkg/store/memstore"
	"github.com/mocksmith/mocksmith/pkg/store/mongostore"
)

const shutdownTimeout = 15 * time.Second

func newServeCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the mock API server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), configPath)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to config file (YAML)")
	return cmd
}

func runServe(ctx context.Context, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	log := logging.New(logging.Config{
		Level:  logging.ParseLevel(cfg.Log.Level),
		Format: logging.ParseFormat(cfg.Log.Format),
	})

	var st store.Store
	switch cfg.Storage.Backend {
	case config.BackendMongo:
		connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		ms, client, err := mongostore.Connect(connectCtx, cfg.Storage.MongoURI, cfg.Storage.MongoDatabase)
		if err != nil {
			return fmt.Errorf("connecting to mongodb: %w", err)
		}
		defer func() {
			if err := client.Disconnect(context.Background()); err != nil {
				log.Warn("mongodb disconnect failed", "error", err)
			}
		}()
		if err := ms.EnsureIndexes(connectCtx); err != nil {
			return fmt.Errorf("ensuring indexes: %w", err)
		}
		st = ms
		log.Info("using mongodb storage", "database", cfg.Storage.MongoDatabase)
	default:
		st = memstore.New()
		log.Info("using in-memory storage")
	}

	resources := resource.NewManager(st, log)
	enforcer := policy.NewEnforcer(st, log)
	plans := cfg.PlanProvider()
	eng := engine.New(st, resources, enforcer, plans, fault.New(nil), log)
	api := admin.New(st, resources, enforcer, plans, log)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(engine.LogRequests(log))
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteOK(w, map[string]any{"status": "ok"})
	})
	r.Mount("/api", api.Routes())
	r.Mount("/", eng.Routes())

	srv := engine.NewServer(cfg.Listen, r, log)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		log.Info("signal received", "signal", sig.String())
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
