package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"ganaderia-dashboard/internal/adapters/storage/memory"
	pg "ganaderia-dashboard/internal/adapters/storage/postgres"
	"ganaderia-dashboard/internal/platform/metrics"
	"ganaderia-dashboard/internal/router"
	"ganaderia-dashboard/internal/scheduler"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Arranca la API HTTP",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := openDB()
	if err != nil {
		return err
	}

	var st *memory.Store
	if db != nil {
		defer db.Close()
		if cfg.Database.MigrationsEnabled {
			v, err := pg.Migrate(db)
			if err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			log.Info("migraciones aplicadas", map[string]any{"version": v})
		}
	} else {
		log.Warn("DB_DSN vacío: usando almacenamiento en memoria", nil)
		st = memory.NewStore()
		st.SeedDefaultGroups()
	}

	m := metrics.New()
	handler := router.NewRouter(router.Options{
		DB:      db,
		Store:   st,
		Logger:  log,
		Metrics: m,
		Company: company(),
	})

	archiver := scheduler.NewReportArchiver(reportsService(db, st), cfg.Archive.Dir, cfg.Archive.Schedule, log, m)
	if err := archiver.Start(ctx); err != nil {
		return err
	}
	defer archiver.Stop()

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
