package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/sharath018/event-management-backend/config"
	"github.com/sharath018/event-management-backend/database"
	"github.com/sharath018/event-management-backend/internal/auth"
	"github.com/sharath018/event-management-backend/internal/metrics"
	"github.com/sharath018/event-management-backend/internal/notification"
	"github.com/sharath018/event-management-backend/routes"
)

// @title Event Management API
// @version 1.0
// @description Events, registrations with capacity enforcement, announcements and participant exports.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

var portFlag string

var rootCmd = &cobra.Command{
	Use:   "eventhub",
	Short: "Event registration and management server",
	RunE:  runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API and client UI",
	RunE:  runServe,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the Postgres schema and exit",
	RunE:  runMigrate,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&portFlag, "port", "p", "", "port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd, migrateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() *config.Config {
	cfg := config.Load()
	if portFlag != "" {
		cfg.Port = portFlag
	}
	return cfg
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := loadConfig()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := database.Connect(cfg)
	if err != nil {
		return fmt.Errorf("connect store: %w", err)
	}
	defer store.Close()

	// Seed admin & sample events
	if err := database.Seed(ctx, store, cfg, auth.HashPassword); err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	tokens, err := auth.NewTokenStore(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return err
	}

	deliverer := notification.NewDeliverer(cfg)
	dispatcher := notification.NewDispatcher(cfg, deliverer)
	defer dispatcher.Close()
	notification.StartKafkaConsumer(ctx, cfg, deliverer)

	router := routes.NewRouter(routes.Deps{
		Config:     cfg,
		Store:      store,
		Tokens:     tokens,
		Dispatcher: dispatcher,
		Metrics:    metrics.New(),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("🚀 Server running on http://localhost:%s (store: %s)", cfg.Port, cfg.DBDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Println("🛑 Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Println("✅ Server stopped")
	return nil
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg := loadConfig()
	if cfg.DBDriver != "postgres" {
		log.Printf("ℹ️ DB_DRIVER=%s keeps no schema, nothing to migrate", cfg.DBDriver)
		return nil
	}

	db, err := database.OpenPostgres(cfg)
	if err != nil {
		return err
	}
	log.Println("🔄 Running database migrations...")
	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	log.Println("✅ Database migrations completed")

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
