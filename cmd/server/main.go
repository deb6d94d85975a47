// Package main runs the zhuyin practice HTTP server.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/vntrieu/zhuyin-practice/internal/config"
	"github.com/vntrieu/zhuyin-practice/internal/database"
	"github.com/vntrieu/zhuyin-practice/internal/httpapi"
	"github.com/vntrieu/zhuyin-practice/internal/logging"
	"github.com/vntrieu/zhuyin-practice/internal/store"
	"github.com/vntrieu/zhuyin-practice/internal/words"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "zhuyin-server",
		Short:        "Serve random zhuyin practice words over HTTP",
		SilenceUsage: true,
		RunE:         runServe,
	}
	rootCmd.AddCommand(newValidateCmd())
	return rootCmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := logging.New(cfg.Log, cmd.ErrOrStderr())

	svc := words.NewService(loadDataset(cmd.Context(), cfg, logger), nil)

	router := httpapi.NewRouter(svc, httpapi.Options{
		AllowedOrigins: cfg.CORS.Origins(),
		CORSMaxAge:     cfg.CORS.MaxAge,
		Logger:         logger,
	})

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server.listening", slog.String("addr", srv.Addr), slog.Int("words_loaded", svc.Count()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-stop:
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server.shutdown", slog.String("error", err.Error()))
	}
	logger.Info("server.stopped")
	return nil
}

// loadDataset reads the configured source once. It never fails: any problem
// leaves the server running with an empty dataset.
func loadDataset(ctx context.Context, cfg *config.Config, logger *slog.Logger) *words.Dataset {
	if cfg.Words.Source != config.SourcePostgres {
		return words.Load(ctx, words.FileSource{Path: cfg.Words.DataPath}, logger)
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.Database.LoadTimeout)
	defer cancel()

	pool, err := database.Connect(ctx, cfg.Database.URL)
	if err != nil {
		logger.Error("words.resource_missing", slog.String("source", "postgres:words"), slog.String("error", err.Error()))
		return words.NewDataset(nil)
	}
	// The dataset is read once; the pool is not needed afterwards.
	defer pool.Close()

	return loadFromPool(ctx, pool, database.Migrate, logger)
}

// loadFromPool migrates, then reads the words table. A failed migration only
// warns: a read-only role cannot run DDL but may still read an existing table.
func loadFromPool(ctx context.Context, pool *pgxpool.Pool, migrate func(context.Context, *pgxpool.Pool) error, logger *slog.Logger) *words.Dataset {
	if err := migrate(ctx, pool); err != nil {
		logger.Warn("database.migrate_failed", slog.String("error", err.Error()))
	}
	return words.Load(ctx, store.NewWordStore(pool), logger)
}

func newValidateCmd() *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check the dataset file and report entries whose zhuyin and key counts differ",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if path == "" {
				cfg, err := config.Load()
				if err != nil {
					return err
				}
				path = cfg.Words.DataPath
			}
			return validateDataset(cmd.Context(), cmd.OutOrStdout(), words.FileSource{Path: path})
		},
	}
	cmd.Flags().StringVar(&path, "path", "", "dataset file (default: WORDS_DATA_PATH)")
	return cmd
}

// validateDataset reads src strictly and reports alignment violations.
func validateDataset(ctx context.Context, out io.Writer, src words.Source) error {
	entries, err := src.ReadEntries(ctx)
	if err != nil {
		return err
	}
	ds := words.NewDataset(entries)
	violations := ds.Violations()
	for _, v := range violations {
		fmt.Fprintf(out, "entry %d (%q): %d zhuyin symbols, %d keys\n", v.Index, v.Word, v.Symbols, v.Keys)
	}
	if len(violations) > 0 {
		return fmt.Errorf("%d of %d entries are misaligned", len(violations), ds.Len())
	}
	fmt.Fprintf(out, "%s: %d entries ok\n", src.Describe(), ds.Len())
	return nil
}
