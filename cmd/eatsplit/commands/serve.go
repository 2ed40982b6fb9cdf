package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/mmynk/eatsplit/internal/metrics"
	"github.com/mmynk/eatsplit/internal/server"
	"github.com/mmynk/eatsplit/internal/session"
	"github.com/mmynk/eatsplit/internal/storage/sqlite"
)

func serveCmd() *cobra.Command {
	var (
		port      int
		ledgerDSN string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the FriendsService server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}
			if cmd.Flags().Changed("ledger") {
				cfg.LedgerDSN = ledgerDSN
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runServer(ctx)
		},
	}

	cmd.Flags().IntVar(&port, "port", 8080, "listen port (overrides EATSPLIT_PORT)")
	cmd.Flags().StringVar(&ledgerDSN, "ledger", "", "settlement ledger DSN (overrides EATSPLIT_LEDGER_DSN)")
	return cmd
}

func runServer(ctx context.Context) error {
	ledger, err := sqlite.New(cfg.LedgerDSN)
	if err != nil {
		slog.Error("Failed to initialize ledger", "error", err)
		return err
	}
	defer ledger.Close()
	slog.Info("Ledger initialized", "dsn", cfg.LedgerDSN)

	var (
		m    *metrics.Metrics
		opts []session.Option
	)
	if cfg.MetricsEnabled {
		m = metrics.New()
		opts = append(opts, session.WithRecorder(m))
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           server.NewHandler(session.New(ledger, opts...), m),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Connect server starting", "address", srv.Addr, "url", fmt.Sprintf("http://localhost%s", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			return err
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
