package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/AntonioJCosta/nickurl/internal/handlers/httpapi"
	"github.com/AntonioJCosta/nickurl/internal/handlers/ui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

// NewServeCommand creates the 'serve' subcommand.
func NewServeCommand(deps *Dependencies) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP resolver.",
		Long: `Serves GET /search?q=... as a redirect to the expanded URL, and
POST /alias, PUT /alias/{id}, DELETE /alias/{id} for alias management.
Point your browser's custom search engine at http://<addr>/search?q=%s.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = deps.Config.Server.Addr
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, cmd, deps, addr)
		},
	}
	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Listen address (default from server.addr).")
	return cmd
}

func runServe(ctx context.Context, cmd *cobra.Command, deps *Dependencies, addr string) error {
	api := httpapi.NewServer(deps.Resolver, deps.Manager, deps.Config.Coalesce.Window, deps.Logger)

	srv := &http.Server{
		Addr:              addr,
		Handler:           api.Handler(),
		ReadHeaderTimeout: deps.Config.Server.ReadHeaderTimeout,
	}

	go api.RunSweeper(ctx, deps.Config.Coalesce.SweepInterval)

	errCh := make(chan error, 1)
	go func() {
		deps.Logger.Info("http server listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()
	fmt.Fprintln(cmd.OutOrStdout(), ui.InfoColor(fmt.Sprintf("nickurl listening on %s", addr)))

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	deps.Logger.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	return nil
}
