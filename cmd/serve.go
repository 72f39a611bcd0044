package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/conneroisu/webref/internal/config"
	"github.com/conneroisu/webref/internal/errors"
	"github.com/conneroisu/webref/internal/server"
)

var serveCmd = &cobra.Command{
	Use:     "serve",
	Aliases: []string{"s"},
	Short:   "Start the reference browser",
	Long: `Start the reference browser with hot reload capability.
Opens the browser unless --no-open is given. When a catalog overlay file is
configured, edits to it are picked up and connected pages refresh.

Examples:
  webref serve                          # Serve on localhost:8080
  webref serve -p 3000 --no-open        # Different port, no browser
  webref serve --catalog extra.yml      # Add entries from an overlay`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().IntP("port", "p", config.DefaultPort, "Port to serve on")
	serveCmd.Flags().String("host", config.DefaultHost, "Host to bind to")
	serveCmd.Flags().Bool("no-open", false, "Don't open browser automatically")

	bindFlag("server.port", serveCmd.Flags().Lookup("port"))
	bindFlag("server.host", serveCmd.Flags().Lookup("host"))
	bindFlag("server.no-open", serveCmd.Flags().Lookup("no-open"))
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	details := config.ValidateConfigWithDetails(cfg)
	if details.HasWarnings() {
		fmt.Fprint(cmd.ErrOrStderr(), details.String())
	}

	logger := newLogger(cfg, cmd.ErrOrStderr())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cat, err := loadCatalog(ctx, cfg, logger)
	if err != nil {
		return err
	}

	srv, err := server.New(cfg, cat, logger)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	go func() {
		<-ctx.Done()
		logger.Info(context.Background(), "Shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if shutdownErr := srv.Shutdown(shutdownCtx); shutdownErr != nil {
			logger.Error(shutdownCtx, shutdownErr, "Error during server shutdown")
		}
	}()

	fmt.Fprintf(cmd.OutOrStdout(), "Starting webref at http://%s\n", cfg.Server.Addr())

	if err := srv.Start(ctx); err != nil {
		if isAddrInUse(err) {
			return errors.NewEnhancedError(
				fmt.Sprintf("Failed to start server on port %d", cfg.Server.Port),
				err,
				portInUseSuggestions(cfg.Server.Port),
			)
		}
		return err
	}
	return nil
}

func isAddrInUse(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "address already in use") || strings.Contains(msg, "bind")
}

func portInUseSuggestions(port int) []errors.ErrorSuggestion {
	return []errors.ErrorSuggestion{
		{
			Title:       "Use a different port",
			Description: "Another process is listening on this port",
			Command:     fmt.Sprintf("webref serve --port %d", port+1),
		},
		{
			Title:       "Find the process using the port",
			Description: "Stop it or pick another port",
			Command:     fmt.Sprintf("lsof -i :%d", port),
		},
	}
}
