package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/inkswatch/internal/server"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the catalog as MCP tools over stdio",
	Long: `Serve the ink catalog to an MCP client over stdin/stdout.

Logs are written to stderr so they never mix with the protocol stream.
Send SIGHUP to reload the catalog sources without restarting; queries keep
using the previous catalog until the new one has loaded successfully.

Examples:
  # Serve the default catalog
  inkswatch serve

  # Serve a remote, compressed catalog with local caching
  inkswatch serve --catalog https://example.com/inks.json.xz --cache-dir ~/.cache/inkswatch`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

// runServe executes the serve command.
func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sess, err := openSession(ctx, cmd)
	if err != nil {
		return err
	}

	go watchReload(ctx, sess)

	s := server.New(sess.service, sess.logger)
	sess.logger.Info("serving MCP over stdio", "inks", sess.store.Snapshot().Len())

	err = server.ServeStdio(ctx, s, sess.logger, cmd.InOrStdin(), cmd.OutOrStdout())
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("failed to serve: %w", err)
	}
	return nil
}

// watchReload reloads the catalog on every SIGHUP until ctx is done.
func watchReload(ctx context.Context, sess *session) {
	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	defer signal.Stop(hup)

	for {
		select {
		case <-ctx.Done():
			return
		case <-hup:
			sess.logger.Info("reloading catalog")
			if err := sess.reload(ctx); err != nil {
				sess.logger.Error("reload failed, keeping current catalog", "error", err)
			}
		}
	}
}
