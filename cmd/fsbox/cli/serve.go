package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/deepnoodle-ai/fsbox/filesystem"
	"github.com/deepnoodle-ai/fsbox/internal/tracing"
	"github.com/deepnoodle-ai/fsbox/log"
	"github.com/deepnoodle-ai/fsbox/mcp"
	"github.com/deepnoodle-ai/fsbox/sandbox"
	"github.com/deepnoodle-ai/fsbox/toolkit"
	"github.com/deepnoodle-ai/wonton/cli"
)

func registerServeCommand(app *cli.App) {
	app.Command("serve").
		Description("Run the MCP server on stdio").
		Long("Run the filesystem MCP server on stdin/stdout. Directories given as arguments are added to the configured allowed directories.").
		Run(runServe)
}

func runServe(cctx *cli.Context) error {
	parseGlobalFlags(cctx)
	cfg, err := loadConfig(args(cctx))
	if err != nil {
		return err
	}
	logger := log.New(cfg.LogLevel())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdown, err := tracing.Setup(ctx, cfg.Tracing, os.Stderr)
	if err != nil {
		return fmt.Errorf("failed to set up tracing: %w", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			logger.Warn("tracing shutdown failed", "error", err)
		}
	}()

	roots, err := cfg.Roots()
	if err != nil {
		return err
	}
	svc := filesystem.New(sandbox.NewValidator(roots), filesystem.WithLogger(logger))

	server, err := mcp.NewServer(toolkit.NewFilesystemTools(svc),
		mcp.WithLogger(logger),
		mcp.WithVersion(Version),
	)
	if err != nil {
		return err
	}
	logger.Info("secure filesystem server running on stdio", "allowed_directories", roots.Dirs())

	if err := server.Serve(ctx, os.Stdin, os.Stdout); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
