package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/deepnoodle-ai/fsbox/config"
	"github.com/deepnoodle-ai/wonton/cli"
	"github.com/fatih/color"
)

// Version is reported by --version and to MCP clients.
var Version = "0.2.0"

var (
	configPath string
	logLevel   string
	app        *cli.App
)

var (
	errorStyle   = color.New(color.FgRed)
	successStyle = color.New(color.FgGreen)
	warningStyle = color.New(color.FgYellow)
)

// errRejected signals a non-zero exit without printing anything more.
var errRejected = errors.New("one or more paths were rejected")

// Execute runs the command line and exits non-zero on failure.
func Execute() {
	app = cli.New("fsbox").
		Description("Sandboxed filesystem access for MCP clients").
		Version(Version).
		GlobalFlags(
			cli.String("config", "c").
				Env("FSBOX_CONFIG").
				Help("Path to a YAML config file"),
			cli.String("log-level", "").
				Help("Log level to use (debug, info, warn, error)"),
		)

	registerServeCommand(app)
	registerRootsCommand(app)
	registerCheckCommand(app)

	if err := app.Execute(); err != nil {
		if cli.IsHelpRequested(err) {
			os.Exit(0)
		}
		if errors.Is(err, errRejected) {
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, errorStyle.Sprintf("Error: %v", err))
		os.Exit(cli.GetExitCode(err))
	}
}

// parseGlobalFlags extracts global flag values from context
func parseGlobalFlags(ctx *cli.Context) {
	configPath = ctx.String("config")
	logLevel = ctx.String("log-level")
}

// args returns the positional arguments of a command.
func args(ctx *cli.Context) []string {
	out := make([]string, 0, ctx.NArg())
	for i := 0; i < ctx.NArg(); i++ {
		out = append(out, ctx.Arg(i))
	}
	return out
}

// loadConfig loads the config file and environment, adds dirs from the
// command line and applies the --log-level flag.
func loadConfig(dirs []string) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	cfg.AddDirectories(dirs...)
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
