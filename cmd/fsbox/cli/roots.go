package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/deepnoodle-ai/fsbox/sandbox"
	"github.com/deepnoodle-ai/wonton/cli"
)

func registerRootsCommand(app *cli.App) {
	app.Command("roots").
		Description("Print the canonical allowed directories").
		Long("Resolve the configured allowed directories, following symlinks, and print one per line. Directories given as arguments are added to the configured ones.").
		Run(func(ctx *cli.Context) error {
			parseGlobalFlags(ctx)
			cfg, err := loadConfig(args(ctx))
			if err != nil {
				return err
			}
			roots, err := cfg.Roots()
			if err != nil {
				return err
			}
			return printRoots(os.Stdout, roots)
		})
}

func printRoots(w io.Writer, roots *sandbox.AllowedRoots) error {
	for _, dir := range roots.Dirs() {
		if _, err := fmt.Fprintln(w, dir); err != nil {
			return err
		}
	}
	return nil
}
