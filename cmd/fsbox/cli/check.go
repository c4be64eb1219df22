package cli

import (
	"io"
	"os"

	"github.com/deepnoodle-ai/fsbox/internal/table"
	"github.com/deepnoodle-ai/fsbox/sandbox"
	"github.com/deepnoodle-ai/wonton/cli"
)

func registerCheckCommand(app *cli.App) {
	app.Command("check").
		Description("Check whether paths are inside the allowed directories").
		Long("Resolve each path the same way the server does and print whether it is allowed. Exits with status 1 if any path is rejected.").
		Flags(
			cli.Strings("allow", "a").
				Help("Additional allowed directory (repeatable)"),
		).
		Run(func(ctx *cli.Context) error {
			parseGlobalFlags(ctx)
			paths := args(ctx)
			if len(paths) == 0 {
				return cli.Errorf("no paths provided")
			}
			cfg, err := loadConfig(ctx.Strings("allow"))
			if err != nil {
				return err
			}
			roots, err := cfg.Roots()
			if err != nil {
				return err
			}
			rejected, err := checkPaths(os.Stdout, sandbox.NewValidator(roots), paths)
			if err != nil {
				return err
			}
			if rejected > 0 {
				return errRejected
			}
			return nil
		})
}

// checkPaths writes a table with one row per path and returns how many
// paths were rejected.
func checkPaths(w io.Writer, v *sandbox.Validator, paths []string) (int, error) {
	tbl := table.New(w, "Path", "Status", "Detail")
	var rejected int
	for _, p := range paths {
		res := v.Resolve(p)
		detail := res.Reason
		if res.Allowed() {
			detail = res.Path.String()
		} else {
			rejected++
		}
		tbl.Append(p, statusLabel(res.Status), detail)
	}
	return rejected, tbl.Render()
}

func statusLabel(s sandbox.Status) string {
	switch s {
	case sandbox.StatusAllowed:
		return successStyle.Sprint("ALLOWED")
	case sandbox.StatusNotFound:
		return warningStyle.Sprint("NOT FOUND")
	default:
		return errorStyle.Sprint("DENIED")
	}
}
