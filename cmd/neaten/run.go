package neaten

import (
	"context"
	"fmt"
	"io"

	"github.com/arthur-debert/neaten/pkg/errors"
	"github.com/arthur-debert/neaten/pkg/report"
)

// Run executes neaten with args and returns the process exit code: 1 when
// the run could not start or was interrupted, 0 otherwise. Entries that
// failed to be removed are reported but do not change the exit code.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if args == nil {
		// cobra falls back to os.Args for a nil slice
		args = []string{}
	}

	rootCmd := NewRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	cmd, err := rootCmd.ExecuteContextC(ctx)
	if err == nil {
		return 0
	}

	_, _ = fmt.Fprintln(stderr, report.FailedStyle.Render(MsgErrorPrefix)+" "+err.Error())
	if errors.GetCategory(err) == errors.CategoryUsage {
		_, _ = fmt.Fprintln(stderr)
		_, _ = fmt.Fprint(stderr, cmd.UsageString())
	}
	return 1
}
