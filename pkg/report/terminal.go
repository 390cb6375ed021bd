package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/neaten/pkg/types"
)

const labelWidth = 13

// Terminal writes colored lines and a summary badge. The transient
// "removing" event is not shown; the "removed" or "failed" line that
// follows it is.
type Terminal struct {
	out sink
}

// NewTerminal creates a styled terminal reporter
func NewTerminal(w io.Writer) *Terminal {
	return &Terminal{out: sink{w: w}}
}

// Report writes the styled line for one event
func (t *Terminal) Report(event types.Event) {
	var line string
	switch event.Type {
	case types.EventWouldRemove:
		line = label(WouldRemoveStyle.Render, "would remove") + styledPath(event)
	case types.EventRemoved:
		line = label(RemovedStyle.Render, "removed") + styledPath(event)
	case types.EventFailed:
		line = label(FailedStyle.Render, "failed") + styledPath(event) + "  " + MutedStyle.Render(fmt.Sprint(event.Err))
	default:
		return
	}
	t.out.write([]byte(line + "\n"))
}

// Finish writes a status badge with the totals, then one line per rule
// when there is more than one
func (t *Terminal) Finish(summary types.Summary) error {
	total := summary.Total
	status := SummaryStatus(total.Failed, total.Matched, summary.DryRun)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(StatusStyle(status).Sprint(" " + badgeText(status) + " "))
	b.WriteString(" " + SummaryLine(summary) + "\n")

	if len(summary.Results) > 1 {
		for _, res := range summary.Results {
			rule := res.Rule
			line := fmt.Sprintf("  %s %s in %s: %d matched, %d removed, %d failed",
				rule.Kind(), strings.Join(rule.Patterns(), ","), rule.Destination(),
				res.Stats.Matched, res.Stats.Removed, res.Stats.Failed)
			b.WriteString(MutedStyle.Render(line) + "\n")
		}
	}

	t.out.write([]byte(b.String()))
	return t.out.err
}

func label(render func(...string) string, text string) string {
	return render(fmt.Sprintf("%-*s", labelWidth, text))
}

func styledPath(event types.Event) string {
	if event.IsDir {
		return DirPathStyle.Render(event.Path + "/")
	}
	return PathStyle.Render(event.Path)
}

func badgeText(status Status) string {
	switch status {
	case StatusError:
		return "ERRORS"
	case StatusQueue:
		return "DRY RUN"
	case StatusIdle:
		return "CLEAN"
	default:
		return "DONE"
	}
}
