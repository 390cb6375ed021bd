package report

import (
	"fmt"
	"io"

	"github.com/arthur-debert/neaten/pkg/types"
)

// Text writes plain, unstyled lines
type Text struct {
	out sink
}

// NewText creates a plain text reporter
func NewText(w io.Writer) *Text {
	return &Text{out: sink{w: w}}
}

// Report writes the line for one event
func (t *Text) Report(event types.Event) {
	t.out.write([]byte(TextLine(event) + "\n"))
}

// Finish writes a one line summary
func (t *Text) Finish(summary types.Summary) error {
	t.out.write([]byte(SummaryLine(summary) + "\n"))
	return t.out.err
}

// TextLine renders an event without styling
func TextLine(event types.Event) string {
	switch event.Type {
	case types.EventWouldRemove:
		return "Would remove " + event.Path
	case types.EventRemoving:
		return "Removing " + event.Path + "..."
	case types.EventRemoved:
		return "Removed " + event.Path
	case types.EventFailed:
		return fmt.Sprintf("Error: %s: %v", event.Path, event.Err)
	default:
		return fmt.Sprintf("%s %s", event.Type, event.Path)
	}
}

// SummaryLine renders the totals of a run
func SummaryLine(summary types.Summary) string {
	total := summary.Total
	if summary.DryRun {
		return fmt.Sprintf("Dry run: %d matched, nothing removed, %d failed", total.Matched, total.Failed)
	}
	return fmt.Sprintf("Done: %d matched, %d removed, %d failed", total.Matched, total.Removed, total.Failed)
}
