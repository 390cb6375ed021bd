// Package report turns walker events into user-visible output.
//
// Every reporter writes one line per decision: a simulated removal during a
// dry run, a real removal, or a failure with its error text. Finish closes
// the stream with a summary of the run. Formats are plain text, styled
// terminal output and line-delimited JSON.
package report

import (
	"io"
	"os"

	"github.com/arthur-debert/neaten/pkg/errors"
	"github.com/arthur-debert/neaten/pkg/types"
)

// Reporter receives walker events and the final summary of a run
type Reporter interface {
	types.Reporter

	// Finish reports the run summary and returns the first write error
	// seen since the reporter was created
	Finish(summary types.Summary) error
}

// New creates a reporter for format writing to w. FormatAuto detects the
// capabilities of w when it is a file and falls back to terminal output.
func New(format Format, w io.Writer) (Reporter, error) {
	switch format {
	case FormatAuto:
		if file, ok := w.(*os.File); ok {
			return New(DetectFormat(file), w)
		}
		return New(FormatTerminal, w)
	case FormatTerminal:
		return NewTerminal(w), nil
	case FormatText:
		return NewText(w), nil
	case FormatJSON:
		return NewJSON(w), nil
	default:
		return nil, errors.Newf(errors.ErrInternal, "unknown format: %v", format)
	}
}

// sink remembers the first write error so Report can stay error free
type sink struct {
	w   io.Writer
	err error
}

func (s *sink) write(p []byte) {
	if s.err != nil {
		return
	}
	_, s.err = s.w.Write(p)
}
