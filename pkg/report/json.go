package report

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/neaten/pkg/errors"
	"github.com/arthur-debert/neaten/pkg/types"
)

// eventRecord is the JSON form of one event
type eventRecord struct {
	Event string `json:"event"`
	Path  string `json:"path"`
	IsDir bool   `json:"isDir"`
	Error string `json:"error,omitempty"`
	Code  string `json:"code,omitempty"`
}

type ruleRecord struct {
	Destination string   `json:"destination"`
	Kind        string   `json:"kind"`
	Patterns    []string `json:"patterns"`
	DryRun      bool     `json:"dryRun"`
	Matched     int      `json:"matched"`
	Removed     int      `json:"removed"`
	Failed      int      `json:"failed"`
}

type summaryRecord struct {
	Event   string       `json:"event"`
	DryRun  bool         `json:"dryRun"`
	Matched int          `json:"matched"`
	Removed int          `json:"removed"`
	Failed  int          `json:"failed"`
	Rules   []ruleRecord `json:"rules"`
}

// JSON writes one JSON object per line for machine consumption
type JSON struct {
	out     sink
	encoder *json.Encoder
}

// NewJSON creates a line-delimited JSON reporter
func NewJSON(w io.Writer) *JSON {
	j := &JSON{out: sink{w: w}}
	j.encoder = json.NewEncoder(writerFunc(j.out.write))
	return j
}

// Report writes one event object
func (j *JSON) Report(event types.Event) {
	rec := eventRecord{
		Event: string(event.Type),
		Path:  event.Path,
		IsDir: event.IsDir,
	}
	if event.Err != nil {
		rec.Error = event.Err.Error()
		rec.Code = string(errors.GetErrorCode(event.Err))
	}
	j.encode(rec)
}

// Finish writes the summary object
func (j *JSON) Finish(summary types.Summary) error {
	rec := summaryRecord{
		Event:   "summary",
		DryRun:  summary.DryRun,
		Matched: summary.Total.Matched,
		Removed: summary.Total.Removed,
		Failed:  summary.Total.Failed,
		Rules:   make([]ruleRecord, 0, len(summary.Results)),
	}
	for _, res := range summary.Results {
		rec.Rules = append(rec.Rules, ruleRecord{
			Destination: res.Rule.Destination(),
			Kind:        res.Rule.Kind().String(),
			Patterns:    res.Rule.Patterns(),
			DryRun:      res.Rule.DryRun(),
			Matched:     res.Stats.Matched,
			Removed:     res.Stats.Removed,
			Failed:      res.Stats.Failed,
		})
	}
	j.encode(rec)
	return j.out.err
}

func (j *JSON) encode(v interface{}) {
	if err := j.encoder.Encode(v); err != nil && j.out.err == nil {
		j.out.err = errors.Wrap(err, errors.ErrInternal, "failed to encode report")
	}
}

// writerFunc adapts the sink to io.Writer for the encoder
type writerFunc func(p []byte)

func (f writerFunc) Write(p []byte) (int, error) {
	f(p)
	return len(p), nil
}
