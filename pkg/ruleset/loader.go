package ruleset

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/neaten/pkg/errors"
	"github.com/arthur-debert/neaten/pkg/filesystem"
	"github.com/arthur-debert/neaten/pkg/logging"
	"github.com/arthur-debert/neaten/pkg/paths"
	"github.com/arthur-debert/neaten/pkg/types"
	"github.com/rs/zerolog"
)

// RuleFileExt is the only accepted rule file extension, compared ignoring case
const RuleFileExt = ".json"

// Input is a single rule as supplied on the command line
type Input struct {
	Destination string
	Kind        string
	Patterns    []string
	DryRun      bool
}

// Options apply to every rule of a rule file
type Options struct {
	// DryRun forces dry-run on every rule, whatever the file says
	DryRun bool
}

// record is one element of a rule file
type record struct {
	Destination string   `json:"destination"`
	Kind        string   `json:"kind"`
	Patterns    []string `json:"patterns"`
	Exclude     []string `json:"exclude,omitempty"`
	DryRun      bool     `json:"dryRun,omitempty"`
}

// Loader validates rule input against a filesystem
type Loader struct {
	fs     types.FS
	getwd  func() (string, error)
	logger zerolog.Logger
}

// NewLoader creates a Loader. A nil fs means the OS filesystem and a nil
// getwd means os.Getwd; relative paths are resolved against getwd.
func NewLoader(fsys types.FS, getwd func() (string, error)) *Loader {
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	return &Loader{
		fs:     fsys,
		getwd:  getwd,
		logger: logging.GetLogger("ruleset"),
	}
}

// FromInput builds a RuleSet holding the single rule described by in
func (l *Loader) FromInput(in Input) (types.RuleSet, error) {
	if strings.TrimSpace(in.Destination) == "" {
		return types.RuleSet{}, errors.New(errors.ErrInvalidInput, "please provide destination")
	}

	patterns := make([]string, 0, len(in.Patterns))
	for _, p := range in.Patterns {
		patterns = append(patterns, strings.TrimSpace(p))
	}

	rule, err := l.build(in.Destination, in.Kind, patterns, in.DryRun, nil)
	if err != nil {
		return types.RuleSet{}, err
	}

	l.logger.Debug().
		Str("destination", rule.Destination()).
		Str("kind", rule.Kind().String()).
		Strs("patterns", rule.Patterns()).
		Msg("Rule built from input")

	return types.NewRuleSet(rule), nil
}

// FromFile reads and validates the JSON rule file at path
func (l *Loader) FromFile(path string, opts Options) (types.RuleSet, error) {
	resolved, err := paths.Resolve(path, l.getwd)
	if err != nil {
		return types.RuleSet{}, errors.Wrap(err, errors.ErrInvalidInput, "please provide a rule file")
	}

	if _, err := l.fs.Stat(resolved); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return types.RuleSet{}, errors.Newf(errors.ErrConfigNotFound, "rule file %s does not exist", resolved).
				WithDetail("path", resolved)
		}
		return types.RuleSet{}, errors.Wrapf(err, errors.ErrConfigRead, "cannot access rule file %s", resolved).
			WithDetail("path", resolved)
	}

	if !strings.EqualFold(filepath.Ext(resolved), RuleFileExt) {
		return types.RuleSet{}, errors.Newf(errors.ErrConfigFormat, "rule file %s is not a %s file", resolved, RuleFileExt).
			WithDetail("path", resolved)
	}

	data, err := l.fs.ReadFile(resolved)
	if err != nil {
		return types.RuleSet{}, errors.Wrapf(err, errors.ErrConfigRead, "failed to read rule file %s", resolved).
			WithDetail("path", resolved)
	}

	l.logger.Debug().Str("path", resolved).Int("bytes", len(data)).Msg("Rule file read")

	rs, err := l.Decode(data, opts)
	if err != nil {
		var ne *errors.NeatenError
		if errors.As(err, &ne) {
			ne.WithDetail("path", resolved)
		}
		return types.RuleSet{}, err
	}
	return rs, nil
}

// Decode validates a JSON array of rule objects. An empty array is a valid,
// empty RuleSet.
func (l *Loader) Decode(data []byte, opts Options) (types.RuleSet, error) {
	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return types.RuleSet{}, errors.Wrap(err, errors.ErrConfigParse, "malformed rule file")
	}
	if records == nil {
		return types.RuleSet{}, errors.New(errors.ErrConfigParse, "rule file must contain a JSON array of rules")
	}

	rules := make([]types.Rule, 0, len(records))
	for i, rec := range records {
		rule, err := l.build(rec.Destination, rec.Kind, rec.Patterns, rec.DryRun || opts.DryRun, rec.Exclude)
		if err != nil {
			return types.RuleSet{}, atIndex(err, i)
		}

		if len(rec.Exclude) > 0 {
			l.logger.Debug().
				Int("index", i).
				Strs("exclude", rec.Exclude).
				Msg("Exclude list is not supported and will be ignored")
		}
		rules = append(rules, rule)
	}

	l.logger.Debug().Int("rules", len(rules)).Bool("dryRun", opts.DryRun).Msg("Rule file decoded")
	return types.NewRuleSet(rules...), nil
}

// build validates one rule in order: kind, destination exists, destination
// is a directory, patterns non-empty.
func (l *Loader) build(destination, kind string, patterns []string, dryRun bool, exclude []string) (types.Rule, error) {
	k, err := types.ParseKind(kind)
	if err != nil {
		return types.Rule{}, err
	}

	if strings.TrimSpace(destination) == "" {
		return types.Rule{}, errors.New(errors.ErrInvalidInput, "please provide destination")
	}
	resolved, err := paths.Resolve(destination, l.getwd)
	if err != nil {
		return types.Rule{}, err
	}

	info, err := l.fs.Stat(resolved)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return types.Rule{}, errors.Newf(errors.ErrDestinationNotFound, "destination %s does not exist", resolved).
				WithDetail("destination", resolved)
		}
		return types.Rule{}, errors.Wrapf(err, errors.ErrDestinationNotFound, "cannot access destination %s", resolved).
			WithDetail("destination", resolved)
	}
	if !info.IsDir() {
		return types.Rule{}, errors.Newf(errors.ErrDestinationNotDir, "destination %s is not a directory", resolved).
			WithDetail("destination", resolved)
	}

	if len(patterns) == 0 {
		return types.Rule{}, errors.New(errors.ErrEmptyPatterns, "please provide patterns")
	}
	for _, p := range patterns {
		if p == "" {
			return types.Rule{}, errors.New(errors.ErrEmptyPatterns, "patterns must not be empty strings")
		}
	}

	return types.NewRule(resolved, k, patterns, dryRun, exclude), nil
}

func atIndex(err error, i int) error {
	var ne *errors.NeatenError
	if errors.As(err, &ne) {
		ne.Message = fmt.Sprintf("rule %d: %s", i, ne.Message)
		ne.WithDetail("index", i)
	}
	return err
}
