// Package walker applies one rule to a directory tree.
//
// The walk is depth-first and synchronous. For every directory it lists the
// children, removes those that match the rule and descends into the
// directories that do not. A matched directory is removed as a whole and
// never looked into. Listing and removal failures are reported through the
// Reporter and the walk carries on with the next entry.
package walker

import (
	"context"
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/neaten/pkg/errors"
	"github.com/arthur-debert/neaten/pkg/logging"
	"github.com/arthur-debert/neaten/pkg/matcher"
	"github.com/arthur-debert/neaten/pkg/types"
	"github.com/rs/zerolog"
)

// Walker removes the entries of a tree that match a rule
type Walker struct {
	fs       types.FS
	reporter types.Reporter
	logger   zerolog.Logger
}

// New creates a Walker. A nil reporter discards events.
func New(fsys types.FS, reporter types.Reporter) *Walker {
	if reporter == nil {
		reporter = types.ReporterFunc(func(types.Event) {})
	}
	return &Walker{
		fs:       fsys,
		reporter: reporter,
		logger:   logging.GetLogger("walker"),
	}
}

// Walk applies rule below its destination. The returned error is non-nil
// only when ctx is cancelled; per-entry failures are counted in the stats.
func (w *Walker) Walk(ctx context.Context, rule types.Rule) (types.Stats, error) {
	var stats types.Stats

	w.logger.Debug().
		Str("destination", rule.Destination()).
		Str("kind", rule.Kind().String()).
		Strs("patterns", rule.Patterns()).
		Bool("dryRun", rule.DryRun()).
		Msg("Walking destination")

	err := w.enter(ctx, rule.Destination(), rule, &stats)

	w.logger.Debug().
		Str("destination", rule.Destination()).
		Int("visited", stats.Visited).
		Int("matched", stats.Matched).
		Int("removed", stats.Removed).
		Int("failed", stats.Failed).
		Msg("Walk complete")

	return stats, err
}

func (w *Walker) enter(ctx context.Context, dir string, rule types.Rule, stats *types.Stats) error {
	// A sibling rule may already have removed this directory
	if _, err := w.fs.Lstat(dir); errors.Is(err, fs.ErrNotExist) {
		w.logger.Debug().Str("path", dir).Msg("Directory no longer exists, skipping")
		return nil
	}

	children, err := w.fs.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			w.logger.Debug().Str("path", dir).Msg("Directory vanished before listing, skipping")
			return nil
		}
		w.fail(dir, true, errors.Wrapf(err, errors.ErrListDir, "failed to read directory %s", dir), stats)
		return nil
	}
	stats.Visited++

	for _, child := range children {
		if err := ctx.Err(); err != nil {
			return err
		}

		path := filepath.Join(dir, child.Name())
		isDir := matcher.IsDir(child)

		if matcher.Matches(child, rule) {
			stats.Matched++
			w.remove(path, isDir, rule.DryRun(), stats)
			continue
		}

		if isDir {
			if err := w.enter(ctx, path, rule, stats); err != nil {
				return err
			}
		}
	}

	return nil
}

// remove deletes one matched entry, or only reports it during a dry run
func (w *Walker) remove(path string, isDir bool, dryRun bool, stats *types.Stats) {
	if dryRun {
		w.logger.Info().Str("path", path).Msg("Would remove")
		w.reporter.Report(types.Event{Type: types.EventWouldRemove, Path: path, IsDir: isDir})
		return
	}

	w.reporter.Report(types.Event{Type: types.EventRemoving, Path: path, IsDir: isDir})

	var err error
	if isDir {
		err = w.fs.RemoveAll(path)
	} else {
		err = w.fs.Remove(path)
	}
	if err != nil {
		w.fail(path, isDir, errors.Wrapf(err, errors.ErrRemove, "failed to remove %s", path), stats)
		return
	}

	stats.Removed++
	w.logger.Info().Str("path", path).Bool("isDir", isDir).Msg("Removed")
	w.reporter.Report(types.Event{Type: types.EventRemoved, Path: path, IsDir: isDir})
}

func (w *Walker) fail(path string, isDir bool, err error, stats *types.Stats) {
	stats.Failed++
	w.logger.Info().Err(err).Str("path", path).Msg("Entry failed")
	w.reporter.Report(types.Event{Type: types.EventFailed, Path: path, IsDir: isDir, Err: err})
}
