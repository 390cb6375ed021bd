package walker_test

import (
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/neaten/pkg/errors"
	"github.com/arthur-debert/neaten/pkg/filesystem"
	"github.com/arthur-debert/neaten/pkg/testutil"
	"github.com/arthur-debert/neaten/pkg/types"
	"github.com/arthur-debert/neaten/pkg/walker"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func folderRule(root string, dryRun bool, patterns ...string) types.Rule {
	return types.NewRule(root, types.KindFolder, patterns, dryRun, nil)
}

func fileRule(root string, dryRun bool, patterns ...string) types.Rule {
	return types.NewRule(root, types.KindFile, patterns, dryRun, nil)
}

func TestWalk_RemovesMatchingFolder(t *testing.T) {
	fsys, mem := testutil.NewTestFS()
	testutil.BuildTree(t, mem, "/root", map[string]string{
		"a/build/out.o": "o",
		"a/src/x.txt":   "x",
	})

	rec := &testutil.Recorder{}
	stats, err := walker.New(fsys, rec).Walk(context.Background(), folderRule("/root", false, "build"))
	require.NoError(t, err)

	assert.False(t, testutil.Exists(mem, "/root/a/build"))
	assert.True(t, testutil.Exists(mem, "/root/a/src/x.txt"))
	assert.Equal(t, []string{"/root/a/build"}, rec.Paths(types.EventRemoving))
	assert.Equal(t, []string{"/root/a/build"}, rec.Paths(types.EventRemoved))
	assert.Equal(t, types.Stats{Visited: 3, Matched: 1, Removed: 1}, stats)
}

func TestWalk_RemovesMatchingFiles(t *testing.T) {
	fsys, mem := testutil.NewTestFS()
	testutil.BuildTree(t, mem, "/root", map[string]string{
		"report.pdf": "p",
		"notes.tmp":  "n",
	})

	rec := &testutil.Recorder{}
	stats, err := walker.New(fsys, rec).Walk(context.Background(), fileRule("/root", false, "tmp"))
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"report.pdf": "p"}, testutil.Snapshot(t, mem, "/root"))
	assert.Equal(t, []string{"/root/notes.tmp"}, rec.Paths(types.EventRemoved))
	assert.Equal(t, 1, stats.Removed)
}

func TestWalk_FindsNestedMatch(t *testing.T) {
	fsys, mem := testutil.NewTestFS()
	testutil.BuildTree(t, mem, "/root", map[string]string{
		"a/b/node_modules/pkg/index.js": "js",
		"a/b/lib/main.js":               "main",
		"a/c/readme.md":                 "doc",
	})

	_, err := walker.New(fsys, nil).Walk(context.Background(), folderRule("/root", false, "node_modules"))
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"a/":              "/",
		"a/b/":            "/",
		"a/b/lib/":        "/",
		"a/b/lib/main.js": "main",
		"a/c/":            "/",
		"a/c/readme.md":   "doc",
	}, testutil.Snapshot(t, mem, "/root"))
}

func TestWalk_StopsAtMatch(t *testing.T) {
	fsys, mem := testutil.NewTestFS()
	testutil.BuildTree(t, mem, "/root", map[string]string{
		"build/build/inner.tmp": "i",
		"build/x.tmp":           "x",
	})

	for _, dryRun := range []bool{true, false} {
		rec := &testutil.Recorder{}
		faulty := testutil.NewFaultyFS(fsys)

		_, err := walker.New(faulty, rec).Walk(context.Background(), folderRule("/root", dryRun, "build"))
		require.NoError(t, err)

		// Only the outermost match is reported and its contents are never listed
		for _, e := range rec.Events {
			assert.Equal(t, "/root/build", e.Path)
		}
		assert.NotContains(t, faulty.Calls(), "readdir /root/build")
	}
	assert.False(t, testutil.Exists(mem, "/root/build"))
}

func TestWalk_DryRunLeavesTreeUntouched(t *testing.T) {
	fsys, mem := testutil.NewTestFS()
	testutil.BuildTree(t, mem, "/root", map[string]string{
		"a/build/out.o":     "o",
		"b/c/build/":        "",
		"b/notes.tmp":       "n",
		"node_modules/x.js": "x",
	})
	before := testutil.Snapshot(t, mem, "/root")
	rule := folderRule("/root", true, "build", "node_modules")

	first := &testutil.Recorder{}
	_, err := walker.New(fsys, first).Walk(context.Background(), rule)
	require.NoError(t, err)

	second := &testutil.Recorder{}
	_, err = walker.New(fsys, second).Walk(context.Background(), rule)
	require.NoError(t, err)

	assert.Equal(t, before, testutil.Snapshot(t, mem, "/root"))
	assert.Equal(t, first.Events, second.Events)
	assert.Equal(t, []string{
		"/root/a/build",
		"/root/b/c/build",
		"/root/node_modules",
	}, first.Paths(types.EventWouldRemove))
	assert.Empty(t, first.Paths(types.EventRemoved))
}

func TestWalk_EventSequence(t *testing.T) {
	fsys, mem := testutil.NewTestFS()
	testutil.BuildTree(t, mem, "/root", map[string]string{
		"a.tmp":     "a",
		"dir/b.tmp": "b",
		"keep.txt":  "k",
	})

	reporter := &testutil.MockReporter{}
	var order []string
	record := func(args mock.Arguments) {
		e := args.Get(0).(types.Event)
		order = append(order, string(e.Type)+" "+e.Path)
	}
	reporter.On("Report", testutil.EventOf(types.EventRemoving, "/root/a.tmp")).Run(record).Once()
	reporter.On("Report", testutil.EventOf(types.EventRemoved, "/root/a.tmp")).Run(record).Once()
	reporter.On("Report", testutil.EventOf(types.EventRemoving, "/root/dir/b.tmp")).Run(record).Once()
	reporter.On("Report", testutil.EventOf(types.EventRemoved, "/root/dir/b.tmp")).Run(record).Once()

	_, err := walker.New(fsys, reporter).Walk(context.Background(), fileRule("/root", false, "tmp"))
	require.NoError(t, err)

	reporter.AssertExpectations(t)
	assert.Equal(t, []string{
		"removing /root/a.tmp",
		"removed /root/a.tmp",
		"removing /root/dir/b.tmp",
		"removed /root/dir/b.tmp",
	}, order)
	assert.True(t, testutil.Exists(mem, "/root/keep.txt"))
}

func TestWalk_ListingFailureContinues(t *testing.T) {
	fsys, mem := testutil.NewTestFS()
	testutil.BuildTree(t, mem, "/root", map[string]string{
		"locked/a.tmp": "a",
		"open/b.tmp":   "b",
	})

	denied := stderrors.New("permission denied")
	faulty := testutil.NewFaultyFS(fsys).FailReadDir("/root/locked", denied)
	rec := &testutil.Recorder{}

	stats, err := walker.New(faulty, rec).Walk(context.Background(), fileRule("/root", false, "tmp"))
	require.NoError(t, err)

	require.Equal(t, []string{"/root/locked"}, rec.Paths(types.EventFailed))
	failed := rec.Events[0]
	assert.True(t, failed.IsDir)
	assert.True(t, errors.IsErrorCode(failed.Err, errors.ErrListDir))
	assert.ErrorIs(t, failed.Err, denied)

	assert.Equal(t, []string{"/root/open/b.tmp"}, rec.Paths(types.EventRemoved))
	assert.True(t, testutil.Exists(mem, "/root/locked/a.tmp"))
	assert.Equal(t, 1, stats.Failed)
	assert.Equal(t, 1, stats.Removed)
}

func TestWalk_RemoveFailureContinues(t *testing.T) {
	fsys, mem := testutil.NewTestFS()
	testutil.BuildTree(t, mem, "/root", map[string]string{
		"a.tmp":   "a",
		"b.tmp":   "b",
		"c/d.tmp": "d",
	})

	busy := stderrors.New("device busy")
	faulty := testutil.NewFaultyFS(fsys).FailRemove("/root/b.tmp", busy)
	rec := &testutil.Recorder{}

	stats, err := walker.New(faulty, rec).Walk(context.Background(), fileRule("/root", false, "tmp"))
	require.NoError(t, err)

	assert.Equal(t, []string{"/root/a.tmp", "/root/b.tmp", "/root/c/d.tmp"}, rec.Paths(types.EventRemoving))
	assert.Equal(t, []string{"/root/a.tmp", "/root/c/d.tmp"}, rec.Paths(types.EventRemoved))
	assert.Equal(t, []string{"/root/b.tmp"}, rec.Paths(types.EventFailed))
	assert.True(t, testutil.Exists(mem, "/root/b.tmp"))
	assert.Equal(t, types.Stats{Visited: 2, Matched: 3, Removed: 2, Failed: 1}, stats)

	// No retries
	removes := 0
	for _, call := range faulty.Calls() {
		if call == "remove /root/b.tmp" {
			removes++
		}
	}
	assert.Equal(t, 1, removes)
}

func TestWalk_ReadOnlyFilesystem(t *testing.T) {
	_, mem := testutil.NewTestFS()
	testutil.BuildTree(t, mem, "/root", map[string]string{
		"build/":        "",
		"x/build/out.o": "o",
	})
	readOnly := filesystem.NewAferoFS(afero.NewReadOnlyFs(mem))
	rec := &testutil.Recorder{}

	stats, err := walker.New(readOnly, rec).Walk(context.Background(), folderRule("/root", false, "build"))
	require.NoError(t, err)

	assert.Equal(t, []string{"/root/build", "/root/x/build"}, rec.Paths(types.EventFailed))
	for _, e := range rec.Events {
		if e.Type == types.EventFailed {
			assert.True(t, errors.IsErrorCode(e.Err, errors.ErrRemove))
		}
	}
	assert.Equal(t, 2, stats.Failed)
	assert.True(t, testutil.Exists(mem, "/root/x/build/out.o"))
}

func TestWalk_MissingDestinationIsNoop(t *testing.T) {
	fsys, _ := testutil.NewTestFS()
	reporter := &testutil.MockReporter{}

	stats, err := walker.New(fsys, reporter).Walk(context.Background(), folderRule("/gone", false, "build"))
	require.NoError(t, err)

	assert.Equal(t, types.Stats{}, stats)
	reporter.AssertNotCalled(t, "Report", mock.Anything)
}

func TestWalk_FileKindIgnoresFolders(t *testing.T) {
	fsys, mem := testutil.NewTestFS()
	testutil.BuildTree(t, mem, "/root", map[string]string{
		"tmp/inner.tmp": "i",
		"keep.go":       "k",
	})

	_, err := walker.New(fsys, nil).Walk(context.Background(), fileRule("/root", false, "tmp"))
	require.NoError(t, err)

	// The folder named like the pattern survives, the file inside it does not
	assert.Equal(t, map[string]string{
		"tmp/":    "/",
		"keep.go": "k",
	}, testutil.Snapshot(t, mem, "/root"))
}

func TestWalk_Cancelled(t *testing.T) {
	fsys, mem := testutil.NewTestFS()
	testutil.BuildTree(t, mem, "/root", map[string]string{"a.tmp": "a"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rec := &testutil.Recorder{}
	_, err := walker.New(fsys, rec).Walk(ctx, fileRule("/root", false, "tmp"))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, rec.Events)
	assert.True(t, testutil.Exists(mem, "/root/a.tmp"))
}

func TestWalk_SymlinksAreNotFollowed(t *testing.T) {
	root := t.TempDir()
	outside := t.TempDir()
	testutil.WriteTree(t, outside, map[string]string{
		"build/keep.o": "o",
		"data.tmp":     "d",
	})
	testutil.WriteTree(t, root, map[string]string{
		"real/build/out.o": "o",
	})
	require.NoError(t, os.Symlink(outside, filepath.Join(root, "linked")))
	require.NoError(t, os.Symlink(filepath.Join(outside, "build"), filepath.Join(root, "build")))
	require.NoError(t, os.Symlink(filepath.Join(outside, "data.tmp"), filepath.Join(root, "data.tmp")))
	// A cycle back to the root is harmless
	require.NoError(t, os.Symlink(root, filepath.Join(root, "real", "loop")))

	rec := &testutil.Recorder{}
	w := walker.New(filesystem.NewOS(), rec)

	_, err := w.Walk(context.Background(), folderRule(root, false, "build"))
	require.NoError(t, err)
	_, err = w.Walk(context.Background(), fileRule(root, false, "tmp"))
	require.NoError(t, err)

	assert.Equal(t, []string{filepath.Join(root, "real", "build")}, rec.Paths(types.EventRemoved))
	assert.FileExists(t, filepath.Join(outside, "build", "keep.o"))
	assert.FileExists(t, filepath.Join(outside, "data.tmp"))

	_, err = os.Lstat(filepath.Join(root, "build"))
	assert.NoError(t, err, "the symlink itself is left in place")
}
