package testutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/arthur-debert/neaten/pkg/filesystem"
	"github.com/arthur-debert/neaten/pkg/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// NewTestFS creates a new in-memory filesystem for testing. The raw afero
// filesystem is returned too so tests can build read-only views of it.
func NewTestFS() (types.FS, afero.Fs) {
	mem := afero.NewMemMapFs()
	return filesystem.NewAferoFS(mem), mem
}

// BuildTree creates the entries of tree below root in an afero filesystem
func BuildTree(t *testing.T, fsys afero.Fs, root string, tree map[string]string) {
	t.Helper()

	require.NoError(t, fsys.MkdirAll(root, 0755))
	for _, rel := range sortedKeys(tree) {
		full := filepath.Join(root, filepath.FromSlash(rel))
		if strings.HasSuffix(rel, "/") {
			require.NoError(t, fsys.MkdirAll(full, 0755))
			continue
		}
		require.NoError(t, fsys.MkdirAll(filepath.Dir(full), 0755))
		require.NoError(t, afero.WriteFile(fsys, full, []byte(tree[rel]), 0644))
	}
}

// WriteTree creates the entries of tree below root on the real filesystem
func WriteTree(t *testing.T, root string, tree map[string]string) {
	t.Helper()
	BuildTree(t, afero.NewOsFs(), root, tree)
}

// Snapshot returns every entry below root keyed by its slash separated
// relative path. Directories map to "/" and files to their content.
func Snapshot(t *testing.T, fsys afero.Fs, root string) map[string]string {
	t.Helper()

	snap := make(map[string]string)
	err := afero.Walk(fsys, root, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}
		rel = filepath.ToSlash(rel)
		switch {
		case info.IsDir():
			snap[rel+"/"] = "/"
		case info.Mode()&os.ModeSymlink != 0:
			snap[rel] = "-> symlink"
		default:
			data, err := afero.ReadFile(fsys, path)
			if err != nil {
				return err
			}
			snap[rel] = string(data)
		}
		return nil
	})
	require.NoError(t, err)
	return snap
}

// Exists reports whether path exists in fsys
func Exists(fsys afero.Fs, path string) bool {
	_, err := fsys.Stat(path)
	return err == nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
