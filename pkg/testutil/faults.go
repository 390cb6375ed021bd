package testutil

import (
	"io/fs"
	"path/filepath"
	"sync"

	"github.com/arthur-debert/neaten/pkg/types"
)

// FaultyFS wraps a types.FS and fails selected operations on selected paths
type FaultyFS struct {
	types.FS

	mu          sync.Mutex
	readDirErrs map[string]error
	removeErrs  map[string]error
	calls       []string
}

// NewFaultyFS wraps inner
func NewFaultyFS(inner types.FS) *FaultyFS {
	return &FaultyFS{
		FS:          inner,
		readDirErrs: make(map[string]error),
		removeErrs:  make(map[string]error),
	}
}

// FailReadDir makes ReadDir(path) return err
func (f *FaultyFS) FailReadDir(path string, err error) *FaultyFS {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.readDirErrs[filepath.Clean(path)] = err
	return f
}

// FailRemove makes Remove(path) and RemoveAll(path) return err
func (f *FaultyFS) FailRemove(path string, err error) *FaultyFS {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.removeErrs[filepath.Clean(path)] = err
	return f
}

// Calls returns the operations seen so far as "op path" strings
func (f *FaultyFS) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.calls))
	copy(out, f.calls)
	return out
}

func (f *FaultyFS) record(op, path string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, op+" "+path)
}

func (f *FaultyFS) ReadDir(name string) ([]fs.DirEntry, error) {
	f.record("readdir", name)
	f.mu.Lock()
	err, ok := f.readDirErrs[filepath.Clean(name)]
	f.mu.Unlock()
	if ok {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: err}
	}
	return f.FS.ReadDir(name)
}

func (f *FaultyFS) Remove(name string) error {
	f.record("remove", name)
	if err := f.removeErr(name); err != nil {
		return err
	}
	return f.FS.Remove(name)
}

func (f *FaultyFS) RemoveAll(path string) error {
	f.record("removeall", path)
	if err := f.removeErr(path); err != nil {
		return err
	}
	return f.FS.RemoveAll(path)
}

func (f *FaultyFS) removeErr(path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err, ok := f.removeErrs[filepath.Clean(path)]; ok {
		return &fs.PathError{Op: "remove", Path: path, Err: err}
	}
	return nil
}
