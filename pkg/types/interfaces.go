package types

import (
	"io/fs"
)

// FS is the filesystem interface required for neaten operations
type FS interface {
	// Stat follows symlinks; Lstat does not
	Stat(name string) (fs.FileInfo, error)
	Lstat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)

	// ReadDir returns the entries of a directory sorted by name. Entry
	// types describe the entry itself, so a symlink is never a directory.
	ReadDir(name string) ([]fs.DirEntry, error)

	// Remove deletes a file or empty directory
	Remove(name string) error
	// RemoveAll deletes a path and everything below it
	RemoveAll(path string) error
}

// Reporter receives every decision the walker makes
type Reporter interface {
	Report(event Event)
}

// ReporterFunc adapts a function to the Reporter interface
type ReporterFunc func(event Event)

// Report calls f(event)
func (f ReporterFunc) Report(event Event) { f(event) }
