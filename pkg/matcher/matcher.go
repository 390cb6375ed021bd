// Package matcher decides whether a single directory entry is a target of
// a rule.
//
// Folder rules compare a directory's base name with the patterns, file
// rules compare a regular file's extension. Comparison is exact and
// case-sensitive; there is no glob or regex syntax.
//
// Entries are classified from the type bits of the directory listing,
// which describe the entry itself. A symlink is therefore neither a
// directory nor a regular file: it never matches and is never descended
// into, whatever it points at.
package matcher

import (
	"io/fs"
	"strings"

	"github.com/arthur-debert/neaten/pkg/types"
)

// Matches reports whether entry satisfies rule's kind and patterns
func Matches(entry fs.DirEntry, rule types.Rule) bool {
	switch rule.Kind() {
	case types.KindFolder:
		return IsDir(entry) && rule.HasPattern(entry.Name())
	case types.KindFile:
		return IsRegular(entry) && rule.HasPattern(Extension(entry.Name()))
	default:
		return false
	}
}

// IsDir reports whether entry is a real directory, not a link to one
func IsDir(entry fs.DirEntry) bool {
	return entry.Type()&fs.ModeType == fs.ModeDir
}

// IsRegular reports whether entry is a regular file
func IsRegular(entry fs.DirEntry) bool {
	return entry.Type().IsRegular()
}

// Extension returns the part of name after its last dot, without the dot.
// Names without a dot have no extension and yield "".
func Extension(name string) string {
	i := strings.LastIndexByte(name, '.')
	if i < 0 {
		return ""
	}
	return name[i+1:]
}
