package types

import (
	"strings"

	"github.com/arthur-debert/neaten/pkg/errors"
)

// Kind selects what a rule's patterns are compared against
type Kind int

const (
	// KindFolder compares patterns with directory base names
	KindFolder Kind = iota + 1
	// KindFile compares patterns with file extensions
	KindFile
)

// String returns the lowercase name used on the command line and in rule files
func (k Kind) String() string {
	switch k {
	case KindFolder:
		return "folder"
	case KindFile:
		return "file"
	default:
		return "unknown"
	}
}

// Valid reports whether k is one of the known kinds
func (k Kind) Valid() bool {
	return k == KindFolder || k == KindFile
}

// ParseKind parses "folder" or "file", ignoring case
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "folder":
		return KindFolder, nil
	case "file":
		return KindFile, nil
	case "":
		return 0, errors.New(errors.ErrInvalidKind, "please provide kind")
	default:
		return 0, errors.Newf(errors.ErrInvalidKind, "unknown kind %q, expected folder or file", s)
	}
}

// MarshalText implements encoding.TextMarshaler
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, errors.Newf(errors.ErrInvalidKind, "cannot marshal kind %d", int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
