package version

import "fmt"

// Build information set by ldflags
var (
	Version = "dev"     // Set by goreleaser: -X github.com/arthur-debert/neaten/internal/version.Version={{.Version}}
	Commit  = "unknown" // Set by goreleaser: -X github.com/arthur-debert/neaten/internal/version.Commit={{.Commit}}
	Date    = "unknown" // Set by goreleaser: -X github.com/arthur-debert/neaten/internal/version.Date={{.Date}}
)

// Info returns the multi-line banner printed by "neaten version"
func Info() string {
	return fmt.Sprintf("neaten version %s\n  commit: %s\n  built:  %s\n", Version, Commit, Date)
}
