package report

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/pterm/pterm"
)

// Colors adapt to light and dark terminals
var (
	SuccessColor = lipgloss.AdaptiveColor{
		Light: "#28A745", // Green
		Dark:  "#4CDD76",
	}

	ErrorColor = lipgloss.AdaptiveColor{
		Light: "#DC3545", // Red
		Dark:  "#FF6B7D",
	}

	WarningColor = lipgloss.AdaptiveColor{
		Light: "#B8860B", // Dark amber
		Dark:  "#FFD54F",
	}

	PathColor = lipgloss.AdaptiveColor{
		Light: "#6C757D", // Gray
		Dark:  "#A0A8B0",
	}

	MutedColor = lipgloss.AdaptiveColor{
		Light: "#6C757D",
		Dark:  "#ADB5BD",
	}
)

var (
	RemovedStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	WouldRemoveStyle = lipgloss.NewStyle().
				Foreground(WarningColor).
				Bold(true)

	FailedStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	PathStyle = lipgloss.NewStyle().
			Foreground(PathColor)

	DirPathStyle = PathStyle.
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)
)

// Status of a summary badge
type Status string

const (
	StatusSuccess Status = "success" // everything matched was removed
	StatusError   Status = "error"   // at least one entry failed
	StatusQueue   Status = "queue"   // dry run, nothing removed
	StatusIdle    Status = "idle"    // nothing matched
)

// StatusStyle returns the pterm style of a summary badge
func StatusStyle(status Status) *pterm.Style {
	switch status {
	case StatusSuccess:
		return pterm.NewStyle(pterm.BgGreen, pterm.FgWhite)
	case StatusError:
		return pterm.NewStyle(pterm.BgRed, pterm.FgWhite, pterm.Bold)
	case StatusQueue:
		return pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

// SummaryStatus classifies a run for its badge
func SummaryStatus(failed, matched int, dryRun bool) Status {
	switch {
	case failed > 0:
		return StatusError
	case matched == 0:
		return StatusIdle
	case dryRun:
		return StatusQueue
	default:
		return StatusSuccess
	}
}
