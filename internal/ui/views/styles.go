package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gitsift/internal/domain"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Branch        lipgloss.Style
	Dim           lipgloss.Style
	Status        lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	Scroll        lipgloss.Style
	Empty         lipgloss.Style
	SelectionBg   lipgloss.Style
	StatusError   lipgloss.Style
	CodeStaged    lipgloss.Style
	CodeUnstaged  lipgloss.Style
	CodeUntracked lipgloss.Style
	CodeConflict  lipgloss.Style
	CodeIgnored   lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Branch: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		Dim:    lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		Help: lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Scroll:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Empty:         lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Italic(true),
		SelectionBg:   lipgloss.NewStyle().Background(lipgloss.Color("238")),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		CodeStaged:    lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		CodeUnstaged:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		CodeUntracked: lipgloss.NewStyle().Foreground(lipgloss.Color("33")),  // blue
		CodeConflict:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		CodeIgnored:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// CodeStyle returns the style used for a file's status code
func (s *Styles) CodeStyle(f domain.FileStatus) lipgloss.Style {
	switch {
	case f.IsConflicted():
		return s.CodeConflict
	case f.IsUntracked():
		return s.CodeUntracked
	case f.IsIgnored():
		return s.CodeIgnored
	case f.HasStaged():
		return s.CodeStaged
	default:
		return s.CodeUnstaged
	}
}

// GetBranchColor returns the appropriate color for a git branch
func GetBranchColor(branchName string) string {
	switch branchName {
	case "main", "master":
		return "78" // green
	case "develop", "dev":
		return "33" // blue
	default:
		if branchName == "" || branchName == "HEAD" || strings.HasPrefix(branchName, "detached") {
			return "203" // red
		}
		return "214" // yellow for feature branches
	}
}
