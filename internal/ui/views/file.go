package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"gitsift/internal/domain"
)

// FileRenderer handles rendering of status rows
type FileRenderer struct {
	styles *Styles
}

// NewFileRenderer creates a new file renderer
func NewFileRenderer(styles *Styles) *FileRenderer {
	return &FileRenderer{styles: styles}
}

// RenderFile renders one status row no wider than width, shortening the
// path when needed. The selected row gets a background across every
// segment so the highlight is continuous.
func (r *FileRenderer) RenderFile(f domain.FileStatus, isSelected bool, width int) string {
	bg := lipgloss.NewStyle()
	codeStyle := r.styles.CodeStyle(f)
	labelStyle := r.styles.Dim
	cursor := "  "
	if isSelected {
		bg = r.styles.SelectionBg
		codeStyle = codeStyle.Inherit(r.styles.SelectionBg)
		labelStyle = labelStyle.Inherit(r.styles.SelectionBg)
		cursor = "> "
	}

	code := strings.ReplaceAll(f.Code(), " ", "·")

	name := f.Path
	if f.OrigPath != "" {
		name = f.OrigPath + " → " + f.Path
	}
	label := "(" + f.Describe() + ")"

	if width > 0 {
		room := width - ansi.StringWidth(cursor+code+"  "+label)
		if room < 1 {
			room = 1
		}
		name = ansi.Truncate(name, room, "…")
	}

	parts := []string{
		bg.Render(cursor),
		codeStyle.Render(code),
		bg.Render(" " + name + " "),
		labelStyle.Render(label),
	}
	line := strings.Join(parts, "")

	if isSelected && width > 0 {
		if pad := width - lipgloss.Width(line); pad > 0 {
			line += bg.Render(strings.Repeat(" ", pad))
		}
	}
	return line
}
