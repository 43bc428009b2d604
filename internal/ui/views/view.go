package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"gitsift/internal/domain"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width         int
	Height        int
	Title         string
	Branch        string
	RepoPath      string
	Files         []domain.FileStatus
	SelectedIndex int
	HasSelection  bool
	Loading       bool
	StatusMessage string
	StatusIsError bool
	HelpModel     help.Model
	KeyMap        help.KeyMap
}

// Renderer handles all view rendering
type Renderer struct {
	styles     *Styles
	fileRender *FileRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:     styles,
		fileRender: NewFileRenderer(styles),
	}
}

// Render produces the complete view. When Height is set the frame never
// has more lines than Height, as long as the chrome alone fits.
func (r *Renderer) Render(state ViewState) string {
	header := r.renderTitle(state)
	footer := r.renderFooter(state)

	var body string
	switch {
	case state.Loading && len(state.Files) == 0:
		body = r.styles.Dim.Render("Loading status...")
	case len(state.Files) == 0:
		body = r.styles.Empty.Render("working tree clean")
	default:
		body = r.renderFiles(state, r.listHeight(state, header, footer))
	}

	return r.styles.Main.Render(header + "\n\n" + body + "\n" + footer)
}

// listHeight is the number of rows left for the file list, or -1 when the
// terminal size is not known yet
func (r *Renderer) listHeight(state ViewState, header, footer string) int {
	if state.Height <= 0 {
		return -1
	}
	frame := r.styles.Main.Render(header + "\n\n" + "x" + "\n" + footer)
	return state.Height - lipgloss.Height(frame) + 1
}

func (r *Renderer) renderFooter(state ViewState) string {
	footer := &strings.Builder{}

	if state.StatusMessage != "" {
		style := r.styles.Status
		if state.StatusIsError {
			style = r.styles.StatusError.MarginTop(1)
		}
		footer.WriteString(style.Render(r.fit(state, state.StatusMessage)))
		footer.WriteString("\n")
	}

	if state.KeyMap != nil {
		footer.WriteString("\n")
		footer.WriteString(r.styles.Help.Render(state.HelpModel.View(state.KeyMap)))
	}
	return footer.String()
}

// fit cuts s to the width inside the main padding
func (r *Renderer) fit(state ViewState, s string) string {
	if state.Width <= 4 {
		return s
	}
	return ansi.Truncate(s, state.Width-4, "…")
}

func (r *Renderer) renderTitle(state ViewState) string {
	title := state.Title
	if title == "" {
		title = "gitsift"
	}
	line := r.styles.Title.Render(title)

	if state.Branch != "" {
		branchStyle := r.styles.Branch.Foreground(lipgloss.Color(GetBranchColor(state.Branch)))
		line += " " + branchStyle.Render("on "+state.Branch)
	}
	if state.RepoPath != "" {
		line += " " + r.styles.Dim.Render(state.RepoPath)
	}
	if len(state.Files) > 0 {
		line += " " + r.styles.Dim.Render(fmt.Sprintf("[%d changed]", len(state.Files)))
	}
	return r.fit(state, line)
}

func (r *Renderer) renderFiles(state ViewState, height int) string {
	start, end := 0, len(state.Files)
	if height >= 0 {
		start, end = VisibleWindow(len(state.Files), state.SelectedIndex, state.HasSelection, height)
	}

	rowWidth := state.Width - 4 // Main padding
	lines := make([]string, 0, end-start+2)

	if start > 0 {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↑ %d more", start)))
	}
	for i := start; i < end; i++ {
		selected := state.HasSelection && i == state.SelectedIndex
		lines = append(lines, r.fileRender.RenderFile(state.Files[i], selected, rowWidth))
	}
	if end < len(state.Files) {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↓ %d more", len(state.Files)-end)))
	}

	return strings.Join(lines, "\n")
}

// VisibleWindow returns the [start, end) range of files to draw so that the
// selected file stays on screen and the files plus their "more" indicator
// lines take at most height rows. A height below 3 is treated as 3.
func VisibleWindow(total, selected int, hasSelection bool, height int) (int, int) {
	if height < 3 {
		height = 3
	}
	if total <= height {
		return 0, total
	}

	// At least one indicator is drawn once the list does not fit
	rows := height - 1
	start, end := window(total, selected, hasSelection, rows)
	if start > 0 && end < total {
		start, end = window(total, selected, hasSelection, rows-1)
	}
	return start, end
}

func window(total, selected int, hasSelection bool, rows int) (int, int) {
	if !hasSelection {
		return 0, rows
	}
	start := selected - rows/2
	if start > total-rows {
		start = total - rows
	}
	if start < 0 {
		start = 0
	}
	return start, start + rows
}
