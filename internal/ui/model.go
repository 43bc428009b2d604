package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"

	"gitsift/internal/config"
	"gitsift/internal/domain"
	"gitsift/internal/eventbus"
	"gitsift/internal/selectlist"
	"gitsift/internal/ui/input"
	inputtypes "gitsift/internal/ui/input/types"
	"gitsift/internal/ui/views"
)

const diffTimeout = 30 * time.Second

// DiffSource loads the diff for one file
type DiffSource interface {
	Diff(ctx context.Context, root string, file domain.FileStatus) (string, error)
}

// Model represents the UI state
type Model struct {
	bus      eventbus.EventBus
	config   *config.Config
	diffs    DiffSource
	repoRoot string

	// files is only touched from Update, which bubbletea runs on one goroutine
	files  *selectlist.List[domain.FileStatus]
	branch string

	loading       bool
	statusMessage string
	statusIsError bool

	width  int
	height int
	help   help.Model

	inputHandler *input.Handler
	renderer     *views.Renderer
	pager        Pager
}

// NewModel creates a new UI model for the repository at repoRoot
func NewModel(bus eventbus.EventBus, cfg *config.Config, diffs DiffSource, repoRoot string) *Model {
	h := help.New()
	h.ShowAll = cfg.UISettings.ShowHelp

	return &Model{
		bus:          bus,
		config:       cfg,
		diffs:        diffs,
		repoRoot:     repoRoot,
		files:        selectlist.New[domain.FileStatus](nil),
		loading:      true,
		help:         h,
		inputHandler: input.New(),
		renderer:     views.NewRenderer(),
	}
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.pager = NewOvPager(p)
}

// SetPager replaces the pager used for diffs
func (m *Model) SetPager(p Pager) {
	m.pager = p
}

// Selection returns the highlighted row
func (m *Model) Selection() (int, bool) {
	return m.files.Selected()
}

// Init requests the first status load
func (m *Model) Init() tea.Cmd {
	return m.requestRefresh()
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		ctx := input.ListContext{Files: m.files}
		var cmds []tea.Cmd
		for _, action := range m.inputHandler.HandleKey(msg, ctx) {
			if cmd := m.processAction(action); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		return m, batch(cmds)

	case EventMsg:
		m.handleEvent(msg.Event)
		return m, nil

	case diffLoadedMsg:
		if msg.err != nil {
			log.WithField("path", msg.file.Path).Errorf("Error loading diff: %v", msg.err)
			m.setError(fmt.Sprintf("diff %s: %v", msg.file.Path, msg.err))
			return m, nil
		}
		return m, m.showPager(msg.file.Path, msg.content)

	case pagerClosedMsg:
		if msg.err != nil {
			log.WithField("path", msg.path).Errorf("Pager failed: %v", msg.err)
			m.setError(fmt.Sprintf("pager: %v", msg.err))
		}
		return m, nil
	}

	return m, nil
}

// View renders the model
func (m *Model) View() string {
	selected, hasSelection := m.files.Selected()
	return m.renderer.Render(views.ViewState{
		Width:         m.width,
		Height:        m.height,
		Title:         m.config.Title,
		Branch:        m.branch,
		RepoPath:      m.repoRoot,
		Files:         m.files.Items(),
		SelectedIndex: selected,
		HasSelection:  hasSelection,
		Loading:       m.loading,
		StatusMessage: m.statusMessage,
		StatusIsError: m.statusIsError,
		HelpModel:     m.help,
		KeyMap:        m.inputHandler.KeyMap(),
	})
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.navigate(a.Direction)

	case inputtypes.UnselectAction:
		m.files.Unselect()
		m.clearStatus()

	case inputtypes.OpenDiffAction:
		file, ok := m.files.SelectedItem()
		if !ok {
			m.setStatus("nothing selected")
			return nil
		}
		if file.Path != a.Path {
			// The list changed between decoding the key and applying it
			log.WithFields(log.Fields{"wanted": a.Path, "selected": file.Path}).Debug("Stale diff request")
			m.setStatus("selection changed, press enter again")
			return nil
		}
		m.setStatus(fmt.Sprintf("loading diff for %s...", file.Path))
		return m.loadDiff(file)

	case inputtypes.RefreshAction:
		m.loading = true
		m.setStatus("refreshing...")
		return m.requestRefresh()

	case inputtypes.ToggleHelpAction:
		m.help.ShowAll = !m.help.ShowAll

	case inputtypes.StatusMessageAction:
		m.setStatus(a.Message)

	case inputtypes.QuitAction:
		return tea.Quit
	}
	return nil
}

func (m *Model) navigate(direction string) {
	before, hadSelection := m.files.Selected()

	switch direction {
	case "down":
		m.files.Next()
	case "up":
		m.files.Previous()
	default:
		return
	}

	m.clearStatus()
	after, _ := m.files.Selected()
	if !hadSelection || !m.config.UISettings.WrapHint || m.files.Len() < 2 {
		return
	}
	switch {
	case direction == "down" && after < before:
		m.setStatus("wrapped to top")
	case direction == "up" && after > before:
		m.setStatus("wrapped to bottom")
	}
}

func (m *Model) handleEvent(event eventbus.DomainEvent) {
	switch e := event.(type) {
	case eventbus.StatusLoadedEvent:
		if e.RepoPath != m.repoRoot {
			return
		}
		// A new dataset gets a new list; the old selection does not carry over
		m.files = selectlist.New(e.Files)
		m.branch = e.Branch
		m.loading = false
		m.clearStatus()

	case eventbus.ErrorEvent:
		m.loading = false
		if e.Err != nil {
			m.setError(fmt.Sprintf("%s: %v", e.Message, e.Err))
		} else {
			m.setError(e.Message)
		}
	}
}

func (m *Model) requestRefresh() tea.Cmd {
	bus, root := m.bus, m.repoRoot
	return func() tea.Msg {
		bus.Publish(eventbus.StatusRefreshRequestedEvent{RepoPath: root})
		return nil
	}
}

func (m *Model) loadDiff(file domain.FileStatus) tea.Cmd {
	diffs, root := m.diffs, m.repoRoot
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), diffTimeout)
		defer cancel()

		content, err := diffs.Diff(ctx, root, file)
		return diffLoadedMsg{file: file, content: content, err: err}
	}
}

func (m *Model) showPager(path, content string) tea.Cmd {
	m.clearStatus()
	pager := m.pager
	if pager == nil {
		pager = NewOvPager(nil)
	}
	return func() tea.Msg {
		return pagerClosedMsg{path: path, err: pager.Show(path, content)}
	}
}

func (m *Model) setStatus(message string) {
	m.statusMessage = message
	m.statusIsError = false
}

func (m *Model) setError(message string) {
	m.statusMessage = message
	m.statusIsError = true
}

func (m *Model) clearStatus() {
	m.statusMessage = ""
	m.statusIsError = false
}

func batch(cmds []tea.Cmd) tea.Cmd {
	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	default:
		return tea.Batch(cmds...)
	}
}
