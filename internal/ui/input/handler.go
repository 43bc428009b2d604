package input

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/key"

	"gitsift/internal/ui/input/types"
)

// Handler turns key presses into actions for the model
type Handler struct {
	keys KeyMap
}

func New() *Handler {
	return NewWithKeyMap(DefaultKeyMap())
}

func NewWithKeyMap(keys KeyMap) *Handler {
	return &Handler{keys: keys}
}

// KeyMap returns the bindings, for rendering help
func (h *Handler) KeyMap() KeyMap {
	return h.keys
}

// HandleKey returns the actions for msg. Unbound keys produce none.
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) []types.Action {
	switch {
	case key.Matches(msg, h.keys.ForceQuit):
		return []types.Action{types.QuitAction{Force: true}}

	case key.Matches(msg, h.keys.Quit):
		return []types.Action{types.QuitAction{}}

	case key.Matches(msg, h.keys.Down):
		return []types.Action{types.NavigateAction{Direction: "down"}}

	case key.Matches(msg, h.keys.Up):
		return []types.Action{types.NavigateAction{Direction: "up"}}

	case key.Matches(msg, h.keys.Unselect):
		return []types.Action{types.UnselectAction{}}

	case key.Matches(msg, h.keys.Diff):
		if ctx.TotalItems() == 0 {
			return []types.Action{types.StatusMessageAction{Message: "working tree clean"}}
		}
		if !ctx.HasSelection() {
			return []types.Action{types.StatusMessageAction{Message: "nothing selected"}}
		}
		return []types.Action{types.OpenDiffAction{Path: ctx.SelectedPath()}}

	case key.Matches(msg, h.keys.Refresh):
		return []types.Action{types.RefreshAction{}}

	case key.Matches(msg, h.keys.Help):
		return []types.Action{types.ToggleHelpAction{}}
	}

	return nil
}
