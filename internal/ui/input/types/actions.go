package types

// Navigation actions
type NavigateAction struct {
	Direction string // "down" or "up"
}

func (a NavigateAction) Type() string { return "navigate" }

type UnselectAction struct{}

func (a UnselectAction) Type() string { return "unselect" }

// Command actions
type OpenDiffAction struct {
	Path string // file highlighted when the key was read
}

func (a OpenDiffAction) Type() string { return "open_diff" }

type RefreshAction struct{}

func (a RefreshAction) Type() string { return "refresh" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }

// StatusMessageAction reports something to the user without changing state
type StatusMessageAction struct {
	Message string
}

func (a StatusMessageAction) Type() string { return "status_message" }
