package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"
)

// errNoProgram is returned when the pager runs before SetProgram
var errNoProgram = errors.New("program not set")

// Pager shows long text outside the main view
type Pager interface {
	Show(title, content string) error
}

// OvPager shows content with the ov pager, handing it the terminal
type OvPager struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewOvPager creates a pager bound to program
func NewOvPager(program *tea.Program) *OvPager {
	return &OvPager{program: program}
}

// Show blocks until the user leaves the pager
func (p *OvPager) Show(title, content string) error {
	if p.program == nil {
		return errNoProgram
	}

	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}
	defer func() {
		// Give ov time to leave the alternate screen before bubbletea takes over
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal()
	}()

	header := fmt.Sprintf("%s\n%s\n", title, strings.Repeat("─", len([]rune(title))))
	root, err := oviewer.NewRoot(strings.NewReader(header + content))
	if err != nil {
		return err
	}

	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
