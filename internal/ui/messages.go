package ui

import (
	"gitsift/internal/domain"
	"gitsift/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// diffLoadedMsg contains the result of loading a file's diff
type diffLoadedMsg struct {
	file    domain.FileStatus
	content string
	err     error
}

// pagerClosedMsg is sent when the diff pager exits
type pagerClosedMsg struct {
	path string
	err  error
}
