package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventStatusRefreshRequested EventType = "StatusRefreshRequested"
	EventStatusLoaded           EventType = "StatusLoaded"
	EventError                  EventType = "Error"
	EventConfigLoaded           EventType = "ConfigLoaded"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// StatusRefreshRequestedEvent asks the git service to reload a repository's status
type StatusRefreshRequestedEvent struct {
	RepoPath string
}

func (e StatusRefreshRequestedEvent) Type() EventType { return EventStatusRefreshRequested }

// StatusLoadedEvent carries a freshly loaded status listing
type StatusLoadedEvent struct {
	RepoPath string
	Branch   string
	Files    []FileStatus
}

func (e StatusLoadedEvent) Type() EventType { return EventStatusLoaded }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }
