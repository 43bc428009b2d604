package domain

// FileStatus is one path reported by git status
type FileStatus struct {
	Path     string
	OrigPath string // source path for renames and copies, empty otherwise
	Staged   byte   // index status code (X)
	Unstaged byte   // worktree status code (Y)
}

// Code returns the two-letter XY status code
func (f FileStatus) Code() string {
	return string([]byte{f.Staged, f.Unstaged})
}

// IsUntracked reports whether git does not track the path
func (f FileStatus) IsUntracked() bool {
	return f.Staged == '?' && f.Unstaged == '?'
}

// IsIgnored reports whether the path is ignored
func (f FileStatus) IsIgnored() bool {
	return f.Staged == '!' && f.Unstaged == '!'
}

// IsConflicted reports whether the path is unmerged
func (f FileStatus) IsConflicted() bool {
	switch f.Code() {
	case "DD", "AU", "UD", "UA", "DU", "AA", "UU":
		return true
	}
	return false
}

// HasStaged reports whether the index holds changes for the path
func (f FileStatus) HasStaged() bool {
	if f.IsUntracked() || f.IsIgnored() || f.IsConflicted() {
		return false
	}
	return f.Staged != ' '
}

// HasUnstaged reports whether the worktree differs from the index
func (f FileStatus) HasUnstaged() bool {
	if f.IsUntracked() || f.IsIgnored() || f.IsConflicted() {
		return false
	}
	return f.Unstaged != ' '
}

// Describe returns a short human label for the change
func (f FileStatus) Describe() string {
	switch {
	case f.IsUntracked():
		return "untracked"
	case f.IsIgnored():
		return "ignored"
	case f.IsConflicted():
		return "conflict"
	}

	// The index side wins when both sides carry a change
	code := f.Staged
	if code == ' ' {
		code = f.Unstaged
	}
	switch code {
	case 'M':
		return "modified"
	case 'A':
		return "added"
	case 'D':
		return "deleted"
	case 'R':
		return "renamed"
	case 'C':
		return "copied"
	case 'T':
		return "type changed"
	default:
		return "changed"
	}
}

// StatusOptions controls what git status reports
type StatusOptions struct {
	ShowUntracked bool
	ShowIgnored   bool
}
