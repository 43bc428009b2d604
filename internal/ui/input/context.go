package input

import (
	"gitsift/internal/domain"
	"gitsift/internal/selectlist"
)

// ListContext implements the Context interface over the file list
type ListContext struct {
	Files *selectlist.List[domain.FileStatus]
}

// TotalItems returns the number of listed files
func (c ListContext) TotalItems() int {
	if c.Files == nil {
		return 0
	}
	return c.Files.Len()
}

// HasSelection reports whether a file is highlighted
func (c ListContext) HasSelection() bool {
	if c.Files == nil {
		return false
	}
	_, ok := c.Files.Selected()
	return ok
}

// SelectedPath returns the highlighted file's path, or ""
func (c ListContext) SelectedPath() string {
	if c.Files == nil {
		return ""
	}
	f, ok := c.Files.SelectedItem()
	if !ok {
		return ""
	}
	return f.Path
}
