// Package selectlist tracks a single highlighted item over a fixed,
// ordered sequence with wrap-around navigation.
//
// A List is not safe for concurrent use. The UI owns it from inside the
// bubbletea update loop; anything else must serialize access itself.
package selectlist

// List is an ordered sequence of items plus an optional selection cursor.
// The item sequence is fixed at construction. When the dataset changes,
// build a new List instead of mutating this one.
type List[T any] struct {
	items    []T
	selected int // -1 when nothing is selected
}

// New creates a list over items with nothing selected.
func New[T any](items []T) *List[T] {
	owned := make([]T, len(items))
	copy(owned, items)
	return &List[T]{
		items:    owned,
		selected: -1,
	}
}

// Next advances the selection, wrapping from the last item to the first.
// With nothing selected it selects the first item.
func (l *List[T]) Next() {
	if len(l.items) == 0 {
		return
	}

	switch {
	case l.selected < 0:
		l.selected = 0
	case l.selected >= len(l.items)-1:
		l.selected = 0
	default:
		l.selected++
	}
}

// Previous moves the selection back, wrapping from the first item to the
// last. With nothing selected it selects the first item, not the last.
func (l *List[T]) Previous() {
	// len-1 below is only valid for a non-empty list
	if len(l.items) == 0 {
		return
	}

	switch {
	case l.selected < 0:
		l.selected = 0
	case l.selected == 0:
		l.selected = len(l.items) - 1
	default:
		l.selected--
	}
}

// Unselect clears the selection.
func (l *List[T]) Unselect() {
	l.selected = -1
}

// Selected returns the selected index, or false when nothing is selected.
func (l *List[T]) Selected() (int, bool) {
	if l.selected < 0 {
		return 0, false
	}
	return l.selected, true
}

// SelectedItem returns the item under the cursor.
func (l *List[T]) SelectedItem() (T, bool) {
	i, ok := l.Selected()
	if !ok {
		var zero T
		return zero, false
	}
	return l.items[i], true
}

// Len returns the number of items.
func (l *List[T]) Len() int {
	return len(l.items)
}

// Item returns the item at index i.
func (l *List[T]) Item(i int) (T, bool) {
	if i < 0 || i >= len(l.items) {
		var zero T
		return zero, false
	}
	return l.items[i], true
}

// Items returns a copy of the item sequence.
func (l *List[T]) Items() []T {
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}
