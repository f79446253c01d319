package ui

import "slices"

// FocusManager tracks and rotates keyboard focus across a fixed set of
// targets (here the content area and the two divider handles).
type FocusManager struct {
	Current  string   // ID of the currently focused target
	Order    []string // Tab order for focus rotation
	OnChange func(from, to string)
}

// Next advances focus to the next target in order and returns its ID.
func (f *FocusManager) Next() string {
	return f.rotate(1)
}

// Prev moves focus to the previous target in order and returns its ID.
func (f *FocusManager) Prev() string {
	return f.rotate(-1)
}

func (f *FocusManager) rotate(step int) string {
	n := len(f.Order)
	if n == 0 {
		return ""
	}
	idx := slices.Index(f.Order, f.Current)
	from := f.Current
	f.Current = f.Order[((idx+step)%n+n)%n]
	if f.OnChange != nil && from != f.Current {
		f.OnChange(from, f.Current)
	}
	return f.Current
}

// SetFocus sets focus to the given target ID.
// Returns true if the ID exists in the order.
func (f *FocusManager) SetFocus(id string) bool {
	if !slices.Contains(f.Order, id) {
		return false
	}
	from := f.Current
	f.Current = id
	if f.OnChange != nil && from != id {
		f.OnChange(from, id)
	}
	return true
}
