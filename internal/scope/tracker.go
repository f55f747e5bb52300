package scope

import "slices"

// Tracker is the shadow stack of one walk context.
type Tracker struct {
	names   []string
	tracked func(name string) bool
}

// Mark is a saved stack height.
type Mark int

// NewTracker creates an empty tracker. Only names for which tracked returns
// true are ever recorded; a nil tracked func records every name.
func NewTracker(tracked func(name string) bool) *Tracker {
	return &Tracker{tracked: tracked}
}

// Tracks reports whether declarations of name are recorded.
func (t *Tracker) Tracks(name string) bool {
	return t.tracked == nil || t.tracked(name)
}

// Shadowed reports whether name is currently rebound by an enclosing
// declaration or parameter.
func (t *Tracker) Shadowed(name string) bool {
	for i := len(t.names) - 1; i >= 0; i-- {
		if t.names[i] == name {
			return true
		}
	}

	return false
}

// Declare records a declaration of name. It returns false when the name is
// not tracked and nothing was pushed.
func (t *Tracker) Declare(name string) bool {
	if name == "" || !t.Tracks(name) {
		return false
	}

	t.names = append(t.names, name)

	return true
}

// Mark returns the current stack height for a later Restore.
func (t *Tracker) Mark() Mark {
	return Mark(len(t.names))
}

// Restore truncates the stack back to m.
func (t *Tracker) Restore(m Mark) {
	if int(m) < len(t.names) {
		t.names = t.names[:m]
	}
}

// Snapshot returns a copy of the stack, bottom first.
func (t *Tracker) Snapshot() []string {
	return slices.Clone(t.names)
}

// Fork returns an independent tracker that starts from a copy of the
// current stack. Declarations in the fork never reach t.
func (t *Tracker) Fork() *Tracker {
	return &Tracker{
		names:   t.Snapshot(),
		tracked: t.tracked,
	}
}

// Len returns the stack height.
func (t *Tracker) Len() int {
	return len(t.names)
}
