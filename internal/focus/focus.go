// Package focus tracks which box id in a component registry currently holds
// keyboard focus. The editor engine consults it once per render pass to
// decide whether to draw a caret and the empty-state "look here" affordance.
package focus

// HasFocus reports whether a given box id currently has keyboard focus. It
// stands in for the surrounding application's component registry, which in
// a real terminal app also tracks tab order and focus-change events; this
// core only needs the read side of that contract.
type HasFocus struct {
	focusedID string
}

// New returns a registry with no id focused.
func New() *HasFocus {
	return &HasFocus{}
}

// SetFocus makes id the currently focused box, replacing any prior focus.
func (h *HasFocus) SetFocus(id string) {
	h.focusedID = id
}

// ClearFocus removes focus from whatever box currently holds it.
func (h *HasFocus) ClearFocus() {
	h.focusedID = ""
}

// DoesIDHaveFocus reports whether id is the currently focused box. An empty
// id never has focus, even on a freshly-constructed registry.
func (h *HasFocus) DoesIDHaveFocus(id string) bool {
	return id != "" && h.focusedID == id
}
