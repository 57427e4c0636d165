// Package renderpipeline defines the abstract, backend-agnostic drawing
// operations the editor engine emits: an ordered, z-layered sequence of
// RenderOps that some terminal backend (outside this module's scope) later
// translates into cursor moves and ANSI escapes.
package renderpipeline

// Position is a location in grapheme units.
type Position struct {
	ColIndex uint32
	RowIndex uint32
}

// Size is an extent in grapheme units.
type Size struct {
	ColCount uint32
	RowCount uint32
}

// AddRowClamped returns a Position with RowIndex increased by delta, never
// exceeding maxRowCount-1. Used by the empty-state pipeline (spec.md
// §4.3.5) to keep the focused-state emoji inside the viewport even when the
// viewport is a single row tall.
func (p Position) AddRowClamped(delta, maxRowCount uint32) Position {
	row := p.RowIndex + delta
	if maxRowCount > 0 && row > maxRowCount-1 {
		row = maxRowCount - 1
	}
	return Position{ColIndex: p.ColIndex, RowIndex: row}
}
