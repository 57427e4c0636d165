package editor

import (
	"github.com/r3bl-org/tuicore/internal/renderpipeline"
	"github.com/r3bl-org/tuicore/internal/ustring"
)

// applyEditorEvent mutates b in place according to event, then restores
// invariants 1-5 via clampCaret/clampScroll. Callers always operate on a
// buffer clone (see EditorEngine.ApplyEvent), never the original.
func (b *EditorBuffer) applyEditorEvent(event EditorEvent, ch rune, viewport renderpipeline.Size) {
	switch event {
	case EventInsertChar:
		b.insertRune(ch)
	case EventInsertNewLine:
		b.insertNewLine()
	case EventInsertTab:
		b.insertTab()
	case EventDeleteBackward:
		b.deleteBackward()
	case EventDeleteForward:
		b.deleteForward()
	case EventMoveUp:
		b.moveCaretVertical(-1)
	case EventMoveDown:
		b.moveCaretVertical(1)
	case EventMoveLeft:
		b.moveCaretLeft()
	case EventMoveRight:
		b.moveCaretRight()
	case EventMoveLineStart:
		b.caret.ColIndex = 0
	case EventMoveLineEnd:
		b.caret.ColIndex = uint32(currentLine(b.lines, b.caret.RowIndex).GraphemeCount())
	case EventMovePageUp:
		b.moveCaretVertical(-int64(viewport.RowCount))
	case EventMovePageDown:
		b.moveCaretVertical(int64(viewport.RowCount))
	case EventMoveBufferStart:
		b.caret = renderpipeline.Position{}
	case EventMoveBufferEnd:
		if n := len(b.lines); n > 0 {
			b.caret.RowIndex = uint32(n - 1)
			b.caret.ColIndex = uint32(b.lines[n-1].GraphemeCount())
		}
	}

	b.clampCaret()
	b.clampScroll(viewport)
}

func (b *EditorBuffer) ensureNonEmpty() {
	if len(b.lines) == 0 {
		b.lines = []ustring.US{ustring.New("")}
	}
}

func (b *EditorBuffer) insertRune(r rune) {
	b.ensureNonEmpty()
	line := currentLine(b.lines, b.caret.RowIndex)
	b.lines[b.caret.RowIndex] = line.InsertAt(int(b.caret.ColIndex), string(r))
	b.caret.ColIndex++
}

func (b *EditorBuffer) insertTab() {
	b.ensureNonEmpty()
	line := currentLine(b.lines, b.caret.RowIndex)
	b.lines[b.caret.RowIndex] = line.InsertAt(int(b.caret.ColIndex), "\t")
	b.caret.ColIndex++
}

func (b *EditorBuffer) insertNewLine() {
	b.ensureNonEmpty()
	row := b.caret.RowIndex
	line := currentLine(b.lines, row)
	col := int(b.caret.ColIndex)
	before := line.Clip(0, col)
	after := line.Clip(col, line.GraphemeCount()-col)

	newLines := make([]ustring.US, 0, len(b.lines)+1)
	newLines = append(newLines, b.lines[:row]...)
	newLines = append(newLines, before, after)
	newLines = append(newLines, b.lines[row+1:]...)
	b.lines = newLines

	b.caret.RowIndex = row + 1
	b.caret.ColIndex = 0
}

func (b *EditorBuffer) deleteBackward() {
	if len(b.lines) == 0 {
		return
	}
	if b.caret.ColIndex > 0 {
		line := currentLine(b.lines, b.caret.RowIndex)
		b.lines[b.caret.RowIndex] = line.DeleteRange(int(b.caret.ColIndex)-1, int(b.caret.ColIndex))
		b.caret.ColIndex--
		return
	}
	if b.caret.RowIndex > 0 {
		prev := b.lines[b.caret.RowIndex-1]
		cur := b.lines[b.caret.RowIndex]
		merged := ustring.New(prev.String() + cur.String())
		newCol := uint32(prev.GraphemeCount())

		newLines := make([]ustring.US, 0, len(b.lines)-1)
		newLines = append(newLines, b.lines[:b.caret.RowIndex-1]...)
		newLines = append(newLines, merged)
		newLines = append(newLines, b.lines[b.caret.RowIndex+1:]...)
		b.lines = newLines

		b.caret.RowIndex--
		b.caret.ColIndex = newCol
	}
}

func (b *EditorBuffer) deleteForward() {
	if len(b.lines) == 0 {
		return
	}
	line := currentLine(b.lines, b.caret.RowIndex)
	col := int(b.caret.ColIndex)
	if col < line.GraphemeCount() {
		b.lines[b.caret.RowIndex] = line.DeleteRange(col, col+1)
		return
	}
	if int(b.caret.RowIndex) < len(b.lines)-1 {
		next := b.lines[b.caret.RowIndex+1]
		merged := ustring.New(line.String() + next.String())

		newLines := make([]ustring.US, 0, len(b.lines)-1)
		newLines = append(newLines, b.lines[:b.caret.RowIndex]...)
		newLines = append(newLines, merged)
		newLines = append(newLines, b.lines[b.caret.RowIndex+2:]...)
		b.lines = newLines
	}
}

func (b *EditorBuffer) moveCaretLeft() {
	if b.caret.ColIndex > 0 {
		b.caret.ColIndex--
		return
	}
	if b.caret.RowIndex > 0 {
		b.caret.RowIndex--
		b.caret.ColIndex = uint32(currentLine(b.lines, b.caret.RowIndex).GraphemeCount())
	}
}

func (b *EditorBuffer) moveCaretRight() {
	lineLen := uint32(currentLine(b.lines, b.caret.RowIndex).GraphemeCount())
	if b.caret.ColIndex < lineLen {
		b.caret.ColIndex++
		return
	}
	if int(b.caret.RowIndex) < len(b.lines)-1 {
		b.caret.RowIndex++
		b.caret.ColIndex = 0
	}
}

// moveCaretVertical moves the caret row by delta (positive is down,
// negative is up), clamping to [0, len(lines)-1]; clampCaret then clamps
// the column to the destination line's length.
func (b *EditorBuffer) moveCaretVertical(delta int64) {
	row := int64(b.caret.RowIndex) + delta
	if row < 0 {
		row = 0
	}
	maxRow := int64(len(b.lines) - 1)
	if maxRow < 0 {
		maxRow = 0
	}
	if row > maxRow {
		row = maxRow
	}
	b.caret.RowIndex = uint32(row)
}
