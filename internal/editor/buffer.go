// Package editor implements the grapheme-aware text buffer and the engine
// that applies input events to it and renders it into a render pipeline.
package editor

import (
	"github.com/r3bl-org/tuicore/internal/renderpipeline"
	"github.com/r3bl-org/tuicore/internal/ustring"
)

// CaretKind selects which of the two caret coordinate spaces a caller wants.
type CaretKind int

const (
	// CaretRaw is the caret position relative to the current viewport
	// (caret minus scroll offset) — what a backend moves the hardware
	// cursor to.
	CaretRaw CaretKind = iota
	// CaretAbsolute is the caret position in buffer coordinates.
	CaretAbsolute
)

// EditorBuffer holds a multiline text document as grapheme-indexed lines,
// plus the caret and scroll state needed to render and edit it. Every
// mutation goes through a method on *EditorBuffer, but the engine's own
// apply_event contract (see EditorEngine.ApplyEvent) works by cloning a
// buffer and mutating the clone, never the caller's original.
type EditorBuffer struct {
	lines         []ustring.US
	caret         renderpipeline.Position
	scrollOffset  renderpipeline.Position
	fileExtension string
}

// NewEditorBuffer returns an empty buffer: no lines, caret and scroll
// offset both at the origin, invariant 1 from the buffer contract.
func NewEditorBuffer(fileExtension string) *EditorBuffer {
	return &EditorBuffer{fileExtension: fileExtension}
}

// NewEditorBufferFromString splits text on '\n' into lines.
func NewEditorBufferFromString(text, fileExtension string) *EditorBuffer {
	b := NewEditorBuffer(fileExtension)
	b.lines = ustring.Split(text)
	return b
}

// Clone returns a deep copy, the basis of the engine's copy-then-replace
// event application discipline.
func (b *EditorBuffer) Clone() *EditorBuffer {
	lines := make([]ustring.US, len(b.lines))
	copy(lines, b.lines)
	return &EditorBuffer{
		lines:         lines,
		caret:         b.caret,
		scrollOffset:  b.scrollOffset,
		fileExtension: b.fileExtension,
	}
}

// GetLines returns the buffer's lines in visual order.
func (b *EditorBuffer) GetLines() []ustring.US { return b.lines }

// GetCaret returns the caret position in the requested coordinate space.
func (b *EditorBuffer) GetCaret(kind CaretKind) renderpipeline.Position {
	if kind == CaretRaw {
		return renderpipeline.Position{
			ColIndex: subSaturating(b.caret.ColIndex, b.scrollOffset.ColIndex),
			RowIndex: subSaturating(b.caret.RowIndex, b.scrollOffset.RowIndex),
		}
	}
	return b.caret
}

// GetScrollOffset returns the buffer-coordinate position that maps to
// viewport (0,0).
func (b *EditorBuffer) GetScrollOffset() renderpipeline.Position { return b.scrollOffset }

// GetFileExtension returns the extension used to select a syntax.
func (b *EditorBuffer) GetFileExtension() string { return b.fileExtension }

// IsEmpty reports whether the buffer has no lines, or a single empty line.
func (b *EditorBuffer) IsEmpty() bool {
	if len(b.lines) == 0 {
		return true
	}
	return len(b.lines) == 1 && b.lines[0].IsEmpty()
}

// CaretCharResult is the grapheme cluster under the caret, plus its
// position expressed both as a grapheme index and a byte offset into the
// line's raw string.
type CaretCharResult struct {
	Segment       string
	GraphemeIndex int
	ByteIndex     int
}

// StringAtCaret returns the grapheme cluster at the caret, or false if the
// caret sits past the end of its line (including on an empty line).
func (b *EditorBuffer) StringAtCaret() (CaretCharResult, bool) {
	if len(b.lines) == 0 {
		return CaretCharResult{}, false
	}
	line := b.lines[b.caret.RowIndex]
	idx := int(b.caret.ColIndex)
	seg, ok := line.SegmentAt(idx)
	if !ok {
		return CaretCharResult{}, false
	}
	byteIdx, _ := line.ByteIndexOf(idx)
	return CaretCharResult{Segment: seg, GraphemeIndex: idx, ByteIndex: byteIdx}, true
}

func subSaturating(a, b uint32) uint32 {
	if b >= a {
		return 0
	}
	return a - b
}

func currentLine(lines []ustring.US, row uint32) ustring.US {
	if int(row) >= len(lines) {
		return ustring.US{}
	}
	return lines[row]
}

// clampCaret restores invariants 2 and 3 from the buffer contract: the
// caret row must be within range (0 if the buffer is empty), and the caret
// column must not exceed the grapheme count of its line.
func (b *EditorBuffer) clampCaret() {
	if len(b.lines) == 0 {
		b.caret = renderpipeline.Position{}
		b.scrollOffset = renderpipeline.Position{}
		return
	}
	maxRow := uint32(len(b.lines) - 1)
	if b.caret.RowIndex > maxRow {
		b.caret.RowIndex = maxRow
	}
	lineLen := uint32(currentLine(b.lines, b.caret.RowIndex).GraphemeCount())
	if b.caret.ColIndex > lineLen {
		b.caret.ColIndex = lineLen
	}
}

// clampScroll restores invariants 4 and 5: the caret row and column must
// always be within the viewport defined by scrollOffset and viewportSize.
func (b *EditorBuffer) clampScroll(viewport renderpipeline.Size) {
	if viewport.RowCount > 0 {
		if b.caret.RowIndex < b.scrollOffset.RowIndex {
			b.scrollOffset.RowIndex = b.caret.RowIndex
		}
		if b.caret.RowIndex >= b.scrollOffset.RowIndex+viewport.RowCount {
			b.scrollOffset.RowIndex = b.caret.RowIndex - viewport.RowCount + 1
		}
	} else {
		b.scrollOffset.RowIndex = b.caret.RowIndex
	}

	if viewport.ColCount > 0 {
		if b.caret.ColIndex < b.scrollOffset.ColIndex {
			b.scrollOffset.ColIndex = b.caret.ColIndex
		}
		if b.caret.ColIndex >= b.scrollOffset.ColIndex+viewport.ColCount {
			b.scrollOffset.ColIndex = b.caret.ColIndex - viewport.ColCount + 1
		}
	} else {
		b.scrollOffset.ColIndex = b.caret.ColIndex
	}
}
