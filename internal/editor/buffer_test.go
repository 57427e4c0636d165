package editor

import (
	"testing"

	"github.com/r3bl-org/tuicore/internal/renderpipeline"
)

func TestNewEditorBufferIsEmpty(t *testing.T) {
	b := NewEditorBuffer(".txt")
	if !b.IsEmpty() {
		t.Error("fresh buffer should be empty")
	}
	if b.GetCaret(CaretAbsolute) != (renderpipeline.Position{}) {
		t.Errorf("expected caret at origin, got %+v", b.GetCaret(CaretAbsolute))
	}
	if b.GetScrollOffset() != (renderpipeline.Position{}) {
		t.Errorf("expected scroll offset at origin, got %+v", b.GetScrollOffset())
	}
}

func TestEditorBufferFromStringIsNotEmpty(t *testing.T) {
	b := NewEditorBufferFromString("hello\nworld", ".txt")
	if b.IsEmpty() {
		t.Error("non-empty buffer reported empty")
	}
	if len(b.GetLines()) != 2 {
		t.Fatalf("got %d lines, want 2", len(b.GetLines()))
	}
}

func TestSingleEmptyLineIsEmpty(t *testing.T) {
	b := NewEditorBufferFromString("", ".txt")
	if !b.IsEmpty() {
		t.Error("a buffer with one empty line should be empty")
	}
}

func TestStringAtCaretPastEndOfLine(t *testing.T) {
	b := NewEditorBufferFromString("hi", ".txt")
	b.caret = renderpipeline.Position{ColIndex: 2, RowIndex: 0}
	if _, ok := b.StringAtCaret(); ok {
		t.Error("expected no result when caret is past end of line")
	}
}

func TestStringAtCaretReturnsGrapheme(t *testing.T) {
	b := NewEditorBufferFromString("hi", ".txt")
	b.caret = renderpipeline.Position{ColIndex: 1, RowIndex: 0}
	res, ok := b.StringAtCaret()
	if !ok || res.Segment != "i" {
		t.Fatalf("got %+v, ok=%v", res, ok)
	}
}

func TestCaretRawIsRelativeToScroll(t *testing.T) {
	b := NewEditorBufferFromString("hello", ".txt")
	b.caret = renderpipeline.Position{ColIndex: 4, RowIndex: 0}
	b.scrollOffset = renderpipeline.Position{ColIndex: 2, RowIndex: 0}
	raw := b.GetCaret(CaretRaw)
	if raw.ColIndex != 2 {
		t.Errorf("got raw col %d, want 2", raw.ColIndex)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	b := NewEditorBufferFromString("hello", ".txt")
	c := b.Clone()
	c.lines[0] = c.lines[0].InsertAt(0, "X")
	if b.lines[0].String() == c.lines[0].String() {
		t.Error("clone mutation leaked into original")
	}
}
