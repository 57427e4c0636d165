package editor

import (
	"testing"

	"github.com/r3bl-org/tuicore/internal/focus"
	"github.com/r3bl-org/tuicore/internal/renderpipeline"
)

func newTestEngine(cols, rows uint32) *EditorEngine {
	e := New(DefaultEditorEngineConfigOptions(), "monokai")
	e.CurrentBox = EditorEngineFlexBox{
		ID:                      "editor-1",
		StyleAdjustedBoundsSize: renderpipeline.Size{ColCount: cols, RowCount: rows},
	}
	return e
}

// checkInvariants asserts spec.md 4.2 invariants 1-5 hold on b given viewport.
func checkInvariants(t *testing.T, b *EditorBuffer, viewport renderpipeline.Size) {
	t.Helper()
	lines := b.GetLines()

	if len(lines) == 0 {
		if b.GetCaret(CaretAbsolute) != (renderpipeline.Position{}) || b.GetScrollOffset() != (renderpipeline.Position{}) {
			t.Error("invariant 1 violated: empty buffer must have caret and scroll at origin")
		}
		return
	}

	caret := b.GetCaret(CaretAbsolute)
	if int(caret.RowIndex) >= len(lines) {
		t.Errorf("invariant 2 violated: caret row %d out of range (%d lines)", caret.RowIndex, len(lines))
	}
	lineLen := uint32(lines[caret.RowIndex].GraphemeCount())
	if caret.ColIndex > lineLen {
		t.Errorf("invariant 3 violated: caret col %d > line length %d", caret.ColIndex, lineLen)
	}

	scroll := b.GetScrollOffset()
	if viewport.RowCount > 0 {
		if !(scroll.RowIndex <= caret.RowIndex && caret.RowIndex < scroll.RowIndex+viewport.RowCount) {
			t.Errorf("invariant 4 violated: scroll row %d, caret row %d, viewport rows %d", scroll.RowIndex, caret.RowIndex, viewport.RowCount)
		}
	}
	if viewport.ColCount > 0 {
		atEOL := caret.ColIndex == lineLen
		withinStrict := scroll.ColIndex <= caret.ColIndex && caret.ColIndex < scroll.ColIndex+viewport.ColCount
		withinEOL := atEOL && scroll.ColIndex <= caret.ColIndex && caret.ColIndex <= scroll.ColIndex+viewport.ColCount
		if !withinStrict && !withinEOL {
			t.Errorf("invariant 5 violated: scroll col %d, caret col %d, viewport cols %d", scroll.ColIndex, caret.ColIndex, viewport.ColCount)
		}
	}
}

func TestApplyEventInsertCharMaintainsInvariants(t *testing.T) {
	e := newTestEngine(10, 5)
	buf := NewEditorBuffer(".txt")
	args := EditorEngineArgs{EditorBuffer: buf}

	for _, r := range "hello" {
		resp := e.ApplyEvent(args, InputEvent{Key: KeyCharacter, Character: r})
		if !resp.Applied {
			t.Fatalf("expected character input to apply")
		}
		args.EditorBuffer = resp.Buffer
		checkInvariants(t, args.EditorBuffer, e.CurrentBox.StyleAdjustedBoundsSize)
	}

	if args.EditorBuffer.GetLines()[0].String() != "hello" {
		t.Errorf("got %q, want %q", args.EditorBuffer.GetLines()[0].String(), "hello")
	}
}

func TestApplyEventDoesNotMutateCallerBuffer(t *testing.T) {
	e := newTestEngine(10, 5)
	original := NewEditorBufferFromString("hi", ".txt")
	args := EditorEngineArgs{EditorBuffer: original}

	resp := e.ApplyEvent(args, InputEvent{Key: KeyCharacter, Character: 'X'})
	if !resp.Applied {
		t.Fatal("expected apply")
	}
	if original.GetLines()[0].String() != "hi" {
		t.Errorf("original buffer was mutated: %q", original.GetLines()[0].String())
	}
	if resp.Buffer.GetLines()[0].String() == "hi" {
		t.Error("new buffer should differ from original")
	}
}

func TestApplyEventUnrecognizedInputReturnsNotApplied(t *testing.T) {
	e := newTestEngine(10, 5)
	original := NewEditorBufferFromString("hi", ".txt")
	args := EditorEngineArgs{EditorBuffer: original}

	resp := e.ApplyEvent(args, InputEvent{Key: Key(999)})
	if resp.Applied {
		t.Error("expected NotApplied for unrecognized key")
	}
	if resp.Buffer != nil {
		t.Error("expected nil buffer on NotApplied")
	}
	if original.GetLines()[0].String() != "hi" {
		t.Error("caller buffer must remain untouched")
	}
}

func TestApplyEventEnterRejectedWhenNotMultiline(t *testing.T) {
	e := newTestEngine(10, 5)
	e.ConfigOptions.Multiline = false
	original := NewEditorBufferFromString("hi", ".txt")
	args := EditorEngineArgs{EditorBuffer: original}

	resp := e.ApplyEvent(args, InputEvent{Key: KeyEnter})
	if resp.Applied {
		t.Error("expected NotApplied when multiline disabled")
	}
}

func TestApplyEventInsertNewLineSplitsBuffer(t *testing.T) {
	e := newTestEngine(10, 5)
	buf := NewEditorBufferFromString("helloworld", ".txt")
	buf.caret = renderpipeline.Position{ColIndex: 5, RowIndex: 0}
	args := EditorEngineArgs{EditorBuffer: buf}

	resp := e.ApplyEvent(args, InputEvent{Key: KeyEnter})
	if !resp.Applied {
		t.Fatal("expected Enter to apply")
	}
	lines := resp.Buffer.GetLines()
	if len(lines) != 2 || lines[0].String() != "hello" || lines[1].String() != "world" {
		t.Fatalf("got lines %v", lines)
	}
	if resp.Buffer.GetCaret(CaretAbsolute) != (renderpipeline.Position{ColIndex: 0, RowIndex: 1}) {
		t.Errorf("got caret %+v", resp.Buffer.GetCaret(CaretAbsolute))
	}
	checkInvariants(t, resp.Buffer, e.CurrentBox.StyleAdjustedBoundsSize)
}

func TestApplyEventBackspaceMergesLines(t *testing.T) {
	e := newTestEngine(10, 5)
	buf := NewEditorBufferFromString("hello\nworld", ".txt")
	buf.caret = renderpipeline.Position{ColIndex: 0, RowIndex: 1}
	args := EditorEngineArgs{EditorBuffer: buf}

	resp := e.ApplyEvent(args, InputEvent{Key: KeyBackspace})
	if !resp.Applied {
		t.Fatal("expected backspace to apply")
	}
	lines := resp.Buffer.GetLines()
	if len(lines) != 1 || lines[0].String() != "helloworld" {
		t.Fatalf("got lines %v", lines)
	}
	checkInvariants(t, resp.Buffer, e.CurrentBox.StyleAdjustedBoundsSize)
}

func TestApplyEventHorizontalScrollInvariant(t *testing.T) {
	e := newTestEngine(4, 5)
	buf := NewEditorBufferFromString("0123456789", ".txt")
	args := EditorEngineArgs{EditorBuffer: buf}

	var resp ApplyResponse
	for i := 0; i < 9; i++ {
		resp = e.ApplyEvent(args, InputEvent{Key: KeyRight})
		args.EditorBuffer = resp.Buffer
	}
	if args.EditorBuffer.GetCaret(CaretAbsolute).ColIndex != 9 {
		t.Fatalf("got caret col %d", args.EditorBuffer.GetCaret(CaretAbsolute).ColIndex)
	}
	checkInvariants(t, args.EditorBuffer, e.CurrentBox.StyleAdjustedBoundsSize)
	scroll := args.EditorBuffer.GetScrollOffset()
	if scroll.ColIndex != 6 {
		t.Errorf("got scroll col %d, want 6", scroll.ColIndex)
	}
}

func TestRenderEnginePlainTextLine(t *testing.T) {
	e := newTestEngine(10, 2)
	e.ConfigOptions.SyntaxHighlight = false
	buf := NewEditorBufferFromString("hello", ".txt")
	args := EditorEngineArgs{EditorBuffer: buf}

	pipeline := e.RenderEngine(args, e.CurrentBox)
	ops := pipeline.Flatten()
	if len(ops) < 4 {
		t.Fatalf("expected at least 4 ops, got %d: %+v", len(ops), ops)
	}
	if ops[0].Kind != renderpipeline.OpMoveCursorPositionRelTo {
		t.Errorf("op0 = %+v", ops[0])
	}
	if ops[1].Kind != renderpipeline.OpApplyColors {
		t.Errorf("op1 = %+v", ops[1])
	}
	if ops[2].Kind != renderpipeline.OpPrintTextWithAttributes || ops[2].Text != "hello" {
		t.Errorf("op2 = %+v", ops[2])
	}
	if ops[3].Kind != renderpipeline.OpResetColor {
		t.Errorf("op3 = %+v", ops[3])
	}
}

func TestRenderEngineHorizontalScrollClipsLine(t *testing.T) {
	e := newTestEngine(4, 5)
	e.ConfigOptions.SyntaxHighlight = false
	buf := NewEditorBufferFromString("0123456789", ".txt")
	buf.scrollOffset = renderpipeline.Position{ColIndex: 3, RowIndex: 0}
	args := EditorEngineArgs{EditorBuffer: buf}

	pipeline := e.RenderEngine(args, e.CurrentBox)
	ops := pipeline.Flatten()
	var printed string
	for _, op := range ops {
		if op.Kind == renderpipeline.OpPrintTextWithAttributes {
			printed = op.Text
			break
		}
	}
	if printed != "3456" {
		t.Errorf("got %q, want %q", printed, "3456")
	}
}

func TestRenderEngineEmptyBufferUnfocused(t *testing.T) {
	e := newTestEngine(20, 5)
	buf := NewEditorBuffer(".txt")
	args := EditorEngineArgs{EditorBuffer: buf}

	pipeline := e.RenderEngine(args, e.CurrentBox)
	ops := pipeline.Flatten()
	foundMessage, foundEmoji := false, false
	for _, op := range ops {
		if op.Kind == renderpipeline.OpPrintTextWithAttributes {
			if op.Text == "No content added" {
				foundMessage = true
			}
			if op.Text == "👀" {
				foundEmoji = true
			}
		}
	}
	if !foundMessage {
		t.Error("expected empty-state message")
	}
	if foundEmoji {
		t.Error("unfocused empty state should not paint the emoji")
	}
}

func TestRenderEngineEmptyBufferFocused(t *testing.T) {
	e := newTestEngine(20, 5)
	buf := NewEditorBuffer(".txt")
	hf := focus.New()
	hf.SetFocus("editor-1")
	args := EditorEngineArgs{EditorBuffer: buf, HasFocus: hf}

	pipeline := e.RenderEngine(args, e.CurrentBox)
	ops := pipeline.Flatten()
	foundEmoji := false
	for _, op := range ops {
		if op.Kind == renderpipeline.OpPrintTextWithAttributes && op.Text == "👀" {
			foundEmoji = true
		}
	}
	if !foundEmoji {
		t.Error("focused empty state should paint the emoji")
	}
}

func TestRenderEngineCaretFocusedHasTwoMoveOpsAndReversePrint(t *testing.T) {
	e := newTestEngine(10, 5)
	e.ConfigOptions.SyntaxHighlight = false
	buf := NewEditorBufferFromString("hello", ".txt")
	hf := focus.New()
	hf.SetFocus("editor-1")
	args := EditorEngineArgs{EditorBuffer: buf, HasFocus: hf}

	pipeline := e.RenderEngine(args, e.CurrentBox)
	ops := pipeline.Flatten()

	moveRelCount := 0
	reversePrintCount := 0
	for _, op := range ops {
		if op.Kind == renderpipeline.OpMoveCursorPositionRelTo {
			moveRelCount++
		}
		if op.Kind == renderpipeline.OpPrintTextWithAttributes && op.Style.Reverse {
			reversePrintCount++
		}
	}
	// One MoveCursorPositionRelTo for content, plus the caret's own two.
	if moveRelCount != 3 {
		t.Errorf("got %d MoveCursorPositionRelTo ops, want 3 (1 content + 2 caret)", moveRelCount)
	}
	if reversePrintCount != 1 {
		t.Errorf("got %d reverse-styled prints, want 1", reversePrintCount)
	}
}
