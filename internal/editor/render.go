package editor

import (
	"github.com/r3bl-org/tuicore/internal/highlight"
	"github.com/r3bl-org/tuicore/internal/logging"
	"github.com/r3bl-org/tuicore/internal/renderpipeline"
	"github.com/r3bl-org/tuicore/internal/ustring"
)

// RenderEngine snapshots flexBox into the engine's current box, then
// returns either the empty-state pipeline (buffer has no content) or the
// content-plus-caret pipeline, at ZOrder::Normal. Rendering never mutates
// args.EditorBuffer.
func (e *EditorEngine) RenderEngine(args EditorEngineArgs, flexBox EditorEngineFlexBox) *renderpipeline.RenderPipeline {
	e.CurrentBox = flexBox

	if args.EditorBuffer.IsEmpty() {
		return e.renderEmptyState(args)
	}

	var ops renderpipeline.RenderOps
	e.renderContent(args, &ops)
	e.renderCaret(args, &ops)

	pipeline := renderpipeline.New()
	pipeline.PushAll(renderpipeline.ZOrderNormal, ops)
	return pipeline
}

// renderContent paints buffer lines starting at the scroll offset, skipping
// the scrolled-off rows above the viewport. Row offsets 0 through max_rows
// inclusive are visited, so up to max_rows+1 lines are painted; the loop
// also stops at the last buffer line.
func (e *EditorEngine) renderContent(args EditorEngineArgs, ops *renderpipeline.RenderOps) {
	buf := args.EditorBuffer
	box := e.CurrentBox
	maxCols := box.StyleAdjustedBoundsSize.ColCount
	maxRows := box.StyleAdjustedBoundsSize.RowCount
	scroll := buf.GetScrollOffset()
	lines := buf.GetLines()

	var highlighter *highlight.Highlighter
	if e.ConfigOptions.SyntaxHighlight {
		var found bool
		highlighter, found = e.highlighterFor(buf.GetFileExtension())
		if !found {
			e.logger.Log(logging.Debug, "editor_engine", "no syntax reference for file extension, falling back to plain render")
		}
	}

	for i := uint32(0); i <= maxRows; i++ {
		row := scroll.RowIndex + i
		if int(row) >= len(lines) {
			break
		}
		line := lines[row]

		ops.Push(renderpipeline.MoveCursorPositionRelTo(
			box.StyleAdjustedOriginPos,
			renderpipeline.Position{ColIndex: 0, RowIndex: i},
		))

		if highlighter != nil {
			renderLineWithHighlight(highlighter, line.String(), scroll.ColIndex, maxCols, ops)
		} else {
			renderLineNoHighlight(line, scroll.ColIndex, maxCols, box, ops)
		}

		ops.Push(resetColor())
	}
}

func renderLineWithHighlight(h *highlight.Highlighter, line string, scrollCol, maxCols uint32, ops *renderpipeline.RenderOps) {
	spans := h.HighlightLine(line)
	clipped := spans.Clip(int(scrollCol), int(maxCols))
	for _, span := range clipped {
		ops.Push(renderpipeline.ApplyColors(span.Style))
		ops.Push(renderpipeline.PrintTextWithAttributes(span.Text.String(), span.Style))
		ops.Push(resetColor())
	}
}

func renderLineNoHighlight(line ustring.US, scrollCol, maxCols uint32, box EditorEngineFlexBox, ops *renderpipeline.RenderOps) {
	clipped := line.Clip(int(scrollCol), int(maxCols))
	style := renderpipeline.Style{}
	if box.MaybeComputedStyle != nil {
		style = *box.MaybeComputedStyle
	}
	ops.Push(renderpipeline.ApplyColors(style))
	ops.Push(renderpipeline.PrintTextWithAttributes(clipped.String(), style))
}

// caretStyle is the reverse-video overlay style used to paint the caret.
// The backend maps the Reverse flag to the terminal's reverse-video
// attribute; core never emits raw escape codes itself.
func caretStyle() renderpipeline.Style {
	return renderpipeline.Style{Reverse: true}
}

func resetColor() renderpipeline.RenderOp {
	return renderpipeline.RenderOp{Kind: renderpipeline.OpResetColor}
}

// renderCaret paints the caret overlay iff the engine's box id currently
// holds focus.
func (e *EditorEngine) renderCaret(args EditorEngineArgs, ops *renderpipeline.RenderOps) {
	if args.HasFocus == nil || !args.HasFocus.DoesIDHaveFocus(e.CurrentBox.ID) {
		return
	}

	g := DefaultCursorChar
	if res, ok := args.EditorBuffer.StringAtCaret(); ok {
		g = res.Segment
	}

	caretRaw := args.EditorBuffer.GetCaret(CaretRaw)
	origin := e.CurrentBox.StyleAdjustedOriginPos

	ops.Push(renderpipeline.MoveCursorPositionRelTo(origin, caretRaw))
	ops.Push(renderpipeline.PrintTextWithAttributes(g, caretStyle()))
	ops.Push(renderpipeline.MoveCursorPositionRelTo(origin, caretRaw))
	ops.Push(resetColor())
}

// renderEmptyState is a dedicated pipeline for an empty buffer, kept
// separate from content rendering so the hot path carries no branch for it.
func (e *EditorEngine) renderEmptyState(args EditorEngineArgs) *renderpipeline.RenderPipeline {
	pipeline := renderpipeline.New()
	origin := e.CurrentBox.StyleAdjustedOriginPos

	pipeline.Push(renderpipeline.ZOrderNormal, renderpipeline.MoveCursorPositionRelTo(origin, renderpipeline.Position{}))
	pipeline.Push(renderpipeline.ZOrderNormal, renderpipeline.ApplyColors(renderpipeline.Style{Foreground: renderpipeline.RGB(255, 0, 0)}))
	pipeline.Push(renderpipeline.ZOrderNormal, renderpipeline.PrintTextWithAttributes("No content added", renderpipeline.Style{}))
	pipeline.Push(renderpipeline.ZOrderNormal, resetColor())

	if args.HasFocus != nil && args.HasFocus.DoesIDHaveFocus(e.CurrentBox.ID) {
		emojiPos := renderpipeline.Position{}.AddRowClamped(1, e.CurrentBox.StyleAdjustedBoundsSize.RowCount)
		pipeline.Push(renderpipeline.ZOrderNormal, renderpipeline.MoveCursorPositionRelTo(origin, emojiPos))
		pipeline.Push(renderpipeline.ZOrderNormal, renderpipeline.PrintTextWithAttributes("👀", renderpipeline.Style{}))
		pipeline.Push(renderpipeline.ZOrderNormal, resetColor())
	}

	return pipeline
}
