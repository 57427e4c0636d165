package renderpipeline

// RenderOpKind tags the closed set of backend-agnostic drawing operations
// the editor engine can emit. A terminal backend outside this module's
// scope interprets these into actual cursor moves and SGR escapes.
type RenderOpKind int

const (
	OpNoop RenderOpKind = iota
	OpEnterRawMode
	OpExitRawMode
	OpMoveCursorPositionAbs
	OpMoveCursorPositionRelTo
	OpClearScreen
	OpSetFgColor
	OpSetBgColor
	OpResetColor
	OpApplyColors
	OpPrintTextWithAttributes
	OpPrintTextWithAttributesAndPadding
	OpCursorShow
	OpCursorHide
	OpRequestShowCaretAtPositionAbs
	OpRequestShowCaretAtPositionRelTo
)

// RenderOp is a single drawing instruction. Only the fields relevant to Kind
// are populated; the rest are zero. This mirrors a tagged union via a
// discriminated struct, the idiomatic Go stand-in for the original's enum.
type RenderOp struct {
	Kind RenderOpKind

	Pos     Position // MoveCursorPositionAbs, RequestShowCaretAtPositionAbs
	Origin  Position // MoveCursorPositionRelTo, RequestShowCaretAtPositionRelTo
	RelTo   Position // MoveCursorPositionRelTo, RequestShowCaretAtPositionRelTo
	Color   Color    // SetFgColor, SetBgColor
	Style   Style    // ApplyColors
	Text    string   // PrintTextWithAttributes(AndPadding)
	PadChar rune     // PrintTextWithAttributesAndPadding
	PadCols int      // PrintTextWithAttributesAndPadding
}

func Noop() RenderOp        { return RenderOp{Kind: OpNoop} }
func EnterRawMode() RenderOp { return RenderOp{Kind: OpEnterRawMode} }
func ExitRawMode() RenderOp  { return RenderOp{Kind: OpExitRawMode} }
func ClearScreen() RenderOp  { return RenderOp{Kind: OpClearScreen} }
func ResetColor() RenderOp   { return RenderOp{Kind: OpResetColor} }
func CursorShow() RenderOp   { return RenderOp{Kind: OpCursorShow} }
func CursorHide() RenderOp   { return RenderOp{Kind: OpCursorHide} }

func MoveCursorPositionAbs(pos Position) RenderOp {
	return RenderOp{Kind: OpMoveCursorPositionAbs, Pos: pos}
}

func MoveCursorPositionRelTo(origin, relTo Position) RenderOp {
	return RenderOp{Kind: OpMoveCursorPositionRelTo, Origin: origin, RelTo: relTo}
}

func SetFgColor(c Color) RenderOp { return RenderOp{Kind: OpSetFgColor, Color: c} }
func SetBgColor(c Color) RenderOp { return RenderOp{Kind: OpSetBgColor, Color: c} }
func ApplyColors(s Style) RenderOp { return RenderOp{Kind: OpApplyColors, Style: s} }

func PrintTextWithAttributes(text string, s Style) RenderOp {
	return RenderOp{Kind: OpPrintTextWithAttributes, Text: text, Style: s}
}

func PrintTextWithAttributesAndPadding(text string, s Style, padChar rune, padCols int) RenderOp {
	return RenderOp{
		Kind: OpPrintTextWithAttributesAndPadding, Text: text, Style: s,
		PadChar: padChar, PadCols: padCols,
	}
}

func RequestShowCaretAtPositionAbs(pos Position) RenderOp {
	return RenderOp{Kind: OpRequestShowCaretAtPositionAbs, Pos: pos}
}

func RequestShowCaretAtPositionRelTo(origin, relTo Position) RenderOp {
	return RenderOp{Kind: OpRequestShowCaretAtPositionRelTo, Origin: origin, RelTo: relTo}
}

// RenderOps is an ordered sequence of RenderOp within a single z-order
// layer.
type RenderOps []RenderOp

// Push appends an op, mirroring the original's render_ops! builder macro.
func (ops *RenderOps) Push(op RenderOp) {
	*ops = append(*ops, op)
}
