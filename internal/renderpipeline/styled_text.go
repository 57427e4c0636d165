package renderpipeline

import "github.com/r3bl-org/tuicore/internal/ustring"

// StyleUSSpan pairs a Style with the run of text it applies to. A single
// logical line is represented as an ordered sequence of spans (a
// StyledTexts), one per syntax-highlight token or markdown fragment.
type StyleUSSpan struct {
	Style Style
	Text  ustring.US
}

// NewStyleUSSpan builds a span from a plain string.
func NewStyleUSSpan(style Style, text string) StyleUSSpan {
	return StyleUSSpan{Style: style, Text: ustring.New(text)}
}

// StyledTexts is an ordered run of spans making up one rendered line.
type StyledTexts []StyleUSSpan

// GraphemeCount returns the total width, in grapheme clusters, of all spans.
func (t StyledTexts) GraphemeCount() int {
	n := 0
	for _, s := range t {
		n += s.Text.GraphemeCount()
	}
	return n
}

// PlainText concatenates every span's text, discarding style.
func (t StyledTexts) PlainText() string {
	out := ""
	for _, s := range t {
		out += s.Text.String()
	}
	return out
}

// Clip returns the sub-run of spans visible in the window
// [startCol, startCol+maxCols), splitting spans at the window boundary so
// partially-visible spans are truncated rather than dropped or left
// overflowing. A span entirely left of startCol or at/after the end of the
// window is omitted.
func (t StyledTexts) Clip(startCol, maxCols int) StyledTexts {
	if maxCols <= 0 || startCol < 0 {
		return nil
	}
	var out StyledTexts
	col := 0
	remaining := maxCols
	for _, span := range t {
		if remaining <= 0 {
			break
		}
		n := span.Text.GraphemeCount()
		spanStart, spanEnd := col, col+n
		col = spanEnd

		if spanEnd <= startCol {
			continue
		}
		// Offset into this span where the visible window begins.
		localStart := 0
		if spanStart < startCol {
			localStart = startCol - spanStart
		}
		localMax := n - localStart
		if localMax > remaining {
			localMax = remaining
		}
		if localMax <= 0 {
			continue
		}
		clipped := span.Text.Clip(localStart, localMax)
		if clipped.IsEmpty() {
			continue
		}
		out = append(out, StyleUSSpan{Style: span.Style, Text: clipped})
		remaining -= clipped.GraphemeCount()
	}
	return out
}
