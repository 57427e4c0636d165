package renderpipeline

// Color is a 24-bit RGB color. Zero value means "unset, use terminal default".
type Color struct {
	R, G, B uint8
	IsSet   bool
}

// RGB constructs a set Color.
func RGB(r, g, b uint8) Color { return Color{R: r, G: g, B: b, IsSet: true} }

// Style is the set of text attributes a span of styled text carries. It is
// deliberately backend-agnostic: no ANSI codes here, just the semantic
// attributes a terminal backend later maps to escapes.
type Style struct {
	Foreground Color
	Background Color
	Bold       bool
	Italic     bool
	Underline  bool
	Dim        bool
	// Reverse swaps foreground and background; it is how the engine paints
	// the caret, per the original's `style! { attrib: [reverse] }`.
	Reverse bool
}

// Merge layers other on top of s: any attribute other sets wins, unset
// attributes fall back to s; boolean attributes are combined with OR.
func (s Style) Merge(other Style) Style {
	out := s
	if other.Foreground.IsSet {
		out.Foreground = other.Foreground
	}
	if other.Background.IsSet {
		out.Background = other.Background
	}
	out.Bold = out.Bold || other.Bold
	out.Italic = out.Italic || other.Italic
	out.Underline = out.Underline || other.Underline
	out.Dim = out.Dim || other.Dim
	out.Reverse = out.Reverse || other.Reverse
	return out
}
