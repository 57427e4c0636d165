// Package ustring provides a grapheme-cluster-aware string type used
// throughout the editor core for all positional arithmetic. Buffer columns,
// carets, and scroll offsets are always expressed in grapheme units, never
// bytes or runes, so that multi-codepoint clusters (emoji, combining marks,
// CJK) behave as a single "character" for cursor movement and clipping.
package ustring

import "github.com/rivo/uniseg"

// US is a logical string paired with the ordered list of its grapheme
// cluster segments. Segments are computed eagerly at construction time so
// that grapheme count, clipping, and segment lookup are all cheap.
type US struct {
	raw      string
	segments []string
}

// New segments s into grapheme clusters and returns a US.
func New(s string) US {
	return US{raw: s, segments: segmentGraphemes(s)}
}

func segmentGraphemes(s string) []string {
	if s == "" {
		return nil
	}
	segs := make([]string, 0, len(s))
	state := -1
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		segs = append(segs, cluster)
	}
	return segs
}

// String returns the underlying raw string.
func (u US) String() string { return u.raw }

// ByteLen returns the length of the raw string in bytes.
func (u US) ByteLen() int { return len(u.raw) }

// GraphemeCount returns the number of grapheme clusters.
func (u US) GraphemeCount() int { return len(u.segments) }

// IsEmpty reports whether the string has no grapheme clusters.
func (u US) IsEmpty() bool { return len(u.segments) == 0 }

// SegmentAt returns the grapheme cluster at the given grapheme index and
// whether that index was in range.
func (u US) SegmentAt(graphemeIndex int) (string, bool) {
	if graphemeIndex < 0 || graphemeIndex >= len(u.segments) {
		return "", false
	}
	return u.segments[graphemeIndex], true
}

// ByteIndexOf returns the byte offset in the raw string at which the
// grapheme cluster at graphemeIndex begins, and whether it was in range.
// A graphemeIndex equal to GraphemeCount() is valid and yields ByteLen().
func (u US) ByteIndexOf(graphemeIndex int) (int, bool) {
	if graphemeIndex < 0 || graphemeIndex > len(u.segments) {
		return 0, false
	}
	offset := 0
	for i := 0; i < graphemeIndex; i++ {
		offset += len(u.segments[i])
	}
	return offset, true
}

// Clip returns the sub-string spanning at most maxGraphemes grapheme
// clusters starting at startGrapheme. A negative start is treated as 0; a
// start at or past the end yields an empty US.
func (u US) Clip(startGrapheme, maxGraphemes int) US {
	if startGrapheme < 0 {
		startGrapheme = 0
	}
	if maxGraphemes < 0 {
		maxGraphemes = 0
	}
	n := len(u.segments)
	if startGrapheme >= n || maxGraphemes == 0 {
		return US{}
	}
	end := startGrapheme + maxGraphemes
	if end > n {
		end = n
	}
	segs := u.segments[startGrapheme:end]
	var raw string
	for _, s := range segs {
		raw += s
	}
	out := make([]string, len(segs))
	copy(out, segs)
	return US{raw: raw, segments: out}
}

// Split breaks s on '\n' into a sequence of US, one per logical line.
func Split(s string) []US {
	lines := splitLines(s)
	out := make([]US, len(lines))
	for i, l := range lines {
		out[i] = New(l)
	}
	return out
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	lines = append(lines, s[start:])
	return lines
}

// Join re-assembles a sequence of US into a single '\n'-separated string.
func Join(lines []US) string {
	out := ""
	for i, l := range lines {
		if i > 0 {
			out += "\n"
		}
		out += l.String()
	}
	return out
}

// InsertAt returns a new US with other inserted before graphemeIndex.
func (u US) InsertAt(graphemeIndex int, other string) US {
	if graphemeIndex < 0 {
		graphemeIndex = 0
	}
	if graphemeIndex > len(u.segments) {
		graphemeIndex = len(u.segments)
	}
	before := u.Clip(0, graphemeIndex)
	after := u.Clip(graphemeIndex, len(u.segments)-graphemeIndex)
	return New(before.String() + other + after.String())
}

// DeleteRange returns a new US with the grapheme range [start, end) removed.
func (u US) DeleteRange(start, end int) US {
	if start < 0 {
		start = 0
	}
	if end > len(u.segments) {
		end = len(u.segments)
	}
	if start >= end {
		return u
	}
	before := u.Clip(0, start)
	after := u.Clip(end, len(u.segments)-end)
	return New(before.String() + after.String())
}
