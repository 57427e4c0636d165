package highlight

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/r3bl-org/tuicore/internal/renderpipeline"
)

// Highlighter tokenizes source lines with Chroma and renders each token
// straight to a renderpipeline.StyleUSSpan, bypassing any ANSI escape
// intermediary. One Highlighter is built per file extension/theme pair and
// reused across every render pass for that buffer, since both the lexer
// lookup and style lookup are comparatively expensive.
type Highlighter struct {
	lexer chroma.Lexer
	style *chroma.Style
}

// New builds a Highlighter for language (a Chroma lexer name, see
// DetectLanguage) and theme (a Chroma style name). Returns nil, false if no
// lexer is registered for language — callers should fall back to the plain
// (unhighlighted) render path in that case, per the dispatch rule that
// selects between the two alternative line renderers.
func New(language, theme string) (*Highlighter, bool) {
	if language == "" {
		return nil, false
	}
	lex := lexers.Get(language)
	if lex == nil {
		return nil, false
	}
	sty := styles.Get(theme)
	if sty == nil {
		sty = styles.Fallback
	}
	return &Highlighter{lexer: chroma.Coalesce(lex), style: sty}, true
}

// HighlightLine tokenizes a single line and returns it as styled spans. A
// tokenizer error degrades to a single unstyled span rather than failing
// the render pass.
func (h *Highlighter) HighlightLine(line string) renderpipeline.StyledTexts {
	it, err := h.lexer.Tokenise(nil, line)
	if err != nil {
		return renderpipeline.StyledTexts{renderpipeline.NewStyleUSSpan(renderpipeline.Style{}, line)}
	}
	var out renderpipeline.StyledTexts
	for _, tok := range it.Tokens() {
		if tok.Value == "" {
			continue
		}
		out = append(out, renderpipeline.NewStyleUSSpan(h.styleFor(tok.Type), tok.Value))
	}
	return out
}

// styleFor maps a Chroma token type's style entry onto the engine's
// backend-agnostic Style.
func (h *Highlighter) styleFor(ttype chroma.TokenType) renderpipeline.Style {
	entry := h.style.Get(ttype)
	var s renderpipeline.Style
	if entry.Colour.IsSet() {
		s.Foreground = renderpipeline.RGB(entry.Colour.Red(), entry.Colour.Green(), entry.Colour.Blue())
	}
	if entry.Background.IsSet() {
		s.Background = renderpipeline.RGB(entry.Background.Red(), entry.Background.Green(), entry.Background.Blue())
	}
	s.Bold = entry.Bold == chroma.Yes
	s.Italic = entry.Italic == chroma.Yes
	s.Underline = entry.Underline == chroma.Yes
	return s
}

// ThemeBackground extracts the background color of theme as "#rrggbb", or
// "" if theme is not a registered style or sets no background.
func ThemeBackground(theme string) string {
	sty, ok := styles.Registry[theme]
	if !ok || sty == nil {
		return ""
	}
	bg := sty.Get(chroma.Background).Background
	if !bg.IsSet() {
		return ""
	}
	return bg.String()
}
