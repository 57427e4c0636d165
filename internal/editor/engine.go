package editor

import (
	"github.com/r3bl-org/tuicore/internal/focus"
	"github.com/r3bl-org/tuicore/internal/highlight"
	"github.com/r3bl-org/tuicore/internal/logging"
	"github.com/r3bl-org/tuicore/internal/renderpipeline"
)

// EditorEngineFlexBox is the subset of a host layout's flex box the engine
// needs for one render pass: a snapshot of the rectangle it is currently
// drawing into.
type EditorEngineFlexBox struct {
	ID                      string
	StyleAdjustedOriginPos  renderpipeline.Position
	StyleAdjustedBoundsSize renderpipeline.Size
	MaybeComputedStyle      *renderpipeline.Style
}

// EditorEngineConfigOptions are the engine-wide switches a host application
// configures once at construction time.
type EditorEngineConfigOptions struct {
	Multiline       bool
	SyntaxHighlight bool
}

// DefaultEditorEngineConfigOptions returns {Multiline: true, SyntaxHighlight: true}.
func DefaultEditorEngineConfigOptions() EditorEngineConfigOptions {
	return EditorEngineConfigOptions{Multiline: true, SyntaxHighlight: true}
}

// DefaultCursorChar is painted at the caret when the caret sits past the
// end of its line (e.g. on an empty line).
const DefaultCursorChar = "▒"

// EditorEngine holds state that persists across render calls but is not
// part of the document itself: the current layout box, configuration, and
// the theme used for syntax highlighting. syntax highlighters are built
// lazily per file extension and cached, since lexer/style lookup is not
// free and a session typically renders the same extension every frame.
type EditorEngine struct {
	CurrentBox    EditorEngineFlexBox
	ConfigOptions EditorEngineConfigOptions

	theme      string
	highlights map[string]*highlight.Highlighter
	logger     *logging.Logger
}

// New constructs an EditorEngine. theme names a Chroma style; an unknown
// name falls back to Chroma's own default at first use, never an error
// here, since style lookup is deferred to the first render.
func New(configOptions EditorEngineConfigOptions, theme string) *EditorEngine {
	return &EditorEngine{
		ConfigOptions: configOptions,
		theme:         theme,
		highlights:    make(map[string]*highlight.Highlighter),
		logger:        logging.Discard(),
	}
}

// SetLogger installs a logger; nil is valid and reverts to discarding logs.
func (e *EditorEngine) SetLogger(l *logging.Logger) {
	if l == nil {
		l = logging.Discard()
	}
	e.logger = l
}

// ViewportWidth returns the current render box's column count.
func (e *EditorEngine) ViewportWidth() uint32 { return e.CurrentBox.StyleAdjustedBoundsSize.ColCount }

// ViewportHeight returns the current render box's row count.
func (e *EditorEngine) ViewportHeight() uint32 { return e.CurrentBox.StyleAdjustedBoundsSize.RowCount }

// highlighterFor returns the cached Highlighter for fileExtension, building
// and caching one on first use. Returns false if no lexer matches the
// extension, the signal to fall back to the unstyled render path.
func (e *EditorEngine) highlighterFor(fileExtension string) (*highlight.Highlighter, bool) {
	lang := highlight.DetectLanguage("file" + fileExtension)
	if lang == "" {
		return nil, false
	}
	if h, ok := e.highlights[lang]; ok {
		return h, true
	}
	h, ok := highlight.New(lang, e.theme)
	if !ok {
		return nil, false
	}
	e.highlights[lang] = h
	return h, true
}

// EditorEngineArgs bundles everything ApplyEvent and RenderEngine need,
// mirroring the argument-struct pattern the engine's API is specified with
// rather than a long positional parameter list.
type EditorEngineArgs struct {
	EditorBuffer *EditorBuffer
	Engine       *EditorEngine
	HasFocus     *focus.HasFocus
	SelfID       string
}

// ApplyResponse is the tagged result of ApplyEvent: either the input
// translated to an edit and Buffer holds the resulting clone, or it did
// not (Applied is false) and the caller's buffer is left untouched.
type ApplyResponse struct {
	Applied bool
	Buffer  *EditorBuffer
}

// ApplyEvent converts input into an EditorEvent and, on success, applies it
// to a clone of args.EditorBuffer. It never mutates args.EditorBuffer
// itself and never panics on malformed input; an unrecognized key simply
// yields ApplyResponse{Applied: false}.
func (e *EditorEngine) ApplyEvent(args EditorEngineArgs, input InputEvent) ApplyResponse {
	event, ok := input.ToEditorEvent(e.ConfigOptions.Multiline)
	if !ok {
		e.logger.Log(logging.Debug, "editor_engine", "input event did not translate to an editor event")
		return ApplyResponse{Applied: false}
	}
	next := args.EditorBuffer.Clone()
	next.applyEditorEvent(event, input.Character, e.CurrentBox.StyleAdjustedBoundsSize)
	return ApplyResponse{Applied: true, Buffer: next}
}
