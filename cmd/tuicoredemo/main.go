// Command tuicoredemo is a minimal bubbletea host that drives the editor
// core: it forwards key presses to editor.EditorEngine.ApplyEvent and
// drains the RenderPipeline returned by RenderEngine into a terminal
// screen. It is deliberately thin — the core owns every editing and
// rendering decision; this file only translates bubbletea <-> core types.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	tea "charm.land/bubbletea/v2"
	"charm.land/bubbles/v2/cursor"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/rs/zerolog"

	"github.com/r3bl-org/tuicore/internal/config"
	"github.com/r3bl-org/tuicore/internal/editor"
	"github.com/r3bl-org/tuicore/internal/focus"
	"github.com/r3bl-org/tuicore/internal/logging"
	"github.com/r3bl-org/tuicore/internal/renderpipeline"
)

const editorBoxID = "tuicoredemo-editor"

func main() {
	logFile := flag.String("log", "", "path to a log file; empty disables file logging")
	configPath := flag.String("config", "", "path to a config.toml; empty uses defaults")
	openPath := flag.String("open", "", "path to a file to open in the buffer")
	flag.Parse()

	logger := setupLogging(*logFile)

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading config: %v\n", err)
		os.Exit(1)
	}

	m := newModel(cfg, logger, *openPath)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error running program: %v\n", err)
		os.Exit(1)
	}
}

func setupLogging(path string) *logging.Logger {
	if path == "" {
		return logging.Discard()
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to open log file: %v\n", err)
		return logging.Discard()
	}
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	return logging.New(file, logging.Info)
}

type model struct {
	engine   *editor.EditorEngine
	buffer   *editor.EditorBuffer
	hasFocus *focus.HasFocus
	cursor   cursor.Model

	width, height int
}

func newModel(cfg *config.Config, logger *logging.Logger, openPath string) model {
	configOptions := editor.EditorEngineConfigOptions{
		Multiline:       cfg.Editor.MultilineOrDefault(),
		SyntaxHighlight: cfg.Editor.SyntaxHighlightOrDefault(),
	}
	eng := editor.New(configOptions, cfg.UI.SyntaxThemeOrDefault())
	eng.SetLogger(logger)

	ext := filepath.Ext(openPath)
	var buf *editor.EditorBuffer
	if openPath != "" {
		if content, err := os.ReadFile(openPath); err == nil {
			buf = editor.NewEditorBufferFromString(string(content), ext)
		}
	}
	if buf == nil {
		buf = editor.NewEditorBuffer(ext)
	}

	hf := focus.New()
	hf.SetFocus(editorBoxID)

	return model{
		engine:   eng,
		buffer:   buf,
		hasFocus: hf,
		cursor:   cursor.New(),
	}
}

func (m model) Init() tea.Cmd {
	return m.cursor.Focus()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		if input, ok := toInputEvent(msg); ok {
			args := editor.EditorEngineArgs{EditorBuffer: m.buffer, Engine: m.engine, HasFocus: m.hasFocus, SelfID: editorBoxID}
			resp := m.engine.ApplyEvent(args, input)
			if resp.Applied {
				m.buffer = resp.Buffer
			}
		}
		var cmd tea.Cmd
		m.cursor, cmd = m.cursor.Update(msg)
		return m, cmd

	default:
		var cmd tea.Cmd
		m.cursor, cmd = m.cursor.Update(msg)
		return m, cmd
	}
}

func (m model) View() string {
	box := editor.EditorEngineFlexBox{
		ID:                      editorBoxID,
		StyleAdjustedBoundsSize: renderpipeline.Size{ColCount: uint32(m.width), RowCount: uint32(m.height)},
	}
	args := editor.EditorEngineArgs{EditorBuffer: m.buffer, Engine: m.engine, HasFocus: m.hasFocus, SelfID: editorBoxID}
	pipeline := m.engine.RenderEngine(args, box)
	return m.renderToScreen(pipeline, int(box.StyleAdjustedBoundsSize.ColCount), int(box.StyleAdjustedBoundsSize.RowCount))
}

// toInputEvent maps a bubbletea keystroke onto the core's InputEvent
// vocabulary. Keys with no mapping here (function keys, unrecognized
// chords) return ok=false and the keystroke is dropped before it ever
// reaches the engine.
func toInputEvent(msg tea.KeyPressMsg) (editor.InputEvent, bool) {
	switch msg.Keystroke() {
	case "enter":
		return editor.InputEvent{Key: editor.KeyEnter}, true
	case "tab":
		return editor.InputEvent{Key: editor.KeyTab}, true
	case "backspace", "ctrl+h":
		return editor.InputEvent{Key: editor.KeyBackspace}, true
	case "delete", "ctrl+d":
		return editor.InputEvent{Key: editor.KeyDelete}, true
	case "up":
		return editor.InputEvent{Key: editor.KeyUp}, true
	case "down":
		return editor.InputEvent{Key: editor.KeyDown}, true
	case "left":
		return editor.InputEvent{Key: editor.KeyLeft}, true
	case "right":
		return editor.InputEvent{Key: editor.KeyRight}, true
	case "home", "ctrl+a":
		return editor.InputEvent{Key: editor.KeyHome}, true
	case "end", "ctrl+e":
		return editor.InputEvent{Key: editor.KeyEnd}, true
	case "pgup":
		return editor.InputEvent{Key: editor.KeyPageUp}, true
	case "pgdown":
		return editor.InputEvent{Key: editor.KeyPageDown}, true
	case "ctrl+home":
		return editor.InputEvent{Key: editor.KeyCtrlHome}, true
	case "ctrl+end":
		return editor.InputEvent{Key: editor.KeyCtrlEnd}, true
	}

	if r := []rune(msg.Text); len(r) == 1 {
		return editor.InputEvent{Key: editor.KeyCharacter, Character: r[0]}, true
	}
	return editor.InputEvent{}, false
}

// cell is one screen position's styled rune. isCaret marks the single cell
// painted with the engine's reverse-video caret style (renderCaret is the
// only call site in internal/editor that sets Style.Reverse), so the caret
// glyph can be handed off to the cursor.Model blink state instead of drawn
// as a plain styled rune.
type cell struct {
	r       rune
	style   renderpipeline.Style
	isCaret bool
}

// renderToScreen drains a RenderPipeline's flattened ops into a cols x rows
// grid, then joins it into the string bubbletea displays. A cursor-move op
// repositions an implicit write head; a print op advances it one cell per
// rune painted.
func (m model) renderToScreen(p *renderpipeline.RenderPipeline, cols, rows int) string {
	if cols <= 0 || rows <= 0 {
		return ""
	}
	grid := make([][]cell, rows)
	for i := range grid {
		grid[i] = make([]cell, cols)
		for j := range grid[i] {
			grid[i][j] = cell{r: ' '}
		}
	}

	row, col := 0, 0
	for _, op := range p.Flatten() {
		switch op.Kind {
		case renderpipeline.OpMoveCursorPositionRelTo:
			row = int(op.Origin.RowIndex + op.RelTo.RowIndex)
			col = int(op.Origin.ColIndex + op.RelTo.ColIndex)
		case renderpipeline.OpMoveCursorPositionAbs:
			row, col = int(op.Pos.RowIndex), int(op.Pos.ColIndex)
		case renderpipeline.OpPrintTextWithAttributes, renderpipeline.OpPrintTextWithAttributesAndPadding:
			// Truncate to the remaining row width the same way the
			// teacher's view.go clips a rendered line before emitting it,
			// so a span that overruns the viewport never wraps onto the
			// next row.
			remaining := cols - col
			if remaining <= 0 {
				continue
			}
			text := ansi.Truncate(op.Text, remaining, "")
			for _, r := range text {
				if row < 0 || row >= rows || col < 0 || col >= cols {
					break
				}
				grid[row][col] = cell{r: r, style: op.Style, isCaret: op.Style.Reverse}
				col++
			}
		}
	}

	return m.joinGrid(grid)
}

// joinGrid renders each grid cell to a styled string and stitches the rows
// together. The caret cell is rendered through m.cursor.View() rather than
// styleFor, the same SetChar/TextStyle/Style/View sequence the teacher's
// view.go uses, so the caret actually blinks instead of always painting a
// static reverse-video glyph.
func (m model) joinGrid(grid [][]cell) string {
	cur := m.cursor
	lines := make([]string, len(grid))
	for i, row := range grid {
		var line string
		for _, c := range row {
			if c.isCaret {
				cur.SetChar(string(c.r))
				cur.Style = lipgloss.NewStyle().Reverse(true)
				cur.TextStyle = lipgloss.NewStyle()
				line += cur.View()
				continue
			}
			line += styleFor(c.style).Render(string(c.r))
		}
		lines[i] = line
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func styleFor(s renderpipeline.Style) lipgloss.Style {
	st := lipgloss.NewStyle()
	if s.Foreground.IsSet {
		st = st.Foreground(lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", s.Foreground.R, s.Foreground.G, s.Foreground.B)))
	}
	if s.Background.IsSet {
		st = st.Background(lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", s.Background.R, s.Background.G, s.Background.B)))
	}
	if s.Bold {
		st = st.Bold(true)
	}
	if s.Italic {
		st = st.Italic(true)
	}
	if s.Underline {
		st = st.Underline(true)
	}
	if s.Reverse {
		st = st.Reverse(true)
	}
	return st
}
