package editor

// InputEvent is the raw keyboard input the surrounding application forwards
// to the engine. It deliberately excludes mouse input (Non-goal: no mouse
// input) and has no notion of selection or undo, matching this core's
// scope.
type InputEvent struct {
	Key       Key
	Character rune // valid only when Key == KeyCharacter
}

// Key enumerates the keystrokes EditorEvent conversion recognizes.
type Key int

const (
	KeyCharacter Key = iota
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyCtrlHome // move to buffer start
	KeyCtrlEnd  // move to buffer end
	keyUnrecognized
)

// EditorEvent is the semantic operation InputEvent conversion produces. It
// is the only vocabulary EditorBuffer mutation understands; the engine
// never inspects an InputEvent directly once conversion succeeds.
type EditorEvent int

const (
	EventInsertChar EditorEvent = iota
	EventInsertNewLine
	EventInsertTab
	EventDeleteBackward
	EventDeleteForward
	EventMoveUp
	EventMoveDown
	EventMoveLeft
	EventMoveRight
	EventMoveLineStart
	EventMoveLineEnd
	EventMovePageUp
	EventMovePageDown
	EventMoveBufferStart
	EventMoveBufferEnd
)

// ToEditorEvent converts an InputEvent into the EditorEvent it denotes. The
// second return value is false when the input does not translate to any
// editor event (e.g. a key this core doesn't recognize), which is how
// ApplyEvent's NotApplied response arises.
func (in InputEvent) ToEditorEvent(multiline bool) (EditorEvent, bool) {
	switch in.Key {
	case KeyCharacter:
		return EventInsertChar, true
	case KeyEnter:
		if !multiline {
			return 0, false
		}
		return EventInsertNewLine, true
	case KeyTab:
		return EventInsertTab, true
	case KeyBackspace:
		return EventDeleteBackward, true
	case KeyDelete:
		return EventDeleteForward, true
	case KeyUp:
		return EventMoveUp, true
	case KeyDown:
		return EventMoveDown, true
	case KeyLeft:
		return EventMoveLeft, true
	case KeyRight:
		return EventMoveRight, true
	case KeyHome:
		return EventMoveLineStart, true
	case KeyEnd:
		return EventMoveLineEnd, true
	case KeyPageUp:
		return EventMovePageUp, true
	case KeyPageDown:
		return EventMovePageDown, true
	case KeyCtrlHome:
		return EventMoveBufferStart, true
	case KeyCtrlEnd:
		return EventMoveBufferEnd, true
	default:
		return 0, false
	}
}
