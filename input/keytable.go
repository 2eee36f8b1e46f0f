package input

import "github.com/gdamore/tcell/v2"

// KeyEntry describes the intent bound to a key
type KeyEntry struct {
	IntentType IntentType
	Dir        int
}

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Esc, Enter)
	SpecialKeys map[tcell.Key]KeyEntry

	// Printable rune bindings
	Runes map[rune]KeyEntry
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyCtrlC:  {IntentQuit, 0},
			tcell.KeyEscape: {IntentQuit, 0},
			tcell.KeyEnter:  {IntentStart, 0},
			tcell.KeyLeft:   {IntentNudge, -1},
			tcell.KeyRight:  {IntentNudge, 1},
		},
		Runes: map[rune]KeyEntry{
			'q': {IntentQuit, 0},
			' ': {IntentStart, 0},
			'p': {IntentPause, 0},
			'r': {IntentRestart, 0},
			'm': {IntentToggleMute, 0},
			'h': {IntentNudge, -1},
			'l': {IntentNudge, 1},
		},
	}
}
