package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-defense/core"
)

// KeyEntry describes a key's behavior without function pointers
type KeyEntry struct {
	Intent IntentType
	Dir    core.Dir
	Level  int
}

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Enter, Esc)
	SpecialKeys map[tcell.Key]KeyEntry

	// Printable rune bindings
	Runes map[rune]KeyEntry
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyCtrlQ:  {Intent: IntentQuit},
			tcell.KeyCtrlC:  {Intent: IntentQuit},
			tcell.KeyEscape: {Intent: IntentQuit},
			tcell.KeyCtrlS:  {Intent: IntentToggleMute},
			tcell.KeyEnter:  {Intent: IntentConfirm},
			tcell.KeyUp:     {Intent: IntentCursorMove, Dir: core.DirUp},
			tcell.KeyRight:  {Intent: IntentCursorMove, Dir: core.DirRight},
			tcell.KeyDown:   {Intent: IntentCursorMove, Dir: core.DirDown},
			tcell.KeyLeft:   {Intent: IntentCursorMove, Dir: core.DirLeft},
		},
		Runes: map[rune]KeyEntry{
			'q': {Intent: IntentQuit},
			'm': {Intent: IntentToggleMute},
			'1': {Intent: IntentSelectDifficulty, Level: 1},
			'2': {Intent: IntentSelectDifficulty, Level: 2},
			'3': {Intent: IntentSelectDifficulty, Level: 3},
			' ': {Intent: IntentPlace},
			'k': {Intent: IntentCursorMove, Dir: core.DirUp},
			'l': {Intent: IntentCursorMove, Dir: core.DirRight},
			'j': {Intent: IntentCursorMove, Dir: core.DirDown},
			'h': {Intent: IntentCursorMove, Dir: core.DirLeft},
		},
	}
}
