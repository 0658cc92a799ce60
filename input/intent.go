package input

import "github.com/lixenwraith/vi-defense/core"

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit       // q, Esc, Ctrl+C, Ctrl+Q
	IntentToggleMute // m, Ctrl+S
	IntentResize     // Terminal resize event

	// Session intents
	IntentConfirm          // Enter: start wave, continue, or acknowledge the end
	IntentSelectDifficulty // 1, 2, 3 on the menu
	IntentPlace            // Space at the cursor, or a mouse click

	// Cursor
	IntentCursorMove // h,j,k,l, arrows
)

// Intent is one translated input event
type Intent struct {
	Type  IntentType
	Dir   core.Dir   // IntentCursorMove
	Level int        // IntentSelectDifficulty
	At    core.Coord // IntentPlace
}
