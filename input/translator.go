package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-defense/core"
)

const pressButtons = tcell.Button1 | tcell.Button2 | tcell.Button3

// Translator turns raw tcell events into intents and tracks the keyboard cursor
type Translator struct {
	table   *KeyTable
	bounds  core.Bounds
	cursor  core.Coord
	buttons tcell.ButtonMask
}

// NewTranslator creates a translator with the cursor centred in b
func NewTranslator(table *KeyTable, b core.Bounds) *Translator {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &Translator{
		table:  table,
		bounds: b,
		cursor: core.C(b.Width/2, b.Height/2),
	}
}

// Cursor returns the keyboard cursor cell
func (t *Translator) Cursor() core.Coord {
	return t.cursor
}

// Translate maps one tcell event to an intent
func (t *Translator) Translate(ev tcell.Event) Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return t.TranslateKey(ev.Key(), ev.Rune(), ev.Modifiers())
	case *tcell.EventMouse:
		x, y := ev.Position()
		return t.TranslateMouse(x, y, ev.Buttons())
	case *tcell.EventResize:
		return Intent{Type: IntentResize}
	}
	return Intent{}
}

// TranslateKey maps a key press to an intent
// Cursor moves are applied here and reported so the caller can redraw
func (t *Translator) TranslateKey(key tcell.Key, r rune, mod tcell.ModMask) Intent {
	var entry KeyEntry
	var ok bool
	if key == tcell.KeyRune {
		if mod&(tcell.ModCtrl|tcell.ModAlt) != 0 {
			return Intent{}
		}
		entry, ok = t.table.Runes[r]
	} else {
		entry, ok = t.table.SpecialKeys[key]
	}
	if !ok {
		return Intent{}
	}

	switch entry.Intent {
	case IntentCursorMove:
		if next, inside := t.bounds.StepInside(t.cursor, entry.Dir); inside {
			t.cursor = next
		}
		return Intent{Type: IntentCursorMove, Dir: entry.Dir}
	case IntentPlace:
		return Intent{Type: IntentPlace, At: t.cursor}
	case IntentSelectDifficulty:
		return Intent{Type: IntentSelectDifficulty, Level: entry.Level}
	default:
		return Intent{Type: entry.Intent}
	}
}

// TranslateMouse maps a mouse report to an intent
// Only the press edge of a button places; held buttons and motion are ignored
func (t *Translator) TranslateMouse(x, y int, buttons tcell.ButtonMask) Intent {
	pressed := buttons & pressButtons
	edge := pressed &^ t.buttons
	t.buttons = pressed
	if edge == 0 {
		return Intent{}
	}

	at := core.C(x, y)
	if t.bounds.InInterior(at) {
		t.cursor = at
	}
	return Intent{Type: IntentPlace, At: at}
}
