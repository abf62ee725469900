// Package term converts terminal key events into raw key events for the
// keys package. It exists so the engine can be driven from a real
// terminal; the core never imports tcell.
package term

import (
	"fmt"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/keychord/keychord/internal/keys"
)

// specialKeys maps tcell special keys to keys.
var specialKeys = map[tcell.Key]keys.Key{
	tcell.KeyEscape:     keys.KeyEscape,
	tcell.KeyEnter:      keys.KeyReturn,
	tcell.KeyTab:        keys.KeyTab,
	tcell.KeyBacktab:    keys.KeyBacktab,
	tcell.KeyBackspace:  keys.KeyBackspace,
	tcell.KeyBackspace2: keys.KeyBackspace,
	tcell.KeyDelete:     keys.KeyDelete,
	tcell.KeyInsert:     keys.KeyInsert,
	tcell.KeyHome:       keys.KeyHome,
	tcell.KeyEnd:        keys.KeyEnd,
	tcell.KeyPgUp:       keys.KeyPageUp,
	tcell.KeyPgDn:       keys.KeyPageDown,
	tcell.KeyUp:         keys.KeyUp,
	tcell.KeyDown:       keys.KeyDown,
	tcell.KeyLeft:       keys.KeyLeft,
	tcell.KeyRight:      keys.KeyRight,
	tcell.KeyF1:         keys.KeyF1,
	tcell.KeyF2:         keys.KeyF2,
	tcell.KeyF3:         keys.KeyF3,
	tcell.KeyF4:         keys.KeyF4,
	tcell.KeyF5:         keys.KeyF5,
	tcell.KeyF6:         keys.KeyF6,
	tcell.KeyF7:         keys.KeyF7,
	tcell.KeyF8:         keys.KeyF8,
	tcell.KeyF9:         keys.KeyF9,
	tcell.KeyF10:        keys.KeyF10,
	tcell.KeyF11:        keys.KeyF11,
	tcell.KeyF12:        keys.KeyF12,
	tcell.KeyClear:      keys.KeyClear,
	tcell.KeyPause:      keys.KeyPause,
	tcell.KeyPrint:      keys.KeyPrint,
}

// keyText gives the inserted text for the few special keys that
// produce one.
var keyText = map[keys.Key]string{
	keys.KeyTab:       "\t",
	keys.KeyReturn:    "\r",
	keys.KeyEscape:    "\x1b",
	keys.KeyBackspace: "\b",
}

// convertModifiers translates tcell modifier bits.
func convertModifiers(mods tcell.ModMask) keys.Modifier {
	var out keys.Modifier
	if mods&tcell.ModShift != 0 {
		out = out.With(keys.ModShift)
	}
	if mods&tcell.ModCtrl != 0 {
		out = out.With(keys.ModCtrl)
	}
	if mods&tcell.ModAlt != 0 {
		out = out.With(keys.ModAlt)
	}
	if mods&tcell.ModMeta != 0 {
		out = out.With(keys.ModMeta)
	}
	return out
}

// EventFromTcell converts a tcell key event to a raw key event in the
// engine's key space: letters become their uppercase codepoint with
// Shift inferred from the rune, Ctrl-letter keys are unfolded back to
// the letter, and special keys go through the table above.
//
// The special-key table is consulted before the Ctrl-letter fold:
// control codes overlap (Tab is Ctrl-I on the wire) and tcell already
// picked the interpretation.
func EventFromTcell(ev *tcell.EventKey) (keys.Event, error) {
	mods := convertModifiers(ev.Modifiers())

	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if unicode.IsUpper(r) {
			mods = mods.With(keys.ModShift)
		}
		return keys.NewEvent(keys.KeyFromRune(r), mods, string(r)), nil
	}

	if k, ok := specialKeys[ev.Key()]; ok {
		return keys.NewEvent(k, mods, keyText[k]), nil
	}

	// tcell folds Ctrl+letter into control characters.
	if k := ev.Key(); k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		letter := keys.Key('A' + k - tcell.KeyCtrlA)
		return keys.NewEvent(letter, mods.With(keys.ModCtrl), ""), nil
	}
	if ev.Key() == tcell.KeyCtrlSpace {
		return keys.NewEvent(keys.KeySpace, mods.With(keys.ModCtrl), ""), nil
	}

	return keys.Event{}, fmt.Errorf("unhandled terminal key %v", ev.Key())
}
