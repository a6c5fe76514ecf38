package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps terminal keys to game keys.
// Bindings are fixed; there is no user remapping.
type KeyTable struct {
	// Special keys (arrows, Esc, Ctrl+*)
	SpecialKeys map[tcell.Key]Key

	// Rune bindings, matched case-insensitively through both cases being listed
	Runes map[rune]Key
}

// DefaultKeyTable returns the two-player bindings: w/s left, arrows right
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Key{
			tcell.KeyUp:     KeyRightUp,
			tcell.KeyDown:   KeyRightDown,
			tcell.KeyEscape: KeyQuit,
			tcell.KeyCtrlC:  KeyQuit,
			tcell.KeyCtrlQ:  KeyQuit,
		},
		Runes: map[rune]Key{
			'w': KeyLeftUp,
			'W': KeyLeftUp,
			's': KeyLeftDown,
			'S': KeyLeftDown,
			'q': KeyQuit,
			'Q': KeyQuit,
			'y': KeyConfirm,
			'Y': KeyConfirm,
			'n': KeyDecline,
			'N': KeyDecline,
		},
	}
}

// Lookup resolves a terminal key event to a game key
func (kt *KeyTable) Lookup(ev *tcell.EventKey) (Key, bool) {
	if ev.Key() == tcell.KeyRune {
		k, ok := kt.Runes[ev.Rune()]
		return k, ok
	}
	k, ok := kt.SpecialKeys[ev.Key()]
	return k, ok
}
