package game

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/asciiwar/internal/match"
)

// binding is what a key does: feed an input to the engine or leave the match.
type binding struct {
	input match.Input
	quit  bool
}

// KeyMap translates terminal key events into engine inputs.
type KeyMap struct {
	keys  map[tcell.Key]binding
	runes map[rune]binding
}

var actions = map[string]binding{
	"up":      {input: match.InputUp},
	"down":    {input: match.InputDown},
	"left":    {input: match.InputLeft},
	"right":   {input: match.InputRight},
	"confirm": {input: match.InputConfirm},
	"quit":    {quit: true},
}

// NewKeyMap builds a key map from action names to key names ("Up", "Enter",
// "Ctrl-C"), the word "space", or single runes ("q").
func NewKeyMap(bindings map[string][]string) (*KeyMap, error) {
	byName := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		byName[strings.ToLower(name)] = k
	}

	km := &KeyMap{
		keys:  make(map[tcell.Key]binding),
		runes: make(map[rune]binding),
	}
	for action, names := range bindings {
		b, ok := actions[strings.ToLower(action)]
		if !ok {
			return nil, fmt.Errorf("unknown action %q", action)
		}
		for _, name := range names {
			switch {
			case strings.EqualFold(name, "space"):
				km.runes[' '] = b
			case utf8.RuneCountInString(name) == 1:
				r, _ := utf8.DecodeRuneInString(name)
				km.runes[r] = b
			default:
				k, ok := byName[strings.ToLower(name)]
				if !ok {
					return nil, fmt.Errorf("action %q: unknown key %q", action, name)
				}
				km.keys[k] = b
			}
		}
	}
	return km, nil
}

// Lookup resolves a key (and its rune, for tcell.KeyRune) to an input.
// Unbound keys yield InputUnrecognized.
func (km *KeyMap) Lookup(key tcell.Key, r rune) (in match.Input, quit bool) {
	var b binding
	var ok bool
	if key == tcell.KeyRune {
		b, ok = km.runes[r]
	} else {
		b, ok = km.keys[key]
	}
	if !ok {
		return match.InputUnrecognized, false
	}
	return b.input, b.quit
}
