package terminal

import (
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/taigrr/drag3d/pkg/input"
)

// quitKeys stop the engine.
var quitKeys = []string{"esc", "escape", "ctrl+c", "q"}

// keyAliases lists the terminal key names that count as an input key. Keys
// not listed match their own name.
var keyAliases = map[input.Key][]string{
	input.KeySink: {"shift", "leftshift", "rightshift", "c"},
}

// Translate converts a terminal event into input events. Mouse rows are
// doubled to land on the top pixel of each cell, and any button release ends
// a drag. Events with no meaning to the engine produce nothing.
func Translate(ev uv.Event, keymap input.Keymap) []input.Event {
	switch ev := ev.(type) {
	case uv.KeyPressEvent:
		if ev.MatchString(quitKeys...) {
			return []input.Event{input.Quit{}}
		}
		if k, ok := matchKey(ev.MatchString, keymap); ok {
			return []input.Event{input.KeyDown{Key: k}}
		}
	case uv.KeyReleaseEvent:
		if k, ok := matchKey(ev.MatchString, keymap); ok {
			return []input.Event{input.KeyUp{Key: k}}
		}
	case uv.MouseClickEvent:
		if ev.Button == uv.MouseLeft {
			return []input.Event{input.MouseDown{X: ev.X, Y: ev.Y * 2}}
		}
	case uv.MouseMotionEvent:
		return []input.Event{input.MouseMove{X: ev.X, Y: ev.Y * 2}}
	case uv.MouseReleaseEvent:
		return []input.Event{input.MouseUp{}}
	}
	return nil
}

func matchKey(match func(...string) bool, keymap input.Keymap) (input.Key, bool) {
	for _, k := range keymap.Keys() {
		names, ok := keyAliases[k]
		if !ok {
			names = []string{string(k)}
		}
		if match(names...) {
			return k, true
		}
	}
	return "", false
}
