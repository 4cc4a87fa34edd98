package input

import (
	"slices"

	"github.com/taigrr/drag3d/pkg/math3d"
)

// Movement keys.
const (
	KeyForward  Key = "w"
	KeyBackward Key = "s"
	KeyLeft     Key = "a"
	KeyRight    Key = "d"
	KeyRise     Key = "space"
	KeySink     Key = "shift"
)

// Keymap maps a key to the unit axis the camera moves along while it is held.
type Keymap map[Key]math3d.Vec3

// DefaultKeymap returns WASD for the horizontal plane, space to rise and
// shift to sink.
func DefaultKeymap() Keymap {
	return Keymap{
		KeyForward:  math3d.V3(0, 0, 1),
		KeyBackward: math3d.V3(0, 0, -1),
		KeyLeft:     math3d.V3(-1, 0, 0),
		KeyRight:    math3d.V3(1, 0, 0),
		KeyRise:     math3d.V3(0, 1, 0),
		KeySink:     math3d.V3(0, -1, 0),
	}
}

// Keys returns the mapped keys in sorted order.
func (m Keymap) Keys() []Key {
	keys := make([]Key, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
