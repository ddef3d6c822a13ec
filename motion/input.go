package motion

// KeyState is the edge-detected state of a single key for one frame.
// The input source must report Press and Release exactly once, on the
// transition frame.
type KeyState uint8

const (
	KeyNone KeyState = iota
	KeyPress
	KeyHold
	KeyRelease
)

// Pressed reports whether the key went down this frame.
func (k KeyState) Pressed() bool { return k == KeyPress }

// Down reports whether the key is currently held (including the press frame).
func (k KeyState) Down() bool { return k == KeyPress || k == KeyHold }

// Released reports whether the key went up this frame.
func (k KeyState) Released() bool { return k == KeyRelease }

// Frame is one frame's worth of decoded input. MoveX is the horizontal
// component of the movement axis in [-1, 1].
type Frame struct {
	Jump  KeyState
	Dash  KeyState
	MoveX float64
}
