package focus

// Key is one of the six remote-control keys
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyBack
)

func (k Key) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyEnter:
		return "enter"
	case KeyBack:
		return "back"
	default:
		return "none"
	}
}

// Vertical reports whether k moves between sections
func (k Key) Vertical() bool {
	return k == KeyUp || k == KeyDown
}
