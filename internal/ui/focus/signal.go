package focus

import "couchnav/internal/domain"

// SignalKind tells the page what a widget wants
type SignalKind int

const (
	SignalNone SignalKind = iota
	// SignalFocusNext and SignalFocusPrev mean the widget ran out of room
	SignalFocusNext
	SignalFocusPrev
	// SignalNavigate asks for page-level navigation to Path
	SignalNavigate
	// SignalFocusMoved carries the grid position in Move
	SignalFocusMoved
	// SignalCustom is page specific and identified by Name
	SignalCustom
)

func (k SignalKind) String() string {
	switch k {
	case SignalFocusNext:
		return "focusNext"
	case SignalFocusPrev:
		return "focusPrev"
	case SignalNavigate:
		return "navigate"
	case SignalFocusMoved:
		return "focusMoved"
	case SignalCustom:
		return "custom"
	default:
		return "none"
	}
}

// GridMove describes where the highlight of a grid ended up
type GridMove struct {
	Row       int
	Col       int
	RowHeight int
	Cols      int
	Items     int
}

// Signal is emitted by widgets and interpreted by their page
type Signal struct {
	Kind   SignalKind
	Path   string
	Params domain.RouteParams
	Name   string
	Args   map[string]string
	Move   GridMove
}

// Navigate builds a navigation signal
func Navigate(path string, params domain.RouteParams) Signal {
	return Signal{Kind: SignalNavigate, Path: path, Params: params}
}

// Custom builds a page-specific signal
func Custom(name string, args map[string]string) Signal {
	return Signal{Kind: SignalCustom, Name: name, Args: args}
}
