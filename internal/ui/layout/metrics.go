// Package layout turns the rendered geometry of a page's sections into
// per-section offsets and scroll bounds.
package layout

import "math"

// HeaderName is the node name of the virtual header section
const HeaderName = "Header"

// Geometry is the last known position of a rendered node, in rows
type Geometry struct {
	Y       int
	H       int
	Visible bool
}

// Tree exposes the geometry of named nodes. The second result is false for
// nodes that have not been rendered yet.
type Tree interface {
	Geometry(name string) (Geometry, bool)
}

// Input describes one page for Compute
type Input struct {
	Sections       []string
	HasHeader      bool
	ViewportHeight int
	ExtraBottom    int
	// Hints are declared heights used while a node has no rendered size
	Hints map[string]int
}

// Bounds are the legal scroll offsets. Max is always 0.
type Bounds struct {
	Min float64
	Max float64
}

// Clamp folds y into [Min, Max]
func (b Bounds) Clamp(y float64) float64 {
	return math.Max(b.Min, math.Min(y, b.Max))
}

// Metrics is the result of one measurement pass
type Metrics struct {
	Bounds      Bounds
	Offsets     map[string]int
	TotalHeight int
}

// Offset returns the offset recorded for name, 0 when unknown
func (m Metrics) Offset(name string) int {
	return m.Offsets[name]
}

// Compute measures the page. It never fails: unknown heights fall back to
// the hint for the name, then to 0.
func Compute(tree Tree, in Input) Metrics {
	m := Metrics{Offsets: make(map[string]int, len(in.Sections)+1)}
	if len(in.Sections) == 0 && !in.HasHeader {
		return m
	}

	names := make([]string, 0, len(in.Sections)+1)
	if in.HasHeader {
		names = append(names, HeaderName)
	}
	names = append(names, in.Sections...)

	bottom := in.ViewportHeight
	for _, name := range names {
		y, h := measure(tree, name, in.Hints)
		m.Offsets[name] = y
		if y+h > bottom {
			bottom = y + h
		}
	}

	m.TotalHeight = bottom + in.ExtraBottom
	m.Bounds = Bounds{
		Min: math.Min(0, float64(in.ViewportHeight-m.TotalHeight)),
		Max: 0,
	}
	return m
}

func measure(tree Tree, name string, hints map[string]int) (y, h int) {
	var g Geometry
	var ok bool
	if tree != nil {
		g, ok = tree.Geometry(name)
	}
	if ok {
		y = g.Y
		if !g.Visible {
			return y, 0
		}
		h = g.H
	}
	if h <= 0 {
		h = hints[name]
	}
	return y, h
}
