// Package focus is the contract between a page and the widgets that occupy
// its sections. Every capability is optional: a widget implements the
// interfaces it needs and the helpers here fall back to default behaviour
// for the rest.
package focus

import (
	"fmt"
	"reflect"

	"couchnav/internal/logger"
)

// NoIndex is returned by FocusIndex when a widget has no remembered position
const NoIndex = -1

// maxResolveDepth bounds Resolve against widgets that return each other
const maxResolveDepth = 8

// Node is anything that can sit in a section
type Node interface{}

// IndexKeeper remembers an internal highlighted position
type IndexKeeper interface {
	FocusIndex() int
	SetFocusIndex(i int)
}

// Resolver returns the descendant that should receive input, or nil when
// the node itself should.
type Resolver interface {
	Focused() Node
}

// KeyHandler lets a node consume a key before the page sees it. The bool
// reports whether the key was consumed; the Signal asks the page to act.
type KeyHandler interface {
	HandleKey(k Key) (Signal, bool)
}

// Focuser renders the focused visual state
type Focuser interface {
	SetFocused(focused bool)
}

// Resetter puts a node back to its initial internal position
type Resetter interface {
	ResetFocus()
}

// Index returns the remembered index of n, or NoIndex
func Index(n Node) int {
	if n == nil {
		return NoIndex
	}
	k, ok := n.(IndexKeeper)
	if !ok {
		missing(n, "IndexKeeper")
		return NoIndex
	}
	return k.FocusIndex()
}

// SetIndex forwards i to n and reports whether n accepted it
func SetIndex(n Node, i int) bool {
	if n == nil || i == NoIndex {
		return false
	}
	k, ok := n.(IndexKeeper)
	if !ok {
		missing(n, "IndexKeeper")
		return false
	}
	k.SetFocusIndex(i)
	return true
}

// Resolve walks Focused() down to the node that wants input
func Resolve(n Node) Node {
	cur := n
	for depth := 0; cur != nil && depth < maxResolveDepth; depth++ {
		r, ok := cur.(Resolver)
		if !ok {
			return cur
		}
		next := r.Focused()
		if next == nil || Same(next, cur) {
			return cur
		}
		cur = next
	}
	return cur
}

// Same reports whether a and b are the same node. Uncomparable node types
// are never the same, instead of panicking.
func Same(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}
	return a == b
}

// Offer gives n the first chance at k
func Offer(n Node, k Key) (Signal, bool) {
	if n == nil {
		return Signal{}, false
	}
	h, ok := n.(KeyHandler)
	if !ok {
		missing(n, "KeyHandler")
		return Signal{}, false
	}
	return h.HandleKey(k)
}

// SetFocused toggles the focused visual state of n when it supports it
func SetFocused(n Node, focused bool) {
	if n == nil {
		return
	}
	if f, ok := n.(Focuser); ok {
		f.SetFocused(focused)
	}
}

// Reset returns n to its initial position. Nodes without Resetter get
// SetIndex(0), which is what a fresh widget would report.
func Reset(n Node) {
	if n == nil {
		return
	}
	if r, ok := n.(Resetter); ok {
		r.ResetFocus()
		return
	}
	SetIndex(n, 0)
}

func missing(n Node, capability string) {
	logger.Get().Debug("focus capability missing",
		"node", fmt.Sprintf("%T", n),
		"capability", capability)
}
