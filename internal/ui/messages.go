package ui

import (
	"time"

	"couchnav/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// layoutSettledMsg runs the deferred settle passes. It is sent after the
// update that queued them, so the page has rendered in between.
type layoutSettledMsg struct{}

// frameMsg advances the scroll animation
type frameMsg time.Time

// clearStatusMsg clears the status line
type clearStatusMsg struct{}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
