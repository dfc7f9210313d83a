package input

import "couchnav/internal/ui/focus"

// Action is a command the coordinator should execute
type Action interface {
	Type() string
}

// Section movement actions
type NextSectionAction struct{}

func (a NextSectionAction) Type() string { return "next_section" }

type PrevSectionAction struct{}

func (a PrevSectionAction) Type() string { return "prev_section" }

type EnterSectionAction struct {
	Index int
}

func (a EnterSectionAction) Type() string { return "enter_section" }

// SignalAction forwards a widget signal to the page
type SignalAction struct {
	Signal focus.Signal
}

func (a SignalAction) Type() string { return "signal" }

// BackAction asks the page to save and navigate back
type BackAction struct{}

func (a BackAction) Type() string { return "back" }
