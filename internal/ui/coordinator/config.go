package coordinator

import (
	"time"

	"couchnav/internal/ui/scroll"
)

// PageConfig declares how one page lays out and behaves
type PageConfig struct {
	Name      string
	HasHeader bool
	// Sections are ordered top to bottom and never change for the page lifetime
	Sections    []string
	Hints       map[string]int
	ExtraBottom int

	ScrollSnap       bool
	History          bool
	PersistHeader    bool
	AutoInitialFocus bool
	FocusRecovery    bool
	AnimateRestore   bool
	ShouldScroll     func(index int) bool

	// Primary sections are preferred on a fresh entry, in order
	Primary []string
	// PrimaryInput names the section hosting the page's main input
	PrimaryInput string

	SaveInterval time.Duration
	Spring       scroll.Spring
}

// DefaultPageConfig returns the behaviour most pages want
func DefaultPageConfig(name string, sections ...string) PageConfig {
	return PageConfig{
		Name:             name,
		HasHeader:        true,
		Sections:         sections,
		Hints:            map[string]int{},
		ExtraBottom:      2,
		ScrollSnap:       true,
		History:          true,
		AutoInitialFocus: true,
		FocusRecovery:    true,
		SaveInterval:     250 * time.Millisecond,
		Spring:           scroll.DefaultSpring(),
	}
}
