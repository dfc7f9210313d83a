package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSectionEntered   EventType = "SectionEntered"
	EventSnapshotSaved    EventType = "SnapshotSaved"
	EventSnapshotRestored EventType = "SnapshotRestored"
	EventNavigated        EventType = "Navigated"
	EventCatalogLoaded    EventType = "CatalogLoaded"
	EventWatchlistChanged EventType = "WatchlistChanged"
	EventConfigLoaded     EventType = "ConfigLoaded"
	EventConfigSaved      EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SectionEnteredEvent is emitted when a page moves focus to another section
type SectionEnteredEvent struct {
	Page string
	From int
	To   int
	Name string
}

func (e SectionEnteredEvent) Type() EventType { return EventSectionEntered }

// SnapshotSavedEvent is emitted when a page commits its history snapshot
type SnapshotSavedEvent struct {
	Page      string
	Section   int
	ScrollY   float64
	BeforeNav bool // true for the unconditional pre-navigation save
}

func (e SnapshotSavedEvent) Type() EventType { return EventSnapshotSaved }

// SnapshotRestoredEvent is emitted once a pending restore has been applied
type SnapshotRestoredEvent struct {
	Page    string
	Section int
	Offset  float64
}

func (e SnapshotRestoredEvent) Type() EventType { return EventSnapshotRestored }

// NavigationKind tells how the history stack changed
type NavigationKind string

const (
	NavigationPush     NavigationKind = "push"
	NavigationPop      NavigationKind = "pop"
	NavigationRedirect NavigationKind = "redirect"
)

// NavigatedEvent is emitted by the router after the active page changed
type NavigatedEvent struct {
	Kind  NavigationKind
	From  string
	To    string
	Depth int
}

func (e NavigatedEvent) Type() EventType { return EventNavigated }

// CatalogLoadedEvent is emitted when content has been fetched
type CatalogLoadedEvent struct {
	Rails int
	Items int
}

func (e CatalogLoadedEvent) Type() EventType { return EventCatalogLoaded }

// WatchlistChangedEvent is emitted when an item is added to or removed from the watchlist
type WatchlistChangedEvent struct {
	ItemID string
	Added  bool
}

func (e WatchlistChangedEvent) Type() EventType { return EventWatchlistChanged }

// ConfigLoadedEvent is emitted when the configuration has been read
type ConfigLoadedEvent struct {
	Path    string
	Default bool // no file existed, defaults are in use
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when the configuration has been written
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
