package domain

// Item is a single piece of content shown on a tile, slide or hero
type Item struct {
	ID          string `toml:"id"`
	Title       string `toml:"title"`
	Year        int    `toml:"year"`
	Genre       string `toml:"genre"`
	Duration    string `toml:"duration"`
	Description string `toml:"description"`
}

// Intent is a one-shot instruction carried by a navigation and consumed by
// the destination page on activation
type Intent int

const (
	IntentNone Intent = iota
	// IntentReset asks the destination to forget any remembered child focus
	// and start from its primary section (used by header navigation)
	IntentReset
)

func (i Intent) String() string {
	switch i {
	case IntentReset:
		return "reset"
	default:
		return "none"
	}
}

// RouteParams are the hydration parameters handed to a page by the router
type RouteParams struct {
	ID     string `json:"id,omitempty"`
	From   string `json:"from,omitempty"`  // route the user came from ("home", "search", ...)
	Focus  string `json:"focus,omitempty"` // requested initial focus target ("rail")
	Intent Intent `json:"-"`               // never stored in history
}

// WithoutIntent returns a copy of the params with the intent consumed
func (p RouteParams) WithoutIntent() RouteParams {
	p.Intent = IntentNone
	return p
}
