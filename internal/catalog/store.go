package catalog

import (
	"slices"
	"strconv"
	"strings"
	"sync"

	"couchnav/internal/domain"
)

// Publisher receives catalog events
type Publisher interface {
	Publish(event domain.DomainEvent)
}

// Store holds the loaded catalog. It is empty until Set, which the loader
// calls from a command goroutine.
type Store struct {
	mu      sync.RWMutex
	catalog *Catalog
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{}
}

// Set installs the loaded catalog
func (s *Store) Set(c *Catalog) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.catalog = c
}

// Loaded reports whether a catalog has been installed
func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog != nil
}

// Item looks an item up by id
func (s *Store) Item(id string) (domain.Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.catalog == nil {
		return domain.Item{}, false
	}
	return s.catalog.Item(id)
}

// Slides returns the featured items
func (s *Store) Slides() []domain.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.catalog == nil {
		return nil
	}
	return slices.Clone(s.catalog.Slides)
}

// Rails returns the home rails
func (s *Store) Rails() []Rail {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.catalog == nil {
		return nil
	}
	return slices.Clone(s.catalog.Rails)
}

// Related returns up to limit other items sharing the genre of id
func (s *Store) Related(id string, limit int) []domain.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.catalog == nil {
		return nil
	}
	self, ok := s.catalog.Item(id)
	if !ok {
		return nil
	}
	var out []domain.Item
	for _, it := range s.catalog.Items {
		if it.ID == id || it.Genre != self.Genre {
			continue
		}
		out = append(out, it)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

// Search matches query against title, genre and year, ignoring case. An
// empty query matches nothing.
func (s *Store) Search(query string) []domain.Item {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.catalog == nil {
		return nil
	}
	var out []domain.Item
	for _, it := range s.catalog.Items {
		if strings.Contains(strings.ToLower(it.Title), query) ||
			strings.Contains(strings.ToLower(it.Genre), query) ||
			strconv.Itoa(it.Year) == query {
			out = append(out, it)
		}
	}
	return out
}

// Watchlist is the in-memory list of saved items, oldest first
type Watchlist struct {
	mu  sync.RWMutex
	ids []string
	bus Publisher
}

// NewWatchlist creates an empty watchlist publishing changes to bus
func NewWatchlist(bus Publisher) *Watchlist {
	return &Watchlist{bus: bus}
}

// Toggle adds id, or removes it when present, and reports whether it was added
func (w *Watchlist) Toggle(id string) bool {
	w.mu.Lock()
	i := slices.Index(w.ids, id)
	added := i < 0
	if added {
		w.ids = append(w.ids, id)
	} else {
		w.ids = slices.Delete(w.ids, i, i+1)
	}
	w.mu.Unlock()

	if w.bus != nil {
		w.bus.Publish(domain.WatchlistChangedEvent{ItemID: id, Added: added})
	}
	return added
}

// Contains reports whether id is saved
func (w *Watchlist) Contains(id string) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return slices.Contains(w.ids, id)
}

// IDs returns the saved ids
func (w *Watchlist) IDs() []string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return slices.Clone(w.ids)
}

// Items resolves the saved ids against store, skipping unknown ones
func (w *Watchlist) Items(store *Store) []domain.Item {
	var out []domain.Item
	for _, id := range w.IDs() {
		if it, ok := store.Item(id); ok {
			out = append(out, it)
		}
	}
	return out
}
