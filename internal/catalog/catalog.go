// Package catalog loads the demo content shown by the pages and keeps the
// watchlist.
package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"couchnav/internal/domain"
)

//go:embed catalog.toml
var embedded []byte

// Rail is a titled list of items
type Rail struct {
	Title string
	Items []domain.Item
}

// Catalog is the parsed content
type Catalog struct {
	Items  []domain.Item
	Slides []domain.Item
	Rails  []Rail
	byID   map[string]domain.Item
}

type railFile struct {
	Title string   `toml:"title"`
	Items []string `toml:"items"`
}

type catalogFile struct {
	Slides []string      `toml:"slides"`
	Rails  []railFile    `toml:"rails"`
	Items  []domain.Item `toml:"items"`
}

// Load reads a catalog from path, or the built-in one when path is empty
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Parse(embedded)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes a TOML catalog and resolves slide and rail references
func Parse(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	c := &Catalog{Items: f.Items, byID: make(map[string]domain.Item, len(f.Items))}
	for _, it := range f.Items {
		if it.ID == "" {
			return nil, fmt.Errorf("item %q has no id", it.Title)
		}
		if _, dup := c.byID[it.ID]; dup {
			return nil, fmt.Errorf("duplicate item id %q", it.ID)
		}
		c.byID[it.ID] = it
	}

	slides, err := c.resolve(f.Slides)
	if err != nil {
		return nil, fmt.Errorf("slides: %w", err)
	}
	c.Slides = slides

	for _, rf := range f.Rails {
		items, err := c.resolve(rf.Items)
		if err != nil {
			return nil, fmt.Errorf("rail %q: %w", rf.Title, err)
		}
		c.Rails = append(c.Rails, Rail{Title: rf.Title, Items: items})
	}
	return c, nil
}

// Item looks an item up by id
func (c *Catalog) Item(id string) (domain.Item, bool) {
	it, ok := c.byID[id]
	return it, ok
}

func (c *Catalog) resolve(ids []string) ([]domain.Item, error) {
	out := make([]domain.Item, 0, len(ids))
	for _, id := range ids {
		it, ok := c.byID[id]
		if !ok {
			return nil, fmt.Errorf("unknown item %q", id)
		}
		out = append(out, it)
	}
	return out, nil
}
