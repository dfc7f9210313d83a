// Package history converts a page's focus and scroll state to and from the
// plain records the router keeps in its history stack.
package history

import (
	"encoding/json"
	"fmt"
	"maps"
)

// Snapshot is the persisted state of one page instance. ScrollY is the
// non-negative magnitude of the container offset.
type Snapshot struct {
	Section int               `json:"section"`
	ScrollY float64           `json:"scrollY"`
	Focus   map[string]int    `json:"focus,omitempty"`
	Extra   map[string]string `json:"extra,omitempty"`
}

// Clone returns a deep copy
func (s Snapshot) Clone() Snapshot {
	s.Focus = maps.Clone(s.Focus)
	s.Extra = maps.Clone(s.Extra)
	return s
}

// Encode serializes the snapshot for storage in a history entry
func Encode(s Snapshot) ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return data, nil
}

// Decode parses a stored snapshot
func Decode(data []byte) (Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return Snapshot{}, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return s, nil
}
