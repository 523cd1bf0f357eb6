// Package registry tracks which participant IDs are already registered for an
// event, so team rosters can reject members who signed up elsewhere.
package registry

import (
	"context"
	"sync"

	"github.com/youthopia/engine/internal/domain"
)

// Lookup answers whether a participant ID is already registered.
type Lookup interface {
	IsRegistered(ctx context.Context, id string) (bool, error)
}

// Directory is an in-memory registry of registered participant IDs. IDs are
// normalized before storage and lookup, so "yt-101" and " YT-101 " match.
type Directory struct {
	mu  sync.RWMutex
	ids map[string]struct{}
}

// NewDirectory creates a directory seeded with the given IDs.
func NewDirectory(ids ...string) *Directory {
	d := &Directory{ids: make(map[string]struct{}, len(ids))}
	for _, id := range ids {
		d.add(id)
	}
	return d
}

func (d *Directory) add(id string) {
	normalized := domain.NormalizeID(id)
	if normalized == "" {
		return
	}
	d.ids[normalized] = struct{}{}
}

// Add records an ID as registered. Empty IDs are ignored.
func (d *Directory) Add(id string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.add(id)
}

// IsRegistered reports whether id is in the directory.
func (d *Directory) IsRegistered(_ context.Context, id string) (bool, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	_, ok := d.ids[domain.NormalizeID(id)]
	return ok, nil
}

// Len returns the number of registered IDs.
func (d *Directory) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return len(d.ids)
}
