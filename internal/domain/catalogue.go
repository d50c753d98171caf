package domain

import (
	"fmt"
	"sort"
)

// Catalogue is a keyed container with two-tier visibility: entries added
// today sit in a pending set until EndDay commits them. Lookups by key see
// both tiers, reads of the committed set do not. This is the "listed today,
// tradeable tomorrow" rule, not a cache.
type Catalogue[T any] struct {
	entries map[string]T
	pending map[string]T
}

func NewCatalogue[T any]() *Catalogue[T] {
	return &Catalogue[T]{
		entries: make(map[string]T),
		pending: make(map[string]T),
	}
}

func (c *Catalogue[T]) Contains(id string) bool {
	if _, ok := c.entries[id]; ok {
		return true
	}
	_, ok := c.pending[id]
	return ok
}

func (c *Catalogue[T]) Add(id string, entry T) error {
	if c.Contains(id) {
		return fmt.Errorf("%w: %s", ErrDuplicateCopy, id)
	}

	c.pending[id] = entry

	return nil
}

// Remove deletes a committed entry. Pending entries are not removable; they
// have no visibility until the day ends.
func (c *Catalogue[T]) Remove(id string) (T, error) {
	entry, ok := c.entries[id]
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: %s", ErrGameNotFound, id)
	}

	delete(c.entries, id)

	return entry, nil
}

func (c *Catalogue[T]) Get(id string) (T, error) {
	entry, ok := c.entries[id]
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: %s", ErrGameNotFound, id)
	}

	return entry, nil
}

// Entries returns the committed entries sorted by key.
func (c *Catalogue[T]) Entries() []T {
	keys := make([]string, 0, len(c.entries))
	for k := range c.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]T, 0, len(keys))
	for _, k := range keys {
		out = append(out, c.entries[k])
	}

	return out
}

// EndDay merges the pending buffer into the committed set.
func (c *Catalogue[T]) EndDay() {
	for k, v := range c.pending {
		c.entries[k] = v
	}

	c.pending = make(map[string]T)
}

// Inventory holds the games a buyer owns.
type Inventory struct {
	Catalogue[Game]
}

func NewInventory() *Inventory {
	return &Inventory{Catalogue: *NewCatalogue[Game]()}
}

func (i *Inventory) AddGame(game Game) error {
	return i.Add(game.Name, game)
}

// StoreFront holds the listings a seller offers.
type StoreFront struct {
	Catalogue[Listing]
}

func NewStoreFront() *StoreFront {
	return &StoreFront{Catalogue: *NewCatalogue[Listing]()}
}

func (s *StoreFront) AddListing(listing Listing) error {
	return s.Add(listing.Game.Name, listing)
}
