// seehuhn.de/go/webfont - analysis and subsetting of fonts for web delivery
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package urange

import "sync"

// Cache is a fixed-capacity LRU cache for parsed range specifications,
// keyed by the exact input string.  Identical specifications are common
// across batch invocations, and parsing large specs is not free.
//
// A Cache is safe for concurrent use.  Since Sets are immutable, cached
// values are shared between callers.
type Cache struct {
	mu       sync.Mutex
	capacity int
	entries  map[string]*cacheEntry

	first, last *cacheEntry
}

type cacheEntry struct {
	prev, next *cacheEntry
	key        string
	set        Set
}

// NewCache creates a new LRU cache with the given capacity.
// A capacity of zero or less disables caching.
func NewCache(capacity int) *Cache {
	return &Cache{
		capacity: capacity,
		entries:  make(map[string]*cacheEntry, max(capacity, 0)),
	}
}

// Parse returns the parsed Set for spec, consulting the cache first.
func (c *Cache) Parse(spec string) Set {
	if c == nil || c.capacity <= 0 {
		return Parse(spec)
	}

	c.mu.Lock()
	if ent, ok := c.entries[spec]; ok {
		c.moveToFront(ent)
		set := ent.set
		c.mu.Unlock()
		return set
	}
	c.mu.Unlock()

	set := Parse(spec)

	c.mu.Lock()
	defer c.mu.Unlock()
	if ent, ok := c.entries[spec]; ok {
		// another goroutine got here first
		c.moveToFront(ent)
		return ent.set
	}
	ent := &cacheEntry{key: spec, set: set}
	c.entries[spec] = ent
	c.moveToFront(ent)
	if len(c.entries) > c.capacity {
		c.removeLast()
	}
	return set
}

// Len returns the number of cached specifications.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *Cache) moveToFront(ent *cacheEntry) {
	if ent == c.first {
		return
	}

	if ent.prev != nil {
		ent.prev.next = ent.next
	}
	if ent.next != nil {
		ent.next.prev = ent.prev
	}
	if ent == c.last {
		c.last = ent.prev
	}

	ent.prev = nil
	ent.next = c.first
	if c.first != nil {
		c.first.prev = ent
	}
	c.first = ent
	if c.last == nil {
		c.last = ent
	}
}

func (c *Cache) removeLast() {
	if c.last == nil {
		return
	}

	delete(c.entries, c.last.key)
	if c.last.prev != nil {
		c.last.prev.next = nil
	}
	c.last = c.last.prev
}

// DefaultCache is the cache shared by the analysis commands in this module.
var DefaultCache = NewCache(512)
