// seehuhn.de/go/svgpptx - convert SVG graphics to PowerPoint DrawingML
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

package color

import "sync"

// defaultCacheSize is used when NewCache is called with a non-positive
// limit.
const defaultCacheSize = 4096

// Cache memoises sRGB to L*a*b* conversions.  A Cache is safe for
// concurrent use.
//
// Caches are purely an optimization: every conversion gives the same
// result with or without one.  Callers construct a Cache explicitly
// and pass it to a [Converter], so separate conversion jobs can use
// separate caches.
//
// Once the cache holds limit entries it is cleared wholesale on the
// next insert.  Conversion results never become stale, so evicting
// everything costs only warm-up time and avoids per-entry bookkeeping.
type Cache struct {
	mu    sync.Mutex
	limit int
	m     map[RGB]Lab
}

// NewCache creates a cache holding up to limit conversions.
// A non-positive limit selects a default size.
func NewCache(limit int) *Cache {
	if limit <= 0 {
		limit = defaultCacheSize
	}
	return &Cache{
		limit: limit,
		m:     make(map[RGB]Lab, limit),
	}
}

// Len returns the number of cached conversions.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.m)
}

func (c *Cache) get(key RGB) (Lab, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.m[key]
	return v, ok
}

func (c *Cache) put(key RGB, val Lab) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.m) >= c.limit {
		clear(c.m)
	}
	c.m[key] = val
}
