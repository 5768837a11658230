package internal

import "github.com/veandco/go-sdl2/sdl"

const defaultMaxIconCacheSize = 4

// IconCache keeps decoded window icon surfaces, evicting the least recently
// used one when full.
type IconCache struct {
	surfaces map[string]*sdl.Surface
	order    []string // least recently used first
	maxSize  int
	free     func(*sdl.Surface)
}

func NewIconCache() *IconCache {
	return NewIconCacheWithSize(defaultMaxIconCacheSize, freeSurface)
}

// NewIconCacheWithSize creates a cache that releases evicted surfaces with free.
func NewIconCacheWithSize(maxSize int, free func(*sdl.Surface)) *IconCache {
	if maxSize < 1 {
		maxSize = 1
	}
	return &IconCache{
		surfaces: make(map[string]*sdl.Surface),
		order:    make([]string, 0, maxSize),
		maxSize:  maxSize,
		free:     free,
	}
}

func freeSurface(s *sdl.Surface) {
	if s != nil {
		s.Free()
	}
}

func (c *IconCache) Get(key string) *sdl.Surface {
	if surface, exists := c.surfaces[key]; exists {
		c.moveToEnd(key)
		return surface
	}
	return nil
}

func (c *IconCache) Set(key string, surface *sdl.Surface) {
	if old, exists := c.surfaces[key]; exists {
		if old != surface {
			c.free(old)
		}
		c.surfaces[key] = surface
		c.moveToEnd(key)
		return
	}

	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}

	c.surfaces[key] = surface
	c.order = append(c.order, key)
}

func (c *IconCache) Len() int {
	return len(c.order)
}

func (c *IconCache) moveToEnd(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, key)
			return
		}
	}
}

func (c *IconCache) evictOldest() {
	if len(c.order) == 0 {
		return
	}

	oldest := c.order[0]
	c.order = c.order[1:]

	if surface, exists := c.surfaces[oldest]; exists {
		c.free(surface)
		delete(c.surfaces, oldest)
	}
}

// Destroy frees every cached surface.
func (c *IconCache) Destroy() {
	for _, surface := range c.surfaces {
		c.free(surface)
	}
	c.surfaces = make(map[string]*sdl.Surface)
	c.order = c.order[:0]
}
