package mapfile

import (
	"fmt"

	"github.com/dgraph-io/ristretto/v2"
)

// Cache memoizes parsed map files by name. The cost of an entry is its
// tile count.
type Cache struct {
	c *ristretto.Cache[string, Grid]
}

// NewCache creates a cache holding up to maxTiles tiles in total
func NewCache(maxTiles int64) (*Cache, error) {
	c, err := ristretto.NewCache(&ristretto.Config[string, Grid]{
		NumCounters: 1000,
		MaxCost:     maxTiles,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create map cache: %w", err)
	}
	return &Cache{c: c}, nil
}

// Get returns a cached grid
func (c *Cache) Get(name string) (Grid, bool) {
	return c.c.Get(name)
}

// Set stores a grid and waits until it is visible to Get
func (c *Cache) Set(name string, g Grid) {
	c.c.Set(name, g, int64(len(g.Indices))+1)
	c.c.Wait()
}

// Invalidate drops a cached grid
func (c *Cache) Invalidate(name string) {
	c.c.Del(name)
}

// Close stops the cache's background goroutines
func (c *Cache) Close() {
	c.c.Close()
}
