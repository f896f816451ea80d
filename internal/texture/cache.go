package texture

import (
	"image"
	"sync"

	"k8s.io/klog/v2"
)

// Resolver resolves a texture path to a decoded image, or nil.
type Resolver interface {
	Resolve(path string) *image.NRGBA
}

// Cache is a concurrency-safe texture cache. Failed loads are cached as nil
// so a missing file is reported once, not once per frame.
type Cache struct {
	mu    sync.RWMutex
	items map[string]*image.NRGBA
}

func NewCache() *Cache {
	return &Cache{items: make(map[string]*image.NRGBA)}
}

// Resolve loads and caches a texture by path. Returns nil for an empty path
// or when the file cannot be loaded.
func (c *Cache) Resolve(path string) *image.NRGBA {
	if path == "" {
		return nil
	}

	// Fast path: read lock
	c.mu.RLock()
	img, exists := c.items[path]
	c.mu.RUnlock()
	if exists {
		return img
	}

	// Slow path: load from disk
	img, err := LoadTexture(path)
	if err != nil {
		klog.Warningf("%v; falling back to flat color", err)
	}

	// Write lock with double-check
	c.mu.Lock()
	defer c.mu.Unlock()
	if cached, exists := c.items[path]; exists {
		return cached
	}
	c.items[path] = img
	return img
}

// Len returns the number of cached paths, including failed ones.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
