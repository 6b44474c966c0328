package cache

import (
	"sync"
	"time"
)

// Page is a fully rendered response body and the entity tag derived from it.
type Page struct {
	Body []byte
	ETag string
}

type entry struct {
	page Page
	exp  time.Time
}

type Cache struct {
	mu    sync.RWMutex
	pages map[string]entry
	ttl   time.Duration
}

func NewCache(ttl time.Duration) *Cache {
	return &Cache{
		pages: make(map[string]entry),
		ttl:   ttl,
	}
}

func (c *Cache) Get(name string) (*Page, bool) {
	c.mu.RLock()
	e, ok := c.pages[name]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}

	if time.Now().After(e.exp) {
		c.mu.Lock()
		if cur, ok := c.pages[name]; ok && cur.exp.Equal(e.exp) {
			delete(c.pages, name)
		}
		c.mu.Unlock()
		return nil, false
	}
	return &e.page, true
}

func (c *Cache) Set(name string, p Page) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.pages[name] = entry{
		page: p,
		exp:  time.Now().Add(c.ttl),
	}
}

func (c *Cache) Invalidate(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.pages, name)
}

func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.pages)
}
