package complete

import (
	"fmt"
	"slices"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/iw2rmb/keyline/editor"
	"github.com/iw2rmb/keyline/internal/log"
)

const DefaultCacheTTL = 2 * time.Second

// Cached memoises another completer's suggestions for a short time, so
// repeated completion of the same segment does not hit the filesystem again.
type Cached struct {
	next  editor.Completer
	cache *gocache.Cache
}

// NewCached wraps next. A ttl <= 0 selects DefaultCacheTTL.
func NewCached(next editor.Completer, ttl time.Duration) *Cached {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Cached{
		next:  next,
		cache: gocache.New(ttl, 2*ttl),
	}
}

func (c *Cached) Separators() []rune { return c.next.Separators() }

func (c *Cached) Suggest(text string, boundary int) []string {
	key := fmt.Sprintf("%d:%s", boundary, text)
	if v, ok := c.cache.Get(key); ok {
		if out, ok := v.([]string); ok {
			log.Debug(log.CatComplete, "cache hit", "boundary", boundary)
			return slices.Clone(out)
		}
		log.Error(log.CatComplete, "wrong type in completion cache", "key", key)
	}
	out := c.next.Suggest(text, boundary)
	c.cache.SetDefault(key, slices.Clone(out))
	return out
}

// Flush drops every cached entry.
func (c *Cached) Flush() { c.cache.Flush() }
