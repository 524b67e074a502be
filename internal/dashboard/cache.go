package dashboard

import (
	"fmt"
	"strings"
	"time"

	"github.com/huangsam/treehealth/internal/observability"
	"github.com/huangsam/treehealth/schema"
	"github.com/patrickmn/go-cache"
)

// chartCache memoizes rendered charts per chart kind and species. The
// snapshot behind the charts never changes, so entries only expire by TTL.
type chartCache struct {
	store   *cache.Cache
	metrics *observability.Metrics
}

// newChartCache creates a chart cache. A non-positive ttl disables caching.
func newChartCache(ttl time.Duration, metrics *observability.Metrics) *chartCache {
	if ttl <= 0 {
		return &chartCache{metrics: metrics}
	}
	return &chartCache{
		store:   cache.New(ttl, 2*ttl),
		metrics: metrics,
	}
}

// cacheKey joins a prefix and parameters into a single cache key.
func cacheKey(prefix string, params ...any) string {
	var b strings.Builder
	b.WriteString(prefix)
	for _, param := range params {
		b.WriteString(":")
		b.WriteString(fmt.Sprintf("%v", param))
	}
	return b.String()
}

// getOrRender returns the cached chart for key or renders and stores it.
func (c *chartCache) getOrRender(key string, render func() schema.ChartSpec) schema.ChartSpec {
	if c.store == nil {
		return render()
	}
	if cached, found := c.store.Get(key); found {
		if chart, ok := cached.(schema.ChartSpec); ok {
			c.metrics.CacheHit()
			return chart
		}
	}
	c.metrics.CacheMiss()
	chart := render()
	c.store.SetDefault(key, chart)
	return chart
}

// flush drops every cached chart.
func (c *chartCache) flush() {
	if c.store != nil {
		c.store.Flush()
	}
}

// size returns the number of cached charts, including expired ones not yet cleaned up.
func (c *chartCache) size() int {
	if c.store == nil {
		return 0
	}
	return c.store.ItemCount()
}
