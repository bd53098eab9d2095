// Package lru implements a bounded TTL cache for relevance results.
package lru

import (
	"context"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/ysaito/uracheck"
)

// Cache bounds and expiry defaults.
const (
	DefaultSize = 100
	DefaultTTL  = time.Hour
)

// Ensure Cache implements uracheck.RelevanceCache at compile time.
var _ uracheck.RelevanceCache = (*Cache)(nil)

// Cache implements uracheck.RelevanceCache with a bounded LRU whose entries
// expire after a fixed TTL. Safe for concurrent use.
type Cache struct {
	lru *expirable.LRU[string, uracheck.RelevanceResult]
}

// NewCache creates a Cache. Non-positive size or TTL select the defaults.
func NewCache(size int, ttl time.Duration) *Cache {
	if size <= 0 {
		size = DefaultSize
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{lru: expirable.NewLRU[string, uracheck.RelevanceResult](size, nil, ttl)}
}

// Get returns the cached result for a key, if present and unexpired.
func (c *Cache) Get(key string) (uracheck.RelevanceResult, bool) {
	return c.lru.Get(key)
}

// Add stores a result under a key.
func (c *Cache) Add(key string, result uracheck.RelevanceResult) {
	c.lru.Add(key, result)
}

// CacheKey derives the cache key for a relevance request: an xxhash over the
// four request fields with a separator that keeps field boundaries distinct.
func CacheKey(req uracheck.RelevanceRequest) string {
	d := xxhash.New()
	for _, field := range []string{req.Title, req.Content, req.ClientName, req.PartnerName} {
		_, _ = d.WriteString(field)
		_, _ = d.Write([]byte{0})
	}
	return strconv.FormatUint(d.Sum64(), 16)
}

// Ensure CachingAnalyzer implements uracheck.RelevanceAnalyzer at compile time.
var _ uracheck.RelevanceAnalyzer = (*CachingAnalyzer)(nil)

// CachingAnalyzer decorates a RelevanceAnalyzer with result caching, so
// repeated identical lookups short-circuit without re-invoking the service.
// Errors are never cached.
type CachingAnalyzer struct {
	analyzer uracheck.RelevanceAnalyzer
	cache    uracheck.RelevanceCache
}

// NewCachingAnalyzer creates a new CachingAnalyzer.
func NewCachingAnalyzer(analyzer uracheck.RelevanceAnalyzer, cache uracheck.RelevanceCache) *CachingAnalyzer {
	return &CachingAnalyzer{analyzer: analyzer, cache: cache}
}

// Analyze returns the cached result when available, delegating otherwise.
func (a *CachingAnalyzer) Analyze(ctx context.Context, req uracheck.RelevanceRequest) (uracheck.RelevanceResult, error) {
	key := CacheKey(req)
	if result, ok := a.cache.Get(key); ok {
		return result, nil
	}

	result, err := a.analyzer.Analyze(ctx, req)
	if err != nil {
		return uracheck.RelevanceResult{}, err
	}

	a.cache.Add(key, result)
	return result, nil
}
