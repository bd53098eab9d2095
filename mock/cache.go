package mock

import "github.com/ysaito/uracheck"

var _ uracheck.RelevanceCache = (*RelevanceCache)(nil)

// RelevanceCache is a mock implementation of uracheck.RelevanceCache.
type RelevanceCache struct {
	GetFn func(key string) (uracheck.RelevanceResult, bool)
	AddFn func(key string, result uracheck.RelevanceResult)
}

func (c *RelevanceCache) Get(key string) (uracheck.RelevanceResult, bool) {
	return c.GetFn(key)
}

func (c *RelevanceCache) Add(key string, result uracheck.RelevanceResult) {
	c.AddFn(key, result)
}
