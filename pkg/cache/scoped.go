package cache

// ScopedKeyer wraps a Keyer with a prefix for namespace isolation.
// This keeps cache entries from separate deployments or tenants apart when
// they share one Redis instance.
//
// Example usage:
//
//	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), "staging:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// AnalysisKey generates a prefixed key for analysis result caching.
func (k *ScopedKeyer) AnalysisKey(inputHash, op string, args ...string) string {
	return k.prefix + k.inner.AnalysisKey(inputHash, op, args...)
}
