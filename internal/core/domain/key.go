package domain

// ScopeID identifies an independent compilation context. Identical bytes
// compiled under different scopes never share a cache entry.
type ScopeID string

const (
	// ScopeGlobal is the scope for shared templates (layouts and partials).
	ScopeGlobal ScopeID = "global"

	// ScopePages is the scope for page templates.
	ScopePages ScopeID = "pages"
)

// String returns the scope identifier as a string.
func (s ScopeID) String() string {
	return string(s)
}

// CacheKey identifies a compiled artifact by scope and content fingerprint.
// Equality is structural over both fields, so the zero key is usable as a
// map key like any other.
type CacheKey struct {
	Scope       ScopeID
	Fingerprint Fingerprint
}

// NewCacheKey builds a cache key for content bytes under the given scope.
func NewCacheKey(scope ScopeID, content []byte) CacheKey {
	return CacheKey{
		Scope:       scope,
		Fingerprint: ComputeFingerprint(content),
	}
}

// String returns a stable textual form of the key, suitable for use as a
// store key or a per-key serialization token.
func (k CacheKey) String() string {
	return string(k.Scope) + "|" + k.Fingerprint.String()
}
