// Package provider defines the candidate-item input boundary: the ranked
// keyword data provider interface, a TTL-bounded response cache, and the
// fingerprint helpers collaborators use to cache classified results. The
// pipeline itself never performs network I/O; provider-fetched arrays are
// handed to it already resolved.
package provider

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"brandscope/internal/types"
)

// Provider fetches ranked keyword items for a domain. Implementations
// wrap the third-party data API; this core treats them as black boxes.
type Provider interface {
	FetchRankedItems(ctx context.Context, domain, locale string, limit int) ([]types.CandidateItem, error)
}

// NormalizeDomain canonicalizes a domain for cache keying: lowercased,
// scheme and www stripped, path dropped.
func NormalizeDomain(domain string) string {
	d := strings.ToLower(strings.TrimSpace(domain))
	d = strings.TrimPrefix(d, "https://")
	d = strings.TrimPrefix(d, "http://")
	d = strings.TrimPrefix(d, "www.")
	if i := strings.IndexAny(d, "/?#"); i >= 0 {
		d = d[:i]
	}
	return d
}

// CacheKey builds the response-cache key from normalized domain and query
// parameters.
func CacheKey(domain, locale string, limit int) string {
	return fmt.Sprintf("%s|%s|%d", NormalizeDomain(domain), strings.ToLower(locale), limit)
}

// ItemFingerprint identifies a candidate item by content, for result-cache
// keying. Identical items always produce identical fingerprints.
func ItemFingerprint(item types.CandidateItem) string {
	sum := sha256.Sum256(fmt.Appendf(nil, "%s|%d|%d|%.4f",
		strings.ToLower(strings.TrimSpace(item.Keyword)), item.SearchVolume, item.Position, item.CPC))
	return hex.EncodeToString(sum[:8])
}

// ResultCacheKey is the key collaborators use to cache a ClassifiedItem:
// recomputation under the same context version must yield the same result,
// so the cache is an optimization, never a correctness requirement.
func ResultCacheKey(contextVersion, moduleID string, itemFingerprint string) string {
	return fmt.Sprintf("%s|%s|%s", contextVersion, moduleID, itemFingerprint)
}
