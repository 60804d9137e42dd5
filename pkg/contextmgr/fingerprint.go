package contextmgr

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/offgrid-ops/commandcenter/pkg/config"
)

// CacheKey fingerprints a bundle request. The normalized query (lowercase,
// whitespace collapsed) keeps trivially-reworded repeats on the same key;
// the knowledge-base version makes every successful sync invalidate prior
// bundles without touching the cache.
func CacheKey(qt config.QueryType, query, sessionID, userID string, kbVersion uint64) string {
	payload := fmt.Sprintf("%s\x1f%s\x1f%s\x1f%s\x1f%d",
		qt, normalizeQuery(query), sessionID, userID, kbVersion)
	sum := sha256.Sum256([]byte(payload))
	return "bundle:" + hex.EncodeToString(sum[:])
}
