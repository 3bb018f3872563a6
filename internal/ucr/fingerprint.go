package ucr

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Fingerprint computes the deterministic context version of a record: a
// pure function of the record's content and last-modified timestamp. Two
// runs against an unchanged record produce an identical fingerprint, which
// downstream caching and audit correlation depend on.
func Fingerprint(r *ContextRecord) string {
	if r == nil {
		return "v0-empty"
	}
	// json.Marshal emits struct fields in declaration order, so the byte
	// stream is stable for a given record value.
	payload, err := json.Marshal(r)
	if err != nil {
		// Marshal of a plain value aggregate cannot fail in practice;
		// fall back to an identity-only version rather than guessing.
		return fmt.Sprintf("v%d-%s", r.Version, r.ID)
	}
	sum := sha256.Sum256(append(payload, []byte(fmt.Sprintf("|%d", r.UpdatedAt.UnixNano()))...))
	return fmt.Sprintf("v%d-%s", r.Version, hex.EncodeToString(sum[:8]))
}
