package claims

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// deterministicID derives a stable 32-character hex identifier from the
// given parts. Identifiers are pure functions of their inputs so repeated
// runs over the same file produce identical output.
func deterministicID(parts ...string) string {
	sum := sha256.Sum256([]byte(strings.Join(parts, "|")))
	return hex.EncodeToString(sum[:])[:32]
}

// shortID is the 10-character variant used for service line identifiers.
func shortID(parts ...string) string {
	return deterministicID(parts...)[:10]
}
