// Package cryptox provides the one-way password digest used by the user
// directory. There is deliberately no inverse operation: plaintext
// credentials are never stored, only compared by recomputing the digest.
package cryptox

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashPassword returns the hex-encoded SHA-256 digest of the UTF-8 bytes of
// plaintext. The digest is deterministic, so equality of digests is the
// equality check used at login.
func HashPassword(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}
