// Package sha256 fingerprints page bodies for the crawler's duplicate
// detection. Sites commonly serve the same document under several URL
// aliases (/about vs /about-us); matching digests collapse them.
package sha256

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hasher implements crawler.Hasher over SHA-256.
type Hasher struct{}

// New returns a body hasher.
func New() Hasher {
	return Hasher{}
}

// Hash returns the hex SHA-256 digest of data.
func (Hasher) Hash(data []byte) (string, error) {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
