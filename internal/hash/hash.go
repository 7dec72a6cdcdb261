// Package hash provides content fingerprinting for workflow inputs.
//
// Deckplan records a SHA-256 fingerprint of the outline and template analysis
// documents in the generated plan's metadata, so a plan can always be traced
// back to the exact inputs it was derived from. The package provides a real
// implementation using crypto/sha256 and a fake implementation for testing.
package hash

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hasher provides an abstraction for content fingerprinting.
type Hasher interface {
	// Sum computes the fingerprint of the given content.
	Sum(data []byte) string
}

// SHA256Hasher implements Hasher using SHA-256.
type SHA256Hasher struct{}

// NewSHA256Hasher creates a new SHA256Hasher.
func NewSHA256Hasher() *SHA256Hasher {
	return &SHA256Hasher{}
}

// Sum computes the hex-encoded SHA-256 digest of data.
func (h *SHA256Hasher) Sum(data []byte) string {
	digest := sha256.Sum256(data)
	return hex.EncodeToString(digest[:])
}

// FakeHasher implements Hasher with a constant fingerprint for testing.
type FakeHasher struct {
	// Fingerprint is returned for every input. Defaults to "fakehash"
	// when empty.
	Fingerprint string
}

// Sum returns the predetermined fingerprint.
func (h *FakeHasher) Sum(data []byte) string {
	if h.Fingerprint == "" {
		return "fakehash"
	}
	return h.Fingerprint
}
