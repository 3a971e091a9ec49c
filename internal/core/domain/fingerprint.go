// Package domain contains the core types for content-addressed template
// compilation.
package domain

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint is a deterministic digest of a unit's resolved content.
// Two units with identical bytes always produce the same fingerprint,
// regardless of their paths or timestamps.
type Fingerprint uint64

// ComputeFingerprint derives the fingerprint for the given content bytes.
// It is a total function: any byte slice, including empty and nil, yields
// a valid fingerprint.
func ComputeFingerprint(content []byte) Fingerprint {
	return Fingerprint(xxhash.Sum64(content))
}

// String returns the fingerprint as a fixed-width hex string.
func (f Fingerprint) String() string {
	return fmt.Sprintf("%016x", uint64(f))
}
