// Package entropy implements the cryptographic entropy stage of the cascade.
package entropy

import (
	"crypto/rand"
	"encoding/binary"
	"io"

	"lukechampine.com/blake3"

	"triorng-core/bitstring"
	"triorng-core/rngerr"
)

// StageName is the user-facing name of this stage.
const StageName = "openssl"

// Source produces bit strings from an OS-level cryptographically secure byte
// reader, or deterministically from a seed. Construct one per invocation;
// it carries no state between calls.
type Source struct {
	r io.Reader
}

// New returns a Source backed by crypto/rand.
func New() *Source { return &Source{r: rand.Reader} }

// NewFrom returns a Source backed by r. Used by tests to inject fixed bytes.
func NewFrom(r io.Reader) *Source { return &Source{r: r} }

// Generate returns a bit string of exactly bits bits.
//
// Unseeded (seed == nil), ceil(bits/8) bytes are drawn from the underlying
// reader. Seeded, the bytes come from a BLAKE3 XOF over the 8-byte big-endian
// seed and nothing else, so identical seeds yield identical output across
// runs and platforms. Bytes are unpacked most-significant bit first and the
// result is truncated to the exact bit count.
func (s *Source) Generate(bits int, seed *int64) (bitstring.BitString, error) {
	if bits <= 0 {
		return "", rngerr.InvalidParameterf(StageName, bits, "bit count must be positive, got %d", bits)
	}
	buf := make([]byte, (bits+7)/8)
	if seed == nil {
		if _, err := io.ReadFull(s.r, buf); err != nil {
			return "", rngerr.WrapSimulation(StageName, bits, err)
		}
	} else {
		expandSeed(*seed, buf)
	}
	return bitstring.FromBytes(buf, bits)
}

// expandSeed fills buf with the BLAKE3 XOF stream keyed by seed.
func expandSeed(seed int64, buf []byte) {
	var sb [8]byte
	binary.BigEndian.PutUint64(sb[:], uint64(seed))
	h := blake3.New(32, nil)
	_, _ = h.Write(sb[:])
	_, _ = io.ReadFull(h.XOF(), buf)
}
