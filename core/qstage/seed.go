package qstage

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"

	"lukechampine.com/blake3"

	"triorng-core/influence"
)

// SimSeed derives the simulator seed for one seeded quantum stage run:
//
//	simSeed = u64be(BLAKE3-256(seed_be8 || 0x00 || tag || 0x00 || maskBytes)[:8])
//
// The stage tag decorrelates the two quantum stages under a single user seed;
// the influence mask ties the stage's measurement draws to its circuit
// structure, so upstream entropy changes the stage output even though the
// phase and flip gates leave computational-basis probabilities untouched.
// This derivation is a compatibility contract: changing it changes every
// seeded output.
func SimSeed(seed int64, tag string, inf influence.Params) uint64 {
	var sb [8]byte
	binary.BigEndian.PutUint64(sb[:], uint64(seed))

	h := blake3.New(32, nil)
	_, _ = h.Write(sb[:])
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(tag))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write(inf.MaskBytes())
	sum := h.Sum(nil)
	return binary.BigEndian.Uint64(sum[:8])
}

// randomSeed draws a one-off simulator seed from the OS entropy source for
// unseeded runs.
func randomSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return binary.BigEndian.Uint64(b[:]), nil
}
