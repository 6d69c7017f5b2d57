// Package bitstring implements the canonical bit-string value produced by
// every cascade stage.
package bitstring

import (
	"fmt"
	"math/big"
	"strings"

	"triorng-core/rngerr"
)

// BitString is an ordered sequence of '0'/'1' characters of fixed length.
// Leading zeros are preserved; the length always equals the requested bit
// count, so the string itself is the canonical value and integer renderings
// are derived views.
type BitString string

// FromBytes packs the first bits bits of b, most-significant bit first per
// byte. b must cover at least ceil(bits/8) bytes.
func FromBytes(b []byte, bits int) (BitString, error) {
	if bits <= 0 {
		return "", rngerr.InvalidParameterf("", bits, "bit count must be positive, got %d", bits)
	}
	if need := (bits + 7) / 8; len(b) < need {
		return "", rngerr.InvalidParameterf("", bits, "need %d bytes for %d bits, got %d", need, bits, len(b))
	}
	var sb strings.Builder
	sb.Grow(bits)
	for i := 0; i < bits; i++ {
		if b[i/8]&(0x80>>(i%8)) != 0 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return BitString(sb.String()), nil
}

// Parse validates that s contains only '0' and '1' and is non-empty.
func Parse(s string) (BitString, error) {
	if s == "" {
		return "", rngerr.InvalidParameterf("", 0, "empty bit string")
	}
	for i := 0; i < len(s); i++ {
		if c := s[i]; c != '0' && c != '1' {
			return "", rngerr.InvalidParameterf("", len(s), "invalid character %q at position %d", c, i)
		}
	}
	return BitString(s), nil
}

// Len returns the number of bits.
func (b BitString) Len() int { return len(b) }

// Bit returns bit i as 0 or 1. i must be in [0, Len).
func (b BitString) Bit(i int) int {
	if b[i] == '1' {
		return 1
	}
	return 0
}

// Truncate returns the first bits bits. bits must not exceed Len.
func (b BitString) Truncate(bits int) BitString { return b[:bits] }

func (b BitString) String() string { return string(b) }

// Hex renders the bit string as a 0x-prefixed lowercase hexadecimal integer.
// Like the decimal rendering this drops leading zero bits; the BitString is
// the canonical full-width value.
func (b BitString) Hex() string {
	return "0x" + b.toInt().Text(16)
}

// Decimal renders the bit string as a base-10 integer.
func (b BitString) Decimal() string {
	return b.toInt().String()
}

func (b BitString) toInt() *big.Int {
	n, ok := new(big.Int).SetString(string(b), 2)
	if !ok {
		// Unreachable for values built via FromBytes/Parse.
		panic(fmt.Sprintf("bitstring: malformed value %q", string(b)))
	}
	return n
}
