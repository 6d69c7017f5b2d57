package bitstring

import (
	"errors"
	"testing"

	"triorng-core/rngerr"
)

func TestFromBytesMSBFirst(t *testing.T) {
	got, err := FromBytes([]byte{0xA5}, 8)
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	if got != "10100101" {
		t.Fatalf("got %q, want 10100101", got)
	}
}

func TestFromBytesTruncatesToExactLength(t *testing.T) {
	for _, bits := range []int{1, 3, 7, 8, 9, 12, 64} {
		buf := make([]byte, (bits+7)/8)
		for i := range buf {
			buf[i] = 0xFF
		}
		got, err := FromBytes(buf, bits)
		if err != nil {
			t.Fatalf("bits=%d: %v", bits, err)
		}
		if got.Len() != bits {
			t.Errorf("bits=%d: length %d", bits, got.Len())
		}
	}
}

func TestFromBytesPreservesLeadingZeros(t *testing.T) {
	got, err := FromBytes([]byte{0x01}, 8)
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	if got != "00000001" {
		t.Fatalf("leading zeros lost: %q", got)
	}
	if got.Hex() != "0x1" {
		t.Errorf("hex %q, want 0x1", got.Hex())
	}
	if got.Decimal() != "1" {
		t.Errorf("decimal %q, want 1", got.Decimal())
	}
}

func TestFromBytesRejectsBadInput(t *testing.T) {
	if _, err := FromBytes([]byte{0xFF}, 0); !rngerr.IsKind(err, rngerr.KindInvalidParameter) {
		t.Fatalf("bits=0: want InvalidParameter, got %v", err)
	}
	if _, err := FromBytes([]byte{0xFF}, -4); !rngerr.IsKind(err, rngerr.KindInvalidParameter) {
		t.Fatalf("bits<0: want InvalidParameter, got %v", err)
	}
	if _, err := FromBytes([]byte{0xFF}, 9); !rngerr.IsKind(err, rngerr.KindInvalidParameter) {
		t.Fatalf("short buffer: want InvalidParameter, got %v", err)
	}
}

func TestParse(t *testing.T) {
	good, err := Parse("0101")
	if err != nil || good != "0101" {
		t.Fatalf("Parse(0101) = %q, %v", good, err)
	}
	for _, bad := range []string{"", "012", "ab", "0101 "} {
		if _, err := Parse(bad); err == nil {
			t.Errorf("Parse(%q): want error", bad)
		}
	}
}

func TestRenderings(t *testing.T) {
	cases := []struct {
		bits     string
		hex, dec string
	}{
		{"0", "0x0", "0"},
		{"1", "0x1", "1"},
		{"1010", "0xa", "10"},
		{"11111111", "0xff", "255"},
		{"0000000100000000", "0x100", "256"},
	}
	for _, c := range cases {
		b, err := Parse(c.bits)
		if err != nil {
			t.Fatalf("Parse(%q): %v", c.bits, err)
		}
		if got := b.Hex(); got != c.hex {
			t.Errorf("%q.Hex() = %q, want %q", c.bits, got, c.hex)
		}
		if got := b.Decimal(); got != c.dec {
			t.Errorf("%q.Decimal() = %q, want %q", c.bits, got, c.dec)
		}
	}
}

func TestBitAndTruncate(t *testing.T) {
	b := BitString("1001")
	want := []int{1, 0, 0, 1}
	for i, w := range want {
		if b.Bit(i) != w {
			t.Errorf("Bit(%d) = %d, want %d", i, b.Bit(i), w)
		}
	}
	if tr := b.Truncate(2); tr != "10" {
		t.Errorf("Truncate(2) = %q", tr)
	}
}

func TestErrorsCarryKind(t *testing.T) {
	_, err := FromBytes(nil, 0)
	var e *rngerr.Error
	if !errors.As(err, &e) {
		t.Fatalf("error is not *rngerr.Error: %v", err)
	}
	if e.Kind != rngerr.KindInvalidParameter {
		t.Fatalf("kind %q", e.Kind)
	}
}
