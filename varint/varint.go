// Package varint implements the unsigned 7-bit continuation varint
// encoding used for a block's body-length field.
//
// Each byte carries 7 bits of the value, least-significant group first,
// with the high bit set on every byte except the last.
package varint

import "github.com/go-picofeed/picofeed/errs"

// MaxBytes bounds decoding: a uint64 needs at most 10 groups of 7 bits.
const MaxBytes = 10

// Append encodes v and appends it to dst, returning the extended slice.
func Append(dst []byte, v uint64) []byte {
	for v >= 0x80 {
		dst = append(dst, byte(v)|0x80)
		v >>= 7
	}

	return append(dst, byte(v))
}

// Encode encodes v into a freshly allocated byte slice.
func Encode(v uint64) []byte {
	return Append(make([]byte, 0, Size(v)), v)
}

// Size returns the number of bytes Append would write for v, without
// writing them.
func Size(v uint64) int {
	n := 1
	for v >= 0x80 {
		v >>= 7
		n++
	}

	return n
}

// Decode reads a varint from the front of src.
//
// Returns the decoded value and the number of bytes consumed. Fails with
// errs.ErrDecode if src ends before a terminating byte is found, or if
// more than MaxBytes groups are consumed without one (overflow).
func Decode(src []byte) (uint64, int, error) {
	var v uint64
	for i := 0; i < len(src) && i < MaxBytes; i++ {
		b := src[i]
		v |= uint64(b&0x7F) << (7 * uint(i))
		if b < 0x80 {
			return v, i + 1, nil
		}
	}

	return 0, 0, errs.ErrDecode
}
