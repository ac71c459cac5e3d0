// Package timeutil implements the 40-bit truncated timestamp used in a
// block's date header.
//
// The value is hundredths of a second since BeginningOfTime (2020-01-01
// 00:00:00 UTC), masked to 40 bits, and written on the wire as 8
// little-endian bytes of which only the low 5 carry signal.
package timeutil

import (
	"time"

	"github.com/go-picofeed/picofeed/endian"
)

// BeginningOfTime is the picofeed epoch, in UNIX seconds.
const BeginningOfTime = 1577836800

// mask40 keeps the low 40 bits of a value.
const mask40 = 0x00FF_FFFF_FFFF

// WireSize is the number of bytes a date header occupies on the wire.
const WireSize = 8

// Now returns the current wall-clock time as a 40-bit picofeed timestamp,
// in hundredths of a second since BeginningOfTime.
func Now() uint64 {
	return FromTime(time.Now())
}

// FromTime converts t to a 40-bit picofeed timestamp.
func FromTime(t time.Time) uint64 {
	sec := t.Unix() - BeginningOfTime
	v := uint64(sec)*100 + uint64(t.Nanosecond())/10_000_000

	return v & mask40
}

// Encode writes v into an 8-byte little-endian field; only the low 5
// bytes are meaningful, the upper 3 are always zero.
func Encode(v uint64) [WireSize]byte {
	var buf [WireSize]byte
	endian.LE.PutUint64(buf[:], v&mask40)

	return buf
}

// Decode reads a 40-bit timestamp from an 8-byte little-endian field.
func Decode(buf []byte) uint64 {
	return endian.LE.Uint64(buf[:WireSize]) & mask40
}

// ToEpochMillis converts a picofeed timestamp back to UNIX epoch
// milliseconds.
func ToEpochMillis(v uint64) int64 {
	return int64(v+BeginningOfTime*100) * 10
}
