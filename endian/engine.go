// Package endian provides the byte-order engine used to encode and decode
// the multi-byte fields of a picofeed block header.
//
// The wire format is little-endian only: every u16/u64 header payload
// is written and read explicitly via this engine rather than through
// an unsafe pointer cast, so the format is portable across host byte
// orders.
package endian

import "encoding/binary"

// Engine combines ByteOrder and AppendByteOrder from the standard library
// into the single interface picofeed's codecs need.
type Engine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// LE is the little-endian engine mandated by the wire format.
var LE Engine = binary.LittleEndian
