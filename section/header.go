// Package section implements the per-block header fields of the
// picofeed wire format: parsing and appending each `0x00 <type>
// <payload>` header, independent of the signature and body that
// surround them.
package section

import (
	"github.com/go-picofeed/picofeed/endian"
	"github.com/go-picofeed/picofeed/errs"
	"github.com/go-picofeed/picofeed/timeutil"
)

// HeaderSet holds the decoded (or pending-encode) header fields of one
// block. Zero value fields are "empty" and are omitted by Encode.
type HeaderSet struct {
	Parent      [64]byte // predecessor's id; all-zero iff genesis
	Author      [32]byte // public key that verifies id
	Seq         uint16
	Compression uint8
	Date        uint64 // 40-bit picofeed timestamp
	Geo0        uint64
	Geo1        uint64

	// HasAuthor records whether an author header was actually present on
	// decode, since a verifying decode must fail when it is absent
	// regardless of what zero value Author happens to hold.
	HasAuthor bool
}

var zero64 [64]byte
var zero32 [32]byte

// Encode appends this header set to dst in the canonical emission order:
// parent, author, sequence, compression, date, geocode0, geocode1. A
// field is omitted when it is semantically empty.
func (h HeaderSet) Encode(dst []byte) []byte {
	if h.Parent != zero64 {
		dst = append(dst, headerTag, TagParentSig)
		dst = append(dst, h.Parent[:]...)
	}

	if h.Author != zero32 {
		dst = append(dst, headerTag, TagAuthor)
		dst = append(dst, h.Author[:]...)
	}

	if h.Seq != 0 {
		dst = append(dst, headerTag, TagSequence)
		dst = endian.LE.AppendUint16(dst, h.Seq)
	}

	if h.Compression != 0 {
		dst = append(dst, headerTag, TagCompression, h.Compression)
	}

	if h.Date != 0 {
		dst = append(dst, headerTag, TagDate)
		wire := timeutil.Encode(h.Date)
		dst = append(dst, wire[:]...)
	}

	if h.Geo0 != 0 {
		dst = append(dst, headerTag, TagGeoOrigin)
		dst = endian.LE.AppendUint64(dst, h.Geo0)
	}

	if h.Geo1 != 0 {
		dst = append(dst, headerTag, TagGeoDest)
		dst = endian.LE.AppendUint64(dst, h.Geo1)
	}

	return dst
}

// EncodedSize returns the number of bytes Encode would append: 2 bytes
// of tag overhead plus the payload width for each non-empty header.
func (h HeaderSet) EncodedSize() int {
	n := 0
	if h.Parent != zero64 {
		n += 2 + 64
	}
	if h.Author != zero32 {
		n += 2 + 32
	}
	if h.Seq != 0 {
		n += 2 + 2
	}
	if h.Compression != 0 {
		n += 2 + 1
	}
	if h.Date != 0 {
		n += 2 + 8
	}
	if h.Geo0 != 0 {
		n += 2 + 8
	}
	if h.Geo1 != 0 {
		n += 2 + 8
	}

	return n
}

// Parse reads zero or more headers from the front of src, stopping at
// the first byte that isn't the 0x00 header tag. It accepts headers in
// any order, unlike Encode which always emits the canonical order.
//
// Returns the parsed HeaderSet and the number of bytes consumed.
// Fails with errs.ErrUnsupportedHeader for the POP-version tag,
// errs.ErrUnknownHeader for a type not in the table, errs.ErrDuplicateHeader
// if a type appears twice, and errs.ErrDecode if src is too short for a
// payload its type declares.
func Parse(src []byte) (HeaderSet, int, error) {
	var h HeaderSet

	seen := make(map[byte]bool, 8)
	off := 0

	for off < len(src) && src[off] == headerTag {
		if off+2 > len(src) {
			return HeaderSet{}, 0, errs.ErrDecode
		}

		id := src[off+1]
		payloadStart := off + 2

		if id == TagPOPVersion {
			return HeaderSet{}, 0, errs.ErrUnsupportedHeader
		}

		width, known := fieldWidth(id)
		if !known {
			return HeaderSet{}, 0, errs.ErrUnknownHeader
		}

		if seen[id] {
			return HeaderSet{}, 0, errs.ErrDuplicateHeader
		}
		seen[id] = true

		if payloadStart+width > len(src) {
			return HeaderSet{}, 0, errs.ErrDecode
		}
		payload := src[payloadStart : payloadStart+width]

		switch id {
		case TagParentSig:
			copy(h.Parent[:], payload)
		case TagAuthor:
			copy(h.Author[:], payload)
			h.HasAuthor = true
		case TagSequence:
			h.Seq = endian.LE.Uint16(payload)
		case TagCompression:
			h.Compression = payload[0]
		case TagDate:
			h.Date = timeutil.Decode(payload)
		case TagGeoOrigin:
			h.Geo0 = endian.LE.Uint64(payload)
		case TagGeoDest:
			h.Geo1 = endian.LE.Uint64(payload)
		case TagMIMECode, TagAppTag:
			// Recognized reserved fields with no semantics in this core;
			// consumed so NextOffset-style decoding agrees byte-for-byte.
		}

		off = payloadStart + width
	}

	return h, off, nil
}

// fieldWidth returns the payload width for one of the known header types.
func fieldWidth(id byte) (int, bool) {
	switch id {
	case TagCompression:
		return 1, true
	case TagSequence, TagMIMECode:
		return 2, true
	case TagAppTag:
		return 4, true
	case TagDate, TagGeoOrigin, TagGeoDest:
		return 8, true
	case TagAuthor:
		return 32, true
	case TagParentSig:
		return 64, true
	default:
		return 0, false
	}
}
