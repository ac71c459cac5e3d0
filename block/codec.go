package block

import (
	"fmt"

	"github.com/go-picofeed/picofeed/errs"
	"github.com/go-picofeed/picofeed/pfcrypto"
	"github.com/go-picofeed/picofeed/section"
	"github.com/go-picofeed/picofeed/varint"
)

// Size returns the number of bytes Encode would write for blk: the
// 64-byte id, the header area, the body-length varint, and the body
// itself.
//
// Fails with errs.ErrEmptyBody if blk.Body is empty, matching the
// encoding contract's precondition.
func Size(blk *Block) (int, error) {
	if len(blk.Body) == 0 {
		return 0, errs.ErrEmptyBody
	}

	hdrSize := blk.headers().EncodedSize()
	lenSize := varint.Size(uint64(len(blk.Body)))

	return 64 + hdrSize + lenSize + len(blk.Body), nil
}

// Encode writes blk into dst starting at offset 0, signing it with kp
// via capability, and returns the number of bytes written.
//
// dst must have length at least Size(blk). The body is copied into its
// final position before the headers are emitted so that dst may alias
// blk.Body; Go's built-in copy is safe for overlapping slices in
// either direction.
func Encode(dst []byte, blk *Block, kp pfcrypto.Keypair, capability pfcrypto.Capability) (int, error) {
	size, err := Size(blk)
	if err != nil {
		return 0, err
	}
	if len(dst) < size {
		return 0, errs.ErrBufferTooSmall
	}

	hdr := blk.headers()
	hdrSize := hdr.EncodedSize()
	lenSize := varint.Size(uint64(len(blk.Body)))
	bodyOff := 64 + hdrSize + lenSize

	// Place the body at its final offset first so an in-place re-encode
	// (dst aliasing blk.Body) is safe regardless of write order below.
	copy(dst[bodyOff:size], blk.Body)

	hdr.Encode(dst[:64])
	varint.Append(dst[:64+hdrSize], uint64(len(blk.Body)))

	sig, err := capability.Sign(kp, dst[64:size])
	if err != nil {
		return 0, err
	}
	copy(dst[:64], sig[:])

	return size, nil
}

// Decode reads a block starting at offset 0 of src.
//
// When verify is true, the decoded block's id must verify against its
// author header over bytes [64, total); a missing author header or a
// failed check both surface as errs.ErrVerifyFailed. A header area or
// body length that cannot be decoded (as a tampered block can produce)
// then also matches errs.ErrVerifyFailed, wrapped together with the
// specific decode error.
//
// Returns the decoded block and the number of bytes consumed.
func Decode(src []byte, verify bool, capability pfcrypto.Capability) (Block, int, error) {
	if len(src) < 64 {
		return Block{}, 0, errs.ErrDecode
	}

	fail := func(err error) (Block, int, error) {
		if verify {
			err = fmt.Errorf("%w: %w", errs.ErrVerifyFailed, err)
		}
		return Block{}, 0, err
	}

	hs, hLen, err := section.Parse(src[64:])
	if err != nil {
		return fail(err)
	}

	lenOff := 64 + hLen
	bodyLen, vLen, err := varint.Decode(src[lenOff:])
	if err != nil {
		return fail(err)
	}

	bodyStart := lenOff + vLen
	total := bodyStart + int(bodyLen)
	if total > len(src) {
		return fail(errs.ErrDecode)
	}

	blk := fromHeaders(hs)
	copy(blk.ID[:], src[:64])
	blk.Body = src[bodyStart:total]

	if verify {
		if !hs.HasAuthor {
			return Block{}, 0, errs.ErrVerifyFailed
		}
		if !capability.Verify(hs.Author, src[64:total], blk.ID) {
			return Block{}, 0, errs.ErrVerifyFailed
		}
	}

	return blk, total, nil
}

// NextOffset returns the total encoded size of the block at the front
// of src without decoding the body or checking its signature. It
// infers header widths from the tag ID alone, so it runs in
// O(headers) independent of body size.
func NextOffset(src []byte) (int, error) {
	if len(src) < 64 {
		return 0, errs.ErrDecode
	}

	off := 64
	for off < len(src) && src[off] == 0x00 {
		if off+2 > len(src) {
			return 0, errs.ErrDecode
		}

		width, ok := section.FastWidth(src[off+1])
		if !ok {
			return 0, errs.ErrDecode
		}
		off += 2 + width
	}

	bodyLen, vLen, err := varint.Decode(src[off:])
	if err != nil {
		return 0, err
	}

	total := off + vLen + int(bodyLen)
	if total > len(src) {
		return 0, errs.ErrDecode
	}

	return total, nil
}
