// Package feed implements the append-only block buffer: a single
// growable byte buffer owned by one Feed, plus the verification cache
// that lets re-reading already-verified blocks skip signature checks.
package feed

import (
	"time"

	"github.com/go-picofeed/picofeed/block"
	"github.com/go-picofeed/picofeed/errs"
	"github.com/go-picofeed/picofeed/internal/buffer"
	"github.com/go-picofeed/picofeed/internal/options"
	"github.com/go-picofeed/picofeed/pfcrypto"
	"github.com/go-picofeed/picofeed/timeutil"
)

// Feed is an append-only sequence of signed blocks backed by one
// exclusively-owned buffer.Buffer. The zero value is not usable; use New.
//
// A Feed is NOT safe for concurrent use. Each instance should be driven
// by a single goroutine at a time.
type Feed struct {
	buf *buffer.Buffer

	// verifiedTo is the verification-cache high-water mark: byte offsets
	// below it have already been signature-checked by a prior verifying
	// decode, so Iterator may skip re-verifying them. It is reset to 0
	// on any operation that reduces the feed's tail.
	verifiedTo int

	// lastOffset is the byte offset of the most recently appended block,
	// or -1 when the feed is empty. Kept up to date incrementally so
	// Append can read the chain tail without walking from offset 0.
	lastOffset int

	capability  pfcrypto.Capability
	clock       func() time.Time
	maxCapacity int
}

// FeedOption configures a Feed at construction time.
type FeedOption = options.Option[*Feed]

// New returns an empty Feed configured by opts.
func New(opts ...FeedOption) (*Feed, error) {
	f := &Feed{
		buf:        buffer.New(),
		lastOffset: -1,
		capability: pfcrypto.NewEd25519Capability(),
		clock:      time.Now,
	}

	if err := options.Apply(f, opts...); err != nil {
		return nil, err
	}

	return f, nil
}

// Len returns the number of blocks currently in the feed.
func (f *Feed) Len() (int, error) {
	off := 0
	n := 0
	for off < f.buf.Len() {
		size, err := block.NextOffset(f.buf.Bytes()[off:])
		if err != nil {
			return 0, err
		}
		off += size
		n++
	}

	return n, nil
}

// offsetOf walks forward from the start of the feed and returns the
// byte offset of block idx, failing with errs.ErrIndexOutOfRange if the
// feed has fewer than idx+1 blocks.
func (f *Feed) offsetOf(idx int) (int, error) {
	if idx < 0 {
		return 0, errs.ErrIndexOutOfRange
	}

	off := 0
	for i := 0; i < idx; i++ {
		if off >= f.buf.Len() {
			return 0, errs.ErrIndexOutOfRange
		}
		size, err := block.NextOffset(f.buf.Bytes()[off:])
		if err != nil {
			return 0, err
		}
		off += size
	}

	if off >= f.buf.Len() {
		return 0, errs.ErrIndexOutOfRange
	}

	return off, nil
}

// allOffsets returns the byte offset of every block in the feed plus a
// final sentinel entry equal to the feed's tail.
func (f *Feed) allOffsets() ([]int, error) {
	var offs []int

	off := 0
	for off < f.buf.Len() {
		offs = append(offs, off)
		size, err := block.NextOffset(f.buf.Bytes()[off:])
		if err != nil {
			return nil, err
		}
		off += size
	}
	offs = append(offs, off)

	return offs, nil
}

// Get decodes and returns the block at idx without verifying its
// signature: a plain lookup.
func (f *Feed) Get(idx int) (block.Block, error) {
	off, err := f.offsetOf(idx)
	if err != nil {
		return block.Block{}, err
	}

	blk, _, err := block.Decode(f.buf.Bytes()[off:], false, f.capability)
	return blk, err
}

// Append signs and appends a new block carrying body, chained onto the
// feed's current tail block (or written as a genesis block when the
// feed is empty).
func (f *Feed) Append(body []byte, kp pfcrypto.Keypair) error {
	blk := block.Block{
		Author: kp.Public,
		Date:   timeutil.FromTime(f.clock()),
		Body:   body,
	}

	if f.lastOffset >= 0 {
		last, _, err := block.Decode(f.buf.Bytes()[f.lastOffset:], false, f.capability)
		if err != nil {
			return err
		}
		if last.Seq == 0xFFFF {
			return errs.ErrFeedFull
		}

		blk.PSig = last.ID
		blk.Seq = last.Seq + 1
	}

	size, err := block.Size(&blk)
	if err != nil {
		return err
	}

	if f.maxCapacity > 0 && f.buf.Len()+size > f.maxCapacity {
		return errs.ErrFeedFull
	}

	off := f.buf.Reserve(size)
	if _, err := block.Encode(f.buf.Bytes()[off:off+size], &blk, kp, f.capability); err != nil {
		f.buf.SetLen(off)
		return err
	}

	f.lastOffset = off
	return nil
}

// Truncate drops every block from index height onward. Truncating to
// height 0 empties the feed. The verification cache is always cleared,
// matching the reference implementation's behavior of clearing it on
// every truncate rather than only when the tail actually shrinks.
func (f *Feed) Truncate(height int) error {
	if height == 0 {
		f.buf.Reset()
		f.verifiedTo = 0
		f.lastOffset = -1
		return nil
	}

	off, err := f.offsetOf(height - 1)
	if err != nil {
		return err
	}

	size, err := block.NextOffset(f.buf.Bytes()[off:])
	if err != nil {
		return err
	}

	f.buf.SetLen(off + size)
	f.verifiedTo = 0
	f.lastOffset = off
	return nil
}

// Iterate returns an Iterator positioned at the start of the feed.
func (f *Feed) Iterate() *Iterator {
	return &Iterator{f: f}
}

func resolveIndex(i, n int) int {
	if i < 0 {
		return n + i
	}
	return i
}

// Slice copies the half-open block range [start, end) of src into dst,
// which is truncated first. Negative indices resolve relative to
// src's length, as with Go slice expressions. Returns the number of
// blocks copied.
//
// The target range's bytes are copied out before dst is touched, so
// slicing a feed into itself (dst == src) is safe.
func Slice(dst, src *Feed, start, end int) (int, error) {
	n, err := src.Len()
	if err != nil {
		return 0, err
	}

	start = resolveIndex(start, n)
	end = resolveIndex(end, n)
	if start < 0 || end < start || end > n {
		return 0, errs.ErrIndexOutOfRange
	}

	offs, err := src.allOffsets()
	if err != nil {
		return 0, err
	}
	byteStart, byteEnd := offs[start], offs[end]

	region := make([]byte, byteEnd-byteStart)
	copy(region, src.buf.Bytes()[byteStart:byteEnd])

	dst.buf.Reset()
	dst.buf.Append(region)
	dst.verifiedTo = 0
	dst.lastOffset = -1
	if end > start {
		dst.lastOffset = offs[end-1] - byteStart
	}

	return end - start, nil
}

// Clone copies all of src's blocks and its verification cache into dst,
// which must be empty. Unlike Slice, the cache high-water mark is
// preserved rather than reset, since no bytes are being dropped.
func Clone(dst, src *Feed) error {
	if dst.buf.Len() != 0 {
		return errs.ErrFeedNotEmpty
	}

	dst.buf.Append(src.buf.Bytes())
	dst.verifiedTo = src.verifiedTo
	dst.lastOffset = src.lastOffset
	dst.capability = src.capability
	dst.clock = src.clock
	dst.maxCapacity = src.maxCapacity

	return nil
}
