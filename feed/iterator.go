package feed

import (
	"io"

	"github.com/go-picofeed/picofeed/block"
)

// Iterator walks a Feed from its start, decoding one block per Next
// call and transparently consulting the feed's verification cache so
// blocks below the high-water mark are not re-verified.
type Iterator struct {
	f      *Feed
	offset int
	idx    int
}

// Next decodes the next block and advances the iterator. It returns
// io.EOF once the feed's tail is reached.
func (it *Iterator) Next() (block.Block, error) {
	if it.offset >= it.f.buf.Len() {
		return block.Block{}, io.EOF
	}

	verify := it.offset >= it.f.verifiedTo

	blk, n, err := block.Decode(it.f.buf.Bytes()[it.offset:], verify, it.f.capability)
	if err != nil {
		return block.Block{}, err
	}

	next := it.offset + n
	if next > it.f.verifiedTo {
		it.f.verifiedTo = next
	}

	it.offset = next
	it.idx++

	return blk, nil
}

// Index returns the index of the block most recently returned by Next,
// or -1 before the first call.
func (it *Iterator) Index() int {
	return it.idx - 1
}
