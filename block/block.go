// Package block implements the picofeed block codec: the
// self-describing header layout, canonical encode/decode rules, and the
// signature binding between a block's headers+body and its predecessor.
package block

import (
	"fmt"

	"github.com/go-picofeed/picofeed/pfcrypto"
	"github.com/go-picofeed/picofeed/section"
)

// Block is the decoded logical record of a single feed entry.
type Block struct {
	ID          [64]byte // signature over everything after it
	PSig        [64]byte // predecessor's ID; all-zero iff genesis
	Author      [32]byte
	Seq         uint16
	Date        uint64 // 40-bit picofeed timestamp
	Compression uint8
	Geo0        uint64
	Geo1        uint64
	Body        []byte
}

// IsGenesis reports whether this block has no predecessor.
func (b *Block) IsGenesis() bool {
	return b.PSig == [64]byte{}
}

// String returns a short debug summary, not the wire encoding.
func (b *Block) String() string {
	return fmt.Sprintf("Block{id=%x seq=%d genesis=%t bodyLen=%d}", b.ID[:4], b.Seq, b.IsGenesis(), len(b.Body))
}

func (b *Block) headers() section.HeaderSet {
	return section.HeaderSet{
		Parent:      b.PSig,
		Author:      b.Author,
		Seq:         b.Seq,
		Compression: b.Compression,
		Date:        b.Date,
		Geo0:        b.Geo0,
		Geo1:        b.Geo1,
	}
}

func fromHeaders(h section.HeaderSet) Block {
	return Block{
		PSig:        h.Parent,
		Author:      h.Author,
		Seq:         h.Seq,
		Compression: h.Compression,
		Date:        h.Date,
		Geo0:        h.Geo0,
		Geo1:        h.Geo1,
	}
}

// SignatureSize and AuthorSize mirror pfcrypto's sizes, re-exported so
// callers working only with the block package don't need to import it.
const (
	SignatureSize = pfcrypto.SignatureSize
	AuthorSize    = pfcrypto.KeySize
)
