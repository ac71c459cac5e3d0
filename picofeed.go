// Package picofeed provides append-only, Ed25519-signed block feeds for
// peer-to-peer distribution: a byte-level wire format, a growable feed
// buffer with verification caching, and a three-way diff between feeds.
//
// # Basic Usage
//
// Creating a feed and appending signed blocks:
//
//	f, _ := picofeed.NewFeed()
//	kp, _ := picofeed.NewKeypair()
//
//	_ = f.Append([]byte("hello"), kp)
//	_ = f.Append([]byte("world"), kp)
//
//	n, _ := f.Len()
//	for i := 0; i < n; i++ {
//	    blk, _ := f.Get(i)
//	    fmt.Println(string(blk.Body))
//	}
//
// Comparing two feeds:
//
//	status, d, _ := diff.Diff(a, b)
//
// This package is a thin convenience layer over block, feed, and diff;
// advanced usage (custom capabilities, clocks, capacity limits) should
// use those packages directly.
package picofeed

import (
	"github.com/go-picofeed/picofeed/feed"
	"github.com/go-picofeed/picofeed/pfcrypto"
)

// NewFeed returns an empty feed using the default Ed25519 capability
// and wall-clock time source.
func NewFeed(opts ...feed.FeedOption) (*feed.Feed, error) {
	return feed.New(opts...)
}

// NewKeypair derives a fresh Ed25519 keypair using crypto/rand.
func NewKeypair() (pfcrypto.Keypair, error) {
	return pfcrypto.NewEd25519Capability().Keypair()
}
