package feed

import (
	"time"

	"github.com/go-picofeed/picofeed/internal/options"
	"github.com/go-picofeed/picofeed/pfcrypto"
)

// WithCapability overrides the signing/verification/randomness
// collaborator a Feed uses. The default is pfcrypto.NewEd25519Capability().
func WithCapability(capability pfcrypto.Capability) FeedOption {
	return options.NoError(func(f *Feed) {
		f.capability = capability
	})
}

// WithClock overrides the function used to stamp Append'd blocks,
// letting tests and replay tooling control the timestamp deterministically.
// The default is time.Now.
func WithClock(clock func() time.Time) FeedOption {
	return options.NoError(func(f *Feed) {
		f.clock = clock
	})
}

// WithMaxCapacity bounds the feed's total encoded byte size. Append
// fails with errs.ErrFeedFull once appending the next block would
// exceed it. Zero (the default) means unbounded, aside from the
// 65536-block ceiling imposed by the u16 sequence field.
func WithMaxCapacity(bytes int) FeedOption {
	return options.NoError(func(f *Feed) {
		f.maxCapacity = bytes
	})
}
