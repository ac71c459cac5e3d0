// Package errs defines the sentinel errors returned across picofeed's
// packages. Callers match on these with errors.Is; wrapped context is
// added at the call site with fmt.Errorf("...: %w", errs.ErrXxx).
package errs

import "errors"

var (
	// ErrUnknownHeader is returned when a block header tag is not in the
	// header table.
	ErrUnknownHeader = errors.New("picofeed: unknown header type")

	// ErrUnsupportedHeader is returned for a recognized but rejected header,
	// currently only the POP-version tag (0x00).
	ErrUnsupportedHeader = errors.New("picofeed: unsupported header type")

	// ErrDuplicateHeader is returned when a header tag appears twice in one block.
	ErrDuplicateHeader = errors.New("picofeed: duplicate header type")

	// ErrVerifyFailed is returned when a block's signature does not verify,
	// including when no author header was present to verify against.
	ErrVerifyFailed = errors.New("picofeed: signature verification failed")

	// ErrDecode is returned for malformed input: truncated buffers, varint
	// overflow, or offsets that fall outside the supplied bytes.
	ErrDecode = errors.New("picofeed: decode error")

	// ErrFeedFull is returned when an append would overflow the u16 seq
	// field, or would exceed a feed's configured maximum capacity.
	ErrFeedFull = errors.New("picofeed: feed is full")

	// ErrEmptyBody is returned when encoding a block with a zero-length or nil body.
	ErrEmptyBody = errors.New("picofeed: block body must be non-empty")

	// ErrUnrelated names the diff outcome in which the two feeds share no
	// common ancestor. diff.Diff reports that outcome as the diff.Unrelated
	// status and does not return this error.
	ErrUnrelated = errors.New("picofeed: feeds are unrelated")

	// ErrDiverged names the diff outcome in which the two feeds share a
	// common ancestor but disagree on a block after it. diff.Diff reports
	// that outcome as the diff.Diverged status and does not return this error.
	ErrDiverged = errors.New("picofeed: feeds have diverged")

	// ErrIndexOutOfRange is returned by Feed.Get, Feed.Truncate and
	// feed.Slice for an index outside the feed's block count.
	ErrIndexOutOfRange = errors.New("picofeed: index out of range")

	// ErrFeedNotEmpty is returned when Clone's destination feed is not empty.
	ErrFeedNotEmpty = errors.New("picofeed: destination feed must be empty")

	// ErrBufferTooSmall is returned when Encode is given a destination
	// slice shorter than Size(block) requires.
	ErrBufferTooSmall = errors.New("picofeed: destination buffer too small")
)
