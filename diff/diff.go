// Package diff implements the three-way structural comparison between
// two feeds: equal, one ahead of the other, unrelated, or diverged. It
// inspects only the 64-byte id and psig fields exposed by
// feed.Feed.Get and never re-verifies signatures.
package diff

import (
	"github.com/go-picofeed/picofeed/feed"
)

// Status is the outcome of a Diff.
type Status uint8

const (
	// Equal means the two feeds contain identical blocks.
	Equal Status = iota
	// Ahead means A has blocks beyond the pair's common chain that B lacks.
	Ahead
	// Behind means B has blocks beyond the pair's common chain that A lacks.
	Behind
	// Diverged means the feeds share a common ancestor but disagree on a
	// block after it.
	Diverged
	// Unrelated means no common ancestor was found.
	Unrelated
)

func (s Status) String() string {
	switch s {
	case Equal:
		return "Equal"
	case Ahead:
		return "Ahead"
	case Behind:
		return "Behind"
	case Diverged:
		return "Diverged"
	case Unrelated:
		return "Unrelated"
	default:
		return "Unknown"
	}
}

// Diff compares feeds a and b and returns a Status plus a signed count
// d: negative means a has d more unshared blocks than b, positive means
// b has d more than a. d is 0 for Equal, Diverged, and Unrelated.
func Diff(a, b *feed.Feed) (Status, int, error) {
	if a == b {
		return Equal, 0, nil
	}

	lenA, err := a.Len()
	if err != nil {
		return 0, 0, err
	}
	lenB, err := b.Len()
	if err != nil {
		return 0, 0, err
	}

	if lenA == 0 {
		if lenB == 0 {
			return Equal, 0, nil
		}
		return Behind, lenB, nil
	}
	if lenB == 0 {
		return Ahead, -lenA, nil
	}

	b0, err := b.Get(0)
	if err != nil {
		return 0, 0, err
	}

	// found: -1 = no match yet, 0 = same-parent match (case i), 1 =
	// direct-attachment match (case ii).
	found := -1
	matchIndex := -1

	for i := 0; i < lenA; i++ {
		ai, err := a.Get(i)
		if err != nil {
			return 0, 0, err
		}

		if ai.PSig == b0.PSig {
			found = 0
			matchIndex = i
			break
		}
		if ai.ID == b0.PSig {
			found = 1
			matchIndex = i
			break
		}
	}

	if found == -1 {
		return Unrelated, 0, nil
	}

	if found == 1 && matchIndex == lenA-1 {
		return Behind, lenB, nil
	}

	aStart := matchIndex
	if found == 1 {
		aStart++
	}

	k := 0
	for aStart+k < lenA && k < lenB {
		ak, err := a.Get(aStart + k)
		if err != nil {
			return 0, 0, err
		}
		bk, err := b.Get(k)
		if err != nil {
			return 0, 0, err
		}

		if ak.ID != bk.ID {
			return Diverged, 0, nil
		}
		k++
	}

	remA := lenA - (aStart + k)
	remB := lenB - k

	switch {
	case remA == 0 && remB == 0:
		return Equal, 0, nil
	case remA == 0:
		return Behind, remB, nil
	default:
		return Ahead, -remA, nil
	}
}
