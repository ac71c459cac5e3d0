// Package buffer implements the feed's growable byte buffer: a single
// contiguous allocation a Feed owns exclusively, grown by reallocation
// in fixed quanta rather than pooled or shared.
package buffer

// Quantum is the minimum allocation unit; capacity is always a
// multiple of it.
const Quantum = 1024

// Buffer is a growable byte slice, grown in Quantum-sized steps.
type Buffer struct {
	b []byte
}

// New returns a Buffer with an initial capacity of one Quantum and zero length.
func New() *Buffer {
	return &Buffer{b: make([]byte, 0, Quantum)}
}

// Bytes returns the buffer's used bytes ([:Len()]).
func (buf *Buffer) Bytes() []byte {
	return buf.b
}

// Len returns the number of used bytes.
func (buf *Buffer) Len() int {
	return len(buf.b)
}

// Cap returns the allocated capacity.
func (buf *Buffer) Cap() int {
	return cap(buf.b)
}

// Reset truncates the buffer to zero length without releasing capacity.
func (buf *Buffer) Reset() {
	buf.b = buf.b[:0]
}

// SetLen sets the used length to n, which must not exceed the current capacity.
func (buf *Buffer) SetLen(n int) {
	buf.b = buf.b[:n]
}

// Grow ensures capacity for at least minCap total bytes, rounding up to
// the next Quantum and reallocating (preserving contents) if needed.
func (buf *Buffer) Grow(minCap int) {
	if cap(buf.b) >= minCap {
		return
	}

	newCap := roundUp(minCap, Quantum)
	newBuf := make([]byte, len(buf.b), newCap)
	copy(newBuf, buf.b)
	buf.b = newBuf
}

// Append grows the buffer if necessary and appends data, returning the
// offset at which it was written.
func (buf *Buffer) Append(data []byte) int {
	off := len(buf.b)
	buf.Grow(off + len(data))
	buf.b = buf.b[:off+len(data)]
	copy(buf.b[off:], data)

	return off
}

// Reserve grows the buffer if necessary and extends its length by n
// zero-valued bytes, returning the offset of the reserved region. The
// caller writes into buf.Bytes()[offset:offset+n].
func (buf *Buffer) Reserve(n int) int {
	off := len(buf.b)
	buf.Grow(off + n)
	buf.b = buf.b[:off+n]
	clear(buf.b[off:])

	return off
}

func roundUp(n, quantum int) int {
	if n%quantum == 0 {
		return n
	}

	return (n/quantum + 1) * quantum
}
