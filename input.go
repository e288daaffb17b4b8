package codec

import (
	"encoding/binary"
	"io"
)

// maxSkipChunk bounds a single skip/discard pass, mirroring the platform
// array-size cap mentioned in the design notes (Java's Integer.MAX_VALUE).
// Kept well below that so Skip never asks fill for an unreasonably large
// single read.
const maxSkipChunk = 1 << 20

// Input is the pull-mode windowed buffer decoder: the Window Manager plus
// the typed primitive, varint, bulk-array, and string readers built on top
// of it (spec §2). An Input is owned exclusively by its caller; like
// teacher's Reader/Writer it is not safe for concurrent use.
//
// Unlike Reader/Writer, Input does not latch a first error: every decode
// method returns its own error, because a caller that knows the framing
// boundary may legitimately continue reading after a failed primitive (spec
// §7 propagation policy). A failed primitive leaves Input's cursor state
// unspecified; the caller is responsible for treating the instance as
// poisoned unless it independently re-synchronizes.
type Input struct {
	buf      []byte
	position int
	limit    int
	capacity int
	total    int64

	order  binary.ByteOrder
	filler Filler
	closer io.Closer

	// chars is the growable decode scratch for ReadString/ReadStringBuilder.
	// It only ever grows (design notes: new_size = max(needed, old*2)) and is
	// never exposed to callers.
	chars []uint16
}

const initialCharsCap = 32

// NewInputBytes constructs an Input over a caller-owned byte slice with no
// refill source: once the slice is exhausted, require fails with
// ErrBufferUnderflow and optional reports -1. This is the "from memory"
// construction path.
func NewInputBytes(b []byte) *Input {
	in := &Input{order: Order}
	in.SetBuffer(b)
	return in
}

// NewInputRegion constructs an Input over a sub-region of a larger byte
// array without copying, mirroring Kryo's Input(byte[], offset, count)
// constructor used to decode a slice of a shared arena.
func NewInputRegion(buf []byte, offset, count int) *Input {
	return NewInputBytes(buf[offset : offset+count])
}

// NewInputSize constructs an empty Input with the given window capacity and
// no buffer contents or source; callers must SetBuffer or SetSource before
// reading. It exists for callers that want to pre-size the window and bind
// a source or buffer later (Kryo's Input(int bufferSize)).
func NewInputSize(capacity int) *Input {
	return &Input{
		buf:      make([]byte, capacity),
		capacity: capacity,
		order:    Order,
	}
}

// NewInputStream constructs an Input that refills from r using a window of
// bufferSize bytes. r is closed when the Input is closed, if it implements
// io.Closer.
func NewInputStream(r io.Reader, bufferSize int) *Input {
	in := NewInputFiller(&readerFiller{r: r}, bufferSize)
	if c, ok := r.(io.Closer); ok {
		in.closer = c
	}
	return in
}

// NewInputFiller constructs an Input backed by a custom Filler strategy
// object, per the design notes' re-architecture of Kryo's overridable
// fill() method into a boxed capability rather than a subclass hook.
func NewInputFiller(f Filler, bufferSize int) *Input {
	return &Input{
		buf:      make([]byte, bufferSize),
		capacity: bufferSize,
		order:    Order,
		filler:   f,
	}
}

// WithByteOrder sets the byte order used for fixed-width multi-byte
// primitives and bulk arrays (varints and strings are byte-order
// independent) and returns in for chaining, matching teacher's
// Reader.WithByteOrder/Writer.WithByteOrder convention.
func (in *Input) WithByteOrder(order binary.ByteOrder) *Input {
	in.order = order
	return in
}

// ByteOrder returns the byte order currently configured for fixed-width
// primitives.
func (in *Input) ByteOrder() binary.ByteOrder { return in.order }

// SetByteOrder is the non-chaining form of WithByteOrder.
func (in *Input) SetByteOrder(order binary.ByteOrder) { in.order = order }

// Buffer returns the Input's underlying byte region. Callers must not
// retain or mutate it across further reads; compaction may relocate live
// data within it.
func (in *Input) Buffer() []byte { return in.buf }

// SetBuffer rebinds the Input to a fresh in-memory buffer, detaching any
// configured source (a buffer-bound Input is meant for pure in-memory
// replay; see DESIGN.md for this Open Question's resolution). It resets
// position, limit, capacity, and byte_order, and zeros total, per spec §3.
func (in *Input) SetBuffer(b []byte) {
	in.buf = b
	in.position = 0
	in.limit = len(b)
	in.capacity = len(b)
	in.total = 0
	in.order = Order
	in.filler = nil
	in.closer = nil
}

// SetSource rebinds the Input's refill strategy. Per spec §3, this resets
// limit to 0 (forcing the next read to refill). The bytes already consumed
// from the window are added to total before position is reset, and the
// buffer allocation, capacity, and byte_order are left untouched, so an
// Input can be handed a new stream mid-lifecycle without losing its
// accounting.
func (in *Input) SetSource(f Filler) {
	in.filler = f
	in.total += int64(in.position)
	in.position = 0
	in.limit = 0
}

// Stream returns the refill source currently bound, or nil if there is none.
func (in *Input) Stream() Filler { return in.filler }

// SetPosition moves the read cursor within the currently buffered window.
// It is only safe for in-memory replay of a fully loaded buffer; using it
// across refills is unspecified because compaction may have relocated the
// window (spec §4.7).
func (in *Input) SetPosition(pos int) error {
	if pos < 0 || pos > in.limit {
		return ErrInvalidArgument
	}
	in.position = pos
	return nil
}

// SetLimit adjusts the end of the valid window. Like SetPosition, it is
// intended for in-memory replay; the caller must keep position <= limit.
func (in *Input) SetLimit(limit int) error {
	if limit < 0 || limit > in.capacity {
		return ErrInvalidArgument
	}
	in.limit = limit
	if in.position > in.limit {
		in.position = in.limit
	}
	return nil
}

// Position returns the current read cursor within the buffered window.
func (in *Input) Position() int { return in.position }

// Limit returns the end of the currently valid window.
func (in *Input) Limit() int { return in.limit }

// Capacity returns the physical size of the underlying buffer.
func (in *Input) Capacity() int { return in.capacity }

// Rewind resets the read cursor to the start of the buffered window without
// touching limit, capacity, or total.
func (in *Input) Rewind() { in.position = 0 }

// TotalBytesRead returns the absolute number of bytes consumed so far:
// total (scrolled-out-via-compaction bytes) plus the in-window position.
func (in *Input) TotalBytesRead() int64 { return in.total + int64(in.position) }

// Close releases the source if the Input owns it (constructed via
// NewInputStream from an io.Closer). Close errors from the source are
// swallowed per spec §7 ("they cannot be acted upon"); Close itself always
// reports success.
func (in *Input) Close() error {
	if in.closer != nil {
		_ = in.closer.Close()
		in.closer = nil
	}
	return nil
}

// Skip advances the logical cursor by n bytes, consuming and discarding via
// refill once residency is exhausted. Long skips are chunked at
// maxSkipChunk, mirroring the platform-array-size cap called out in the
// design notes.
func (in *Input) Skip(n int64) error {
	if n < 0 {
		return ErrInvalidArgument
	}
	for n > 0 {
		chunk := n
		if chunk > maxSkipChunk {
			chunk = maxSkipChunk
		}
		if in.residency() >= int(chunk) {
			in.position += int(chunk)
			n -= chunk
			continue
		}
		// Drain whatever is resident, then pull and discard the rest
		// directly from the source without landing it in buf.
		drained := int64(in.residency())
		in.position = in.limit
		n -= drained

		remaining := chunk - drained
		var discardBuf [4096]byte
		for remaining > 0 {
			want := remaining
			if want > int64(len(discardBuf)) {
				want = int64(len(discardBuf))
			}
			read, err := in.fill(discardBuf[:want])
			remaining -= int64(read)
			n -= int64(read)
			in.total += int64(read)
			if err != nil {
				if err == io.EOF {
					if remaining > 0 {
						return ErrBufferUnderflow
					}
					break
				}
				return wrapIOErr(err)
			}
		}
	}
	return nil
}

// growChars ensures in.chars has room for at least n uint16 code units,
// doubling capacity per the design notes' allocation policy.
func (in *Input) growChars(n int) {
	if cap(in.chars) >= n {
		in.chars = in.chars[:n]
		return
	}
	newCap := cap(in.chars) * 2
	if newCap < n {
		newCap = n
	}
	if newCap < initialCharsCap {
		newCap = initialCharsCap
	}
	grown := make([]uint16, n, newCap)
	copy(grown, in.chars)
	in.chars = grown
}
