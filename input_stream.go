package codec

import "io"

// Read returns the next byte as 0..255, or -1 at EOF, using optional(1) as a
// non-fatal EOF probe. This is the single-byte InputStream-style read from
// spec §4.6.
func (in *Input) Read() (int, error) {
	available, err := in.optional(1)
	if err != nil {
		return -1, err
	}
	if available <= 0 {
		return -1, nil
	}
	b := in.buf[in.position]
	in.position++
	return int(b), nil
}

// ReadN fills up to len(dst) bytes, InputStream-style: it returns the number
// of bytes actually placed into dst, or -1 if the very first attempt landed
// nothing because the source is already exhausted. A partial fill (fewer
// bytes than requested but more than zero) is not an error; the caller sees
// it reflected in the returned count, matching standard byte-stream
// conventions (spec §4.6, §7).
func (in *Input) ReadN(dst []byte) (int, error) {
	if dst == nil {
		return 0, ErrInvalidArgument
	}
	if len(dst) == 0 {
		return 0, nil
	}
	total := 0
	for total < len(dst) {
		available, err := in.optional(len(dst) - total)
		if err != nil {
			// A genuine I/O failure always propagates, regardless of how
			// much was read before it; only EOF gets the partial-count
			// treatment.
			return total, err
		}
		if available <= 0 {
			if total > 0 {
				return total, nil
			}
			return -1, nil
		}
		// optional(n) may report more residency than was asked for; copy
		// trims to whatever room remains in dst, so advance position by
		// the actual amount copied, not the full reported residency.
		n := copy(dst[total:], in.buf[in.position:in.position+available])
		in.position += n
		total += n
	}
	return total, nil
}

// ReadExact is the non-InputStream variant: it calls require on each chunk
// and is a hard error (ErrBufferUnderflow) on short input, rather than
// returning a partial count.
func (in *Input) ReadExact(dst []byte) error {
	if dst == nil {
		return ErrInvalidArgument
	}
	if len(dst) > 0 && in.capacity == 0 {
		return ErrBufferTooSmall
	}
	total := 0
	for total < len(dst) {
		chunk := len(dst) - total
		if chunk > in.capacity {
			chunk = in.capacity
		}
		raw, err := in.readFixed(chunk)
		if err != nil {
			return err
		}
		copy(dst[total:], raw)
		total += chunk
	}
	return nil
}

var _ io.Reader = (*inputAdapter)(nil)

// inputAdapter exposes an Input as a standard io.Reader for callers that
// want to hand it to generic stream-consuming code (io.Copy and friends)
// without depending on codec's own API.
type inputAdapter struct {
	in *Input
}

// AsReader wraps in so it satisfies io.Reader, delegating to ReadN.
func (in *Input) AsReader() io.Reader { return &inputAdapter{in: in} }

func (a *inputAdapter) Read(p []byte) (int, error) {
	n, err := a.in.ReadN(p)
	if n < 0 {
		return 0, io.EOF
	}
	return n, err
}
