package codec

import "io"

// residency returns the number of bytes currently valid for consumption,
// limit-position. Exported reasoning lives on Input; this is the Window
// Manager's internal vocabulary (spec GLOSSARY: "Residency").
func (in *Input) residency() int {
	return in.limit - in.position
}

// fill is the sole suspension point of the Window Manager: it pulls up to
// len(dst) bytes from the configured source into dst. With no source
// configured, fill behaves as an immediately-exhausted stream.
func (in *Input) fill(dst []byte) (int, error) {
	if in.filler == nil {
		return 0, io.EOF
	}
	return in.filler.Fill(dst)
}

// require ensures at least n bytes are resident starting at position,
// refilling and compacting as needed. It returns the resulting residency on
// success. Fails with ErrBufferTooSmall if n exceeds capacity outright, or
// ErrBufferUnderflow if the source is exhausted before n bytes accumulate.
func (in *Input) require(n int) (int, error) {
	if n > in.capacity {
		return 0, ErrBufferTooSmall
	}
	if in.residency() >= n {
		return in.residency(), nil
	}

	// Try to satisfy the request from the tail space already past limit,
	// without compacting. Short (non-EOF, zero-byte) reads must be retried;
	// only a real EOF ends this phase.
	for in.limit < in.capacity {
		read, err := in.fill(in.buf[in.limit:in.capacity])
		if read > 0 {
			in.limit += read
		}
		if in.residency() >= n {
			return in.residency(), nil
		}
		if err != nil {
			if err == io.EOF {
				break
			}
			return 0, wrapIOErr(err)
		}
	}

	// Compact: slide the live window down to the start of buf, freeing the
	// head of the buffer for further reads.
	copy(in.buf[0:], in.buf[in.position:in.limit])
	in.total += int64(in.position)
	in.limit -= in.position
	in.position = 0

	for in.limit < n {
		read, err := in.fill(in.buf[in.limit:in.capacity])
		if read > 0 {
			in.limit += read
		}
		if err != nil {
			if err == io.EOF {
				if in.limit >= n {
					break
				}
				return 0, ErrBufferUnderflow
			}
			return 0, wrapIOErr(err)
		}
	}

	return in.residency(), nil
}

// optional is the best-effort sibling of require: it never fails on short
// input. It tries to bring residency up to min(n, capacity) and returns the
// whole residency it then has, which can be more than n. It
// returns -1 only when the buffer is empty and the source is exhausted,
// which callers use as a non-fatal EOF probe (e.g. optional(1) before
// deciding whether a stream has more frames).
//
// It always attempts one fill before compacting; this ordering is load
// bearing for can_read_varint32/64, which call optional(n) expecting it not
// to needlessly shuffle bytes already at a stable offset.
func (in *Input) optional(n int) (int, error) {
	want := n
	if want > in.capacity {
		want = in.capacity
	}
	if in.residency() >= want {
		return in.residency(), nil
	}

	if in.limit < in.capacity {
		read, err := in.fill(in.buf[in.limit:in.capacity])
		if read > 0 {
			in.limit += read
		}
		if in.residency() > 0 {
			if err != nil && err != io.EOF {
				return in.residency(), wrapIOErr(err)
			}
			return in.residency(), nil
		}
		if err != nil && err != io.EOF {
			return 0, wrapIOErr(err)
		}
	}

	if in.residency() > 0 {
		return in.residency(), nil
	}

	// Buffer is empty; compact (a no-op on space but resets position to 0)
	// and make one more attempt to admit data before declaring EOF.
	if in.position > 0 {
		in.total += int64(in.position)
		in.position = 0
		in.limit = 0
	}
	if in.limit < in.capacity {
		read, err := in.fill(in.buf[in.limit:in.capacity])
		if read > 0 {
			in.limit += read
		}
		if in.residency() > 0 {
			if err != nil && err != io.EOF {
				return in.residency(), wrapIOErr(err)
			}
			return in.residency(), nil
		}
		if err != nil && err != io.EOF {
			return 0, wrapIOErr(err)
		}
	}

	return -1, nil
}
