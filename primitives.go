package codec

import "math"

// ReadByte reads a single unsigned byte, advancing position by 1.
func (in *Input) ReadByte() (byte, error) {
	if _, err := in.require(1); err != nil {
		return 0, err
	}
	b := in.buf[in.position]
	in.position++
	return b, nil
}

// ReadBool reads a single byte and reports it as true for any non-zero
// value, matching teacher's permissive boolean decoding elsewhere in the
// codebase (fixed.go treats any non-zero byte as true).
func (in *Input) ReadBool() (bool, error) {
	b, err := in.ReadByte()
	if err != nil {
		return false, err
	}
	return b != 0, nil
}

// ReadI8 reads a signed 8-bit integer.
func (in *Input) ReadI8() (int8, error) {
	b, err := in.ReadByte()
	return int8(b), err
}

// ReadU8 reads an unsigned 8-bit integer. It exists alongside ReadByte for
// symmetry with the other fixed-width readers.
func (in *Input) ReadU8() (uint8, error) { return in.ReadByte() }

func (in *Input) readFixed(n int) ([]byte, error) {
	if _, err := in.require(n); err != nil {
		return nil, err
	}
	b := in.buf[in.position : in.position+n]
	in.position += n
	return b, nil
}

// ReadI16 reads a signed 16-bit integer using the configured byte order.
func (in *Input) ReadI16() (int16, error) {
	u, err := in.ReadU16()
	return int16(u), err
}

// ReadU16 reads an unsigned 16-bit integer using the configured byte order.
// This is the "readShortUnsigned" Open Question's resolution: callers that
// need the unsigned 16-bit value call this directly rather than widening a
// signed result (see DESIGN.md).
func (in *Input) ReadU16() (uint16, error) {
	b, err := in.readFixed(2)
	if err != nil {
		return 0, err
	}
	return in.order.Uint16(b), nil
}

// ReadI32 reads a signed 32-bit integer using the configured byte order.
func (in *Input) ReadI32() (int32, error) {
	u, err := in.ReadU32()
	return int32(u), err
}

// ReadU32 reads an unsigned 32-bit integer using the configured byte order.
func (in *Input) ReadU32() (uint32, error) {
	b, err := in.readFixed(4)
	if err != nil {
		return 0, err
	}
	return in.order.Uint32(b), nil
}

// ReadI64 reads a signed 64-bit integer using the configured byte order.
func (in *Input) ReadI64() (int64, error) {
	u, err := in.ReadU64()
	return int64(u), err
}

// ReadU64 reads an unsigned 64-bit integer using the configured byte order.
func (in *Input) ReadU64() (uint64, error) {
	b, err := in.readFixed(8)
	if err != nil {
		return 0, err
	}
	return in.order.Uint64(b), nil
}

// ReadF32 reads an IEEE-754 single-precision float using the configured
// byte order.
func (in *Input) ReadF32() (float32, error) {
	u, err := in.ReadU32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(u), nil
}

// ReadF64 reads an IEEE-754 double-precision float using the configured
// byte order.
func (in *Input) ReadF64() (float64, error) {
	u, err := in.ReadU64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(u), nil
}

// ReadChar reads a single UTF-16 code unit as a rune in [0, 0xFFFF], the
// fixed-width character primitive (not to be confused with the
// length-prefixed string decoder in strings.go).
func (in *Input) ReadChar() (rune, error) {
	u, err := in.ReadU16()
	return rune(u), err
}
