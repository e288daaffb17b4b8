package codec

import (
	"io"
	"math"
	"unicode/utf16"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Output is the symmetric encoder for the wire format Input decodes (spec
// §6): it extends teacher's buffered, latched-error Writer with the
// varint, string, and bulk-array encodings Writer doesn't have. Fixed-width
// primitives (bool, i8/u8, i16/u16, i32/u32, i64/u64) are inherited directly
// from the embedded Writer, since teacher's WriteBool/WriteInt32/etc. already
// match the wire format in §6 byte-for-byte.
type Output struct {
	*Writer
}

// NewOutput wraps w in a buffered Output with a default buffer size.
func NewOutput(w io.Writer) (*Output, error) {
	ww, err := NewWriter(w)
	if err != nil {
		return nil, err
	}
	return &Output{Writer: ww}, nil
}

// NewOutputSize wraps w in a buffered Output with the given buffer size.
func NewOutputSize(w io.Writer, size int) (*Output, error) {
	ww, err := NewWriterSize(w, size)
	if err != nil {
		return nil, err
	}
	return &Output{Writer: ww}, nil
}

// NewOutputBytes wraps a fixed-capacity destination slice in an Output that
// writes in place without growing it, mirroring NewInputBytes on the read
// side.
func NewOutputBytes(b []byte) (*Output, error) {
	return NewOutput(NewBytesWriter(b))
}

// WriteChar writes a single UTF-16 code unit.
func (o *Output) WriteChar(c rune) {
	o.WriteUint16(uint16(c))
}

// WriteF32 writes an IEEE-754 single-precision float.
func (o *Output) WriteF32(v float32) {
	o.WriteUint32(math.Float32bits(v))
}

// WriteF64 writes an IEEE-754 double-precision float.
func (o *Output) WriteF64(v float64) {
	o.WriteUint64(math.Float64bits(v))
}

// WriteVarInt32 writes v as 1-5 bytes, 7 payload bits per byte with the MSB
// as a continuation flag. When optimizePositive is false, v is zig-zag
// encoded first so small-magnitude negative values stay compact (spec
// §4.3).
func (o *Output) WriteVarInt32(v int32, optimizePositive bool) {
	if o.Err() != nil {
		return
	}
	var u uint32
	if optimizePositive {
		u = uint32(v)
	} else {
		u = uint32(v<<1) ^ uint32(v>>31)
	}
	for u >= 0x80 {
		o.WriteByte(byte(u) | 0x80)
		u >>= 7
	}
	o.WriteByte(byte(u))
}

// WriteVarInt64 is the 64-bit sibling of WriteVarInt32. The ninth byte, if
// reached, carries all 8 of its bits as payload with no continuation flag,
// mirroring ReadVarInt64's ninth-byte exception.
func (o *Output) WriteVarInt64(v int64, optimizePositive bool) {
	if o.Err() != nil {
		return
	}
	var u uint64
	if optimizePositive {
		u = uint64(v)
	} else {
		u = uint64(v<<1) ^ uint64(v>>63)
	}
	for i := 0; i < 8; i++ {
		if u < 0x80 {
			o.WriteByte(byte(u))
			return
		}
		o.WriteByte(byte(u) | 0x80)
		u >>= 7
	}
	o.WriteByte(byte(u))
}

// writeUTF8Length writes a string's charCount+1 using the string decoder's
// length-prefix encoding: bit 7 of the first byte is always set (selecting
// length-prefixed mode), bit 6 of the first byte is the "more bytes follow"
// flag, and subsequent bytes use bit 7 as an ordinary varint continuation
// flag.
func (o *Output) writeUTF8Length(value uint32) {
	low6 := value & 0x3F
	rest := value >> 6
	if rest == 0 {
		o.WriteByte(asciiTerminator | byte(low6))
		return
	}
	o.WriteByte(asciiTerminator | utf8ModeContinue | byte(low6))
	for {
		b := byte(rest & 0x7F)
		rest >>= 7
		if rest == 0 {
			o.WriteByte(b)
			return
		}
		o.WriteByte(b | 0x80)
	}
}

// isASCIIString reports whether every byte of s is a 7-bit ASCII value,
// the condition under which WriteString uses the cheaper ASCII mode.
func isASCIIString(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}

// WriteString encodes s per spec §4.5. A nil s writes the dedicated null
// marker; a non-nil empty string writes the dedicated empty marker; a
// multi-byte all-ASCII string uses the cheaper ASCII mode (every content
// byte except the last has bit 7 clear, the last has it set as a
// terminator); anything else, including a single-character string, uses the
// length-prefixed modified-UTF-8 mode.
//
// The charCount > 1 guard on ASCII mode is load-bearing, not an
// optimization: a lone ASCII byte would need its own bit 7 set as the
// terminator, which is indistinguishable on the read side from the
// length-prefixed mode's dispatch bit. Routing single-character strings
// through the length-prefixed path (where the marker byte is never part of
// the character data) sidesteps the collision entirely.
func (o *Output) WriteString(s *string) {
	if o.Err() != nil {
		return
	}
	if s == nil {
		o.writeUTF8Length(0)
		return
	}
	if len(*s) == 0 {
		o.writeUTF8Length(1)
		return
	}
	if len(*s) > 1 && isASCIIString(*s) {
		o.writeAsciiString(*s)
		return
	}
	o.writeUTF8String(*s)
}

func (o *Output) writeAsciiString(s string) {
	b := []byte(s)
	for i := 0; i < len(b)-1; i++ {
		o.WriteByte(b[i])
	}
	o.WriteByte(b[len(b)-1] | asciiTerminator)
}

func (o *Output) writeUTF8String(s string) {
	units := utf16.Encode([]rune(s))
	o.writeUTF8Length(uint32(len(units)) + 1)
	for _, u := range units {
		switch {
		case u < 0x80:
			o.WriteByte(byte(u))
		case u < 0x800:
			o.WriteByte(0xC0 | byte(u>>6))
			o.WriteByte(0x80 | byte(u&0x3F))
		default:
			o.WriteByte(0xE0 | byte(u>>12))
			o.WriteByte(0x80 | byte((u>>6)&0x3F))
			o.WriteByte(0x80 | byte(u&0x3F))
		}
	}
}

// writeBulk implements the write-side dual path mirroring Input's readBulk:
// when the configured byte order matches the host's native order, the
// slice's backing memory is reinterpreted as bytes via an unsafe typed view
// and written in one call; otherwise each element goes through writeOne,
// honoring the configured byte order.
func writeBulk[T constraints.Integer | constraints.Float](o *Output, v []T, writeOne func(T)) {
	if o.Err() != nil || len(v) == 0 {
		return
	}
	if nativeOrderMatches(o.order) {
		width := elemWidth[T]()
		view := unsafe.Slice((*byte)(unsafe.Pointer(&v[0])), len(v)*width)
		o.WriteBytes(view)
		return
	}
	for _, e := range v {
		writeOne(e)
	}
}

// WriteShorts writes the i16[] bulk primitive.
func (o *Output) WriteShorts(v []int16) { writeBulk(o, v, o.WriteInt16) }

// WriteUShorts writes the u16[]/char[] bulk primitive.
func (o *Output) WriteUShorts(v []uint16) { writeBulk(o, v, o.WriteUint16) }

// WriteInts writes the i32[] bulk primitive.
func (o *Output) WriteInts(v []int32) { writeBulk(o, v, o.WriteInt32) }

// WriteUints writes the u32[] bulk primitive.
func (o *Output) WriteUints(v []uint32) { writeBulk(o, v, o.WriteUint32) }

// WriteLongs writes the i64[] bulk primitive.
func (o *Output) WriteLongs(v []int64) { writeBulk(o, v, o.WriteInt64) }

// WriteFloats writes the f32[] bulk primitive.
func (o *Output) WriteFloats(v []float32) { writeBulk(o, v, o.WriteF32) }

// WriteDoubles writes the f64[] bulk primitive.
func (o *Output) WriteDoubles(v []float64) { writeBulk(o, v, o.WriteF64) }

// WriteVarInts writes n varint32-encoded values in sequence.
func (o *Output) WriteVarInts(v []int32, optimizePositive bool) {
	for _, e := range v {
		o.WriteVarInt32(e, optimizePositive)
	}
}

// WriteVarLongs is the 64-bit sibling of WriteVarInts.
func (o *Output) WriteVarLongs(v []int64, optimizePositive bool) {
	for _, e := range v {
		o.WriteVarInt64(e, optimizePositive)
	}
}
