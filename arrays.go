package codec

import (
	"encoding/binary"
	"reflect"
	"unsafe"

	"github.com/puzpuzpuz/xsync/v4"
	"golang.org/x/exp/constraints"
)

// elemWidthCache memoizes the byte width of a bulk-array element type,
// mirroring fixed.go's sizeCache: cheap via unsafe.Sizeof, but every example
// in this pack that avoids repeated reflection (fixed.go's sizeCache) does
// so with a concurrent-safe map rather than recomputing per call.
var elemWidthCache = xsync.NewMap[reflect.Type, int]()

func elemWidth[T constraints.Integer | constraints.Float]() int {
	var zero T
	t := reflect.TypeOf(zero)
	if w, ok := elemWidthCache.Load(t); ok {
		return w
	}
	w := int(unsafe.Sizeof(zero))
	elemWidthCache.Store(t, w)
	return w
}

// nativeOrder reports whether in's configured byte order matches the host's
// native order, the condition under which bulk array reads can take the
// unsafe typed-view fast path instead of decoding element by element.
func (in *Input) nativeOrder() bool {
	return nativeOrderMatches(in.order)
}

func nativeOrderMatches(order binary.ByteOrder) bool {
	switch order {
	case binary.LittleEndian:
		return binary.NativeEndian.Uint16([]byte{1, 0}) == 1
	case binary.BigEndian:
		return binary.NativeEndian.Uint16([]byte{1, 0}) != 1
	default:
		return false
	}
}

// readBulk implements the dual-path bulk array reader described in spec
// §4.4: when the entire request fits between position and capacity
// (readFixed refills the window as needed) and the configured byte order
// matches the host's native order, it reinterprets
// the window bytes directly via an unsafe typed view (one copy, no
// per-element decode). Otherwise it falls back to readOne per element,
// which goes through the ordinary fixed-width path (and therefore through
// require, refilling/compacting across the source as needed). Both paths
// must be byte-identical; only their cost differs.
func readBulk[T constraints.Integer | constraints.Float](in *Input, n int, readOne func() (T, error)) ([]T, error) {
	if n < 0 {
		return nil, ErrInvalidArgument
	}
	if n == 0 {
		return []T{}, nil
	}
	width := elemWidth[T]()
	if in.nativeOrder() && in.capacity-in.position >= n*width {
		raw, err := in.readFixed(n * width)
		if err != nil {
			return nil, err
		}
		out := make([]T, n)
		view := unsafe.Slice((*T)(unsafe.Pointer(&raw[0])), n)
		copy(out, view)
		return out, nil
	}
	out := make([]T, n)
	for i := range out {
		v, err := readOne()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// ReadShorts reads n signed 16-bit integers, the i16[] bulk primitive.
func (in *Input) ReadShorts(n int) ([]int16, error) {
	return readBulk[int16](in, n, in.ReadI16)
}

// ReadUShorts reads n unsigned 16-bit integers. This is also the bulk
// primitive for char[] (spec §4.4: u16/char[] share a width and wire
// representation); callers decoding UTF-16 code units use this directly.
func (in *Input) ReadUShorts(n int) ([]uint16, error) {
	return readBulk[uint16](in, n, in.ReadU16)
}

// ReadInts reads n signed 32-bit integers into a freshly allocated slice.
func (in *Input) ReadInts(n int) ([]int32, error) {
	return readBulk[int32](in, n, in.ReadI32)
}

// ReadUints is the unsigned sibling of ReadInts.
func (in *Input) ReadUints(n int) ([]uint32, error) {
	return readBulk[uint32](in, n, in.ReadU32)
}

// ReadLongs reads n signed 64-bit integers, with the same native-order fast
// path as ReadInts.
func (in *Input) ReadLongs(n int) ([]int64, error) {
	return readBulk[int64](in, n, in.ReadI64)
}

// ReadFloats reads n IEEE-754 single-precision floats, with the same
// native-order fast path as ReadInts.
func (in *Input) ReadFloats(n int) ([]float32, error) {
	return readBulk[float32](in, n, in.ReadF32)
}

// ReadDoubles reads n IEEE-754 double-precision floats, with the same
// native-order fast path as ReadInts.
func (in *Input) ReadDoubles(n int) ([]float64, error) {
	return readBulk[float64](in, n, in.ReadF64)
}

// ReadBytes reads n raw bytes, copying them out of the window so the
// returned slice remains valid across later compaction.
func (in *Input) ReadBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, ErrInvalidArgument
	}
	if n == 0 {
		return []byte{}, nil
	}
	if in.capacity == 0 {
		return nil, ErrBufferTooSmall
	}
	out := make([]byte, n)
	read := 0
	for read < n {
		chunk := n - read
		if chunk > in.capacity {
			chunk = in.capacity
		}
		raw, err := in.readFixed(chunk)
		if err != nil {
			return nil, err
		}
		copy(out[read:], raw)
		read += chunk
	}
	return out, nil
}

// ReadVarInts reads n varint32-encoded values in sequence, the bulk-array
// counterpart for variable-width integers (no native-order fast path
// applies since each element has its own width).
func (in *Input) ReadVarInts(n int, optimizePositive bool) ([]int32, error) {
	out := make([]int32, n)
	for i := range out {
		v, err := in.ReadVarInt32(optimizePositive)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// ReadVarLongs is the 64-bit sibling of ReadVarInts.
func (in *Input) ReadVarLongs(n int, optimizePositive bool) ([]int64, error) {
	out := make([]int64, n)
	for i := range out {
		v, err := in.ReadVarInt64(optimizePositive)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
