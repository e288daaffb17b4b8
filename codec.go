package codec

import (
	"encoding"
	"io"
	"reflect"
)

// Sizer is an interface for types that can report their binary size.
// This is useful for pre-allocating buffers before encoding.
type Sizer interface {
	// Size returns the size of the type in bytes when binary encoded.
	Size() int
}

// Marshaler defines the core methods for encoding an object into a byte stream.
// It integrates standard library interfaces and provides a high-performance,
// allocation-free option.
type Marshaler interface {
	// encoding.BinaryMarshaler provides the primary encoding method.
	// It allocates and returns a new byte slice.
	encoding.BinaryMarshaler // Method: MarshalBinary() ([]byte, error)
	// io.WriterTo provides efficient, stream-based writing.
	// This avoids allocating the entire byte slice in memory at once.
	io.WriterTo // Method: WriteTo(writer io.Writer) (int64, error)

	// MarshalTo is a high-performance, zero-allocation encoding method.
	// It encodes the object into a pre-allocated buffer, returning an error
	// (io.ErrShortWrite in this package's implementations) if the buffer is
	// too small.
	MarshalTo(buf []byte) (int, error)
}

// Unmarshaler defines the core methods for decoding a byte stream into an object.
type Unmarshaler interface {
	// encoding.BinaryUnmarshaler decodes data from a byte slice.
	encoding.BinaryUnmarshaler // Method: UnmarshalBinary(data []byte) error
	// io.ReaderFrom provides efficient, stream-based reading.
	io.ReaderFrom // Method: ReadFrom(r io.Reader) (int64, error)
}

// Codec aggregates all binary serialization and deserialization interfaces.
// A type implementing Codec is a complete, self-sizing binary encoder/decoder.
type Codec interface {
	Sizer
	Marshaler
	Unmarshaler
}

// newCodecInstance allocates a fresh, addressable T to decode into. T is a
// Codec, which is always a pointer receiver type (ReadFrom etc. need to
// mutate the item), so T itself is already a pointer type; newCodecInstance
// reflects through it once to get the pointed-to struct type and allocates
// a new one of those, rather than requiring every caller to repeat that
// reflect.Ptr unwrap. Shared by list[T] and listV[T]'s ReadFrom.
func newCodecInstance[T Codec]() T {
	var item T
	elemType := reflect.TypeOf(item)
	if elemType.Kind() == reflect.Ptr {
		elemType = elemType.Elem()
	}
	return reflect.New(elemType).Interface().(T)
}

// alignedSize sums Size() over items, adding Roundup padding between items
// (never after the last one) when alignment calls for it. Shared by
// list[T].Size and listV[T].Size, which differ only in what (if anything)
// they add on top of this per-item/alignment accounting.
func alignedSize[T Codec](items []T, alignment int) int {
	total := 0
	lastIndex := len(items) - 1
	for i, item := range items {
		itemSize := item.Size()
		total += itemSize
		if i < lastIndex && alignment > 1 {
			total += Roundup(itemSize, alignment) - itemSize
		}
	}
	return total
}

// writeAlignedItems writes each item to w, inserting alignment padding
// between items (never after the last one). Shared by list[T].WriteTo and
// listV[T].WriteTo; callers are responsible for writing any length prefix
// and for draining w.Result() themselves.
func writeAlignedItems[T Codec](w *Writer, items []T, alignment int) {
	lastIndex := len(items) - 1
	for i, item := range items {
		w.WriteFrom(item)
		if i < lastIndex && alignment > 1 {
			w.Align(alignment)
		}
	}
}
