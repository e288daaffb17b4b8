package codec

import "io"

// listV is the varint-length-prefixed sibling of list[T] (list.go): instead
// of inferring item count from io.EOF or a pre-sized slice capacity, it
// prefixes the count as a varint32 (optimizePositive=true, since a count is
// never negative) so callers get an explicit, self-describing item count.
// This exercises the new varint codec from a higher-level component, the
// way list.go's WriteTo exercises Writer's buffered I/O.
type listV[T Codec] struct {
	Items   []T
	options *listOptions
}

var _ List = (*listV[Codec])(nil)

type (
	ListV0[T Codec] struct{ listV[T] }
	ListV4[T Codec] struct{ listV[T] }
	ListV8[T Codec] struct{ listV[T] }
)

// NewListV creates a new varint-prefixed List codec with the given items
// and options.
func NewListV[T Codec](items []T, options *listOptions) *listV[T] {
	if options == nil {
		options = &listOptions{Alignment: 0}
	}
	return &listV[T]{Items: items, options: options}
}

// NewListV0 creates an unaligned varint-prefixed list.
func NewListV0[T Codec](items []T) *ListV0[T] {
	return &ListV0[T]{listV[T]{Items: items, options: &listOptions{Alignment: 0}}}
}

// NewListV4 creates a 4-byte-aligned varint-prefixed list.
func NewListV4[T Codec](items []T) *ListV4[T] {
	return &ListV4[T]{listV[T]{Items: items, options: &listOptions{Alignment: 4}}}
}

// NewListV8 creates an 8-byte-aligned varint-prefixed list.
func NewListV8[T Codec](items []T) *ListV8[T] {
	return &ListV8[T]{listV[T]{Items: items, options: &listOptions{Alignment: 8}}}
}

func (l *listV[T]) Len() int { return len(l.Items) }

func (l *listV[T]) Codecs() []Codec {
	codecs := make([]Codec, l.Len())
	for i, c := range l.Items {
		codecs[i] = c
	}
	return codecs
}

// Size reports the varint-prefix size plus the same per-item/alignment
// accounting as list[T].Size.
func (l *listV[T]) Size() int {
	total := varInt32Size(int32(len(l.Items)))
	if len(l.Items) == 0 {
		return total
	}
	return total + alignedSize(l.Items, l.options.Alignment)
}

// WriteTo writes the varint count prefix followed by each item, aligned
// exactly as list[T].WriteTo does between items.
func (l *listV[T]) WriteTo(writer io.Writer) (int64, error) {
	out, err := NewOutput(writer)
	if err != nil {
		return 0, err
	}
	out.WriteVarInt32(int32(len(l.Items)), true)
	if err := out.Flush(); err != nil {
		return out.Count(), err
	}
	prefixed := out.Count()

	if len(l.Items) == 0 {
		return prefixed, nil
	}

	w, err := NewWriter(writer)
	if err != nil {
		return prefixed, err
	}
	writeAlignedItems(w, l.Items, l.options.Alignment)
	written, err := w.Result()
	return prefixed + written, err
}

// ReadFrom reads the varint count prefix, then exactly that many items.
// The prefix is read through a capacity-1 Input so the Window Manager never
// pulls ahead more bytes than the varint itself needs: handing the same
// io.Reader to a second, independently-buffered reader afterward would
// otherwise silently drop whatever the first reader over-fetched.
func (l *listV[T]) ReadFrom(reader io.Reader) (int64, error) {
	in := NewInputFiller(&readerFiller{r: reader}, 1)
	count, err := in.ReadVarInt32(true)
	if err != nil {
		return in.TotalBytesRead(), err
	}
	n := in.TotalBytesRead()

	if count < 0 {
		return n, ErrInvalidArgument
	}
	if count == 0 {
		return n, nil
	}

	for i := int32(0); i < count; i++ {
		newItem := newCodecInstance[T]()

		read, err := newItem.ReadFrom(reader)
		n += read
		if err != nil {
			return n, err
		}
		l.Items = append(l.Items, newItem)

		isLastItem := i == count-1
		if !isLastItem && l.options.Alignment > 1 {
			padding := Roundup(read, int64(l.options.Alignment)) - read
			if padding > 0 {
				skipped, err := Discard(reader, padding)
				n += skipped
				if err != nil {
					return n, err
				}
			}
		}
	}
	return n, nil
}

// --- Boilerplate implementations ---

func (l *listV[T]) MarshalBinary() ([]byte, error) {
	return MarshalBinaryGeneric(l)
}

func (l *listV[T]) UnmarshalBinary(data []byte) error {
	return UnmarshalBinaryGeneric(l, data)
}

func (l *listV[T]) MarshalTo(buf []byte) (int, error) {
	return MarshalToGeneric(l, buf)
}
