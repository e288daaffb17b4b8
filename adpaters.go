// Writer's WriterPro capability interface asks its sink for Close/Flush/
// Size beyond plain io.Writer. bufio.Writer and bytes.Buffer don't carry
// those directly, so Writer wraps them in these adapters. The read-side
// equivalents (wrapping bytes.Reader, bufio.Reader, bytes.Buffer as a
// ReaderPro) were dropped along with reader.go and seeker.go: Input owns
// its window buffer directly and never hands a raw io.Reader to anything
// that needs this kind of capability promotion.
package codec

import (
	"bufio"
	"bytes"
)

type (
	bytesBufferWriterAdapter struct{ *bytes.Buffer }
	bufioWriterAdapter       struct{ *bufio.Writer }
)

func (w *bufioWriterAdapter) Close() error       { return nil }
func (w *bytesBufferWriterAdapter) Close() error { return nil }
func (w *bytesBufferWriterAdapter) Flush() error { return nil }
func (w *bytesBufferWriterAdapter) Size() int    { return w.Available() }
