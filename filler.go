package codec

import "io"

// Filler is the refill strategy consumed by Input's Window Manager. It is
// the boxed capability the design re-architects Kryo's overridable
// `fill(byte[], int, int)` method into: a reader constructed "from memory"
// has no Filler at all, one constructed "from stream" wraps an io.Reader,
// and callers needing a custom refill policy (rate limiting, metrics,
// decompression) implement Filler directly.
//
// Fill must behave like io.Reader.Read: it returns the number of bytes
// placed into dst (0 <= n <= len(dst)) and, at end of stream, io.EOF either
// alongside a final n > 0 or alone with n == 0. A non-nil, non-EOF error is
// wrapped by the caller into a decode error carrying the cause.
type Filler interface {
	Fill(dst []byte) (int, error)
}

// readerFiller adapts any io.Reader into a Filler. It is the default
// strategy used by NewInputStream.
type readerFiller struct {
	r io.Reader
}

func (f *readerFiller) Fill(dst []byte) (int, error) {
	return f.r.Read(dst)
}

// FillerFunc lets a plain function satisfy Filler, mirroring the
// http.HandlerFunc adapter idiom for single-method interfaces.
type FillerFunc func(dst []byte) (int, error)

func (f FillerFunc) Fill(dst []byte) (int, error) { return f(dst) }
