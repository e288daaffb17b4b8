package codec

import (
	"errors"
	"fmt"
)

var (
	// ErrNilIO indicates that NewWriter/NewWriterSize was called with a nil io.Writer.
	ErrNilIO = errors.New("codec: NewWriter called with a nil io.Writer")

	// ErrAlreadyBuffered indicates that NewWriter/NewWriterSize was called with an already-buffered
	// writer, which would lead to unpredictable behavior and performance issues.
	ErrAlreadyBuffered = errors.New("codec: reader or writer is already buffered")

	// ErrInvalidSeek indicates a seek was attempted to invalid position.
	ErrInvalidSeek = errors.New("codec: seek to a invalid position")

	// ErrInvalidWhence indicates that an invalid 'whence' parameter was provided to a Seek operation.
	ErrInvalidWhence = errors.New("codec: unsupported whence for Seek")

	// ErrInvalidWrite indicates that an io.Writer returned an invalid (negative) count from Write.
	ErrInvalidWrite = errors.New("codec: writer returned invalid count from Write")

	// ErrInvalidRead indicates that an io.Reader returned an invalid (negative or outbound) count from Read.
	ErrInvalidRead = errors.New("codec: reader returned invalid count from Read")

	// ErrDiscardNegative indicates a Discard operation was attempted with a negative byte count.
	ErrDiscardNegative = errors.New("codec: cannot discard negative number of bytes")

	// ErrTrailingData is returned by UnmarshalBinaryGeneric when non-zero bytes are found
	// after the expected end of the data structure, indicating a potential parsing error or malformed data.
	ErrTrailingData = errors.New("codec: non-zero trailing data found after decoding")

	// ErrTruncatedData indicates that a read operation could not complete because the
	// underlying data source (e.g., buffer, stream) ended before all expected bytes were read.
	ErrTruncatedData = errors.New("codec: truncated data")

	// ErrBufferUnderflow indicates the source could not produce enough bytes to
	// satisfy a require(n) call before the source was exhausted. The reader is
	// left in an unspecified state once this occurs; it is only safe to
	// continue if the caller independently knows the framing boundary.
	ErrBufferUnderflow = errors.New("codec: buffer underflow")

	// ErrBufferTooSmall indicates a single primitive read requested more bytes
	// than the window's capacity can ever hold, regardless of refills.
	ErrBufferTooSmall = errors.New("codec: requested read exceeds buffer capacity")

	// ErrInvalidArgument indicates a nil destination or an out-of-range length
	// was passed to a decode or encode operation.
	ErrInvalidArgument = errors.New("codec: invalid argument")
)

// wrapIOErr wraps a source-stream failure encountered during a fill so callers
// can distinguish it from ErrBufferUnderflow with errors.Is while still
// unwrapping to the underlying cause with errors.As.
func wrapIOErr(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("codec: io error: %w", err)
}
