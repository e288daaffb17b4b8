//go:build test

package codec

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/suite"
)

// countingFiller wraps a byte source and counts how many times Fill is
// invoked, the mock needed by spec §8 scenario 6 (observable compaction
// count).
type countingFiller struct {
	r     io.Reader
	fills int
}

func (f *countingFiller) Fill(dst []byte) (int, error) {
	f.fills++
	return f.r.Read(dst)
}

// --- Window Manager suite ---

type WindowTestSuite struct {
	suite.Suite
}

func (s *WindowTestSuite) TestRequireFailsOversizedRequest() {
	in := NewInputBytes([]byte{1, 2, 3})
	_, err := in.require(4)
	s.Assert().ErrorIs(err, ErrBufferTooSmall)
}

func (s *WindowTestSuite) TestRequireFailsOnUnderflow() {
	// Capacity (8) comfortably exceeds the 4-byte request, but the source
	// only ever yields 2 bytes before EOF: this must fail with
	// ErrBufferUnderflow, distinct from the ErrBufferTooSmall case where the
	// request itself can never fit.
	in := NewInputStream(bytes.NewReader([]byte{1, 2}), 8)
	_, err := in.ReadI32()
	s.Assert().ErrorIs(err, ErrBufferUnderflow)
}

func (s *WindowTestSuite) TestCompactionAcrossSmallCapacity() {
	// 32 bytes (eight i32s) through an 8-byte window forces repeated
	// compaction; scenario 6 of spec §8.
	src := make([]byte, 32)
	for i := range src {
		src[i] = byte(i)
	}
	filler := &countingFiller{r: bytes.NewReader(src)}
	in := NewInputFiller(filler, 8)

	for i := 0; i < 8; i++ {
		_, err := in.ReadI32()
		s.Require().NoError(err)
	}
	s.Assert().EqualValues(32, in.TotalBytesRead())
	s.Assert().GreaterOrEqual(filler.fills, 3)
}

func (s *WindowTestSuite) TestOptionalProbeNeverFailsOnShortInput() {
	// A window with spare capacity but no source and nothing resident yet:
	// optional must report true EOF (-1) rather than erroring.
	in := NewInputSize(4)
	n, err := in.optional(1)
	s.Require().NoError(err)
	s.Assert().Equal(-1, n)
}

func (s *WindowTestSuite) TestPositionNeverExceedsLimitAfterReads() {
	in := NewInputBytes([]byte{1, 2, 3, 4, 5, 6, 7, 8})
	_, _ = in.ReadI32()
	s.Assert().LessOrEqual(in.Position(), in.Limit())
	s.Assert().LessOrEqual(in.Limit(), in.Capacity())
}

func TestWindow(t *testing.T) {
	suite.Run(t, new(WindowTestSuite))
}

// --- Fixed-width primitive round trips ---

type PrimitiveTestSuite struct {
	suite.Suite
}

func (s *PrimitiveTestSuite) TestBoolRoundTrip() {
	for _, v := range []bool{true, false} {
		var buf bytes.Buffer
		out, _ := NewOutput(&buf)
		out.WriteBool(v)
		s.Require().NoError(out.Flush())
		in := NewInputBytes(buf.Bytes())
		got, err := in.ReadBool()
		s.Require().NoError(err)
		s.Assert().Equal(v, got)
	}
}

func (s *PrimitiveTestSuite) TestBoolAnyNonZeroIsTrue() {
	in := NewInputBytes([]byte{0x7F})
	got, err := in.ReadBool()
	s.Require().NoError(err)
	s.Assert().True(got)
}

func (s *PrimitiveTestSuite) TestIntegerRoundTrips() {
	var buf bytes.Buffer
	out, _ := NewOutput(&buf)
	out.WriteInt8(-12)
	out.WriteUint8(0xAB)
	out.WriteInt16(-1234)
	out.WriteUint16(0xBEEF)
	out.WriteInt32(-123456)
	out.WriteUint32(0xDEADBEEF)
	out.WriteInt64(-123456789012)
	out.WriteUint64(0xCAFEBABEDEADBEEF)
	out.WriteChar('A')
	s.Require().NoError(out.Flush())

	in := NewInputBytes(buf.Bytes())
	i8, err := in.ReadI8()
	s.Require().NoError(err)
	s.Assert().EqualValues(-12, i8)

	u8, err := in.ReadU8()
	s.Require().NoError(err)
	s.Assert().EqualValues(0xAB, u8)

	i16, err := in.ReadI16()
	s.Require().NoError(err)
	s.Assert().EqualValues(-1234, i16)

	u16, err := in.ReadU16()
	s.Require().NoError(err)
	s.Assert().EqualValues(0xBEEF, u16)

	i32, err := in.ReadI32()
	s.Require().NoError(err)
	s.Assert().EqualValues(-123456, i32)

	u32, err := in.ReadU32()
	s.Require().NoError(err)
	s.Assert().EqualValues(0xDEADBEEF, u32)

	i64, err := in.ReadI64()
	s.Require().NoError(err)
	s.Assert().EqualValues(-123456789012, i64)

	u64, err := in.ReadU64()
	s.Require().NoError(err)
	s.Assert().EqualValues(0xCAFEBABEDEADBEEF, u64)

	c, err := in.ReadChar()
	s.Require().NoError(err)
	s.Assert().EqualValues('A', c)
}

func (s *PrimitiveTestSuite) TestFloatRoundTrips() {
	var buf bytes.Buffer
	out, _ := NewOutput(&buf)
	out.WriteF32(3.14159)
	out.WriteF64(2.718281828459045)
	s.Require().NoError(out.Flush())

	in := NewInputBytes(buf.Bytes())
	f32, err := in.ReadF32()
	s.Require().NoError(err)
	s.Assert().InDelta(3.14159, f32, 1e-5)

	f64, err := in.ReadF64()
	s.Require().NoError(err)
	s.Assert().InDelta(2.718281828459045, f64, 1e-12)
}

func (s *PrimitiveTestSuite) TestConcreteScenarioI32() {
	in := NewInputBytes([]byte{0x00, 0x00, 0x00, 0x2A})
	v, err := in.ReadI32()
	s.Require().NoError(err)
	s.Assert().EqualValues(42, v)
	s.Assert().Equal(4, in.Position())
}

func (s *PrimitiveTestSuite) TestByteOrderMismatchDiffers() {
	var buf bytes.Buffer
	out, _ := NewOutput(&buf)
	out.WithByteOrder(binary.BigEndian)
	out.WriteF32(1.5)
	s.Require().NoError(out.Flush())

	big := NewInputBytes(buf.Bytes()).WithByteOrder(binary.BigEndian)
	little := NewInputBytes(buf.Bytes()).WithByteOrder(binary.LittleEndian)

	bigVal, err := big.ReadF32()
	s.Require().NoError(err)
	littleVal, err := little.ReadF32()
	s.Require().NoError(err)
	s.Assert().NotEqual(bigVal, littleVal)
	s.Assert().InDelta(1.5, bigVal, 1e-9)
}

func TestPrimitives(t *testing.T) {
	suite.Run(t, new(PrimitiveTestSuite))
}

// --- Varint suite ---

type VarintTestSuite struct {
	suite.Suite
}

func (s *VarintTestSuite) TestVarInt32ByteCounts() {
	cases := []struct {
		v     int32
		bytes int
	}{
		{0, 1},
		{127, 1},
		{128, 2},
		{16383, 2},
		{16384, 3},
		{0x1FFFFF, 3},
		{0x0FFFFFFF, 4},
	}
	for _, c := range cases {
		var buf bytes.Buffer
		out, _ := NewOutput(&buf)
		out.WriteVarInt32(c.v, true)
		s.Require().NoError(out.Flush())
		s.Assert().Equalf(c.bytes, buf.Len(), "value %d", c.v)

		in := NewInputBytes(buf.Bytes())
		got, err := in.ReadVarInt32(true)
		s.Require().NoError(err)
		s.Assert().EqualValues(c.v, got)
	}

	// 0xFFFFFFFF (the bit pattern of -1) written with optimizePositive=true
	// takes the full 5 bytes.
	var buf bytes.Buffer
	out, _ := NewOutput(&buf)
	out.WriteVarInt32(-1, true)
	s.Require().NoError(out.Flush())
	s.Assert().Equal(5, buf.Len())
}

func (s *VarintTestSuite) TestVarInt64ByteCounts() {
	var buf bytes.Buffer
	out, _ := NewOutput(&buf)
	out.WriteVarInt64(0x7F, true)
	s.Require().NoError(out.Flush())
	s.Assert().Equal(1, buf.Len())

	buf.Reset()
	out, _ = NewOutput(&buf)
	out.WriteVarInt64(0x7FFFFFFFFFFFFFFF, true)
	s.Require().NoError(out.Flush())
	s.Assert().Equal(9, buf.Len())

	in := NewInputBytes(buf.Bytes())
	got, err := in.ReadVarInt64(true)
	s.Require().NoError(err)
	s.Assert().EqualValues(0x7FFFFFFFFFFFFFFF, got)
}

func (s *VarintTestSuite) TestZigZagMinusOne() {
	var buf bytes.Buffer
	out, _ := NewOutput(&buf)
	out.WriteVarInt32(-1, false)
	s.Require().NoError(out.Flush())
	s.Assert().Equal([]byte{0x01}, buf.Bytes())

	in := NewInputBytes(buf.Bytes())
	got, err := in.ReadVarInt32(false)
	s.Require().NoError(err)
	s.Assert().EqualValues(-1, got)
}

func (s *VarintTestSuite) TestConcreteScenarioEncodedBytes() {
	in := NewInputBytes([]byte{0xE5, 0x8E, 0x26})
	v, err := in.ReadVarInt32(true)
	s.Require().NoError(err)
	s.Assert().EqualValues(624485, v)
	s.Assert().Equal(3, in.Position())
}

func (s *VarintTestSuite) TestConcreteScenarioNegativeOne() {
	in := NewInputBytes([]byte{0x01})
	v, err := in.ReadVarInt32(false)
	s.Require().NoError(err)
	s.Assert().EqualValues(-1, v)
}

func (s *VarintTestSuite) TestFastAndSlowPathAgree() {
	values := []int32{0, 1, -1, 127, 128, 16383, 16384, 1 << 20, -123456, 2147483647, -2147483648}
	for _, v := range values {
		var buf bytes.Buffer
		out, _ := NewOutput(&buf)
		out.WriteVarInt32(v, false)
		s.Require().NoError(out.Flush())
		encoded := buf.Bytes()

		// Fast path: capacity comfortably exceeds 5 bytes, all resident at once.
		fast := NewInputBytes(append(append([]byte{}, encoded...), make([]byte, 16)...))
		fastVal, err := fast.ReadVarInt32(false)
		s.Require().NoError(err)

		// Slow path: capacity-1 buffer, forcing a require(1) before every byte.
		var sb bytes.Buffer
		sb.Write(encoded)
		slow := NewInputFiller(&readerFiller{r: &sb}, 1)
		slowVal, err := slow.ReadVarInt32(false)
		s.Require().NoError(err)

		s.Assert().Equal(fastVal, slowVal, "value %d", v)
		s.Assert().Equal(v, fastVal)
	}
}

func (s *VarintTestSuite) TestCanReadVarInt32() {
	var buf bytes.Buffer
	out, _ := NewOutput(&buf)
	out.WriteVarInt32(16384, true)
	s.Require().NoError(out.Flush())

	in := NewInputBytes(buf.Bytes())
	ok, err := in.CanReadVarInt32()
	s.Require().NoError(err)
	s.Assert().True(ok)

	v, err := in.ReadVarInt32(true)
	s.Require().NoError(err)
	s.Assert().EqualValues(16384, v)
}

func (s *VarintTestSuite) TestCanReadVarInt32FalseOnTruncatedContinuation() {
	// A single continuation byte with no terminator and no source: can't
	// possibly complete.
	in := NewInputBytes([]byte{0x80})
	ok, err := in.CanReadVarInt32()
	s.Require().NoError(err)
	s.Assert().False(ok)
}

func TestVarint(t *testing.T) {
	suite.Run(t, new(VarintTestSuite))
}

// --- String suite ---

type StringTestSuite struct {
	suite.Suite
}

func (s *StringTestSuite) TestNullString() {
	var buf bytes.Buffer
	out, _ := NewOutput(&buf)
	out.WriteString(nil)
	s.Require().NoError(out.Flush())

	in := NewInputBytes(buf.Bytes())
	got, err := in.ReadString()
	s.Require().NoError(err)
	s.Assert().Nil(got)
}

func (s *StringTestSuite) TestEmptyString() {
	empty := ""
	var buf bytes.Buffer
	out, _ := NewOutput(&buf)
	out.WriteString(&empty)
	s.Require().NoError(out.Flush())

	in := NewInputBytes(buf.Bytes())
	got, err := in.ReadString()
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Assert().Equal("", *got)
}

func (s *StringTestSuite) TestASCIIRoundTrip() {
	for _, str := range []string{"A", "hello", "the quick brown fox"} {
		v := str
		var buf bytes.Buffer
		out, _ := NewOutput(&buf)
		out.WriteString(&v)
		s.Require().NoError(out.Flush())

		in := NewInputBytes(buf.Bytes())
		got, err := in.ReadString()
		s.Require().NoError(err)
		s.Require().NotNil(got)
		s.Assert().Equal(str, *got)
	}
}

func (s *StringTestSuite) TestUTF8RoundTrip() {
	for _, str := range []string{"héllo", "日本語", "café 中文"} {
		v := str
		var buf bytes.Buffer
		out, _ := NewOutput(&buf)
		out.WriteString(&v)
		s.Require().NoError(out.Flush())

		in := NewInputBytes(buf.Bytes())
		got, err := in.ReadString()
		s.Require().NoError(err)
		s.Require().NotNil(got)
		s.Assert().Equal(str, *got)
	}
}

func (s *StringTestSuite) TestStringBuilderAliasesReadString() {
	v := "identical"
	var buf bytes.Buffer
	out, _ := NewOutput(&buf)
	out.WriteString(&v)
	s.Require().NoError(out.Flush())

	in := NewInputBytes(buf.Bytes())
	got, err := in.ReadStringBuilder()
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Assert().Equal(v, *got)
}

func (s *StringTestSuite) TestNullMarkerByte() {
	// spec §8: writing null then reading returns null, decoded from 0x80.
	in := NewInputBytes([]byte{0x80})
	got, err := in.ReadString()
	s.Require().NoError(err)
	s.Assert().Nil(got)
}

func (s *StringTestSuite) TestASCIIWithNoTerminatorUnderflows() {
	in := NewInputBytes([]byte{0x00})
	_, err := in.ReadString()
	s.Assert().ErrorIs(err, ErrBufferUnderflow)
}

// TestSingleCharStringUsesLengthPrefixMode pins the charCount > 1 guard on
// ASCII mode: a lone ASCII character has nowhere to put both the ASCII-mode
// dispatch bit (clear) and its own terminator bit (set) in one byte, so it
// is written via the length-prefixed mode instead, costing 2 wire bytes
// (marker + char) rather than colliding with the dispatch check.
func (s *StringTestSuite) TestSingleCharStringUsesLengthPrefixMode() {
	v := "A"
	var buf bytes.Buffer
	out, _ := NewOutput(&buf)
	out.WriteString(&v)
	s.Require().NoError(out.Flush())

	s.Assert().Len(buf.Bytes(), 2)
	s.Assert().NotZero(buf.Bytes()[0] & asciiTerminator)

	in := NewInputBytes(buf.Bytes())
	got, err := in.ReadString()
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Assert().Equal("A", *got)
}

func TestString(t *testing.T) {
	suite.Run(t, new(StringTestSuite))
}

// --- Bulk array suite ---

type ArrayTestSuite struct {
	suite.Suite
}

func (s *ArrayTestSuite) TestIntsRoundTripNativeOrder() {
	// Force whichever of LittleEndian/BigEndian actually matches the host so
	// the unsafe typed-view fast path in readBulk/writeBulk engages (Order
	// defaults to BigEndian, which on a little-endian host would otherwise
	// always take the element-wise fallback).
	order := binary.ByteOrder(binary.LittleEndian)
	if !nativeOrderMatches(order) {
		order = binary.BigEndian
	}
	s.Require().True(nativeOrderMatches(order))

	values := []int32{1, -2, 3, -4, 2147483647, -2147483648}
	var buf bytes.Buffer
	out, _ := NewOutput(&buf)
	out.WithByteOrder(order)
	out.WriteInts(values)
	s.Require().NoError(out.Flush())

	in := NewInputBytes(buf.Bytes()).WithByteOrder(order)
	got, err := in.ReadInts(len(values))
	s.Require().NoError(err)
	s.Assert().Equal(values, got)
}

func (s *ArrayTestSuite) TestIntsEquivalentToElementwise() {
	values := []int32{10, 20, 30, 40}
	var buf bytes.Buffer
	out, _ := NewOutput(&buf)
	out.WriteInts(values)
	s.Require().NoError(out.Flush())

	in := NewInputBytes(buf.Bytes())
	got := make([]int32, len(values))
	for i := range got {
		v, err := in.ReadI32()
		s.Require().NoError(err)
		got[i] = v
	}
	s.Assert().Equal(values, got)

	bulk, err := NewInputBytes(buf.Bytes()).ReadInts(len(values))
	s.Require().NoError(err)
	s.Assert().Equal(got, bulk)
}

func (s *ArrayTestSuite) TestBulkFallsBackWhenLargerThanCapacity() {
	// 100 i32s through a tiny 8-byte window: the fast path's
	// capacity-position >= L*width condition is false, so this must fall
	// back to the element-wise path (each going through require/refill).
	values := make([]int32, 100)
	for i := range values {
		values[i] = int32(i * 7)
	}
	var buf bytes.Buffer
	out, _ := NewOutput(&buf)
	out.WriteInts(values)
	s.Require().NoError(out.Flush())

	in := NewInputFiller(&readerFiller{r: bytes.NewReader(buf.Bytes())}, 8)
	got, err := in.ReadInts(len(values))
	s.Require().NoError(err)
	s.Assert().Equal(values, got)
}

func (s *ArrayTestSuite) TestFloatsAndDoublesRoundTrip() {
	floats := []float32{1.5, -2.25, 3.125}
	doubles := []float64{1.1, -2.2, 3.3}
	var buf bytes.Buffer
	out, _ := NewOutput(&buf)
	out.WriteFloats(floats)
	out.WriteDoubles(doubles)
	s.Require().NoError(out.Flush())

	in := NewInputBytes(buf.Bytes())
	gotFloats, err := in.ReadFloats(len(floats))
	s.Require().NoError(err)
	s.Assert().Equal(floats, gotFloats)

	gotDoubles, err := in.ReadDoubles(len(doubles))
	s.Require().NoError(err)
	s.Assert().Equal(doubles, gotDoubles)
}

func (s *ArrayTestSuite) TestShortsAndUShortsRoundTrip() {
	shorts := []int16{1, -2, 3, -4}
	ushorts := []uint16{0xBEEF, 0x0001, 0xFFFF}
	var buf bytes.Buffer
	out, _ := NewOutput(&buf)
	out.WriteShorts(shorts)
	out.WriteUShorts(ushorts)
	s.Require().NoError(out.Flush())

	in := NewInputBytes(buf.Bytes())
	gotShorts, err := in.ReadShorts(len(shorts))
	s.Require().NoError(err)
	s.Assert().Equal(shorts, gotShorts)

	gotUShorts, err := in.ReadUShorts(len(ushorts))
	s.Require().NoError(err)
	s.Assert().Equal(ushorts, gotUShorts)
}

func (s *ArrayTestSuite) TestLongsRoundTrip() {
	longs := []int64{1, -2, 1 << 40, -(1 << 40)}
	var buf bytes.Buffer
	out, _ := NewOutput(&buf)
	out.WriteLongs(longs)
	s.Require().NoError(out.Flush())

	in := NewInputBytes(buf.Bytes())
	got, err := in.ReadLongs(len(longs))
	s.Require().NoError(err)
	s.Assert().Equal(longs, got)
}

func (s *ArrayTestSuite) TestBytesRoundTrip() {
	raw := []byte{0xAA, 0xBB, 0xCC, 0xDD}
	var buf bytes.Buffer
	out, _ := NewOutput(&buf)
	out.WriteBytes(raw)
	s.Require().NoError(out.Flush())

	in := NewInputBytes(buf.Bytes())
	got, err := in.ReadBytes(len(raw))
	s.Require().NoError(err)
	s.Assert().Equal(raw, got)
}

func (s *ArrayTestSuite) TestVarIntArraysRoundTrip() {
	values := []int32{-1, 0, 1, 127, 128, 1 << 20}
	var buf bytes.Buffer
	out, _ := NewOutput(&buf)
	out.WriteVarInts(values, false)
	s.Require().NoError(out.Flush())

	in := NewInputBytes(buf.Bytes())
	got, err := in.ReadVarInts(len(values), false)
	s.Require().NoError(err)
	s.Assert().Equal(values, got)
}

func TestArrays(t *testing.T) {
	suite.Run(t, new(ArrayTestSuite))
}

// --- Input lifecycle / stream ops suite ---

type InputLifecycleTestSuite struct {
	suite.Suite
}

func (s *InputLifecycleTestSuite) TestTotalBytesReadTracksConsumption() {
	in := NewInputBytes([]byte{1, 2, 3, 4, 5, 6, 7, 8})
	_, _ = in.ReadI32()
	s.Assert().EqualValues(4, in.TotalBytesRead())
	_, _ = in.ReadI32()
	s.Assert().EqualValues(8, in.TotalBytesRead())
}

func (s *InputLifecycleTestSuite) TestRewind() {
	in := NewInputBytes([]byte{1, 2, 3, 4})
	_, _ = in.ReadI32()
	in.Rewind()
	s.Assert().Equal(0, in.Position())
	v, err := in.ReadI32()
	s.Require().NoError(err)
	s.Assert().EqualValues(0x01020304, v)
}

func (s *InputLifecycleTestSuite) TestSkip() {
	in := NewInputBytes([]byte{1, 2, 3, 4, 5})
	s.Require().NoError(in.Skip(2))
	b, err := in.ReadByte()
	s.Require().NoError(err)
	s.Assert().EqualValues(3, b)
}

func (s *InputLifecycleTestSuite) TestSkipAcrossRefill() {
	src := bytes.NewReader([]byte{1, 2, 3, 4, 5, 6, 7, 8})
	in := NewInputStream(src, 4)
	s.Require().NoError(in.Skip(6))
	b, err := in.ReadByte()
	s.Require().NoError(err)
	s.Assert().EqualValues(7, b)
}

// TestSkipTracksTotalBytesRead guards against skipped bytes that bypass the
// window (discarded straight from the source) going uncounted: total must
// include them even though they never land in buf.
func (s *InputLifecycleTestSuite) TestSkipTracksTotalBytesRead() {
	src := bytes.NewReader([]byte{1, 2, 3, 4, 5, 6, 7, 8})
	in := NewInputStream(src, 4)
	s.Require().NoError(in.Skip(6))
	s.Assert().EqualValues(6, in.TotalBytesRead())
	_, err := in.ReadByte()
	s.Require().NoError(err)
	s.Assert().EqualValues(7, in.TotalBytesRead())
}

func (s *InputLifecycleTestSuite) TestSetBufferResetsState() {
	in := NewInputBytes([]byte{1, 2, 3})
	_, _ = in.ReadByte()
	in.SetBuffer([]byte{9, 9})
	s.Assert().Equal(0, in.Position())
	s.Assert().Equal(2, in.Limit())
	s.Assert().EqualValues(0, in.TotalBytesRead())
}

func (s *InputLifecycleTestSuite) TestReadByteStream() {
	in := NewInputBytes([]byte{0x41})
	v, err := in.Read()
	s.Require().NoError(err)
	s.Assert().Equal(0x41, v)

	v, err = in.Read()
	s.Require().NoError(err)
	s.Assert().Equal(-1, v)
}

func (s *InputLifecycleTestSuite) TestReadNPartial() {
	in := NewInputBytes([]byte{1, 2, 3})
	dst := make([]byte, 5)
	n, err := in.ReadN(dst)
	s.Require().NoError(err)
	s.Assert().Equal(3, n)
	s.Assert().Equal([]byte{1, 2, 3}, dst[:3])

	n, err = in.ReadN(dst)
	s.Require().NoError(err)
	s.Assert().Equal(-1, n)
}

func (s *InputLifecycleTestSuite) TestReadExactHardErrorOnShortInput() {
	in := NewInputBytes([]byte{1, 2})
	err := in.ReadExact(make([]byte, 4))
	s.Assert().ErrorIs(err, ErrBufferUnderflow)
}

// failingCloseReader is a source whose Close always fails.
type failingCloseReader struct{ io.Reader }

func (failingCloseReader) Close() error { return errors.New("close failed") }

func (s *InputLifecycleTestSuite) TestCloseSwallowsSourceError() {
	in := NewInputStream(failingCloseReader{bytes.NewReader(nil)}, 4)
	s.Assert().NoError(in.Close())
}

func (s *InputLifecycleTestSuite) TestIOErrorWrapped() {
	boom := errors.New("boom")
	in := NewInputFiller(FillerFunc(func(dst []byte) (int, error) {
		return 0, boom
	}), 4)
	_, err := in.ReadI32()
	s.Assert().ErrorIs(err, boom)
}

func TestInputLifecycle(t *testing.T) {
	suite.Run(t, new(InputLifecycleTestSuite))
}

// --- ListV suite ---

type ListVTestSuite struct {
	suite.Suite
}

func (s *ListVTestSuite) TestRoundTrip() {
	items := []*mockCodec{
		{mockPayload{ID: 1, Data: [4]byte{1, 2, 3, 4}}},
		{mockPayload{ID: 2, Data: [4]byte{5, 6, 7, 8}}},
		{mockPayload{ID: 3, Data: [4]byte{9, 10, 11, 12}}},
	}
	l := NewListV0(items)

	var buf bytes.Buffer
	n, err := l.WriteTo(&buf)
	s.Require().NoError(err)
	s.Assert().EqualValues(buf.Len(), n)

	decoded := NewListV0[*mockCodec](nil)
	read, err := decoded.ReadFrom(&buf)
	s.Require().NoError(err)
	s.Assert().Equal(n, read)
	s.Require().Len(decoded.Items, 3)
	for i, item := range items {
		s.Assert().Equal(item.Payload, decoded.Items[i].Payload)
	}
}

func (s *ListVTestSuite) TestEmptyList() {
	l := NewListV0[*mockCodec](nil)
	var buf bytes.Buffer
	n, err := l.WriteTo(&buf)
	s.Require().NoError(err)
	s.Assert().EqualValues(1, n) // single-byte varint(0) prefix

	decoded := NewListV0[*mockCodec](nil)
	read, err := decoded.ReadFrom(&buf)
	s.Require().NoError(err)
	s.Assert().EqualValues(1, read)
	s.Assert().Empty(decoded.Items)
}

func TestListV(t *testing.T) {
	suite.Run(t, new(ListVTestSuite))
}
