package codec

import (
	"encoding/binary"
	"testing"
)

// These benchmarks compare each hand-rolled fast path in this module against
// the generic path it falls back to when its precondition doesn't hold,
// per teacher's benchmark_test.go convention of pairing a specialized
// implementation against its baseline.

// fiveByteVarint32 forces readVarUint32's fast path: 1<<30 needs exactly
// five encoded bytes, the widest a varint32 ever gets, and a five-byte
// window is exactly what the fast path's `residency() >= 5` check requires.
func fiveByteVarint32() []byte {
	buf := make([]byte, 5)
	out, _ := NewOutputBytes(buf)
	out.WriteVarInt32(1<<30, true)
	_ = out.Flush()
	return buf
}

// threeByteVarint32 forces readVarUint32's slow path: the window capacity
// (3) never reaches the fast path's 5-byte threshold, so every byte goes
// through ReadByte/require individually.
func threeByteVarint32() []byte {
	buf := make([]byte, 3)
	out, _ := NewOutputBytes(buf)
	out.WriteVarInt32(100000, true)
	_ = out.Flush()
	return buf
}

func BenchmarkVarUint32FastPath(b *testing.B) {
	buf := fiveByteVarint32()
	in := NewInputBytes(buf)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		in.position = 0
		if _, err := in.ReadVarInt32(true); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkVarUint32SlowPath(b *testing.B) {
	buf := threeByteVarint32()
	in := NewInputBytes(buf)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		in.position = 0
		if _, err := in.ReadVarInt32(true); err != nil {
			b.Fatal(err)
		}
	}
}

// nativeByteOrder and swappedByteOrder pick the host's native order and its
// opposite, the two inputs readBulk's nativeOrder() check dispatches on.
func nativeByteOrder() binary.ByteOrder {
	if nativeOrderMatches(binary.LittleEndian) {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

func swappedByteOrder() binary.ByteOrder {
	if nativeOrderMatches(binary.LittleEndian) {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

const bulkArrayLen = 256

func BenchmarkReadIntsNativeOrderFastPath(b *testing.B) {
	raw := make([]byte, bulkArrayLen*4)
	in := NewInputBytes(raw)
	in.SetByteOrder(nativeByteOrder())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		in.position = 0
		if _, err := in.ReadInts(bulkArrayLen); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkReadIntsSwappedOrderElementFallback(b *testing.B) {
	raw := make([]byte, bulkArrayLen*4)
	in := NewInputBytes(raw)
	in.SetByteOrder(swappedByteOrder())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		in.position = 0
		if _, err := in.ReadInts(bulkArrayLen); err != nil {
			b.Fatal(err)
		}
	}
}
