package codec

// ReadVarInt32 reads a 32-bit value encoded as 1-5 bytes, 7 payload bits per
// byte with the MSB as a continuation flag, least-significant group first.
// If optimizePositive is false the value is zig-zag decoded, matching
// Kryo's signed-varint convention.
func (in *Input) ReadVarInt32(optimizePositive bool) (int32, error) {
	u, err := in.readVarUint32()
	if err != nil {
		return 0, err
	}
	if optimizePositive {
		return int32(u), nil
	}
	return int32(u>>1) ^ -int32(u&1), nil
}

func (in *Input) readVarUint32() (uint32, error) {
	// Fast path: five bytes are already known resident, so every shift can
	// be done directly off the buffer without a require() per byte.
	if in.residency() >= 5 {
		b := in.buf[in.position]
		if b&0x80 == 0 {
			in.position++
			return uint32(b), nil
		}
		result := uint32(b & 0x7F)
		b = in.buf[in.position+1]
		result |= uint32(b&0x7F) << 7
		if b&0x80 == 0 {
			in.position += 2
			return result, nil
		}
		b = in.buf[in.position+2]
		result |= uint32(b&0x7F) << 14
		if b&0x80 == 0 {
			in.position += 3
			return result, nil
		}
		b = in.buf[in.position+3]
		result |= uint32(b&0x7F) << 21
		if b&0x80 == 0 {
			in.position += 4
			return result, nil
		}
		b = in.buf[in.position+4]
		result |= uint32(b) << 28
		in.position += 5
		return result, nil
	}

	// Slow path: pull one byte at a time, refilling/compacting as needed.
	var result uint32
	for shift := uint(0); ; shift += 7 {
		b, err := in.ReadByte()
		if err != nil {
			return 0, err
		}
		if shift == 28 {
			result |= uint32(b) << shift
			return result, nil
		}
		result |= uint32(b&0x7F) << shift
		if b&0x80 == 0 {
			return result, nil
		}
	}
}

// ReadVarInt64 reads a 64-bit value encoded as 1-9 bytes. The ninth byte,
// if reached, carries all 8 of its bits as payload with no continuation
// flag, since by then the full 64-bit range is already addressable.
func (in *Input) ReadVarInt64(optimizePositive bool) (int64, error) {
	u, err := in.readVarUint64()
	if err != nil {
		return 0, err
	}
	if optimizePositive {
		return int64(u), nil
	}
	return int64(u>>1) ^ -int64(u&1), nil
}

func (in *Input) readVarUint64() (uint64, error) {
	if in.residency() >= 9 {
		b := in.buf[in.position]
		if b&0x80 == 0 {
			in.position++
			return uint64(b), nil
		}
		result := uint64(b & 0x7F)
		for i, shift := 1, uint(7); i < 8; i, shift = i+1, shift+7 {
			b = in.buf[in.position+i]
			result |= uint64(b&0x7F) << shift
			if b&0x80 == 0 {
				in.position += i + 1
				return result, nil
			}
		}
		b = in.buf[in.position+8]
		result |= uint64(b) << 56
		in.position += 9
		return result, nil
	}

	var result uint64
	for shift := uint(0); ; shift += 7 {
		b, err := in.ReadByte()
		if err != nil {
			return 0, err
		}
		if shift == 56 {
			result |= uint64(b) << shift
			return result, nil
		}
		result |= uint64(b&0x7F) << shift
		if b&0x80 == 0 {
			return result, nil
		}
	}
}

// CanReadVarInt32 reports whether a complete varint32 is currently
// decodable without blocking for further input, without consuming any
// bytes. It is a best-effort probe: a false result does not necessarily
// mean no more data will ever arrive, only that none is available right
// now.
func (in *Input) CanReadVarInt32() (bool, error) {
	return in.canReadVarInt(5)
}

// CanReadVarInt64 is the 64-bit sibling of CanReadVarInt32, scanning up to
// 9 bytes for a terminator.
func (in *Input) CanReadVarInt64() (bool, error) {
	return in.canReadVarInt(9)
}

// varInt32Size reports how many bytes WriteVarInt32(v, true) would emit:
// the unsigned encoded byte count, with no zig-zag applied. ListV uses this
// to size its varint-prefixed item count.
func varInt32Size(v int32) int {
	u := uint32(v)
	n := 1
	for u >= 0x80 {
		u >>= 7
		n++
	}
	return n
}

func (in *Input) canReadVarInt(maxBytes int) (bool, error) {
	// optional always asks for 5 regardless of maxBytes (5 or 9): it only
	// requests a refill up to that much residency, it doesn't cap what's
	// returned, so a buffer that already holds more than 5 bytes still
	// reports its full residency and CanReadVarInt64 can still scan all the
	// way to the 9th byte below.
	available, err := in.optional(5)
	if err != nil {
		return false, err
	}
	if available <= 0 {
		return false, nil
	}
	if available > maxBytes {
		available = maxBytes
	}
	for i := 0; i < available; i++ {
		b := in.buf[in.position+i]
		if b&0x80 == 0 {
			return true, nil
		}
		if i == maxBytes-1 {
			// The last possible byte carries no continuation flag at all
			// (see readVarUint64's 9th-byte special case), so reaching it
			// always terminates the sequence.
			return true, nil
		}
	}
	return false, nil
}
