package avm2

import "rotmg-proxy/internal/byteio"

// readVarUint decodes an AVM2 "u30"/"u32" variable-length integer: 1-5
// bytes, little-endian base-128, 7 data bits per byte, high bit =
// continuation. Unlike canonical LEB128 the continuation bit is only
// consulted on the first four bytes; a fifth byte (if present) always
// terminates the value regardless of its high bit, and only contributes
// its low nibble's worth of bits actually needed to fill a uint32.
func readVarUint(r *byteio.Reader) (uint32, error) {
	var result uint32
	for i := 0; i < 5; i++ {
		b, err := r.Take(1)
		if err != nil {
			return 0, errInsufficientBytes(1, r.Len())
		}
		cur := b[0]

		if i < 4 {
			result |= uint32(cur&0x7f) << (7 * i)
			if cur&0x80 == 0 {
				return result, nil
			}
			continue
		}

		// Fifth byte: always terminal. Shifted by 28, only its low four
		// bits land in the uint32; its higher bits are shifted out.
		result |= uint32(cur) << 28
		return result, nil
	}
	return result, nil
}

// readVarSint decodes an AVM2 "s32" the same way as u30/u32 and
// reinterprets the bit pattern as signed.
func readVarSint(r *byteio.Reader) (int32, error) {
	u, err := readVarUint(r)
	if err != nil {
		return 0, err
	}
	return int32(u), nil
}
