package codec

import (
	"encoding/binary"

	"rotmg-proxy/internal/cipher"
)

const (
	headerSize = 5

	// DefaultMaxFrameSize caps a single frame's declared length, guarding
	// against memory exhaustion from an attacker-controlled length
	// header. 10 MiB per spec.md §4.D / §5.
	DefaultMaxFrameSize = 10 * 1024 * 1024
)

// RawPacket is a framed, decrypted-in-place, but not yet typed message:
// a 1-byte id and the payload bytes that follow it on the wire.
type RawPacket struct {
	ID      byte
	Payload []byte
}

// Bytes reconstructs the full on-the-wire frame (length header, id,
// payload) with no ciphering applied.
func (p *RawPacket) Bytes() []byte {
	out := make([]byte, headerSize+len(p.Payload))
	binary.BigEndian.PutUint32(out, uint32(len(out)))
	out[4] = p.ID
	copy(out[headerSize:], p.Payload)
	return out
}

// DecodeRawFrame parses exactly one complete frame with no cipher
// applied and no internal buffering — for callers that already hold a
// full frame's worth of bytes (tests; S2).
func DecodeRawFrame(frame []byte) (*RawPacket, error) {
	if len(frame) < headerSize {
		return nil, errUnexpectedEnd(headerSize - len(frame))
	}
	length := binary.BigEndian.Uint32(frame[:4])
	if length < headerSize {
		return nil, errInvalidLength(int(length))
	}
	if len(frame) != int(length) {
		return nil, errUnexpectedEnd(int(length) - len(frame))
	}
	return &RawPacket{ID: frame[4], Payload: frame[headerSize:]}, nil
}

// Decoder extracts frames from an append-only byte stream, deciphering
// each frame's payload in place against its receive cipher. It follows
// the protocol from spec.md §4.D: need 4 bytes to read the length, the
// length must be at least headerSize and at most MaxFrameSize, then
// need `length` bytes total before a frame can be extracted.
type Decoder struct {
	cipher       *cipher.RC4
	buf          []byte
	MaxFrameSize int
}

func NewDecoder(c *cipher.RC4) *Decoder {
	return &Decoder{cipher: c, MaxFrameSize: DefaultMaxFrameSize}
}

// Feed appends newly read bytes to the decode buffer.
func (d *Decoder) Feed(data []byte) {
	d.buf = append(d.buf, data...)
}

// Next extracts and deciphers one frame, or returns (nil, nil) if the
// buffer does not yet hold a complete frame. A non-nil error is fatal to
// the connection: the decode buffer is left as-is, since no further
// progress is possible once framing has failed.
func (d *Decoder) Next() (*RawPacket, error) {
	if len(d.buf) < 4 {
		return nil, nil
	}

	length := binary.BigEndian.Uint32(d.buf[:4])
	if length < headerSize {
		return nil, errInvalidLength(int(length))
	}
	if d.MaxFrameSize > 0 && int(length) > d.MaxFrameSize {
		return nil, errInvalidLength(int(length))
	}
	if len(d.buf) < int(length) {
		return nil, nil
	}

	frame := make([]byte, length)
	copy(frame, d.buf[:length])
	// Compact the remainder down to the front of the same backing array
	// rather than re-slicing forward forever, which would pin the whole
	// history of a long-lived connection in memory.
	d.buf = append(d.buf[:0], d.buf[length:]...)

	payload := frame[headerSize:]
	d.cipher.XOR(payload, payload)

	return &RawPacket{ID: frame[4], Payload: payload}, nil
}

// Encoder builds wire frames from raw packets, ciphering each payload
// against its send cipher. The header (length + id) is never ciphered.
type Encoder struct {
	cipher *cipher.RC4
}

func NewEncoder(c *cipher.RC4) *Encoder {
	return &Encoder{cipher: c}
}

func (e *Encoder) Encode(p *RawPacket) []byte {
	out := make([]byte, headerSize+len(p.Payload))
	binary.BigEndian.PutUint32(out, uint32(len(out)))
	out[4] = p.ID
	copy(out[headerSize:], p.Payload)
	e.cipher.XOR(out[headerSize:], out[headerSize:])
	return out
}
