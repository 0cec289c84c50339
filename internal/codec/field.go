package codec

import (
	"bytes"
	"encoding/binary"
	"math"
	"unicode/utf8"

	"rotmg-proxy/internal/byteio"
)

// Writer accumulates the wire bytes of a single structured packet's
// payload in declared field order. It never fails except on a
// length-prefix overflow (spec'd as FieldTooLarge), which is the only
// packet-encoding error that can occur.
type Writer struct {
	buf bytes.Buffer
}

func NewWriter() *Writer { return &Writer{} }

func (w *Writer) Bytes() []byte { return w.buf.Bytes() }

func (w *Writer) U8(v uint8) { w.buf.WriteByte(v) }

func (w *Writer) U16(v uint16) {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	w.buf.Write(b[:])
}

func (w *Writer) U32(v uint32) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	w.buf.Write(b[:])
}

func (w *Writer) U64(v uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	w.buf.Write(b[:])
}

func (w *Writer) I8(v int8)   { w.U8(uint8(v)) }
func (w *Writer) I16(v int16) { w.U16(uint16(v)) }
func (w *Writer) I32(v int32) { w.U32(uint32(v)) }
func (w *Writer) I64(v int64) { w.U64(uint64(v)) }

func (w *Writer) F32(v float32) { w.U32(math.Float32bits(v)) }
func (w *Writer) F64(v float64) { w.U64(math.Float64bits(v)) }

func (w *Writer) Bool(v bool) {
	if v {
		w.U8(1)
	} else {
		w.U8(0)
	}
}

// Unit writes nothing; it documents a zero-byte field in a packet's
// declared layout rather than performing any I/O.
func (w *Writer) Unit() {}

// Raw writes b verbatim, with no length prefix. Used for
// capture-remaining fields.
func (w *Writer) Raw(b []byte) { w.buf.Write(b) }

func (w *Writer) LPString8(s string) error {
	if len(s) > math.MaxUint8 {
		return errFieldTooLarge(len(s), "u8")
	}
	w.U8(uint8(len(s)))
	w.buf.WriteString(s)
	return nil
}

func (w *Writer) LPString16(s string) error {
	if len(s) > math.MaxUint16 {
		return errFieldTooLarge(len(s), "u16")
	}
	w.U16(uint16(len(s)))
	w.buf.WriteString(s)
	return nil
}

func (w *Writer) LPString32(s string) error {
	if uint64(len(s)) > math.MaxUint32 {
		return errFieldTooLarge(len(s), "u32")
	}
	w.U32(uint32(len(s)))
	w.buf.WriteString(s)
	return nil
}

func (w *Writer) LPBytes8(b []byte) error {
	if len(b) > math.MaxUint8 {
		return errFieldTooLarge(len(b), "u8")
	}
	w.U8(uint8(len(b)))
	w.buf.Write(b)
	return nil
}

func (w *Writer) LPBytes16(b []byte) error {
	if len(b) > math.MaxUint16 {
		return errFieldTooLarge(len(b), "u16")
	}
	w.U16(uint16(len(b)))
	w.buf.Write(b)
	return nil
}

func (w *Writer) LPBytes32(b []byte) error {
	if uint64(len(b)) > math.MaxUint32 {
		return errFieldTooLarge(len(b), "u32")
	}
	w.U32(uint32(len(b)))
	w.buf.Write(b)
	return nil
}

// LPVector8/16/32 write a count prefix of the stated width, then invoke
// encodeElem once per element in order. The element encoding itself is
// the caller's concern — this only owns the length prefix.
func (w *Writer) LPVector8(n int, encodeElem func(i int) error) error {
	if n > math.MaxUint8 {
		return errFieldTooLarge(n, "u8")
	}
	w.U8(uint8(n))
	return encodeElems(n, encodeElem)
}

func (w *Writer) LPVector16(n int, encodeElem func(i int) error) error {
	if n > math.MaxUint16 {
		return errFieldTooLarge(n, "u16")
	}
	w.U16(uint16(n))
	return encodeElems(n, encodeElem)
}

func (w *Writer) LPVector32(n int, encodeElem func(i int) error) error {
	if uint64(n) > math.MaxUint32 {
		return errFieldTooLarge(n, "u32")
	}
	w.U32(uint32(n))
	return encodeElems(n, encodeElem)
}

func encodeElems(n int, encodeElem func(i int) error) error {
	for i := 0; i < n; i++ {
		if err := encodeElem(i); err != nil {
			return err
		}
	}
	return nil
}

// Reader reads a single structured packet's payload in declared field
// order, off the shared bounds-checked byteio.Reader primitive.
type Reader struct {
	r *byteio.Reader
}

func NewReader(payload []byte) *Reader {
	return &Reader{r: byteio.New(payload)}
}

func (r *Reader) take(n int) ([]byte, error) {
	b, err := r.r.Take(n)
	if err != nil {
		return nil, errUnexpectedEnd(n - r.r.Len())
	}
	return b, nil
}

func (r *Reader) U8() (uint8, error) {
	b, err := r.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *Reader) U16() (uint16, error) {
	b, err := r.take(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

func (r *Reader) U32() (uint32, error) {
	b, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

func (r *Reader) U64() (uint64, error) {
	b, err := r.take(8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b), nil
}

func (r *Reader) I8() (int8, error) {
	v, err := r.U8()
	return int8(v), err
}

func (r *Reader) I16() (int16, error) {
	v, err := r.U16()
	return int16(v), err
}

func (r *Reader) I32() (int32, error) {
	v, err := r.U32()
	return int32(v), err
}

func (r *Reader) I64() (int64, error) {
	v, err := r.U64()
	return int64(v), err
}

func (r *Reader) F32() (float32, error) {
	v, err := r.U32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

func (r *Reader) F64() (float64, error) {
	v, err := r.U64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}

func (r *Reader) Bool() (bool, error) {
	v, err := r.U8()
	return v != 0, err
}

// Unit reads nothing; present for symmetry with Writer.Unit.
func (r *Reader) Unit() {}

func (r *Reader) LPString8() (string, error) {
	n, err := r.U8()
	if err != nil {
		return "", err
	}
	return r.utf8String(int(n))
}

func (r *Reader) LPString16() (string, error) {
	n, err := r.U16()
	if err != nil {
		return "", err
	}
	return r.utf8String(int(n))
}

func (r *Reader) LPString32() (string, error) {
	n, err := r.U32()
	if err != nil {
		return "", err
	}
	return r.utf8String(int(n))
}

func (r *Reader) utf8String(n int) (string, error) {
	b, err := r.take(n)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", errUTF8(errNotUTF8)
	}
	return string(b), nil
}

func (r *Reader) LPBytes8() ([]byte, error) {
	n, err := r.U8()
	if err != nil {
		return nil, err
	}
	return r.take(int(n))
}

func (r *Reader) LPBytes16() ([]byte, error) {
	n, err := r.U16()
	if err != nil {
		return nil, err
	}
	return r.take(int(n))
}

func (r *Reader) LPBytes32() ([]byte, error) {
	n, err := r.U32()
	if err != nil {
		return nil, err
	}
	return r.take(int(n))
}

// LPVector8/16/32 read a count prefix of the stated width, then invoke
// decodeElem once per element in order.
func (r *Reader) LPVector8(decodeElem func(i int) error) (int, error) {
	n, err := r.U8()
	if err != nil {
		return 0, err
	}
	return int(n), decodeElems(int(n), decodeElem)
}

func (r *Reader) LPVector16(decodeElem func(i int) error) (int, error) {
	n, err := r.U16()
	if err != nil {
		return 0, err
	}
	return int(n), decodeElems(int(n), decodeElem)
}

func (r *Reader) LPVector32(decodeElem func(i int) error) (int, error) {
	n, err := r.U32()
	if err != nil {
		return 0, err
	}
	return int(n), decodeElems(int(n), decodeElem)
}

func decodeElems(n int, decodeElem func(i int) error) error {
	for i := 0; i < n; i++ {
		if err := decodeElem(i); err != nil {
			return err
		}
	}
	return nil
}

// Remaining reports the number of undecoded bytes left in the payload.
// Used by trailing Option fields ("bytes remain ⇒ decode as T") and by
// capture-remaining fields.
func (r *Reader) Remaining() int { return r.r.Len() }

// TakeRemaining consumes and returns every undecoded byte. Used by
// capture-remaining fields, which must be the last field in a packet.
func (r *Reader) TakeRemaining() []byte { return r.r.TakeAll() }

var errNotUTF8 = errInvalidUTF8Sentinel{}

type errInvalidUTF8Sentinel struct{}

func (errInvalidUTF8Sentinel) Error() string { return "invalid utf-8 sequence" }
