// Package codec implements the bit-exact little-endian binary codec
// for VTIL routines: decode/encode/size-of functions for every entity
// in the data model, plus the dual round-trip and size-match
// invariants that make the format testable.
package codec

import (
	"encoding/binary"

	"github.com/vtil-go/vtil/pkg/verrors"
)

func sliceAt(buf []byte, offset, n int, op string) ([]byte, error) {
	if offset < 0 || n < 0 || offset+n > len(buf) {
		return nil, verrors.New(verrors.Codec, op, nil)
	}
	return buf[offset : offset+n], nil
}

func putAt(buf []byte, offset int, data []byte, op string) error {
	if offset < 0 || offset+len(data) > len(buf) {
		return verrors.New(verrors.Codec, op, nil)
	}
	copy(buf[offset:], data)
	return nil
}

// decoder is an internal read cursor over a byte slice. It collects
// the first error encountered and makes every subsequent read a no-op,
// so a decode function can issue a sequence of reads and check err
// once at the end instead of after every field.
type decoder struct {
	buf []byte
	pos int
	err error
}

func newDecoder(buf []byte, offset int) *decoder {
	return &decoder{buf: buf, pos: offset}
}

func (d *decoder) consumed(start int) int {
	return d.pos - start
}

func (d *decoder) fail(kind verrors.Kind, op string) {
	if d.err == nil {
		d.err = verrors.New(kind, op, nil)
	}
}

func (d *decoder) take(n int, op string) []byte {
	if d.err != nil {
		return nil
	}
	b, err := sliceAt(d.buf, d.pos, n, op)
	if err != nil {
		d.err = err
		return nil
	}
	d.pos += n
	return b
}

func (d *decoder) u8(op string) uint8 {
	b := d.take(1, op)
	if d.err != nil {
		return 0
	}
	return b[0]
}

func (d *decoder) u16(op string) uint16 {
	b := d.take(2, op)
	if d.err != nil {
		return 0
	}
	return binary.LittleEndian.Uint16(b)
}

func (d *decoder) u32(op string) uint32 {
	b := d.take(4, op)
	if d.err != nil {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

func (d *decoder) u64(op string) uint64 {
	b := d.take(8, op)
	if d.err != nil {
		return 0
	}
	return binary.LittleEndian.Uint64(b)
}

func (d *decoder) i32(op string) int32 {
	return int32(d.u32(op))
}

func (d *decoder) i64(op string) int64 {
	return int64(d.u64(op))
}

func (d *decoder) bool8(op string) bool {
	return d.u8(op) != 0
}

func (d *decoder) str(n int, op string) string {
	b := d.take(n, op)
	if d.err != nil {
		return ""
	}
	return string(b)
}

// encoder is an internal write cursor over a pre-sized byte slice,
// mirroring decoder. It collects the first error and makes subsequent
// writes no-ops.
type encoder struct {
	buf []byte
	pos int
	err error
}

func newEncoder(buf []byte, offset int) *encoder {
	return &encoder{buf: buf, pos: offset}
}

func (e *encoder) written(start int) int {
	return e.pos - start
}

func (e *encoder) put(data []byte, op string) {
	if e.err != nil {
		return
	}
	if err := putAt(e.buf, e.pos, data, op); err != nil {
		e.err = err
		return
	}
	e.pos += len(data)
}

func (e *encoder) u8(v uint8, op string) {
	e.put([]byte{v}, op)
}

func (e *encoder) u16(v uint16, op string) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	e.put(b[:], op)
}

func (e *encoder) u32(v uint32, op string) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	e.put(b[:], op)
}

func (e *encoder) u64(v uint64, op string) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	e.put(b[:], op)
}

func (e *encoder) i32(v int32, op string) {
	e.u32(uint32(v), op)
}

func (e *encoder) i64(v int64, op string) {
	e.u64(uint64(v), op)
}

func (e *encoder) bool8(v bool, op string) {
	if v {
		e.u8(1, op)
	} else {
		e.u8(0, op)
	}
}

func (e *encoder) str(v string, op string) {
	e.put([]byte(v), op)
}

// lenU32 converts a slice length to u32, failing with EncodingOverflow
// if it does not fit — used for every length-prefixed collection.
func lenU32(n int, op string) (uint32, error) {
	if n < 0 || uint64(n) > 0xffffffff {
		return 0, verrors.New(verrors.EncodingOverflow, op, nil)
	}
	return uint32(n), nil
}
