package codec

import (
	"github.com/vtil-go/vtil/pkg/verrors"
	"github.com/vtil-go/vtil/pkg/vtil"
)

const (
	magic1 uint32 = 0x4c495456
	magic2 uint16 = 0xdead
)

// SizeOfHeader is the fixed wire size of a Header: magic1, arch_id,
// zero padding, magic2.
const SizeOfHeader = 4 + 1 + 1 + 2

// DecodeHeader reads the fixed-size routine header at offset,
// returning the architecture it names and the number of bytes
// consumed (always SizeOfHeader on success). Both magic numbers must
// match; a mismatch or an architecture ordinal outside {0,1,2} fails
// with Malformed.
func DecodeHeader(buf []byte, offset int) (vtil.ArchitectureIdentifier, int, error) {
	start := offset
	d := newDecoder(buf, offset)

	m1 := d.u32("codec.DecodeHeader.magic1")
	if d.err == nil && m1 != magic1 {
		d.fail(verrors.Malformed, "codec.DecodeHeader.magic1")
	}

	archByte := d.u8("codec.DecodeHeader.arch")
	arch := vtil.ArchitectureIdentifier(archByte)
	if d.err == nil && !arch.Valid() {
		d.fail(verrors.Malformed, "codec.DecodeHeader.arch")
	}

	d.u8("codec.DecodeHeader.zero") // reserved, ignored

	m2 := d.u16("codec.DecodeHeader.magic2")
	if d.err == nil && m2 != magic2 {
		d.fail(verrors.Malformed, "codec.DecodeHeader.magic2")
	}

	if d.err != nil {
		return 0, d.consumed(start), d.err
	}
	return arch, d.consumed(start), nil
}

// EncodeHeader writes the fixed-size routine header at offset and
// returns the number of bytes written (always SizeOfHeader on
// success).
func EncodeHeader(arch vtil.ArchitectureIdentifier, buf []byte, offset int) (int, error) {
	start := offset
	e := newEncoder(buf, offset)
	e.u32(magic1, "codec.EncodeHeader.magic1")
	e.u8(uint8(arch), "codec.EncodeHeader.arch")
	e.u8(0, "codec.EncodeHeader.zero")
	e.u16(magic2, "codec.EncodeHeader.magic2")
	if e.err != nil {
		return e.written(start), e.err
	}
	return e.written(start), nil
}
