package codec

import (
	"github.com/vtil-go/vtil/pkg/verrors"
	"github.com/vtil-go/vtil/pkg/vtil"
)

// SizeOfRegisterDesc is the fixed wire size of a RegisterDesc: flags,
// combined_id, bit_count, bit_offset.
const SizeOfRegisterDesc = 8 + 8 + 4 + 4

// DecodeRegisterDesc reads a RegisterDesc at offset. The top byte of
// combined_id (the architecture tag) must be at most 2, or decoding
// fails with Malformed; unknown flag bits are preserved, not rejected.
func DecodeRegisterDesc(buf []byte, offset int) (vtil.RegisterDesc, int, error) {
	start := offset
	d := newDecoder(buf, offset)

	flags := d.u64("codec.DecodeRegisterDesc.flags")
	combinedID := d.u64("codec.DecodeRegisterDesc.combined_id")
	if d.err == nil && combinedID>>56 > 2 {
		d.fail(verrors.Malformed, "codec.DecodeRegisterDesc.combined_id")
	}
	bitCount := d.i32("codec.DecodeRegisterDesc.bit_count")
	bitOffset := d.i32("codec.DecodeRegisterDesc.bit_offset")

	if d.err != nil {
		return vtil.RegisterDesc{}, d.consumed(start), d.err
	}
	return vtil.RegisterDesc{
		Flags:      vtil.RegisterFlags(flags),
		CombinedID: combinedID,
		BitCount:   bitCount,
		BitOffset:  bitOffset,
	}, d.consumed(start), nil
}

// EncodeRegisterDesc writes r at offset.
func EncodeRegisterDesc(r vtil.RegisterDesc, buf []byte, offset int) (int, error) {
	start := offset
	e := newEncoder(buf, offset)
	e.u64(uint64(r.Flags), "codec.EncodeRegisterDesc.flags")
	e.u64(r.CombinedID, "codec.EncodeRegisterDesc.combined_id")
	e.i32(r.BitCount, "codec.EncodeRegisterDesc.bit_count")
	e.i32(r.BitOffset, "codec.EncodeRegisterDesc.bit_offset")
	return e.written(start), e.err
}
