package codec

import "github.com/vtil-go/vtil/pkg/vtil"

// SizeOfImmediateDesc is the fixed wire size of an ImmediateDesc:
// value, bit_count.
const SizeOfImmediateDesc = 8 + 4

// DecodeImmediateDesc reads an ImmediateDesc at offset. The raw value
// is stored untagged; sign interpretation is a view, not persisted
// state.
func DecodeImmediateDesc(buf []byte, offset int) (vtil.ImmediateDesc, int, error) {
	start := offset
	d := newDecoder(buf, offset)
	value := d.u64("codec.DecodeImmediateDesc.value")
	bitCount := d.u32("codec.DecodeImmediateDesc.bit_count")
	if d.err != nil {
		return vtil.ImmediateDesc{}, d.consumed(start), d.err
	}
	return vtil.ImmediateDesc{Value: value, BitCount: bitCount}, d.consumed(start), nil
}

// EncodeImmediateDesc writes i at offset.
func EncodeImmediateDesc(i vtil.ImmediateDesc, buf []byte, offset int) (int, error) {
	start := offset
	e := newEncoder(buf, offset)
	e.u64(i.Value, "codec.EncodeImmediateDesc.value")
	e.u32(i.BitCount, "codec.EncodeImmediateDesc.bit_count")
	return e.written(start), e.err
}
