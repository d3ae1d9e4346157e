package codec

import "github.com/vtil-go/vtil/pkg/vtil"

// SizeOfVip is the fixed wire size of a Vip.
const SizeOfVip = 8

// DecodeVip reads a Vip at offset.
func DecodeVip(buf []byte, offset int) (vtil.Vip, int, error) {
	d := newDecoder(buf, offset)
	v := d.u64("codec.DecodeVip")
	if d.err != nil {
		return 0, d.consumed(offset), d.err
	}
	return vtil.Vip(v), d.consumed(offset), nil
}

// EncodeVip writes v at offset.
func EncodeVip(v vtil.Vip, buf []byte, offset int) (int, error) {
	e := newEncoder(buf, offset)
	e.u64(uint64(v), "codec.EncodeVip")
	return e.written(offset), e.err
}
