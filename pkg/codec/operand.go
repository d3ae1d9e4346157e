package codec

import (
	"github.com/vtil-go/vtil/pkg/verrors"
	"github.com/vtil-go/vtil/pkg/vtil"
)

const (
	operandTagImmediate uint32 = 0
	operandTagRegister  uint32 = 1
)

// SizeOfOperand returns the wire size of o: a 4-byte tag plus the
// active payload's size.
func SizeOfOperand(o vtil.Operand) int {
	if o.IsImmediate() {
		return 4 + SizeOfImmediateDesc
	}
	return 4 + SizeOfRegisterDesc
}

// DecodeOperand reads an Operand at offset. The leading u32 tag
// selects the variant (0 = immediate, 1 = register); any other value
// fails with Malformed.
func DecodeOperand(buf []byte, offset int) (vtil.Operand, int, error) {
	start := offset
	d := newDecoder(buf, offset)
	tag := d.u32("codec.DecodeOperand.tag")
	if d.err != nil {
		return vtil.Operand{}, d.consumed(start), d.err
	}

	switch tag {
	case operandTagImmediate:
		imm, n, err := DecodeImmediateDesc(buf, d.pos)
		if err != nil {
			return vtil.Operand{}, d.consumed(start) + n, err
		}
		return vtil.ImmediateOperand(imm), d.consumed(start) + n, nil
	case operandTagRegister:
		reg, n, err := DecodeRegisterDesc(buf, d.pos)
		if err != nil {
			return vtil.Operand{}, d.consumed(start) + n, err
		}
		return vtil.RegisterOperand(reg), d.consumed(start) + n, nil
	default:
		return vtil.Operand{}, d.consumed(start), verrors.New(verrors.Malformed, "codec.DecodeOperand.tag", nil)
	}
}

// EncodeOperand writes o at offset.
func EncodeOperand(o vtil.Operand, buf []byte, offset int) (int, error) {
	start := offset
	e := newEncoder(buf, offset)
	if o.IsImmediate() {
		e.u32(operandTagImmediate, "codec.EncodeOperand.tag")
	} else {
		e.u32(operandTagRegister, "codec.EncodeOperand.tag")
	}
	if e.err != nil {
		return e.written(start), e.err
	}

	var n int
	var err error
	if o.IsImmediate() {
		imm, _ := o.Immediate()
		n, err = EncodeImmediateDesc(imm, buf, e.pos)
	} else {
		reg, _ := o.Register()
		n, err = EncodeRegisterDesc(reg, buf, e.pos)
	}
	if err != nil {
		return e.written(start) + n, err
	}
	return e.written(start) + n, nil
}
