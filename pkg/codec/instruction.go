package codec

import (
	"github.com/vtil-go/vtil/pkg/verrors"
	"github.com/vtil-go/vtil/pkg/vtil"
)

// SizeOfInstruction returns the wire size of instr: the mnemonic
// length prefix and bytes, the operand count prefix and operands, and
// the fixed vip/sp_offset/sp_index/sp_reset trailer.
func SizeOfInstruction(instr vtil.Instruction) int {
	n := 4 + len(instr.Op.Name())
	n += 4
	for _, op := range instr.Op.Operands() {
		n += SizeOfOperand(op)
	}
	n += 8 + 8 + 4 + 1
	return n
}

// DecodeInstruction reads an Instruction at offset. The decoded name
// must be a known opcode mnemonic (Malformed otherwise) and the
// decoded operand count must equal that opcode's canonical arity
// (OperandMismatch otherwise); the Op is reconstructed from both.
func DecodeInstruction(buf []byte, offset int) (vtil.Instruction, int, error) {
	start := offset
	d := newDecoder(buf, offset)

	nameLen := d.u32("codec.DecodeInstruction.name_len")
	var name string
	if d.err == nil {
		name = d.str(int(nameLen), "codec.DecodeInstruction.name")
	}
	if d.err != nil {
		return vtil.Instruction{}, d.consumed(start), d.err
	}

	code, ok := vtil.OpCodeByName(name)
	if !ok {
		return vtil.Instruction{}, d.consumed(start), verrors.New(verrors.Malformed, "codec.DecodeInstruction.name", nil)
	}

	operandCount := d.u32("codec.DecodeInstruction.operand_count")
	if d.err != nil {
		return vtil.Instruction{}, d.consumed(start), d.err
	}
	if int(operandCount) != vtil.Arity(code) {
		return vtil.Instruction{}, d.consumed(start), verrors.New(verrors.OperandMismatch, "codec.DecodeInstruction.operand_count", nil)
	}

	operands := make([]vtil.Operand, operandCount)
	for i := range operands {
		op, n, err := DecodeOperand(buf, d.pos)
		d.pos += n
		if err != nil {
			return vtil.Instruction{}, d.consumed(start), err
		}
		operands[i] = op
	}

	vip := vtil.Vip(d.u64("codec.DecodeInstruction.vip"))
	spOffset := d.i64("codec.DecodeInstruction.sp_offset")
	spIndex := d.u32("codec.DecodeInstruction.sp_index")
	spReset := d.bool8("codec.DecodeInstruction.sp_reset")

	if d.err != nil {
		return vtil.Instruction{}, d.consumed(start), d.err
	}

	return vtil.Instruction{
		Op:       vtil.NewOp(code, operands),
		Vip:      vip,
		SPOffset: spOffset,
		SPIndex:  spIndex,
		SPReset:  spReset,
	}, d.consumed(start), nil
}

// EncodeInstruction writes instr at offset.
func EncodeInstruction(instr vtil.Instruction, buf []byte, offset int) (int, error) {
	start := offset
	e := newEncoder(buf, offset)

	name := instr.Op.Name()
	nameLen, err := lenU32(len(name), "codec.EncodeInstruction.name_len")
	if err != nil {
		return 0, err
	}
	e.u32(nameLen, "codec.EncodeInstruction.name_len")
	e.str(name, "codec.EncodeInstruction.name")

	operands := instr.Op.Operands()
	operandCount, err := lenU32(len(operands), "codec.EncodeInstruction.operand_count")
	if err != nil {
		return e.written(start), err
	}
	e.u32(operandCount, "codec.EncodeInstruction.operand_count")
	if e.err != nil {
		return e.written(start), e.err
	}

	for _, op := range operands {
		n, err := EncodeOperand(op, buf, e.pos)
		e.pos += n
		if err != nil {
			return e.written(start), err
		}
	}

	e.u64(uint64(instr.Vip), "codec.EncodeInstruction.vip")
	e.i64(instr.SPOffset, "codec.EncodeInstruction.sp_offset")
	e.u32(instr.SPIndex, "codec.EncodeInstruction.sp_index")
	e.bool8(instr.SPReset, "codec.EncodeInstruction.sp_reset")

	return e.written(start), e.err
}
