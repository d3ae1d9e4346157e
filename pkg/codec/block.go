package codec

import "github.com/vtil-go/vtil/pkg/vtil"

// SizeOfBasicBlock returns the wire size of b.
func SizeOfBasicBlock(b *vtil.BasicBlock) int {
	n := 8 + 8 + 4 + 4 // vip, sp_offset, sp_index, last_temporary_index
	n += 4
	for i := range b.Instructions {
		n += SizeOfInstruction(b.Instructions[i])
	}
	n += 4 + 8*len(b.PrevVip)
	n += 4 + 8*len(b.NextVip)
	return n
}

// DecodeBasicBlock reads a BasicBlock at offset.
func DecodeBasicBlock(buf []byte, offset int) (*vtil.BasicBlock, int, error) {
	start := offset
	d := newDecoder(buf, offset)

	vip := vtil.Vip(d.u64("codec.DecodeBasicBlock.vip"))
	spOffset := d.i64("codec.DecodeBasicBlock.sp_offset")
	spIndex := d.u32("codec.DecodeBasicBlock.sp_index")
	lastTemp := d.u32("codec.DecodeBasicBlock.last_temporary_index")
	if d.err != nil {
		return nil, d.consumed(start), d.err
	}

	instrCount := d.u32("codec.DecodeBasicBlock.n_instructions")
	if d.err != nil {
		return nil, d.consumed(start), d.err
	}
	instructions := make([]vtil.Instruction, instrCount)
	for i := range instructions {
		instr, n, err := DecodeInstruction(buf, d.pos)
		d.pos += n
		if err != nil {
			return nil, d.consumed(start), err
		}
		instructions[i] = instr
	}

	prevVip, n, err := decodeVipSeq(buf, d.pos, "codec.DecodeBasicBlock.prev_vip")
	d.pos += n
	if err != nil {
		return nil, d.consumed(start), err
	}
	nextVip, n, err := decodeVipSeq(buf, d.pos, "codec.DecodeBasicBlock.next_vip")
	d.pos += n
	if err != nil {
		return nil, d.consumed(start), err
	}

	return &vtil.BasicBlock{
		Vip:                vip,
		SPOffset:           spOffset,
		SPIndex:            spIndex,
		LastTemporaryIndex: lastTemp,
		Instructions:       instructions,
		PrevVip:            prevVip,
		NextVip:            nextVip,
	}, d.consumed(start), nil
}

// EncodeBasicBlock writes b at offset.
func EncodeBasicBlock(b *vtil.BasicBlock, buf []byte, offset int) (int, error) {
	start := offset
	e := newEncoder(buf, offset)

	e.u64(uint64(b.Vip), "codec.EncodeBasicBlock.vip")
	e.i64(b.SPOffset, "codec.EncodeBasicBlock.sp_offset")
	e.u32(b.SPIndex, "codec.EncodeBasicBlock.sp_index")
	e.u32(b.LastTemporaryIndex, "codec.EncodeBasicBlock.last_temporary_index")
	if e.err != nil {
		return e.written(start), e.err
	}

	instrCount, err := lenU32(len(b.Instructions), "codec.EncodeBasicBlock.n_instructions")
	if err != nil {
		return e.written(start), err
	}
	e.u32(instrCount, "codec.EncodeBasicBlock.n_instructions")
	for i := range b.Instructions {
		n, err := EncodeInstruction(b.Instructions[i], buf, e.pos)
		e.pos += n
		if err != nil {
			return e.written(start), err
		}
	}

	n, err := encodeVipSeq(b.PrevVip, buf, e.pos, "codec.EncodeBasicBlock.prev_vip")
	e.pos += n
	if err != nil {
		return e.written(start), err
	}
	n, err = encodeVipSeq(b.NextVip, buf, e.pos, "codec.EncodeBasicBlock.next_vip")
	e.pos += n
	if err != nil {
		return e.written(start), err
	}

	return e.written(start), nil
}

func decodeVipSeq(buf []byte, offset int, op string) ([]vtil.Vip, int, error) {
	start := offset
	d := newDecoder(buf, offset)
	count := d.u32(op)
	if d.err != nil {
		return nil, d.consumed(start), d.err
	}
	seq := make([]vtil.Vip, count)
	for i := range seq {
		v := d.u64(op)
		if d.err != nil {
			return nil, d.consumed(start), d.err
		}
		seq[i] = vtil.Vip(v)
	}
	return seq, d.consumed(start), nil
}

func encodeVipSeq(seq []vtil.Vip, buf []byte, offset int, op string) (int, error) {
	start := offset
	e := newEncoder(buf, offset)
	count, err := lenU32(len(seq), op)
	if err != nil {
		return 0, err
	}
	e.u32(count, op)
	for _, v := range seq {
		e.u64(uint64(v), op)
	}
	return e.written(start), e.err
}
