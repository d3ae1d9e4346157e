package codec

import "github.com/vtil-go/vtil/pkg/vtil"

// SizeOfRoutineConvention returns the wire size of c.
func SizeOfRoutineConvention(c vtil.RoutineConvention) int {
	n := 4 + SizeOfRegisterDesc*len(c.VolatileRegisters)
	n += 4 + SizeOfRegisterDesc*len(c.ParamRegisters)
	n += 4 + SizeOfRegisterDesc*len(c.RetvalRegisters)
	n += SizeOfRegisterDesc // frame register
	n += 8 + 1              // shadow_space, purge_stack
	return n
}

// DecodeRoutineConvention reads a RoutineConvention at offset.
func DecodeRoutineConvention(buf []byte, offset int) (vtil.RoutineConvention, int, error) {
	start := offset
	d := newDecoder(buf, offset)

	volatile, n, err := decodeRegisterSeq(buf, d.pos, "codec.DecodeRoutineConvention.volatile")
	d.pos += n
	if err != nil {
		return vtil.RoutineConvention{}, d.consumed(start), err
	}
	params, n, err := decodeRegisterSeq(buf, d.pos, "codec.DecodeRoutineConvention.param")
	d.pos += n
	if err != nil {
		return vtil.RoutineConvention{}, d.consumed(start), err
	}
	retvals, n, err := decodeRegisterSeq(buf, d.pos, "codec.DecodeRoutineConvention.retval")
	d.pos += n
	if err != nil {
		return vtil.RoutineConvention{}, d.consumed(start), err
	}

	frame, n, err := DecodeRegisterDesc(buf, d.pos)
	d.pos += n
	if err != nil {
		return vtil.RoutineConvention{}, d.consumed(start), err
	}

	shadowSpace := d.u64("codec.DecodeRoutineConvention.shadow_space")
	purgeStack := d.bool8("codec.DecodeRoutineConvention.purge_stack")
	if d.err != nil {
		return vtil.RoutineConvention{}, d.consumed(start), d.err
	}

	return vtil.RoutineConvention{
		VolatileRegisters: volatile,
		ParamRegisters:    params,
		RetvalRegisters:   retvals,
		FrameRegister:     frame,
		ShadowSpace:       shadowSpace,
		PurgeStack:        purgeStack,
	}, d.consumed(start), nil
}

// EncodeRoutineConvention writes c at offset.
func EncodeRoutineConvention(c vtil.RoutineConvention, buf []byte, offset int) (int, error) {
	start := offset
	pos := offset

	n, err := encodeRegisterSeq(c.VolatileRegisters, buf, pos, "codec.EncodeRoutineConvention.volatile")
	pos += n
	if err != nil {
		return pos - start, err
	}
	n, err = encodeRegisterSeq(c.ParamRegisters, buf, pos, "codec.EncodeRoutineConvention.param")
	pos += n
	if err != nil {
		return pos - start, err
	}
	n, err = encodeRegisterSeq(c.RetvalRegisters, buf, pos, "codec.EncodeRoutineConvention.retval")
	pos += n
	if err != nil {
		return pos - start, err
	}

	n, err = EncodeRegisterDesc(c.FrameRegister, buf, pos)
	pos += n
	if err != nil {
		return pos - start, err
	}

	e := newEncoder(buf, pos)
	e.u64(c.ShadowSpace, "codec.EncodeRoutineConvention.shadow_space")
	e.bool8(c.PurgeStack, "codec.EncodeRoutineConvention.purge_stack")
	if e.err != nil {
		return e.pos - start, e.err
	}
	return e.pos - start, nil
}

func decodeRegisterSeq(buf []byte, offset int, op string) ([]vtil.RegisterDesc, int, error) {
	start := offset
	d := newDecoder(buf, offset)
	count := d.u32(op)
	if d.err != nil {
		return nil, d.consumed(start), d.err
	}
	seq := make([]vtil.RegisterDesc, count)
	for i := range seq {
		reg, n, err := DecodeRegisterDesc(buf, d.pos)
		d.pos += n
		if err != nil {
			return nil, d.consumed(start), err
		}
		seq[i] = reg
	}
	return seq, d.consumed(start), nil
}

func encodeRegisterSeq(seq []vtil.RegisterDesc, buf []byte, offset int, op string) (int, error) {
	start := offset
	pos := offset
	count, err := lenU32(len(seq), op)
	if err != nil {
		return 0, err
	}
	e := newEncoder(buf, pos)
	e.u32(count, op)
	pos = e.pos
	if e.err != nil {
		return pos - start, e.err
	}
	for _, reg := range seq {
		n, err := EncodeRegisterDesc(reg, buf, pos)
		pos += n
		if err != nil {
			return pos - start, err
		}
	}
	return pos - start, nil
}
