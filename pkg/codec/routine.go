package codec

import (
	"github.com/vtil-go/vtil/pkg/verrors"
	"github.com/vtil-go/vtil/pkg/vtil"
	"github.com/vtil-go/vtil/pkg/vtillog"
)

// SizeOfRoutine returns the exact byte length EncodeRoutine will write
// for r: the header, entry vip, both conventions, the spec convention
// list, and every explored block.
func SizeOfRoutine(r *vtil.Routine) int {
	n := SizeOfHeader + SizeOfVip
	n += SizeOfRoutineConvention(r.RoutineConvention)
	n += SizeOfRoutineConvention(r.SubroutineConvention)

	n += 4
	for _, c := range r.SpecSubroutineConventions {
		n += SizeOfRoutineConvention(c)
	}

	blocks := r.ExploredBlocks()
	n += 4
	for _, b := range blocks {
		n += SizeOfBasicBlock(b)
	}
	return n
}

// DecodeRoutine reads a whole routine file from buf starting at
// offset, reconstructing explored_blocks in on-disk (insertion) order.
func DecodeRoutine(buf []byte, offset int) (*vtil.Routine, int, error) {
	start := offset
	pos := offset

	vtillog.Logger().Debug("decoding routine", "offset", offset, "buf_len", len(buf))

	arch, n, err := DecodeHeader(buf, pos)
	pos += n
	if err != nil {
		return nil, pos - start, err
	}

	entryVip, n, err := DecodeVip(buf, pos)
	pos += n
	if err != nil {
		return nil, pos - start, err
	}

	routineConv, n, err := DecodeRoutineConvention(buf, pos)
	pos += n
	if err != nil {
		return nil, pos - start, err
	}

	subroutineConv, n, err := DecodeRoutineConvention(buf, pos)
	pos += n
	if err != nil {
		return nil, pos - start, err
	}

	d := newDecoder(buf, pos)
	specCount := d.u32("codec.DecodeRoutine.n_spec_conventions")
	pos = d.pos
	if d.err != nil {
		return nil, pos - start, d.err
	}
	specConventions := make([]vtil.SubroutineConvention, specCount)
	for i := range specConventions {
		conv, n, err := DecodeRoutineConvention(buf, pos)
		pos += n
		if err != nil {
			return nil, pos - start, err
		}
		specConventions[i] = conv
	}

	d = newDecoder(buf, pos)
	blockCount := d.u32("codec.DecodeRoutine.n_blocks")
	pos = d.pos
	if d.err != nil {
		return nil, pos - start, d.err
	}

	routine := vtil.NewRoutine(arch)
	routine.Vip = entryVip
	routine.RoutineConvention = routineConv
	routine.SubroutineConvention = subroutineConv
	routine.SpecSubroutineConventions = specConventions

	for i := uint32(0); i < blockCount; i++ {
		block, n, err := DecodeBasicBlock(buf, pos)
		pos += n
		if err != nil {
			return nil, pos - start, err
		}
		if err := routine.AppendBlock(block); err != nil {
			return nil, pos - start, verrors.New(verrors.Malformed, "codec.DecodeRoutine.blocks", err)
		}
	}

	if blockCount == 0 {
		vtillog.Logger().Debug("decoded routine with zero blocks", "vip", entryVip)
	}

	return routine, pos - start, nil
}

// EncodeRoutine writes r as a whole routine file at offset, visiting
// explored_blocks in their insertion order.
func EncodeRoutine(r *vtil.Routine, buf []byte, offset int) (int, error) {
	start := offset
	pos := offset

	vtillog.Logger().Debug("encoding routine", "offset", offset, "blocks", r.BlockCount())

	n, err := EncodeHeader(r.ArchID, buf, pos)
	pos += n
	if err != nil {
		return pos - start, err
	}

	n, err = EncodeVip(r.Vip, buf, pos)
	pos += n
	if err != nil {
		return pos - start, err
	}

	n, err = EncodeRoutineConvention(r.RoutineConvention, buf, pos)
	pos += n
	if err != nil {
		return pos - start, err
	}

	n, err = EncodeRoutineConvention(r.SubroutineConvention, buf, pos)
	pos += n
	if err != nil {
		return pos - start, err
	}

	specCount, err := lenU32(len(r.SpecSubroutineConventions), "codec.EncodeRoutine.n_spec_conventions")
	if err != nil {
		return pos - start, err
	}
	e := newEncoder(buf, pos)
	e.u32(specCount, "codec.EncodeRoutine.n_spec_conventions")
	pos = e.pos
	if e.err != nil {
		return pos - start, e.err
	}
	for _, c := range r.SpecSubroutineConventions {
		n, err := EncodeRoutineConvention(c, buf, pos)
		pos += n
		if err != nil {
			return pos - start, err
		}
	}

	blocks := r.ExploredBlocks()
	blockCount, err := lenU32(len(blocks), "codec.EncodeRoutine.n_blocks")
	if err != nil {
		return pos - start, err
	}
	e = newEncoder(buf, pos)
	e.u32(blockCount, "codec.EncodeRoutine.n_blocks")
	pos = e.pos
	if e.err != nil {
		return pos - start, e.err
	}
	for _, b := range blocks {
		n, err := EncodeBasicBlock(b, buf, pos)
		pos += n
		if err != nil {
			return pos - start, err
		}
	}

	return pos - start, nil
}
