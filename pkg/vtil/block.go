package vtil

// BasicBlock is a maximal linear run of instructions, terminated by a
// branch, call, or exit. NextVip of length 2 is a conditional branch
// (slot 0 = taken, slot 1 = not-taken); length 1 is an unconditional
// successor; length 0 is terminal.
type BasicBlock struct {
	Vip                Vip
	SPOffset           int64
	SPIndex            uint32
	LastTemporaryIndex uint32
	Instructions       []Instruction
	PrevVip            []Vip
	NextVip            []Vip
}

// NewBasicBlock returns an empty block entered at vip.
func NewBasicBlock(vip Vip) *BasicBlock {
	return &BasicBlock{Vip: vip}
}

// Tmp allocates a fresh LOCAL temporary register scoped to b, with the
// given bit width and a local id equal to b's current
// LastTemporaryIndex, then advances LastTemporaryIndex.
func (b *BasicBlock) Tmp(bitCount int32) RegisterDesc {
	reg := NewRegisterDesc(FlagLocal, Amd64, uint64(b.LastTemporaryIndex), bitCount, 0)
	b.LastTemporaryIndex++
	return reg
}
