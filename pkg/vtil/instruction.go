package vtil

// Instruction is one Op placed at a point in a BasicBlock, annotated
// with the stack-pointer bookkeeping the builder maintains as it
// lowers push/pop sequences.
type Instruction struct {
	Op Op

	Vip      Vip
	SPOffset int64
	SPIndex  uint32
	SPReset  bool
}
