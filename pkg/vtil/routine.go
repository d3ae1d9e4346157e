package vtil

import "github.com/vtil-go/vtil/pkg/verrors"

// RoutineConvention describes a calling convention: which registers a
// callee may clobber, which carry parameters or return values, the
// frame register, and stack-cleanup policy.
type RoutineConvention struct {
	VolatileRegisters []RegisterDesc
	ParamRegisters    []RegisterDesc
	RetvalRegisters   []RegisterDesc
	FrameRegister     RegisterDesc
	ShadowSpace       uint64
	PurgeStack        bool
}

// SubroutineConvention is structurally identical to RoutineConvention;
// the two names exist because a Routine's header convention and a
// called subroutine's convention are conceptually distinct even though
// nothing distinguishes their shape.
type SubroutineConvention = RoutineConvention

// Routine is the top-level VTIL container: a routine's calling
// convention metadata plus every basic block reachable from its entry
// point during the discovery pass that produced it.
//
// explored_blocks is modeled as a slice of blocks plus a Vip→index
// lookup rather than a map alone, so that insertion order — load
// bearing for bit-exact re-encoding — survives independently of Go's
// unordered map iteration.
type Routine struct {
	ArchID                    ArchitectureIdentifier
	Vip                       Vip
	RoutineConvention         RoutineConvention
	SubroutineConvention      SubroutineConvention
	SpecSubroutineConventions []SubroutineConvention

	blocks     []*BasicBlock
	indexByVip map[Vip]int
}

// NewRoutine returns an empty routine for the given architecture.
func NewRoutine(archID ArchitectureIdentifier) *Routine {
	return &Routine{ArchID: archID, indexByVip: make(map[Vip]int)}
}

// CreateBlock allocates a new block at vip and appends it to the
// routine's insertion-ordered block list. It fails if a block already
// exists at vip, since explored_blocks keys must be unique.
func (r *Routine) CreateBlock(vip Vip) (*BasicBlock, error) {
	if _, exists := r.indexByVip[vip]; exists {
		return nil, verrors.New(verrors.Malformed, "Routine.CreateBlock", nil)
	}
	b := NewBasicBlock(vip)
	r.indexByVip[vip] = len(r.blocks)
	r.blocks = append(r.blocks, b)
	return b, nil
}

// AppendBlock adds an already-constructed block, preserving call
// order as the routine's insertion order. Used by the codec, which
// decodes blocks in their on-disk order and must replay that order
// exactly. It fails if a block already exists at b.Vip.
func (r *Routine) AppendBlock(b *BasicBlock) error {
	if _, exists := r.indexByVip[b.Vip]; exists {
		return verrors.New(verrors.Malformed, "Routine.AppendBlock", nil)
	}
	r.indexByVip[b.Vip] = len(r.blocks)
	r.blocks = append(r.blocks, b)
	return nil
}

// Block looks up the block entered at vip, if any.
func (r *Routine) Block(vip Vip) (*BasicBlock, bool) {
	idx, ok := r.indexByVip[vip]
	if !ok {
		return nil, false
	}
	return r.blocks[idx], true
}

// ExploredBlocks returns every block in insertion order — the order a
// decoder read them in, or the order CreateBlock/AppendBlock were
// called in for a built routine. The returned slice is owned by the
// caller but its *BasicBlock elements alias the routine's own blocks.
func (r *Routine) ExploredBlocks() []*BasicBlock {
	out := make([]*BasicBlock, len(r.blocks))
	copy(out, r.blocks)
	return out
}

// BlockCount returns the number of explored blocks.
func (r *Routine) BlockCount() int {
	return len(r.blocks)
}
