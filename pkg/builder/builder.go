// Package builder provides a fluent, per-opcode way to append
// instructions to a basic block, handling temporary allocation and
// stack-pointer bookkeeping (push/pop lowering, alignment padding,
// the self-store rewrite for pushing the stack pointer itself) the
// way a lifter-facing API needs to.
package builder

import (
	"github.com/vtil-go/vtil/pkg/arch"
	"github.com/vtil-go/vtil/pkg/vtil"
	"github.com/vtil-go/vtil/pkg/vtillog"
)

// vtilStackAlign is the byte alignment push/pop pad to.
const vtilStackAlign = 2

// Builder appends instructions to a single basic block.
type Builder struct {
	block         *vtil.BasicBlock
	pendingVip    vtil.Vip
	hasPendingVip bool
}

// New returns a Builder that appends to block.
func New(block *vtil.BasicBlock) *Builder {
	return &Builder{block: block}
}

// Block returns the block this Builder appends to.
func (b *Builder) Block() *vtil.BasicBlock {
	return b.block
}

// SetVip arms the vip to stamp onto the next emitted instruction; it
// is consumed (cleared) as soon as one instruction uses it.
func (b *Builder) SetVip(vip vtil.Vip) *Builder {
	b.pendingVip = vip
	b.hasPendingVip = true
	return b
}

// Tmp allocates a temporary on the underlying block.
func (b *Builder) Tmp(bitCount int32) vtil.RegisterDesc {
	return b.block.Tmp(bitCount)
}

func (b *Builder) emit(op vtil.Op) *Builder {
	vip := vtil.InvalidVip
	if b.hasPendingVip {
		vip = b.pendingVip
		b.hasPendingVip = false
	}
	b.block.Instructions = append(b.block.Instructions, vtil.Instruction{
		Op:       op,
		Vip:      vip,
		SPOffset: b.block.SPOffset,
		SPIndex:  b.block.SPIndex,
		SPReset:  false,
	})
	return b
}

func reg(r vtil.RegisterDesc) vtil.Operand  { return vtil.RegisterOperand(r) }
func imm(i vtil.ImmediateDesc) vtil.Operand { return vtil.ImmediateOperand(i) }

// Mov: op1 <- zero-extend(op2).
func (b *Builder) Mov(dst vtil.RegisterDesc, src vtil.Operand) *Builder {
	return b.emit(vtil.NewOp(vtil.Mov, []vtil.Operand{reg(dst), src}))
}

// Movsx: op1 <- sign-extend(op2).
func (b *Builder) Movsx(dst vtil.RegisterDesc, src vtil.Operand) *Builder {
	return b.emit(vtil.NewOp(vtil.Movsx, []vtil.Operand{reg(dst), src}))
}

// Str: memory[base+offset] <- value.
func (b *Builder) Str(base vtil.RegisterDesc, offset vtil.ImmediateDesc, value vtil.Operand) *Builder {
	return b.emit(vtil.NewOp(vtil.Str, []vtil.Operand{reg(base), imm(offset), value}))
}

// Ldd: dst <- memory[base+offset].
func (b *Builder) Ldd(dst vtil.RegisterDesc, base vtil.RegisterDesc, offset vtil.ImmediateDesc) *Builder {
	return b.emit(vtil.NewOp(vtil.Ldd, []vtil.Operand{reg(dst), reg(base), imm(offset)}))
}

// Neg: dst <- -dst.
func (b *Builder) Neg(dst vtil.RegisterDesc) *Builder {
	return b.emit(vtil.NewOp(vtil.Neg, []vtil.Operand{reg(dst)}))
}

func (b *Builder) binary(code vtil.OpCode, dst vtil.RegisterDesc, src vtil.Operand) *Builder {
	return b.emit(vtil.NewOp(code, []vtil.Operand{reg(dst), src}))
}

// Add: dst <- dst + src.
func (b *Builder) Add(dst vtil.RegisterDesc, src vtil.Operand) *Builder { return b.binary(vtil.Add, dst, src) }

// Sub: dst <- dst - src.
func (b *Builder) Sub(dst vtil.RegisterDesc, src vtil.Operand) *Builder { return b.binary(vtil.Sub, dst, src) }

// Mul: dst <- low(dst * src), unsigned.
func (b *Builder) Mul(dst vtil.RegisterDesc, src vtil.Operand) *Builder { return b.binary(vtil.Mul, dst, src) }

// Mulhi: dst <- high(dst * src), unsigned.
func (b *Builder) Mulhi(dst vtil.RegisterDesc, src vtil.Operand) *Builder {
	return b.binary(vtil.Mulhi, dst, src)
}

// Imul: dst <- low(dst * src), signed.
func (b *Builder) Imul(dst vtil.RegisterDesc, src vtil.Operand) *Builder { return b.binary(vtil.Imul, dst, src) }

// Imulhi: dst <- high(dst * src), signed.
func (b *Builder) Imulhi(dst vtil.RegisterDesc, src vtil.Operand) *Builder {
	return b.binary(vtil.Imulhi, dst, src)
}

func (b *Builder) ternary(code vtil.OpCode, dst vtil.RegisterDesc, op2, op3 vtil.Operand) *Builder {
	return b.emit(vtil.NewOp(code, []vtil.Operand{reg(dst), op2, op3}))
}

// Div: dst <- (hi:dst) / divisor, unsigned.
func (b *Builder) Div(dst vtil.RegisterDesc, hi, divisor vtil.Operand) *Builder {
	return b.ternary(vtil.Div, dst, hi, divisor)
}

// Rem: dst <- (hi:dst) % divisor, unsigned.
func (b *Builder) Rem(dst vtil.RegisterDesc, hi, divisor vtil.Operand) *Builder {
	return b.ternary(vtil.Rem, dst, hi, divisor)
}

// Idiv: dst <- (hi:dst) / divisor, signed.
func (b *Builder) Idiv(dst vtil.RegisterDesc, hi, divisor vtil.Operand) *Builder {
	return b.ternary(vtil.Idiv, dst, hi, divisor)
}

// Irem: dst <- (hi:dst) % divisor, signed.
func (b *Builder) Irem(dst vtil.RegisterDesc, hi, divisor vtil.Operand) *Builder {
	return b.ternary(vtil.Irem, dst, hi, divisor)
}

// Popcnt: dst <- population count of dst.
func (b *Builder) Popcnt(dst vtil.RegisterDesc) *Builder { return b.emit(vtil.NewOp(vtil.Popcnt, []vtil.Operand{reg(dst)})) }

// Bsf: dst <- index of least significant set bit of dst.
func (b *Builder) Bsf(dst vtil.RegisterDesc) *Builder { return b.emit(vtil.NewOp(vtil.Bsf, []vtil.Operand{reg(dst)})) }

// Bsr: dst <- index of most significant set bit of dst.
func (b *Builder) Bsr(dst vtil.RegisterDesc) *Builder { return b.emit(vtil.NewOp(vtil.Bsr, []vtil.Operand{reg(dst)})) }

// Not: dst <- ^dst.
func (b *Builder) Not(dst vtil.RegisterDesc) *Builder { return b.emit(vtil.NewOp(vtil.Not, []vtil.Operand{reg(dst)})) }

// Shr: dst <- dst >> src, logical.
func (b *Builder) Shr(dst vtil.RegisterDesc, src vtil.Operand) *Builder { return b.binary(vtil.Shr, dst, src) }

// Shl: dst <- dst << src.
func (b *Builder) Shl(dst vtil.RegisterDesc, src vtil.Operand) *Builder { return b.binary(vtil.Shl, dst, src) }

// Xor: dst <- dst ^ src.
func (b *Builder) Xor(dst vtil.RegisterDesc, src vtil.Operand) *Builder { return b.binary(vtil.Xor, dst, src) }

// Or: dst <- dst | src.
func (b *Builder) Or(dst vtil.RegisterDesc, src vtil.Operand) *Builder { return b.binary(vtil.Or, dst, src) }

// And: dst <- dst & src.
func (b *Builder) And(dst vtil.RegisterDesc, src vtil.Operand) *Builder { return b.binary(vtil.And, dst, src) }

// Ror: dst <- dst rotated right by src.
func (b *Builder) Ror(dst vtil.RegisterDesc, src vtil.Operand) *Builder { return b.binary(vtil.Ror, dst, src) }

// Rol: dst <- dst rotated left by src.
func (b *Builder) Rol(dst vtil.RegisterDesc, src vtil.Operand) *Builder { return b.binary(vtil.Rol, dst, src) }

// Tg: dst <- lhs > rhs, signed.
func (b *Builder) Tg(dst vtil.RegisterDesc, lhs, rhs vtil.Operand) *Builder { return b.ternary(vtil.Tg, dst, lhs, rhs) }

// Tge: dst <- lhs >= rhs, signed.
func (b *Builder) Tge(dst vtil.RegisterDesc, lhs, rhs vtil.Operand) *Builder { return b.ternary(vtil.Tge, dst, lhs, rhs) }

// Te: dst <- lhs == rhs.
func (b *Builder) Te(dst vtil.RegisterDesc, lhs, rhs vtil.Operand) *Builder { return b.ternary(vtil.Te, dst, lhs, rhs) }

// Tne: dst <- lhs != rhs.
func (b *Builder) Tne(dst vtil.RegisterDesc, lhs, rhs vtil.Operand) *Builder { return b.ternary(vtil.Tne, dst, lhs, rhs) }

// Tl: dst <- lhs < rhs, signed.
func (b *Builder) Tl(dst vtil.RegisterDesc, lhs, rhs vtil.Operand) *Builder { return b.ternary(vtil.Tl, dst, lhs, rhs) }

// Tle: dst <- lhs <= rhs, signed.
func (b *Builder) Tle(dst vtil.RegisterDesc, lhs, rhs vtil.Operand) *Builder { return b.ternary(vtil.Tle, dst, lhs, rhs) }

// Tug: dst <- lhs > rhs, unsigned.
func (b *Builder) Tug(dst vtil.RegisterDesc, lhs, rhs vtil.Operand) *Builder { return b.ternary(vtil.Tug, dst, lhs, rhs) }

// Tuge: dst <- lhs >= rhs, unsigned.
func (b *Builder) Tuge(dst vtil.RegisterDesc, lhs, rhs vtil.Operand) *Builder { return b.ternary(vtil.Tuge, dst, lhs, rhs) }

// Tul: dst <- lhs < rhs, unsigned.
func (b *Builder) Tul(dst vtil.RegisterDesc, lhs, rhs vtil.Operand) *Builder { return b.ternary(vtil.Tul, dst, lhs, rhs) }

// Tule: dst <- lhs <= rhs, unsigned.
func (b *Builder) Tule(dst vtil.RegisterDesc, lhs, rhs vtil.Operand) *Builder { return b.ternary(vtil.Tule, dst, lhs, rhs) }

// Ifs: dst <- cond != 0 ? a : 0.
func (b *Builder) Ifs(dst vtil.RegisterDesc, cond, a vtil.Operand) *Builder { return b.ternary(vtil.Ifs, dst, cond, a) }

// Js: conditional branch continuing virtual execution: if cond, jump
// to taken, otherwise to notTaken.
func (b *Builder) Js(cond vtil.Operand, taken, notTaken vtil.ImmediateDesc) *Builder {
	return b.emit(vtil.NewOp(vtil.Js, []vtil.Operand{cond, imm(taken), imm(notTaken)}))
}

// Jmp: unconditional jump to target, continuing virtual execution.
func (b *Builder) Jmp(target vtil.Operand) *Builder {
	return b.emit(vtil.NewOp(vtil.Jmp, []vtil.Operand{target}))
}

// Vexit: leave virtual execution at target.
func (b *Builder) Vexit(target vtil.Operand) *Builder {
	return b.emit(vtil.NewOp(vtil.Vexit, []vtil.Operand{target}))
}

// Vxcall: leave virtual execution to call target.
func (b *Builder) Vxcall(target vtil.Operand) *Builder {
	return b.emit(vtil.NewOp(vtil.Vxcall, []vtil.Operand{target}))
}

// Nop emits a no-op.
func (b *Builder) Nop() *Builder { return b.emit(vtil.NewOp(vtil.Nop, nil)) }

// Sfence emits a store fence.
func (b *Builder) Sfence() *Builder { return b.emit(vtil.NewOp(vtil.Sfence, nil)) }

// Lfence emits a load fence.
func (b *Builder) Lfence() *Builder { return b.emit(vtil.NewOp(vtil.Lfence, nil)) }

// Vemit emits raw bytes verbatim into the lifted output.
func (b *Builder) Vemit(data vtil.ImmediateDesc) *Builder {
	return b.emit(vtil.NewOp(vtil.Vemit, []vtil.Operand{imm(data)}))
}

// Vpinr declares a read dependency on r, preventing it from being
// reordered or eliminated.
func (b *Builder) Vpinr(r vtil.RegisterDesc) *Builder {
	return b.emit(vtil.NewOp(vtil.Vpinr, []vtil.Operand{reg(r)}))
}

// Vpinw declares a write dependency on r.
func (b *Builder) Vpinw(r vtil.RegisterDesc) *Builder {
	return b.emit(vtil.NewOp(vtil.Vpinw, []vtil.Operand{reg(r)}))
}

// Vpinrm declares a read dependency on memory[base+offset] sized size.
func (b *Builder) Vpinrm(base vtil.RegisterDesc, offset, size vtil.ImmediateDesc) *Builder {
	return b.emit(vtil.NewOp(vtil.Vpinrm, []vtil.Operand{reg(base), imm(offset), imm(size)}))
}

// Vpinwm declares a write dependency on memory[base+offset] sized size.
func (b *Builder) Vpinwm(base vtil.RegisterDesc, offset, size vtil.ImmediateDesc) *Builder {
	return b.emit(vtil.NewOp(vtil.Vpinwm, []vtil.Operand{reg(base), imm(offset), imm(size)}))
}

// ShiftSP adjusts the block's sp_offset by delta without emitting an
// instruction.
func (b *Builder) ShiftSP(delta int64) *Builder {
	b.block.SPOffset += delta
	return b
}

// Push lowers a push of op onto the virtual stack:
//  1. if op is the stack pointer register, first mov it into a fresh
//     64-bit temporary and push that instead, since the store below
//     must not observe its own sp mutation;
//  2. pad to vtilStackAlign with a zero-filled store if op's size is
//     misaligned;
//  3. shift sp down by op's size and store op at the new offset.
func (b *Builder) Push(op vtil.Operand) *Builder {
	if op.IsRegister() {
		if r, _ := op.Register(); r.Flags.Has(vtil.FlagStackPointer) {
			vtillog.Logger().Debug("rewriting push of stack pointer through a temporary")
			tmp := b.block.Tmp(64)
			b.Mov(tmp, op)
			return b.Push(reg(tmp))
		}
	}

	size := op.Size()
	if misalign := size % vtilStackAlign; misalign != 0 {
		pad := vtilStackAlign - misalign
		b.ShiftSP(-int64(pad))
		offset := vtil.NewImmediateSigned(b.block.SPOffset, 64)
		zero := vtil.NewImmediateUnsigned(0, uint32(pad*8))
		b.Str(arch.StackPointer, offset, imm(zero))
	}

	b.ShiftSP(-int64(size))
	offset := vtil.NewImmediateSigned(b.block.SPOffset, 64)
	return b.Str(arch.StackPointer, offset, op)
}

// Pop lowers a pop into reg: align the read offset, capture it before
// advancing sp, then load reg from that offset.
func (b *Builder) Pop(r vtil.RegisterDesc) *Builder {
	size := r.Size()
	if misalign := size % vtilStackAlign; misalign != 0 {
		b.ShiftSP(int64(vtilStackAlign - misalign))
	}

	offset := vtil.NewImmediateSigned(b.block.SPOffset, 64)
	b.ShiftSP(int64(size))
	return b.Ldd(r, arch.StackPointer, offset)
}

// Pushf pushes the flags register.
func (b *Builder) Pushf() *Builder {
	return b.Push(reg(arch.Flags))
}

// Popf pops the flags register. The original builder this is modeled
// on calls push(FLAGS) for both pushf and popf; here popf pops, as a
// push would silently corrupt the stack instead of restoring flags.
func (b *Builder) Popf() *Builder {
	return b.Pop(arch.Flags)
}
