// Package dump renders registers, instructions, and whole routines as
// deterministic human-readable text. The format is not part of the
// wire contract — it exists to give tests something legible to assert
// against, the way the teacher's catalog uses a text disassembler as
// an oracle rather than a persisted format.
package dump

import (
	"fmt"
	"strings"

	"github.com/vtil-go/vtil/pkg/arch"
	"github.com/vtil-go/vtil/pkg/vtil"
)

// Register renders a single register operand: a "?" prefix if
// VOLATILE, "&&" if READONLY; a body selected by priority
// INTERNAL → UNDEFINED → FLAGS → STACK_POINTER → IMAGE_BASE → LOCAL →
// (physical name table) → "vrN" fallback; and a suffix of "@offset"
// if bit_offset is nonzero and ":bitcount" if bit_count isn't 64.
func Register(r vtil.RegisterDesc) string {
	var b strings.Builder

	if r.Flags.Has(vtil.FlagVolatile) {
		b.WriteString("?")
	}
	if r.Flags.Has(vtil.FlagReadonly) {
		b.WriteString("&&")
	}

	switch {
	case r.Flags.Has(vtil.FlagInternal):
		fmt.Fprintf(&b, "sr%d", r.LocalID())
	case r.Flags.Has(vtil.FlagUndefined):
		b.WriteString("UD")
	case r.Flags.Has(vtil.FlagFlags):
		b.WriteString("$flags")
	case r.Flags.Has(vtil.FlagStackPointer):
		b.WriteString("$sp")
	case r.Flags.Has(vtil.FlagImageBase):
		b.WriteString("base")
	case r.Flags.Has(vtil.FlagLocal):
		fmt.Fprintf(&b, "t%d", r.LocalID())
	case r.Flags.Has(vtil.FlagPhysical):
		if name := arch.Name(r.ArchID(), r.LocalID()); name != "" {
			b.WriteString(name)
		} else {
			fmt.Fprintf(&b, "vr%d", r.LocalID())
		}
	default:
		fmt.Fprintf(&b, "vr%d", r.LocalID())
	}

	if r.BitOffset != 0 {
		fmt.Fprintf(&b, "@%d", r.BitOffset)
	}
	if r.BitCount != 64 {
		fmt.Fprintf(&b, ":%d", r.BitCount)
	}

	return b.String()
}

// Immediate renders a constant operand as signed hex, e.g. "0x2a" or
// "-0x1".
func Immediate(i vtil.ImmediateDesc) string {
	v := i.Signed()
	if v < 0 {
		return fmt.Sprintf("-%#x", -v)
	}
	return fmt.Sprintf("%#x", v)
}

// Operand renders o via Register or Immediate, left-padded to 12
// characters to line up instruction columns.
func Operand(o vtil.Operand) string {
	var s string
	if o.IsImmediate() {
		imm, _ := o.Immediate()
		s = Immediate(imm)
	} else {
		reg, _ := o.Register()
		s = Register(reg)
	}
	return fmt.Sprintf("%-12s", s)
}

// Instruction renders a single instruction line: an 8-hex-digit VIP
// (or "[ PSEUDO ]" if the vip is invalid), a sp_reset marker, the
// signed sp_offset, the mnemonic left-padded to 8 characters, then
// each operand.
func Instruction(instr vtil.Instruction) string {
	var b strings.Builder

	if instr.Vip.Valid() {
		fmt.Fprintf(&b, "[%08x] ", uint64(instr.Vip))
	} else {
		b.WriteString("[ PSEUDO ] ")
	}

	if instr.SPReset {
		b.WriteString(">")
	} else {
		b.WriteString(" ")
	}

	if instr.SPOffset < 0 {
		fmt.Fprintf(&b, "-%#04x ", -instr.SPOffset)
	} else {
		fmt.Fprintf(&b, "+%#04x ", instr.SPOffset)
	}

	fmt.Fprintf(&b, "%-8s", instr.Op.Name())

	for _, op := range instr.Op.Operands() {
		b.WriteString(Operand(op))
	}

	return b.String()
}

// Routine renders an entire routine: per block, its entry vip and
// stack pointer, then every instruction on its own line.
func Routine(r *vtil.Routine) string {
	var b strings.Builder

	for _, block := range r.ExploredBlocks() {
		fmt.Fprintf(&b, "Entry point VIP:       %#x\n", uint64(block.Vip))
		if block.SPOffset < 0 {
			fmt.Fprintf(&b, "Stack pointer:         -%#x\n", -block.SPOffset)
		} else {
			fmt.Fprintf(&b, "Stack pointer:         %#x\n", block.SPOffset)
		}
		for _, instr := range block.Instructions {
			b.WriteString(Instruction(instr))
			b.WriteString("\n")
		}
	}

	return b.String()
}
