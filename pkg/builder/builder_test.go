package builder

import (
	"testing"

	"github.com/vtil-go/vtil/pkg/arch"
	"github.com/vtil-go/vtil/pkg/vtil"
)

func instrAt(t *testing.T, block *vtil.BasicBlock, i int) vtil.Instruction {
	t.Helper()
	if i >= len(block.Instructions) {
		t.Fatalf("block has %d instructions, want at least %d", len(block.Instructions), i+1)
	}
	return block.Instructions[i]
}

func requireRegisterOperand(t *testing.T, op vtil.Operand) vtil.RegisterDesc {
	t.Helper()
	r, err := op.Register()
	if err != nil {
		t.Fatalf("expected a register operand: %v", err)
	}
	return r
}

func requireImmediateOperand(t *testing.T, op vtil.Operand) vtil.ImmediateDesc {
	t.Helper()
	i, err := op.Immediate()
	if err != nil {
		t.Fatalf("expected an immediate operand: %v", err)
	}
	return i
}

// TestPushMisalignedImmediatePads mirrors pushing a single byte
// immediate onto an empty stack: the push must pad to the 2-byte
// stack alignment with a zero-filled store before storing the value
// itself, leaving sp_offset at -2.
func TestPushMisalignedImmediatePads(t *testing.T) {
	block := vtil.NewBasicBlock(0)
	b := New(block)
	b.Push(vtil.ImmediateOperand(vtil.NewImmediateUnsigned(0xab, 8)))

	if len(block.Instructions) != 2 {
		t.Fatalf("len(Instructions) = %d, want 2", len(block.Instructions))
	}

	pad := instrAt(t, block, 0)
	if pad.Op.Name() != "str" {
		t.Fatalf("instruction 0 = %q, want \"str\"", pad.Op.Name())
	}
	padOps := pad.Op.Operands()
	padOffset := requireImmediateOperand(t, padOps[1])
	if padOffset.Signed() != -1 {
		t.Errorf("pad offset = %d, want -1", padOffset.Signed())
	}
	padValue := requireImmediateOperand(t, padOps[2])
	if padValue.BitCount != 8 || padValue.Unsigned() != 0 {
		t.Errorf("pad value = %+v, want a zero 8-bit immediate", padValue)
	}

	store := instrAt(t, block, 1)
	storeOps := store.Op.Operands()
	storeOffset := requireImmediateOperand(t, storeOps[1])
	if storeOffset.Signed() != -2 {
		t.Errorf("store offset = %d, want -2", storeOffset.Signed())
	}
	storeValue := requireImmediateOperand(t, storeOps[2])
	if storeValue.Unsigned() != 0xab {
		t.Errorf("store value = %#x, want 0xab", storeValue.Unsigned())
	}

	if block.SPOffset != -2 {
		t.Errorf("block.SPOffset = %d, want -2", block.SPOffset)
	}
}

// TestPushStackPointerRewritesThroughTemporary mirrors pushing the
// stack pointer register itself: it must first be moved into a fresh
// temporary, and the temporary pushed in its place.
func TestPushStackPointerRewritesThroughTemporary(t *testing.T) {
	block := vtil.NewBasicBlock(0)
	b := New(block)
	b.Push(vtil.RegisterOperand(arch.StackPointer))

	if len(block.Instructions) != 2 {
		t.Fatalf("len(Instructions) = %d, want 2", len(block.Instructions))
	}

	mov := instrAt(t, block, 0)
	if mov.Op.Name() != "mov" {
		t.Fatalf("instruction 0 = %q, want \"mov\"", mov.Op.Name())
	}
	movOps := mov.Op.Operands()
	tmp := requireRegisterOperand(t, movOps[0])
	if !tmp.Flags.Has(vtil.FlagLocal) {
		t.Error("mov destination should be a fresh local temporary")
	}
	src := requireRegisterOperand(t, movOps[1])
	if !src.Flags.Has(vtil.FlagStackPointer) {
		t.Error("mov source should be the stack pointer")
	}

	store := instrAt(t, block, 1)
	if store.Op.Name() != "str" {
		t.Fatalf("instruction 1 = %q, want \"str\"", store.Op.Name())
	}
	storeOps := store.Op.Operands()
	offset := requireImmediateOperand(t, storeOps[1])
	if offset.Signed() != -8 {
		t.Errorf("store offset = %d, want -8", offset.Signed())
	}
	storedReg := requireRegisterOperand(t, storeOps[2])
	if storedReg.LocalID() != tmp.LocalID() {
		t.Error("the stored operand should be the temporary the stack pointer was moved into")
	}

	if block.SPOffset != -8 {
		t.Errorf("block.SPOffset = %d, want -8", block.SPOffset)
	}
}

// TestPushAlignedThenPopRoundTrips verifies a push of an 8-byte value
// followed by a pop restores sp_offset to its starting point and
// loads from the offset the value was stored at.
func TestPushAlignedThenPopRoundTrips(t *testing.T) {
	block := vtil.NewBasicBlock(0)
	b := New(block)
	dst := block.Tmp(64)
	src := block.Tmp(64)

	b.Push(vtil.RegisterOperand(src))
	if block.SPOffset != -8 {
		t.Fatalf("after Push, SPOffset = %d, want -8", block.SPOffset)
	}

	b.Pop(dst)
	if block.SPOffset != 0 {
		t.Errorf("after Pop, SPOffset = %d, want 0", block.SPOffset)
	}

	pop := instrAt(t, block, len(block.Instructions)-1)
	if pop.Op.Name() != "ldd" {
		t.Fatalf("last instruction = %q, want \"ldd\"", pop.Op.Name())
	}
	popOps := pop.Op.Operands()
	offset := requireImmediateOperand(t, popOps[2])
	if offset.Signed() != -8 {
		t.Errorf("pop offset = %d, want -8", offset.Signed())
	}
}

func TestPendingVipConsumedOnce(t *testing.T) {
	block := vtil.NewBasicBlock(0)
	b := New(block)
	b.SetVip(0x1234)
	b.Nop()
	b.Nop()

	if block.Instructions[0].Vip != 0x1234 {
		t.Errorf("first instruction Vip = %#x, want 0x1234", block.Instructions[0].Vip)
	}
	if block.Instructions[1].Vip.Valid() {
		t.Errorf("second instruction Vip = %#x, want InvalidVip", block.Instructions[1].Vip)
	}
}

func TestShiftSPAndArithmeticEmission(t *testing.T) {
	block := vtil.NewBasicBlock(0)
	b := New(block)
	b.ShiftSP(-16)
	if block.SPOffset != -16 {
		t.Fatalf("SPOffset = %d, want -16", block.SPOffset)
	}

	dst := block.Tmp(32)
	b.Add(dst, vtil.ImmediateOperand(vtil.NewImmediateUnsigned(1, 32)))
	instr := instrAt(t, block, 0)
	if instr.SPOffset != -16 {
		t.Errorf("emitted instruction did not capture the block's sp_offset: got %d, want -16", instr.SPOffset)
	}
	if instr.Op.Name() != "add" || instr.Op.ArityOf() != 2 {
		t.Errorf("Add emitted %q with arity %d, want \"add\"/2", instr.Op.Name(), instr.Op.ArityOf())
	}
}

func TestPushfPopfUseFlagsRegister(t *testing.T) {
	block := vtil.NewBasicBlock(0)
	b := New(block)
	b.Pushf()
	b.Popf()

	if block.SPOffset != 0 {
		t.Errorf("SPOffset after Pushf+Popf = %d, want 0", block.SPOffset)
	}

	pop := instrAt(t, block, len(block.Instructions)-1)
	if pop.Op.Name() != "ldd" {
		t.Fatalf("Popf's last emitted instruction = %q, want \"ldd\"", pop.Op.Name())
	}
	dst := requireRegisterOperand(t, pop.Op.Operands()[0])
	if !dst.Flags.Has(vtil.FlagFlags) {
		t.Error("Popf should load into the flags register")
	}
}
