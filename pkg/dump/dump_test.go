package dump

import (
	"strings"
	"testing"

	"github.com/vtil-go/vtil/pkg/arch"
	"github.com/vtil-go/vtil/pkg/vtil"
)

func TestRegisterPhysical(t *testing.T) {
	if got := Register(arch.RAX); got != "rax" {
		t.Errorf("Register(RAX) = %q, want %q", got, "rax")
	}
}

func TestRegisterLocalTemporary(t *testing.T) {
	r := vtil.NewRegisterDesc(vtil.FlagLocal, vtil.Amd64, 3, 64, 0)
	if got := Register(r); got != "t3" {
		t.Errorf("Register(local t3) = %q, want %q", got, "t3")
	}
}

func TestRegisterStackPointer(t *testing.T) {
	if got := Register(arch.StackPointer); got != "$sp" {
		t.Errorf("Register(StackPointer) = %q, want %q", got, "$sp")
	}
}

func TestRegisterSuffixes(t *testing.T) {
	r := vtil.NewRegisterDesc(vtil.FlagPhysical, vtil.Amd64, arch.RAX.LocalID(), 32, 8)
	got := Register(r)
	if !strings.Contains(got, "@8") || !strings.Contains(got, ":32") {
		t.Errorf("Register() with a non-default bit_offset/bit_count = %q, want @8 and :32 suffixes", got)
	}
}

func TestRegisterVolatileAndReadonlyPrefixes(t *testing.T) {
	r := vtil.NewRegisterDesc(vtil.FlagVolatile|vtil.FlagReadonly|vtil.FlagLocal, vtil.Amd64, 0, 64, 0)
	got := Register(r)
	if !strings.HasPrefix(got, "?&&") {
		t.Errorf("Register() = %q, want a \"?&&\" prefix for VOLATILE|READONLY", got)
	}
}

func TestImmediateSignedHex(t *testing.T) {
	if got := Immediate(vtil.NewImmediateSigned(-1, 8)); got != "-0x1" {
		t.Errorf("Immediate(-1) = %q, want %q", got, "-0x1")
	}
	if got := Immediate(vtil.NewImmediateUnsigned(0x2a, 32)); got != "0x2a" {
		t.Errorf("Immediate(0x2a) = %q, want %q", got, "0x2a")
	}
}

func TestInstructionPseudoVip(t *testing.T) {
	instr := vtil.Instruction{Op: vtil.NewOp(vtil.Nop, nil), Vip: vtil.InvalidVip}
	if got := Instruction(instr); !strings.Contains(got, "[ PSEUDO ]") {
		t.Errorf("Instruction() with InvalidVip = %q, want it to contain \"[ PSEUDO ]\"", got)
	}
}

func TestInstructionRealVip(t *testing.T) {
	instr := vtil.Instruction{Op: vtil.NewOp(vtil.Nop, nil), Vip: 0x1000}
	got := Instruction(instr)
	if !strings.Contains(got, "[00001000]") {
		t.Errorf("Instruction() = %q, want it to contain \"[00001000]\"", got)
	}
}

func TestRoutineRendersEveryBlock(t *testing.T) {
	r := vtil.NewRoutine(vtil.Amd64)
	b, _ := r.CreateBlock(0x1000)
	b.Instructions = append(b.Instructions, vtil.Instruction{Op: vtil.NewOp(vtil.Nop, nil), Vip: vtil.InvalidVip})

	out := Routine(r)
	if !strings.Contains(out, "Entry point VIP:") {
		t.Error("Routine() output missing block header")
	}
	if !strings.Contains(out, "nop") {
		t.Error("Routine() output missing instruction mnemonic")
	}
}
