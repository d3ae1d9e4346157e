package vtil

import (
	"testing"

	"github.com/vtil-go/vtil/pkg/verrors"
)

func TestOperandImmediateTypeMismatch(t *testing.T) {
	o := RegisterOperand(NewRegisterDesc(FlagLocal, Amd64, 0, 32, 0))
	_, err := o.Immediate()
	if !verrors.Is(err, verrors.OperandTypeMismatch) {
		t.Fatalf("Immediate() on a register operand: err = %v, want OperandTypeMismatch", err)
	}
}

func TestOperandRegisterTypeMismatch(t *testing.T) {
	o := ImmediateOperand(NewImmediateUnsigned(1, 8))
	_, err := o.Register()
	if !verrors.Is(err, verrors.OperandTypeMismatch) {
		t.Fatalf("Register() on an immediate operand: err = %v, want OperandTypeMismatch", err)
	}
}

func TestOperandEqual(t *testing.T) {
	a := ImmediateOperand(NewImmediateUnsigned(7, 32))
	b := ImmediateOperand(NewImmediateUnsigned(7, 32))
	c := ImmediateOperand(NewImmediateUnsigned(8, 32))
	if !a.Equal(b) {
		t.Error("identical immediate operands should compare equal")
	}
	if a.Equal(c) {
		t.Error("differing immediate operands should not compare equal")
	}
}

func TestOperandSize(t *testing.T) {
	imm := ImmediateOperand(NewImmediateUnsigned(0, 16))
	if imm.Size() != 2 {
		t.Errorf("Size() = %d, want 2", imm.Size())
	}
	reg := RegisterOperand(NewRegisterDesc(FlagLocal, Amd64, 0, 64, 0))
	if reg.Size() != 8 {
		t.Errorf("Size() = %d, want 8", reg.Size())
	}
}
