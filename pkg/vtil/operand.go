package vtil

import "github.com/vtil-go/vtil/pkg/verrors"

// OperandKind tags which variant of Operand is active.
type OperandKind uint8

const (
	OperandKindImmediate OperandKind = iota
	OperandKindRegister
)

// Operand is a sum type over the two things an instruction can operate
// on: a constant (ImmediateDesc) or a register (RegisterDesc). Only
// one of the two payload fields is meaningful at a time, selected by
// Kind; callers extract the active one with Immediate/Register rather
// than reading the fields directly.
type Operand struct {
	Kind OperandKind
	imm  ImmediateDesc
	reg  RegisterDesc
}

// ImmediateOperand wraps an ImmediateDesc as an Operand.
func ImmediateOperand(i ImmediateDesc) Operand {
	return Operand{Kind: OperandKindImmediate, imm: i}
}

// RegisterOperand wraps a RegisterDesc as an Operand.
func RegisterOperand(r RegisterDesc) Operand {
	return Operand{Kind: OperandKindRegister, reg: r}
}

// IsImmediate reports whether the operand is a constant.
func (o Operand) IsImmediate() bool {
	return o.Kind == OperandKindImmediate
}

// IsRegister reports whether the operand is a register.
func (o Operand) IsRegister() bool {
	return o.Kind == OperandKindRegister
}

// Immediate returns the operand's ImmediateDesc, or an
// OperandTypeMismatch error if the operand is a register.
func (o Operand) Immediate() (ImmediateDesc, error) {
	if !o.IsImmediate() {
		return ImmediateDesc{}, verrors.New(verrors.OperandTypeMismatch, "Operand.Immediate", nil)
	}
	return o.imm, nil
}

// Register returns the operand's RegisterDesc, or an
// OperandTypeMismatch error if the operand is an immediate.
func (o Operand) Register() (RegisterDesc, error) {
	if !o.IsRegister() {
		return RegisterDesc{}, verrors.New(verrors.OperandTypeMismatch, "Operand.Register", nil)
	}
	return o.reg, nil
}

// Size returns the byte size of the operand's active payload.
func (o Operand) Size() int {
	if o.IsImmediate() {
		return o.imm.Size()
	}
	return o.reg.Size()
}

// Equal reports whether o and other carry the same kind and payload.
func (o Operand) Equal(other Operand) bool {
	if o.Kind != other.Kind {
		return false
	}
	if o.IsImmediate() {
		return o.imm.Equal(other.imm)
	}
	return o.reg.Equal(other.reg)
}
