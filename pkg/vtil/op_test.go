package vtil

import "testing"

func TestCatalogCompleteness(t *testing.T) {
	for op := OpCode(0); op < opCodeCount; op++ {
		info := catalog[op]
		if info.name == "" {
			t.Errorf("OpCode %d has no mnemonic", op)
		}
		if info.arity < 0 || info.arity > 3 {
			t.Errorf("OpCode %d (%s) has out-of-range arity %d", op, info.name, info.arity)
		}
		if got, ok := OpCodeByName(info.name); !ok || got != op {
			t.Errorf("OpCodeByName(%q) = %v, %v; want %v, true", info.name, got, ok, op)
		}
	}
}

func TestVolatileOpCodes(t *testing.T) {
	volatile := map[OpCode]bool{
		Sfence: true, Lfence: true, Vemit: true,
		Vpinr: true, Vpinw: true, Vpinrm: true, Vpinwm: true,
	}
	for op := OpCode(0); op < opCodeCount; op++ {
		want := volatile[op]
		got := Op{Code: op}.IsVolatile()
		if got != want {
			t.Errorf("OpCode %d (%s): IsVolatile() = %v, want %v", op, catalog[op].name, got, want)
		}
	}
}

func TestOpCodeByNameUnknown(t *testing.T) {
	if _, ok := OpCodeByName("not_a_real_mnemonic"); ok {
		t.Error("OpCodeByName should fail for an unknown mnemonic")
	}
}

func TestOpOperandsRoundTrip(t *testing.T) {
	dst := NewRegisterDesc(FlagLocal, Amd64, 0, 64, 0)
	src := ImmediateOperand(NewImmediateUnsigned(42, 64))
	op := NewOp(Add, []Operand{RegisterOperand(dst), src})

	if op.ArityOf() != 2 {
		t.Fatalf("ArityOf() = %d, want 2", op.ArityOf())
	}
	ops := op.Operands()
	if len(ops) != 2 {
		t.Fatalf("len(Operands()) = %d, want 2", len(ops))
	}
	if !ops[0].IsRegister() || !ops[1].IsImmediate() {
		t.Error("operand kinds not preserved through NewOp/Operands")
	}
}

func TestOpOperandsMutAliasesOp(t *testing.T) {
	op := NewOp(Neg, []Operand{RegisterOperand(NewRegisterDesc(FlagLocal, Amd64, 0, 32, 0))})
	op.OperandsMut()[0] = RegisterOperand(NewRegisterDesc(FlagLocal, Amd64, 1, 32, 0))
	r, err := op.Operands()[0].Register()
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if r.LocalID() != 1 {
		t.Errorf("OperandsMut write did not alias op, LocalID() = %d, want 1", r.LocalID())
	}
}
