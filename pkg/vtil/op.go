package vtil

// OpCode identifies a VTIL instruction variant. It is a compact
// identifier; the wire format never stores OpCode directly, only the
// mnemonic string returned by Name — OpCode exists so in-memory code
// can switch on a small integer instead of comparing strings.
type OpCode uint8

const (
	Mov OpCode = iota
	Movsx
	Str
	Ldd
	Neg
	Add
	Sub
	Mul
	Mulhi
	Imul
	Imulhi
	Div
	Rem
	Idiv
	Irem
	Popcnt
	Bsf
	Bsr
	Not
	Shr
	Shl
	Xor
	Or
	And
	Ror
	Rol
	Tg
	Tge
	Te
	Tne
	Tl
	Tle
	Tug
	Tuge
	Tul
	Tule
	Ifs
	Js
	Jmp
	Vexit
	Vxcall
	Nop
	Sfence
	Lfence
	Vemit
	Vpinr
	Vpinw
	Vpinrm
	Vpinwm
	opCodeCount
)

// opInfo holds static metadata for an OpCode: its mnemonic, canonical
// arity, and whether it is volatile (observable beyond its operands).
type opInfo struct {
	name     string
	arity    int
	volatile bool
}

// catalog maps each OpCode to its opInfo. Populated once in init;
// never mutated afterward, so it is safe to read concurrently.
var catalog [opCodeCount]opInfo

// nameToOpCode is the inverse of catalog, used by the codec to
// reconstruct an Op from a decoded mnemonic string.
var nameToOpCode map[string]OpCode

func init() {
	nameToOpCode = make(map[string]OpCode, opCodeCount)

	entries := []struct {
		op       OpCode
		name     string
		arity    int
		volatile bool
	}{
		// Data / memory.
		{Mov, "mov", 2, false},
		{Movsx, "movsx", 2, false},
		{Str, "str", 3, false},
		{Ldd, "ldd", 3, false},

		// Arithmetic.
		{Neg, "neg", 1, false},
		{Add, "add", 2, false},
		{Sub, "sub", 2, false},
		{Mul, "mul", 2, false},
		{Mulhi, "mulhi", 2, false},
		{Imul, "imul", 2, false},
		{Imulhi, "imulhi", 2, false},
		{Div, "div", 3, false},
		{Rem, "rem", 3, false},
		{Idiv, "idiv", 3, false},
		{Irem, "irem", 3, false},

		// Bitwise.
		{Popcnt, "popcnt", 1, false},
		{Bsf, "bsf", 1, false},
		{Bsr, "bsr", 1, false},
		{Not, "not", 1, false},
		{Shr, "shr", 2, false},
		{Shl, "shl", 2, false},
		{Xor, "xor", 2, false},
		{Or, "or", 2, false},
		{And, "and", 2, false},
		{Ror, "ror", 2, false},
		{Rol, "rol", 2, false},

		// Conditional / comparison.
		{Tg, "tg", 3, false},
		{Tge, "tge", 3, false},
		{Te, "te", 3, false},
		{Tne, "tne", 3, false},
		{Tl, "tl", 3, false},
		{Tle, "tle", 3, false},
		{Tug, "tug", 3, false},
		{Tuge, "tuge", 3, false},
		{Tul, "tul", 3, false},
		{Tule, "tule", 3, false},
		{Ifs, "ifs", 3, false},

		// Control flow.
		{Js, "js", 3, false},
		{Jmp, "jmp", 1, false},
		{Vexit, "vexit", 1, false},
		{Vxcall, "vxcall", 1, false},

		// Special / volatile.
		{Nop, "nop", 0, false},
		{Sfence, "sfence", 0, true},
		{Lfence, "lfence", 0, true},
		{Vemit, "vemit", 1, true},
		{Vpinr, "vpinr", 1, true},
		{Vpinw, "vpinw", 1, true},
		{Vpinrm, "vpinrm", 3, true},
		{Vpinwm, "vpinwm", 3, true},
	}

	for _, e := range entries {
		catalog[e.op] = opInfo{name: e.name, arity: e.arity, volatile: e.volatile}
		nameToOpCode[e.name] = e.op
	}
}

// OpCodeByName looks up an OpCode by its canonical mnemonic. It is the
// codec's entry point for reconstructing an Op from a decoded name.
func OpCodeByName(name string) (OpCode, bool) {
	op, ok := nameToOpCode[name]
	return op, ok
}

// Arity returns the canonical operand count for code.
func Arity(code OpCode) int {
	return catalog[code].arity
}

// Op is a single VTIL instruction's operator: a variant drawn from
// OpCode together with its fixed slate of operand slots. Every
// variant, regardless of arity, is represented the same way — the
// active slots are operands[:ArityOf()].
type Op struct {
	Code     OpCode
	operands [3]Operand
}

// NewOp builds an Op from a code and a slice of operands whose length
// must equal the code's canonical arity.
func NewOp(code OpCode, operands []Operand) Op {
	var o Op
	o.Code = code
	copy(o.operands[:], operands)
	return o
}

// Name returns the canonical lowercase mnemonic for o's variant.
func (o Op) Name() string {
	return catalog[o.Code].name
}

// ArityOf returns the canonical operand count for o's variant.
func (o Op) ArityOf() int {
	return catalog[o.Code].arity
}

// IsVolatile reports whether o's variant is observable beyond its
// declared operands (memory fences, raw-byte emission, register pins).
func (o Op) IsVolatile() bool {
	return catalog[o.Code].volatile
}

// Operands returns a copy of o's active operand slots in positional
// order.
func (o Op) Operands() []Operand {
	ops := make([]Operand, o.ArityOf())
	copy(ops, o.operands[:o.ArityOf()])
	return ops
}

// OperandsMut returns o's active operand slots as a slice backed by
// o's own array, so writes through it mutate o in place.
func (o *Op) OperandsMut() []Operand {
	return o.operands[:o.ArityOf()]
}
