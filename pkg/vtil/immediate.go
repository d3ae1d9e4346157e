package vtil

// ImmediateDesc is a constant operand. Value holds the raw bit
// pattern; BitCount is the width the constant was emitted at and is
// preserved as-is rather than normalized, since a narrower immediate
// sign-extended into a wider Value is meaningful to callers.
type ImmediateDesc struct {
	Value    uint64
	BitCount uint32
}

// NewImmediateUnsigned builds an ImmediateDesc from an unsigned value.
func NewImmediateUnsigned(v uint64, bitCount uint32) ImmediateDesc {
	return ImmediateDesc{Value: v, BitCount: bitCount}
}

// NewImmediateSigned builds an ImmediateDesc from a signed value,
// storing its two's-complement bit pattern.
func NewImmediateSigned(v int64, bitCount uint32) ImmediateDesc {
	return ImmediateDesc{Value: uint64(v), BitCount: bitCount}
}

// Unsigned returns Value reinterpreted as unsigned.
func (i ImmediateDesc) Unsigned() uint64 {
	return i.Value
}

// Signed returns Value reinterpreted as a two's-complement signed
// 64-bit integer.
func (i ImmediateDesc) Signed() int64 {
	return int64(i.Value)
}

// Size returns the number of bytes BitCount occupies, rounding up.
func (i ImmediateDesc) Size() int {
	return int((i.BitCount + 7) / 8)
}

// Equal reports whether i and other hold the same value and width.
func (i ImmediateDesc) Equal(other ImmediateDesc) bool {
	return i.Value == other.Value && i.BitCount == other.BitCount
}
