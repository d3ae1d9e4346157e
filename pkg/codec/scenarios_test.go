package codec

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vtil-go/vtil/pkg/builder"
	"github.com/vtil-go/vtil/pkg/verrors"
	"github.com/vtil-go/vtil/pkg/vtil"
)

// TestScenarioEmptyVirtualRoutine is end-to-end scenario 1: a new
// routine for arch Virtual, entry vip 0, one empty block at vip 0.
func TestScenarioEmptyVirtualRoutine(t *testing.T) {
	r := vtil.NewRoutine(vtil.Virtual)
	r.Vip = 0
	_, err := r.CreateBlock(0)
	require.NoError(t, err)

	size := SizeOfRoutine(r)
	buf := make([]byte, size)
	n, err := EncodeRoutine(r, buf, 0)
	require.NoError(t, err)
	require.Equal(t, size, n)

	require.Equal(t, []byte{0x56, 0x54, 0x49, 0x4c, 0x02, 0x00, 0xad, 0xde}, buf[:8])

	got, consumed, err := DecodeRoutine(buf, 0)
	require.NoError(t, err)
	require.Equal(t, size, consumed)
	require.Equal(t, vtil.Virtual, got.ArchID)
	require.Equal(t, vtil.Vip(0), got.Vip)
	require.Equal(t, 1, got.BlockCount())
}

// TestScenarioSingleMovWith64BitImmediate is end-to-end scenario 2.
func TestScenarioSingleMovWith64BitImmediate(t *testing.T) {
	block := vtil.NewBasicBlock(0)
	b := builder.New(block)
	tmp := b.Tmp(64)
	require.Equal(t, uint64(0), tmp.LocalID())

	b.Mov(tmp, vtil.ImmediateOperand(vtil.NewImmediateUnsigned(0x0a57e6f0335298d0, 64)))

	require.Len(t, block.Instructions, 1)
	instr := block.Instructions[0]
	require.Equal(t, vtil.Mov, instr.Op.Code)

	size := SizeOfInstruction(instr)
	buf := make([]byte, size)
	n, err := EncodeInstruction(instr, buf, 0)
	require.NoError(t, err)
	require.Equal(t, size, n)

	got, consumed, err := DecodeInstruction(buf, 0)
	require.NoError(t, err)
	require.Equal(t, size, consumed)
	require.Equal(t, vtil.Mov, got.Op.Code)
	src, err := got.Op.Operands()[1].Immediate()
	require.NoError(t, err)
	require.Equal(t, uint64(0x0a57e6f0335298d0), src.Unsigned())
}

// TestScenarioArityMismatchDecode is end-to-end scenario 5: a
// synthetic "mov" record claiming 3 operands (mov's canonical arity
// is 2) fails with OperandMismatch.
func TestScenarioArityMismatchDecode(t *testing.T) {
	e := newEncoder(make([]byte, 64), 0)
	e.u32(3, "name_len")
	e.str("mov", "name")
	e.u32(3, "operand_count")
	buf := e.buf[:e.pos]

	_, _, err := DecodeInstruction(buf, 0)
	require.True(t, verrors.Is(err, verrors.OperandMismatch))
}

// TestScenarioUnknownOpcodeDecode is end-to-end scenario 6: a
// synthetic instruction named "xyzzy" fails with Malformed.
func TestScenarioUnknownOpcodeDecode(t *testing.T) {
	e := newEncoder(make([]byte, 64), 0)
	e.u32(5, "name_len")
	e.str("xyzzy", "name")
	buf := e.buf[:e.pos]

	_, _, err := DecodeInstruction(buf, 0)
	require.True(t, verrors.Is(err, verrors.Malformed))
}
