package arch

import "github.com/vtil-go/vtil/pkg/vtil"

// Capstone x86-64 register ordinals backing the pre-declared physical
// descriptors below, extracted from X86RegisterNames.
const (
	ordAH = 1
	ordAL = 2
	ordAX = 3
	ordBH = 4
	ordBL = 5
	ordBP = 6
	ordBPL = 7
	ordBX  = 8
	ordCH  = 9
	ordCL  = 10
	ordCX  = 12
	ordDH  = 13
	ordDI  = 14
	ordDIL = 15
	ordDL  = 16
	ordDX  = 18
	ordEAX = 19
	ordEBP = 20
	ordEBX = 21
	ordECX = 22
	ordEDI = 23
	ordEDX = 24
	ordFlags = 25
	ordESI = 29
	ordESP = 30
	ordRAX = 35
	ordRBP = 36
	ordRBX = 37
	ordRCX = 38
	ordRDI = 39
	ordRDX = 40
	ordRSI = 43
	ordRSP = 44
	ordSI  = 45
	ordSIL = 46
	ordSP  = 47
	ordSPL = 48
	ordR8  = 106
	ordR9  = 107
	ordR10 = 108
	ordR11 = 109
	ordR12 = 110
	ordR13 = 111
	ordR14 = 112
	ordR15 = 113
	ordR8B  = 218
	ordR9B  = 219
	ordR10B = 220
	ordR11B = 221
	ordR12B = 222
	ordR13B = 223
	ordR14B = 224
	ordR15B = 225
	ordR8D  = 226
	ordR9D  = 227
	ordR10D = 228
	ordR11D = 229
	ordR12D = 230
	ordR13D = 231
	ordR14D = 232
	ordR15D = 233
	ordR8W  = 234
	ordR9W  = 235
	ordR10W = 236
	ordR11W = 237
	ordR12W = 238
	ordR13W = 239
	ordR14W = 240
	ordR15W = 241
)

func physical(ord int, bitCount, bitOffset int32) vtil.RegisterDesc {
	return vtil.NewRegisterDesc(vtil.FlagPhysical, vtil.Amd64, uint64(ord), bitCount, bitOffset)
}

// Pre-declared physical RegisterDesc constants. Sub-width views of the
// same underlying register (e.g. EAX/AX/AH/AL all under RAX) share the
// parent's local id and differ only in (bit_offset, bit_count).
var (
	RAX = physical(ordRAX, 64, 0)
	EAX = physical(ordRAX, 32, 0)
	AX  = physical(ordRAX, 16, 0)
	AH  = physical(ordRAX, 8, 8)
	AL  = physical(ordRAX, 8, 0)

	RBX = physical(ordRBX, 64, 0)
	EBX = physical(ordRBX, 32, 0)
	BX  = physical(ordRBX, 16, 0)
	BH  = physical(ordRBX, 8, 8)
	BL  = physical(ordRBX, 8, 0)

	RCX = physical(ordRCX, 64, 0)
	ECX = physical(ordRCX, 32, 0)
	CX  = physical(ordRCX, 16, 0)
	CH  = physical(ordRCX, 8, 8)
	CL  = physical(ordRCX, 8, 0)

	RDX = physical(ordRDX, 64, 0)
	EDX = physical(ordRDX, 32, 0)
	DX  = physical(ordRDX, 16, 0)
	DH  = physical(ordRDX, 8, 8)
	DL  = physical(ordRDX, 8, 0)

	RSI  = physical(ordRSI, 64, 0)
	ESI  = physical(ordRSI, 32, 0)
	SIReg = physical(ordRSI, 16, 0)
	SIL  = physical(ordRSI, 8, 0)

	RDI  = physical(ordRDI, 64, 0)
	EDI  = physical(ordRDI, 32, 0)
	DIReg = physical(ordRDI, 16, 0)
	DIL  = physical(ordRDI, 8, 0)

	RBP  = physical(ordRBP, 64, 0)
	EBP  = physical(ordRBP, 32, 0)
	BP   = physical(ordRBP, 16, 0)
	BPL  = physical(ordRBP, 8, 0)

	RSP  = physical(ordRSP, 64, 0)
	ESP  = physical(ordRSP, 32, 0)
	SPReg = physical(ordRSP, 16, 0)
	SPL  = physical(ordRSP, 8, 0)

	R8  = physical(ordR8, 64, 0)
	R9  = physical(ordR9, 64, 0)
	R10 = physical(ordR10, 64, 0)
	R11 = physical(ordR11, 64, 0)
	R12 = physical(ordR12, 64, 0)
	R13 = physical(ordR13, 64, 0)
	R14 = physical(ordR14, 64, 0)
	R15 = physical(ordR15, 64, 0)

	R8D  = physical(ordR8, 32, 0)
	R9D  = physical(ordR9, 32, 0)
	R10D = physical(ordR10, 32, 0)
	R11D = physical(ordR11, 32, 0)
	R12D = physical(ordR12, 32, 0)
	R13D = physical(ordR13, 32, 0)
	R14D = physical(ordR14, 32, 0)
	R15D = physical(ordR15, 32, 0)

	R8W  = physical(ordR8, 16, 0)
	R9W  = physical(ordR9, 16, 0)
	R10W = physical(ordR10, 16, 0)
	R11W = physical(ordR11, 16, 0)
	R12W = physical(ordR12, 16, 0)
	R13W = physical(ordR13, 16, 0)
	R14W = physical(ordR14, 16, 0)
	R15W = physical(ordR15, 16, 0)

	R8B  = physical(ordR8, 8, 0)
	R9B  = physical(ordR9, 8, 0)
	R10B = physical(ordR10, 8, 0)
	R11B = physical(ordR11, 8, 0)
	R12B = physical(ordR12, 8, 0)
	R13B = physical(ordR13, 8, 0)
	R14B = physical(ordR14, 8, 0)
	R15B = physical(ordR15, 8, 0)

	// RFLAGS is the physical flags register. Its bit_count is 64 (not
	// the architectural 32) to keep a decode-then-encode round trip
	// byte-exact regardless of which width a producer emitted.
	RFLAGS = physical(ordFlags, 64, 0)
)

// Synthetic descriptors, not backed by any capstone ordinal: all use
// local_id 0 and arch_id Amd64, disambiguated purely by their flags.
var (
	// Undefined is the distinguished "value does not matter" register.
	Undefined = vtil.NewRegisterDesc(vtil.FlagVolatile|vtil.FlagUndefined, vtil.Amd64, 0, 64, 0)
	// ImageBase aliases the loaded image's base address.
	ImageBase = vtil.NewRegisterDesc(vtil.FlagReadonly|vtil.FlagImageBase, vtil.Amd64, 0, 64, 0)
	// StackPointer is the synthetic stack pointer used by the builder,
	// independent of which physical register backs it.
	StackPointer = vtil.NewRegisterDesc(vtil.FlagPhysical|vtil.FlagStackPointer, vtil.Amd64, 0, 64, 0)
	// Flags is the synthetic flags register used by the builder's
	// pushf/popf.
	Flags = vtil.NewRegisterDesc(vtil.FlagPhysical|vtil.FlagFlags, vtil.Amd64, 0, 64, 0)
)
