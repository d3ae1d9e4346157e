package arch

import (
	"testing"

	"github.com/vtil-go/vtil/pkg/vtil"
)

func TestNameX86(t *testing.T) {
	if got := Name(vtil.Amd64, RAX.LocalID()); got != "rax" {
		t.Errorf("Name(Amd64, RAX) = %q, want %q", got, "rax")
	}
	if got := Name(vtil.Amd64, RFLAGS.LocalID()); got != "flags" {
		t.Errorf("Name(Amd64, RFLAGS) = %q, want %q", got, "flags")
	}
}

func TestNameOutOfRange(t *testing.T) {
	if got := Name(vtil.Amd64, uint64(len(X86RegisterNames))); got != "" {
		t.Errorf("Name() past the end of the table = %q, want \"\"", got)
	}
}

func TestNameVirtualArchitecture(t *testing.T) {
	if got := Name(vtil.Virtual, 0); got != "" {
		t.Errorf("Name(Virtual, 0) = %q, want \"\" (no physical table for Virtual)", got)
	}
}

func TestPhysicalRegisterWidthsShareLocalID(t *testing.T) {
	if RAX.LocalID() != EAX.LocalID() || EAX.LocalID() != AX.LocalID() || AX.LocalID() != AL.LocalID() {
		t.Error("RAX/EAX/AX/AL should all share RAX's local id, differing only in bit_count/bit_offset")
	}
	if AH.BitOffset != 8 || AL.BitOffset != 0 {
		t.Errorf("AH/AL bit offsets = %d/%d, want 8/0", AH.BitOffset, AL.BitOffset)
	}
}

func TestSyntheticRegisters(t *testing.T) {
	if !StackPointer.Flags.Has(vtil.FlagStackPointer) {
		t.Error("StackPointer must carry FlagStackPointer")
	}
	if !Flags.Flags.Has(vtil.FlagFlags) {
		t.Error("Flags must carry FlagFlags")
	}
	if !Undefined.Flags.Has(vtil.FlagUndefined) {
		t.Error("Undefined must carry FlagUndefined")
	}
	if !ImageBase.Flags.Has(vtil.FlagImageBase) {
		t.Error("ImageBase must carry FlagImageBase")
	}
}
