package vtil

import (
	"testing"

	"github.com/vtil-go/vtil/pkg/verrors"
)

func TestRoutineCreateBlockDuplicate(t *testing.T) {
	r := NewRoutine(Amd64)
	if _, err := r.CreateBlock(0x1000); err != nil {
		t.Fatalf("CreateBlock(0x1000) error = %v", err)
	}
	_, err := r.CreateBlock(0x1000)
	if !verrors.Is(err, verrors.Malformed) {
		t.Fatalf("CreateBlock on a duplicate vip: err = %v, want Malformed", err)
	}
}

func TestRoutineExploredBlocksPreservesInsertionOrder(t *testing.T) {
	r := NewRoutine(Amd64)
	vips := []Vip{0x300, 0x100, 0x200}
	for _, v := range vips {
		if _, err := r.CreateBlock(v); err != nil {
			t.Fatalf("CreateBlock(%x) error = %v", v, err)
		}
	}
	blocks := r.ExploredBlocks()
	if len(blocks) != len(vips) {
		t.Fatalf("len(ExploredBlocks()) = %d, want %d", len(blocks), len(vips))
	}
	for i, v := range vips {
		if blocks[i].Vip != v {
			t.Errorf("ExploredBlocks()[%d].Vip = %#x, want %#x", i, blocks[i].Vip, v)
		}
	}
}

func TestRoutineBlockLookup(t *testing.T) {
	r := NewRoutine(Amd64)
	b, _ := r.CreateBlock(0x42)
	got, ok := r.Block(0x42)
	if !ok || got != b {
		t.Errorf("Block(0x42) = %v, %v, want the block CreateBlock returned", got, ok)
	}
	if _, ok := r.Block(0x99); ok {
		t.Error("Block on an unknown vip should report false")
	}
}

func TestRoutineAppendBlockDuplicate(t *testing.T) {
	r := NewRoutine(Amd64)
	if err := r.AppendBlock(NewBasicBlock(0x10)); err != nil {
		t.Fatalf("AppendBlock error = %v", err)
	}
	err := r.AppendBlock(NewBasicBlock(0x10))
	if !verrors.Is(err, verrors.Malformed) {
		t.Fatalf("AppendBlock on a duplicate vip: err = %v, want Malformed", err)
	}
}
