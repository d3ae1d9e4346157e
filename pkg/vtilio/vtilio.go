// Package vtilio is the file-facing entry point for the codec: it
// reads and writes whole routines as fully-owned Go values. Unlike the
// mmap-backed, self-referential reader this format was distilled from,
// a loaded Routine owns every byte it needs and outlives the file it
// came from.
package vtilio

import (
	"os"

	"github.com/vtil-go/vtil/pkg/codec"
	"github.com/vtil-go/vtil/pkg/verrors"
	"github.com/vtil-go/vtil/pkg/vtil"
)

// FromBytes decodes a whole routine from an in-memory buffer.
func FromBytes(buf []byte) (*vtil.Routine, error) {
	routine, _, err := codec.DecodeRoutine(buf, 0)
	if err != nil {
		return nil, err
	}
	return routine, nil
}

// IntoBytes encodes r into a freshly allocated buffer sized exactly to
// SizeOfRoutine(r).
func IntoBytes(r *vtil.Routine) ([]byte, error) {
	buf := make([]byte, codec.SizeOfRoutine(r))
	if _, err := codec.EncodeRoutine(r, buf, 0); err != nil {
		return nil, err
	}
	return buf, nil
}

// FromPath reads and decodes a routine from the file at path.
func FromPath(path string) (*vtil.Routine, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, verrors.New(verrors.Io, "vtilio.FromPath", err)
	}
	routine, err := FromBytes(buf)
	if err != nil {
		return nil, err
	}
	return routine, nil
}

// IntoPath encodes r and writes it to the file at path, creating or
// truncating it as os.WriteFile does.
func IntoPath(path string, r *vtil.Routine) error {
	buf, err := IntoBytes(r)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		return verrors.New(verrors.Io, "vtilio.IntoPath", err)
	}
	return nil
}
