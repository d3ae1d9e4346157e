// Package verrors defines the tagged error taxonomy shared by the
// codec, data model, and I/O façade: every failure carries a Kind and,
// where one exists, the underlying cause that triggered it.
package verrors

import (
	"errors"
	"fmt"
)

// Kind tags the general category of a failure.
type Kind int

const (
	// Malformed marks a structural invariant violation: bad magic, an
	// illegal architecture ordinal, an out-of-range combined_id top
	// byte, an unknown opcode name, or an illegal operand tag.
	Malformed Kind = iota
	// Io marks an underlying file or buffer I/O failure.
	Io
	// OperandMismatch marks a decoded operand count that does not match
	// the canonical arity for the decoded opcode name.
	OperandMismatch
	// OperandTypeMismatch marks an attempt to narrow an Operand to the
	// wrong variant (register vs. immediate).
	OperandTypeMismatch
	// Codec marks a lower-level framing error: an out-of-bounds read or
	// write against a byte buffer.
	Codec
	// EncodingOverflow marks a sequence length that exceeded a u32
	// field while encoding.
	EncodingOverflow
)

func (k Kind) String() string {
	switch k {
	case Malformed:
		return "malformed"
	case Io:
		return "io"
	case OperandMismatch:
		return "operand mismatch"
	case OperandTypeMismatch:
		return "operand type mismatch"
	case Codec:
		return "codec"
	case EncodingOverflow:
		return "encoding overflow"
	default:
		return "unknown"
	}
}

// Error is the concrete error type returned throughout this module.
// Op names the failing operation (e.g. "codec.DecodeHeader") so a
// caller can tell where in a decode/encode pass things went wrong
// without parsing the message.
type Error struct {
	Kind  Kind
	Op    string
	Cause error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Kind)
}

// Unwrap exposes Cause to errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New builds an Error of the given kind and operation, wrapping cause
// if one is supplied.
func New(kind Kind, op string, cause error) *Error {
	return &Error{Kind: kind, Op: op, Cause: cause}
}

// Is reports whether err is a *Error of the given kind, looking
// through any wrapping via errors.As.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
