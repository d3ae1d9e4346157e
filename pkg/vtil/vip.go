// Package vtil implements the in-memory data model and operator taxonomy
// for VTIL (Virtual Translation Intermediate Language) routines: the
// types a decoded or hand-built routine is made of, independent of how
// it was read in or will be written out.
package vtil

// Vip is a virtual instruction pointer: the address, in the original
// image, that a block or instruction was lifted from.
type Vip uint64

// InvalidVip marks a block or instruction with no meaningful origin
// address (e.g. an instruction the builder emitted with no pending vip).
const InvalidVip Vip = ^Vip(0)

// Valid reports whether v refers to a real address rather than
// InvalidVip.
func (v Vip) Valid() bool {
	return v != InvalidVip
}
