// Package vm implements the digital-organism virtual machine: a genome of
// opcodes executed on simulated hardware made of heads, stacks, and a fixed
// memory array. Every instruction behaves identically across runs given the
// same genome and RNG draws, since evolutionary outcomes are compared
// byte-for-byte.
package vm

// Fixed hardware dimensions, chosen to match the canonical InstSet layout
// and cycle semantics this package implements.
const (
	// NumNops is the number of argument-modifier opcodes (Nop-A .. Nop-F),
	// which always occupy ids [0, NumNops) at the front of an InstSet.
	NumNops = 6

	// StackDepth is the fixed size of every stack's ring buffer.
	StackDepth = 16

	// MemSize is the fixed length of the memory array.
	MemSize = 64

	// MaxInsts is the registry capacity of an InstSet.
	MaxInsts = 256

	// MaxGenomeSize bounds a genome during execution.
	MaxGenomeSize = 2048

	// DataBits is the width of a Cell.
	DataBits = 32

	// NullID is returned by InstSet lookups that find nothing.
	NullID = -1
)

// HeadType names the six fixed-role heads every VM carries.
type HeadType int

const (
	HeadIP HeadType = iota
	HeadGRead
	HeadGWrite
	HeadMRead
	HeadMWrite
	HeadFlow
	numHeads = int(HeadFlow) + 1
)

func (h HeadType) String() string {
	switch h {
	case HeadIP:
		return "IP"
	case HeadGRead:
		return "G_READ"
	case HeadGWrite:
		return "G_WRITE"
	case HeadMRead:
		return "M_READ"
	case HeadMWrite:
		return "M_WRITE"
	case HeadFlow:
		return "FLOW"
	default:
		return "?"
	}
}

// onGenome reports whether a head of this type indexes the genome (true) or
// the memory array (false). Fixed by type; no head ever switches buffers.
func (h HeadType) onGenome() bool {
	return h != HeadMRead && h != HeadMWrite
}

// constVals is the table Const and Offset index into.
var constVals = [6]Cell{1, 2, 4, 16, 256, -1}
