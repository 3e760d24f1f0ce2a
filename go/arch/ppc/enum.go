package ppc

import "fmt"

// OpType is the engine's ppc_op_type tag.
type OpType uint32

const (
	OpInvalid OpType = 0
	OpReg     OpType = 1
	OpImm     OpType = 2
	OpMem     OpType = 3
	OpCrx     OpType = 64
)

func (t OpType) String() string {
	switch t {
	case OpInvalid:
		return "invalid"
	case OpReg:
		return "reg"
	case OpImm:
		return "imm"
	case OpMem:
		return "mem"
	case OpCrx:
		return "crx"
	}
	return fmt.Sprintf("op(%d)", uint32(t))
}

// Reg is a ppc_reg id. Names come from the engine.
type Reg uint32

// BranchCode is the ppc_bc condition: the BI field of the CR bit in the
// high bits, the BO field in the low five.
type BranchCode uint32

const (
	BCInvalid BranchCode = 0
	BCLT      BranchCode = (0 << 5) | 12
	BCLE      BranchCode = (1 << 5) | 4
	BCEQ      BranchCode = (2 << 5) | 12
	BCGE      BranchCode = (0 << 5) | 4
	BCGT      BranchCode = (1 << 5) | 12
	BCNE      BranchCode = (2 << 5) | 4
	BCUN      BranchCode = (3 << 5) | 12
	BCNU      BranchCode = (3 << 5) | 4
	BCSO      BranchCode = (4 << 5) | 12
	BCNS      BranchCode = (4 << 5) | 4
)

var bcNames = map[BranchCode]string{
	BCInvalid: "",
	BCLT:      "lt",
	BCLE:      "le",
	BCEQ:      "eq",
	BCGE:      "ge",
	BCGT:      "gt",
	BCNE:      "ne",
	BCUN:      "un",
	BCNU:      "nu",
	BCSO:      "so",
	BCNS:      "ns",
}

func (b BranchCode) String() string {
	if name, ok := bcNames[b]; ok {
		return name
	}
	return fmt.Sprintf("bc(%d)", uint32(b))
}

// BranchHint is the ppc_bh static prediction hint.
type BranchHint uint32

const (
	BHInvalid BranchHint = iota
	BHPlus
	BHMinus
)

func (h BranchHint) String() string {
	switch h {
	case BHInvalid:
		return ""
	case BHPlus:
		return "+"
	case BHMinus:
		return "-"
	}
	return fmt.Sprintf("bh(%d)", uint32(h))
}
