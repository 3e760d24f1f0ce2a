package arm

import "fmt"

// OpType is the engine's arm_op_type tag.
type OpType uint32

const (
	OpInvalid OpType = 0
	OpReg     OpType = 1
	OpImm     OpType = 2
	OpMem     OpType = 3
	OpFP      OpType = 4
	OpCImm    OpType = 64
	OpPImm    OpType = 65
	OpSetend  OpType = 66
	OpSysReg  OpType = 67
)

var opTypeNames = map[OpType]string{
	OpInvalid: "invalid",
	OpReg:     "reg",
	OpImm:     "imm",
	OpMem:     "mem",
	OpFP:      "fp",
	OpCImm:    "cimm",
	OpPImm:    "pimm",
	OpSetend:  "setend",
	OpSysReg:  "sysreg",
}

func (t OpType) String() string {
	if name, ok := opTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("op(%d)", uint32(t))
}

// Reg is an arm_reg id. Names come from the engine.
type Reg uint32

// SysReg is an arm_sysreg id (MSR/MRS operands).
type SysReg uint32

type Access uint8

const (
	AccessRead  Access = 1 << 0
	AccessWrite Access = 1 << 1
)

type Shifter uint32

const (
	ShiftInvalid Shifter = iota
	ShiftASR
	ShiftLSL
	ShiftLSR
	ShiftROR
	ShiftRRX
	ShiftASRReg
	ShiftLSLReg
	ShiftLSRReg
	ShiftRORReg
	ShiftRRXReg
)

var shifterNames = []string{"", "asr", "lsl", "lsr", "ror", "rrx", "asr", "lsl", "lsr", "ror", "rrx"}

func (s Shifter) String() string {
	if int(s) < len(shifterNames) {
		return shifterNames[s]
	}
	return fmt.Sprintf("shift(%d)", uint32(s))
}

// ByReg reports whether the shift amount is held in a register.
func (s Shifter) ByReg() bool { return s >= ShiftASRReg && s <= ShiftRRXReg }

// CC is the arm_cc condition code.
type CC uint32

const (
	CCInvalid CC = iota
	CCEQ
	CCNE
	CCHS
	CCLO
	CCMI
	CCPL
	CCVS
	CCVC
	CCHI
	CCLS
	CCGE
	CCLT
	CCGT
	CCLE
	CCAL
)

var ccNames = []string{"", "eq", "ne", "hs", "lo", "mi", "pl", "vs", "vc", "hi", "ls", "ge", "lt", "gt", "le", "al"}

func (c CC) String() string {
	if int(c) < len(ccNames) {
		return ccNames[c]
	}
	return fmt.Sprintf("cc(%d)", uint32(c))
}

type Setend uint32

const (
	SetendInvalid Setend = iota
	SetendBE
	SetendLE
)

func (s Setend) String() string {
	switch s {
	case SetendBE:
		return "be"
	case SetendLE:
		return "le"
	}
	return fmt.Sprintf("setend(%d)", uint32(s))
}

type CpsMode uint32

const (
	CpsModeInvalid CpsMode = 0
	CpsModeIE      CpsMode = 2
	CpsModeID      CpsMode = 3
)

type CpsFlag uint32

const (
	CpsFlagInvalid CpsFlag = 0
	CpsFlagF       CpsFlag = 1
	CpsFlagI       CpsFlag = 2
	CpsFlagA       CpsFlag = 4
	CpsFlagNone    CpsFlag = 16
)

// VectorData is the arm_vectordata_type of NEON instructions.
type VectorData uint32

// MemBarrier is the arm_mem_barrier option of DMB/DSB/ISB.
type MemBarrier uint32
