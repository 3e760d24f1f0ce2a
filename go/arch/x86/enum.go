package x86

import "fmt"

// OpType is the engine's x86_op_type tag.
type OpType uint32

const (
	OpInvalid OpType = 0
	OpReg     OpType = 1
	OpImm     OpType = 2
	OpMem     OpType = 3
)

var opTypeNames = map[OpType]string{
	OpInvalid: "invalid",
	OpReg:     "reg",
	OpImm:     "imm",
	OpMem:     "mem",
}

func (t OpType) String() string {
	if name, ok := opTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("op(%d)", uint32(t))
}

// Reg is an x86_reg id. Names come from the engine.
type Reg uint32

const RegInvalid Reg = 0

// Access is the cs_ac_type bitmask.
type Access uint8

const (
	AccessRead  Access = 1 << 0
	AccessWrite Access = 1 << 1
)

func (a Access) String() string {
	switch a {
	case 0:
		return ""
	case AccessRead:
		return "r"
	case AccessWrite:
		return "w"
	case AccessRead | AccessWrite:
		return "rw"
	}
	return fmt.Sprintf("access(%#x)", uint8(a))
}

type AvxBcast uint32

const (
	AvxBcastInvalid AvxBcast = iota
	AvxBcast2
	AvxBcast4
	AvxBcast8
	AvxBcast16
)

func (b AvxBcast) String() string {
	switch b {
	case AvxBcastInvalid:
		return ""
	case AvxBcast2:
		return "{1to2}"
	case AvxBcast4:
		return "{1to4}"
	case AvxBcast8:
		return "{1to8}"
	case AvxBcast16:
		return "{1to16}"
	}
	return fmt.Sprintf("bcast(%d)", uint32(b))
}

type SseCC uint32

const (
	SseCCInvalid SseCC = iota
	SseCCEQ
	SseCCLT
	SseCCLE
	SseCCUNORD
	SseCCNEQ
	SseCCNLT
	SseCCNLE
	SseCCORD
)

type XopCC uint32

const (
	XopCCInvalid XopCC = iota
	XopCCLT
	XopCCLE
	XopCCGT
	XopCCGE
	XopCCEQ
	XopCCNEQ
	XopCCFalse
	XopCCTrue
)

type AvxCC uint32

const (
	AvxCCInvalid AvxCC = iota
	AvxCCEQ
	AvxCCLT
	AvxCCLE
	AvxCCUNORD
	AvxCCNEQ
	AvxCCNLT
	AvxCCNLE
	AvxCCORD
	AvxCCEQ_UQ
	AvxCCNGE
	AvxCCNGT
	AvxCCFalse
	AvxCCNEQ_OQ
	AvxCCGE
	AvxCCGT
	AvxCCTrue
	AvxCCEQ_OS
	AvxCCLT_OQ
	AvxCCLE_OQ
	AvxCCUNORD_S
	AvxCCNEQ_US
	AvxCCNLT_UQ
	AvxCCNLE_UQ
	AvxCCORD_S
	AvxCCEQ_US
	AvxCCNGE_UQ
	AvxCCNGT_UQ
	AvxCCFalse_OS
	AvxCCNEQ_OS
	AvxCCGE_OQ
	AvxCCGT_OQ
	AvxCCTrue_US
)

// AvxRM is the static rounding mode.
type AvxRM uint32

const (
	AvxRMInvalid AvxRM = iota
	AvxRMRN
	AvxRMRD
	AvxRMRU
	AvxRMRZ
)

// Prefix is one byte of the 4-slot prefix array (0 = empty slot).
type Prefix uint8

const (
	PrefixNone     Prefix = 0
	PrefixLock     Prefix = 0xf0
	PrefixRep      Prefix = 0xf3
	PrefixRepe     Prefix = 0xf3
	PrefixRepne    Prefix = 0xf2
	PrefixCS       Prefix = 0x2e
	PrefixSS       Prefix = 0x36
	PrefixDS       Prefix = 0x3e
	PrefixES       Prefix = 0x26
	PrefixFS       Prefix = 0x64
	PrefixGS       Prefix = 0x65
	PrefixOpsize   Prefix = 0x66
	PrefixAddrsize Prefix = 0x67
)

// Eflags is the X86_EFLAGS_* effect mask reported for non-FPU instructions.
type Eflags uint64

const (
	EflagsModifyAF Eflags = 1 << iota
	EflagsModifyCF
	EflagsModifySF
	EflagsModifyZF
	EflagsModifyPF
	EflagsModifyOF
	EflagsModifyTF
	EflagsModifyIF
	EflagsModifyDF
	EflagsModifyNT
	EflagsModifyRF
	EflagsPriorOF
	EflagsPriorSF
	EflagsPriorZF
	EflagsPriorAF
	EflagsPriorPF
	EflagsPriorCF
	EflagsPriorTF
	EflagsPriorIF
	EflagsPriorDF
	EflagsPriorNT
	EflagsResetOF
	EflagsResetCF
	EflagsResetDF
	EflagsResetIF
	EflagsResetSF
	EflagsResetAF
	EflagsResetTF
	EflagsResetNT
	EflagsResetPF
	EflagsSetCF
	EflagsSetDF
	EflagsSetIF
	EflagsTestOF
	EflagsTestSF
	EflagsTestZF
	EflagsTestPF
	EflagsTestCF
	EflagsTestNT
	EflagsTestDF
	EflagsUndefinedOF
	EflagsUndefinedSF
	EflagsUndefinedZF
	EflagsUndefinedPF
	EflagsUndefinedAF
	EflagsUndefinedCF
)

const eflagsModifyMask = EflagsModifyAF | EflagsModifyCF | EflagsModifySF | EflagsModifyZF |
	EflagsModifyPF | EflagsModifyOF | EflagsModifyTF | EflagsModifyIF | EflagsModifyDF |
	EflagsModifyNT | EflagsModifyRF

func (f Eflags) Has(mask Eflags) bool { return f&mask == mask }

// Modifies reports whether any flag is modified.
func (f Eflags) Modifies() bool { return f&eflagsModifyMask != 0 }
