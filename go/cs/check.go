package cs

// #include <capstone/capstone.h>
//
// static size_t x86_op_size(void) { return sizeof(((cs_x86_op *)0)->mem); }
// static size_t x86_imm_size(void) { return sizeof(((cs_x86_op *)0)->imm); }
// static size_t arm_imm_size(void) { return sizeof(((cs_arm_op *)0)->imm); }
// static size_t ppc_imm_size(void) { return sizeof(((cs_ppc_op *)0)->imm); }
import "C"

import (
	"github.com/lunixbochs/safecs/go/arch/arm"
	"github.com/lunixbochs/safecs/go/arch/ppc"
	"github.com/lunixbochs/safecs/go/arch/x86"
)

// constCheck pairs a Go-side value with the value the C headers define.
type constCheck struct {
	name    string
	got, cv int64
}

func (c constCheck) ok() bool { return c.got == c.cv }

// layoutChecks compare the decoders' payload layouts with the linked headers.
func layoutChecks() []constCheck {
	var xop C.cs_x86_op
	var aop C.cs_arm_op
	var pop C.cs_ppc_op
	return []constCheck{
		{"cs_x86_op union", x86.PayloadSize, int64(len(xop.anon0))},
		{"x86_op_mem", x86.MemSize, int64(C.x86_op_size())},
		{"cs_x86_op.imm", 8, int64(C.x86_imm_size())},
		{"cs_arm_op union", arm.PayloadSize, int64(len(aop.anon0))},
		{"arm_op_mem", arm.MemSize, int64(C.sizeof_arm_op_mem)},
		{"cs_arm_op.imm", 4, int64(C.arm_imm_size())},
		{"cs_ppc_op union", ppc.PayloadSize, int64(len(pop.anon0))},
		{"ppc_op_mem", ppc.MemSize, int64(C.sizeof_ppc_op_mem)},
		{"ppc_op_crx", ppc.CrxSize, int64(C.sizeof_ppc_op_crx)},
		{"cs_ppc_op.imm", 8, int64(C.ppc_imm_size())},
	}
}

// enumChecks compare the decoders' enumerations with the linked headers.
func enumChecks() []constCheck {
	return []constCheck{
		{"X86_OP_INVALID", int64(x86.OpInvalid), C.X86_OP_INVALID},
		{"X86_OP_REG", int64(x86.OpReg), C.X86_OP_REG},
		{"X86_OP_IMM", int64(x86.OpImm), C.X86_OP_IMM},
		{"X86_OP_MEM", int64(x86.OpMem), C.X86_OP_MEM},
		{"X86_REG_INVALID", int64(x86.RegInvalid), C.X86_REG_INVALID},
		{"CS_AC_READ", int64(x86.AccessRead), C.CS_AC_READ},
		{"CS_AC_WRITE", int64(x86.AccessWrite), C.CS_AC_WRITE},
		{"X86_AVX_BCAST_INVALID", int64(x86.AvxBcastInvalid), C.X86_AVX_BCAST_INVALID},
		{"X86_AVX_BCAST_16", int64(x86.AvxBcast16), C.X86_AVX_BCAST_16},
		{"X86_SSE_CC_INVALID", int64(x86.SseCCInvalid), C.X86_SSE_CC_INVALID},
		{"X86_AVX_RM_INVALID", int64(x86.AvxRMInvalid), C.X86_AVX_RM_INVALID},
		{"X86_PREFIX_LOCK", int64(x86.PrefixLock), C.X86_PREFIX_LOCK},
		{"X86_PREFIX_REP", int64(x86.PrefixRep), C.X86_PREFIX_REP},
		{"X86_PREFIX_OPSIZE", int64(x86.PrefixOpsize), C.X86_PREFIX_OPSIZE},
		{"X86_PREFIX_ADDRSIZE", int64(x86.PrefixAddrsize), C.X86_PREFIX_ADDRSIZE},

		{"ARM_OP_INVALID", int64(arm.OpInvalid), C.ARM_OP_INVALID},
		{"ARM_OP_REG", int64(arm.OpReg), C.ARM_OP_REG},
		{"ARM_OP_IMM", int64(arm.OpImm), C.ARM_OP_IMM},
		{"ARM_OP_MEM", int64(arm.OpMem), C.ARM_OP_MEM},
		{"ARM_OP_FP", int64(arm.OpFP), C.ARM_OP_FP},
		{"ARM_OP_CIMM", int64(arm.OpCImm), C.ARM_OP_CIMM},
		{"ARM_OP_PIMM", int64(arm.OpPImm), C.ARM_OP_PIMM},
		{"ARM_OP_SETEND", int64(arm.OpSetend), C.ARM_OP_SETEND},
		{"ARM_OP_SYSREG", int64(arm.OpSysReg), C.ARM_OP_SYSREG},
		{"ARM_SFT_INVALID", int64(arm.ShiftInvalid), C.ARM_SFT_INVALID},
		{"ARM_SFT_ASR", int64(arm.ShiftASR), C.ARM_SFT_ASR},
		{"ARM_SFT_RRX_REG", int64(arm.ShiftRRXReg), C.ARM_SFT_RRX_REG},
		{"ARM_CC_INVALID", int64(arm.CCInvalid), C.ARM_CC_INVALID},
		{"ARM_CC_EQ", int64(arm.CCEQ), C.ARM_CC_EQ},
		{"ARM_CC_AL", int64(arm.CCAL), C.ARM_CC_AL},
		{"ARM_SETEND_BE", int64(arm.SetendBE), C.ARM_SETEND_BE},
		{"ARM_SETEND_LE", int64(arm.SetendLE), C.ARM_SETEND_LE},
		{"ARM_CPSMODE_IE", int64(arm.CpsModeIE), C.ARM_CPSMODE_IE},
		{"ARM_CPSMODE_ID", int64(arm.CpsModeID), C.ARM_CPSMODE_ID},
		{"ARM_CPSFLAG_F", int64(arm.CpsFlagF), C.ARM_CPSFLAG_F},
		{"ARM_CPSFLAG_NONE", int64(arm.CpsFlagNone), C.ARM_CPSFLAG_NONE},

		{"PPC_OP_INVALID", int64(ppc.OpInvalid), C.PPC_OP_INVALID},
		{"PPC_OP_REG", int64(ppc.OpReg), C.PPC_OP_REG},
		{"PPC_OP_IMM", int64(ppc.OpImm), C.PPC_OP_IMM},
		{"PPC_OP_MEM", int64(ppc.OpMem), C.PPC_OP_MEM},
		{"PPC_OP_CRX", int64(ppc.OpCrx), C.PPC_OP_CRX},
		{"PPC_BC_LT", int64(ppc.BCLT), C.PPC_BC_LT},
		{"PPC_BC_EQ", int64(ppc.BCEQ), C.PPC_BC_EQ},
		{"PPC_BC_SO", int64(ppc.BCSO), C.PPC_BC_SO},
		{"PPC_BC_NS", int64(ppc.BCNS), C.PPC_BC_NS},
		{"PPC_BH_PLUS", int64(ppc.BHPlus), C.PPC_BH_PLUS},
		{"PPC_BH_MINUS", int64(ppc.BHMinus), C.PPC_BH_MINUS},
	}
}
