package cs

// #include <capstone/capstone.h>
import "C"

import (
	"unsafe"

	"github.com/lunixbochs/safecs/go/arch/ppc"
)

func ppcDetail(d *C.cs_detail) *ppc.Detail {
	raw := (*C.cs_ppc)(unsafe.Pointer(&d.anon0[0]))
	out := &ppc.Detail{
		BC:        ppc.BranchCode(raw.bc),
		BH:        ppc.BranchHint(raw.bh),
		UpdateCR0: bool(raw.update_cr0),
		OpCount:   uint8(raw.op_count),
	}
	ops := raw.operands[:]
	out.Ops = make([]ppc.Operand, clamp(int(raw.op_count), len(ops)))
	for i := range out.Ops {
		cop := &ops[i]
		out.Ops[i] = ppc.Operand{
			Type:    ppc.OpType(cop._type),
			Payload: append([]byte(nil), cop.anon0[:]...),
		}
	}
	return out
}
