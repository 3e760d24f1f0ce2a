package cs

// #include <capstone/capstone.h>
//
// static uint64_t x86_eflags(cs_x86 *x) { return x->eflags; }
import "C"

import (
	"unsafe"

	"github.com/lunixbochs/safecs/go/arch/x86"
)

func x86Detail(d *C.cs_detail) *x86.Detail {
	raw := (*C.cs_x86)(unsafe.Pointer(&d.anon0[0]))
	out := &x86.Detail{
		Rex:      uint8(raw.rex),
		AddrSize: uint8(raw.addr_size),
		ModRM:    uint8(raw.modrm),
		Sib:      uint8(raw.sib),
		Disp:     int64(raw.disp),
		SibIndex: x86.Reg(raw.sib_index),
		SibScale: int8(raw.sib_scale),
		SibBase:  x86.Reg(raw.sib_base),
		XopCC:    x86.XopCC(raw.xop_cc),
		SseCC:    x86.SseCC(raw.sse_cc),
		AvxCC:    x86.AvxCC(raw.avx_cc),
		AvxSae:   bool(raw.avx_sae),
		AvxRM:    x86.AvxRM(raw.avx_rm),
		Eflags:   x86.Eflags(C.x86_eflags(raw)),
		OpCount:  uint8(raw.op_count),
	}
	for i := 0; i < len(out.Prefix) && i < len(raw.prefix); i++ {
		out.Prefix[i] = x86.Prefix(raw.prefix[i])
	}
	for i := 0; i < len(out.Opcode) && i < len(raw.opcode); i++ {
		out.Opcode[i] = uint8(raw.opcode[i])
	}
	ops := raw.operands[:]
	out.Ops = make([]x86.Operand, clamp(int(raw.op_count), len(ops)))
	for i := range out.Ops {
		cop := &ops[i]
		out.Ops[i] = x86.Operand{
			Type:          x86.OpType(cop._type),
			Payload:       append([]byte(nil), cop.anon0[:]...),
			Size:          uint8(cop.size),
			Access:        x86.Access(cop.access),
			AvxBcast:      x86.AvxBcast(cop.avx_bcast),
			AvxZeroOpmask: bool(cop.avx_zero_opmask),
		}
	}
	return out
}
