package cs

// #include <capstone/capstone.h>
//
// static bool arm_writeback(cs_detail *d) {
// #if CS_API_MAJOR >= 5
// 	return d->writeback;
// #else
// 	return d->arm.writeback;
// #endif
// }
import "C"

import (
	"unsafe"

	"github.com/lunixbochs/safecs/go/arch/arm"
)

func armDetail(d *C.cs_detail) *arm.Detail {
	raw := (*C.cs_arm)(unsafe.Pointer(&d.anon0[0]))
	out := &arm.Detail{
		Usermode:    bool(raw.usermode),
		VectorSize:  int32(raw.vector_size),
		VectorData:  arm.VectorData(raw.vector_data),
		CpsMode:     arm.CpsMode(raw.cps_mode),
		CpsFlag:     arm.CpsFlag(raw.cps_flag),
		CC:          arm.CC(raw.cc),
		UpdateFlags: bool(raw.update_flags),
		Writeback:   bool(C.arm_writeback(d)),
		MemBarrier:  arm.MemBarrier(raw.mem_barrier),
		OpCount:     uint8(raw.op_count),
	}
	ops := raw.operands[:]
	out.Ops = make([]arm.Operand, clamp(int(raw.op_count), len(ops)))
	for i := range out.Ops {
		cop := &ops[i]
		out.Ops[i] = arm.Operand{
			VectorIndex: int8(cop.vector_index),
			Shift: arm.Shift{
				Type:  arm.Shifter(cop.shift._type),
				Value: uint32(cop.shift.value),
			},
			Type:       arm.OpType(cop._type),
			Payload:    append([]byte(nil), cop.anon0[:]...),
			Subtracted: bool(cop.subtracted),
			Access:     arm.Access(cop.access),
			NeonLane:   int8(cop.neon_lane),
		}
	}
	return out
}
