package cs

// #include <capstone/capstone.h>
import "C"

import (
	"github.com/lunixbochs/safecs/go/arch/arm"
	"github.com/lunixbochs/safecs/go/arch/ppc"
	"github.com/lunixbochs/safecs/go/arch/x86"
)

// Detail is a borrowed view of an instruction's detail block. It goes stale
// with the Insn it came from.
type Detail struct {
	raw *C.cs_detail
	in  *Insn
}

func (d *Detail) ok() bool {
	return d != nil && d.raw != nil && d.in.Valid()
}

// Arch is the architecture the block was decoded for.
func (d *Detail) Arch() Arch {
	if !d.ok() {
		return 0
	}
	return d.in.own.arch
}

// RegsRead returns the registers implicitly read, bounded by the block's count.
func (d *Detail) RegsRead() []uint16 {
	if !d.ok() {
		return nil
	}
	n := clamp(int(d.raw.regs_read_count), len(d.raw.regs_read))
	out := make([]uint16, n)
	for i := range out {
		out[i] = uint16(d.raw.regs_read[i])
	}
	return out
}

// RegsWritten returns the registers implicitly written, bounded by the block's count.
func (d *Detail) RegsWritten() []uint16 {
	if !d.ok() {
		return nil
	}
	n := clamp(int(d.raw.regs_write_count), len(d.raw.regs_write))
	out := make([]uint16, n)
	for i := range out {
		out[i] = uint16(d.raw.regs_write[i])
	}
	return out
}

func (d *Detail) Groups() []Group {
	if !d.ok() {
		return nil
	}
	n := clamp(int(d.raw.groups_count), len(d.raw.groups))
	out := make([]Group, n)
	for i := range out {
		out[i] = Group(d.raw.groups[i])
	}
	return out
}

func (d *Detail) InGroup(g Group) bool {
	for _, v := range d.Groups() {
		if v == g {
			return true
		}
	}
	return false
}

// X86 decodes the x86 part of the block. It reports false unless the
// instruction was decoded by an x86 engine.
func (d *Detail) X86() (*x86.Detail, bool) {
	if !d.ok() || d.in.own.arch != ArchX86 {
		return nil, false
	}
	return x86Detail(d.raw), true
}

func (d *Detail) Arm() (*arm.Detail, bool) {
	if !d.ok() || d.in.own.arch != ArchARM {
		return nil, false
	}
	return armDetail(d.raw), true
}

func (d *Detail) PPC() (*ppc.Detail, bool) {
	if !d.ok() || d.in.own.arch != ArchPPC {
		return nil, false
	}
	return ppcDetail(d.raw), true
}

// Details is an owned copy of a detail block. At most one of the
// architecture fields is set.
type Details struct {
	RegsRead    []uint16    `json:"regs_read"`
	RegsWritten []uint16    `json:"regs_write"`
	Groups      []Group     `json:"groups"`
	X86         *x86.Detail `json:"x86,omitempty"`
	Arm         *arm.Detail `json:"arm,omitempty"`
	PPC         *ppc.Detail `json:"ppc,omitempty"`
}

func (d *Detail) Copy() *Details {
	if !d.ok() {
		return nil
	}
	out := &Details{
		RegsRead:    d.RegsRead(),
		RegsWritten: d.RegsWritten(),
		Groups:      d.Groups(),
	}
	out.X86, _ = d.X86()
	out.Arm, _ = d.Arm()
	out.PPC, _ = d.PPC()
	return out
}

func (d *Details) InGroup(g Group) bool {
	if d == nil {
		return false
	}
	for _, v := range d.Groups {
		if v == g {
			return true
		}
	}
	return false
}
