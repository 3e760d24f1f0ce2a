// Package arm decodes the ARM (A32/T32) section of an engine detail block.
package arm

import (
	"fmt"

	"github.com/lunixbochs/safecs/go/arch/payload"
)

// PayloadSize is the size of the cs_arm_op union, padded to the alignment
// of its double member.
const PayloadSize = 24

// Data is the decoded payload of an Operand: Imm, RegOp, FPOp, Mem,
// SetendOp, SysRegOp or Other.
type Data interface {
	isData()
}

// Imm carries OpImm, OpCImm and OpPImm values.
type Imm struct{ Value int32 }

type RegOp struct{ Reg Reg }

type FPOp struct{ Value float64 }

type Mem struct {
	Base   Reg
	Index  Reg
	Scale  int32
	Disp   int32
	LShift int32
}

type SetendOp struct{ Setend Setend }

type SysRegOp struct{ Reg SysReg }

type Other struct{ Tag OpType }

func (Imm) isData()      {}
func (RegOp) isData()    {}
func (FPOp) isData()     {}
func (Mem) isData()      {}
func (SetendOp) isData() {}
func (SysRegOp) isData() {}
func (Other) isData()    {}

func (i Imm) String() string      { return fmt.Sprintf("imm:%#x", i.Value) }
func (r RegOp) String() string    { return fmt.Sprintf("reg:%d", r.Reg) }
func (f FPOp) String() string     { return fmt.Sprintf("fp:%g", f.Value) }
func (s SetendOp) String() string { return "setend:" + s.Setend.String() }
func (s SysRegOp) String() string { return fmt.Sprintf("sysreg:%d", s.Reg) }
func (o Other) String() string    { return o.Tag.String() }
func (m Mem) String() string {
	return fmt.Sprintf("mem:[base=%d index=%d scale=%d disp=%#x lshift=%d]", m.Base, m.Index, m.Scale, m.Disp, m.LShift)
}

// MemSize is sizeof(arm_op_mem).
const MemSize = 20

type rawMem struct {
	Base   uint32
	Index  uint32
	Scale  int32
	Disp   int32
	LShift int32
}

type Shift struct {
	Type  Shifter `json:"type"`
	Value uint32  `json:"value"`
}

type Operand struct {
	VectorIndex int8   `json:"vector_index"`
	Shift       Shift  `json:"shift"`
	Type        OpType `json:"type"`
	Payload     []byte `json:"payload"`
	Subtracted  bool   `json:"subtracted"`
	Access      Access `json:"access"`
	NeonLane    int8   `json:"neon_lane"`
}

func (o Operand) Kind() OpType { return o.Type }

func (o Operand) Data() Data {
	switch o.Type {
	case OpReg:
		if r, ok := payload.Uint32(o.Payload, 0); ok {
			return RegOp{Reg(r)}
		}
	case OpSysReg:
		if r, ok := payload.Uint32(o.Payload, 0); ok {
			return SysRegOp{SysReg(r)}
		}
	case OpImm, OpCImm, OpPImm:
		if v, ok := payload.Int32(o.Payload, 0); ok {
			return Imm{v}
		}
	case OpFP:
		if v, ok := payload.Float64(o.Payload, 0); ok {
			return FPOp{v}
		}
	case OpSetend:
		if v, ok := payload.Uint32(o.Payload, 0); ok {
			return SetendOp{Setend(v)}
		}
	case OpMem:
		var m rawMem
		if err := payload.Unpack(o.Payload, &m); err == nil {
			return Mem{
				Base:   Reg(m.Base),
				Index:  Reg(m.Index),
				Scale:  m.Scale,
				Disp:   m.Disp,
				LShift: m.LShift,
			}
		}
	}
	return Other{o.Type}
}

func (o Operand) Reg() (Reg, bool) {
	r, ok := o.Data().(RegOp)
	return r.Reg, ok
}

func (o Operand) Imm() (int32, bool) {
	i, ok := o.Data().(Imm)
	return i.Value, ok
}

func (o Operand) Mem() (Mem, bool) {
	m, ok := o.Data().(Mem)
	return m, ok
}

// Detail mirrors cs_arm.
type Detail struct {
	Usermode    bool       `json:"usermode"`
	VectorSize  int32      `json:"vector_size"`
	VectorData  VectorData `json:"vector_data"`
	CpsMode     CpsMode    `json:"cps_mode"`
	CpsFlag     CpsFlag    `json:"cps_flag"`
	CC          CC         `json:"cc"`
	UpdateFlags bool       `json:"update_flags"`
	Writeback   bool       `json:"writeback"`
	MemBarrier  MemBarrier `json:"mem_barrier"`

	OpCount uint8     `json:"op_count"`
	Ops     []Operand `json:"operands"`
}

// Operands returns the first OpCount entries of Ops.
func (d *Detail) Operands() []Operand {
	n := int(d.OpCount)
	if n > len(d.Ops) {
		n = len(d.Ops)
	}
	return d.Ops[:n]
}

func (d *Detail) OpCountType(t OpType) int {
	count := 0
	for _, op := range d.Operands() {
		if op.Type == t {
			count++
		}
	}
	return count
}

// Conditional reports whether the instruction only executes under CC.
func (d *Detail) Conditional() bool { return d.CC != CCInvalid && d.CC != CCAL }
