// Package ppc decodes the PowerPC section of an engine detail block.
package ppc

import (
	"fmt"

	"github.com/lunixbochs/safecs/go/arch/payload"
)

// PayloadSize is the size of the cs_ppc_op union.
const PayloadSize = 16

// Data is the decoded payload of an Operand: Imm, RegOp, Mem, Crx or Other.
type Data interface {
	isData()
}

type Imm struct{ Value int64 }

type RegOp struct{ Reg Reg }

type Mem struct {
	Base Reg
	Disp int32
}

// Crx is a condition register field operand.
type Crx struct {
	Scale uint32
	Reg   Reg
	Cond  BranchCode
}

type Other struct{ Tag OpType }

func (Imm) isData()   {}
func (RegOp) isData() {}
func (Mem) isData()   {}
func (Crx) isData()   {}
func (Other) isData() {}

func (i Imm) String() string   { return fmt.Sprintf("imm:%#x", i.Value) }
func (r RegOp) String() string { return fmt.Sprintf("reg:%d", r.Reg) }
func (m Mem) String() string   { return fmt.Sprintf("mem:[base=%d disp=%#x]", m.Base, m.Disp) }
func (c Crx) String() string {
	return fmt.Sprintf("crx:[scale=%d reg=%d cond=%s]", c.Scale, c.Reg, c.Cond)
}
func (o Other) String() string { return o.Tag.String() }

// MemSize is sizeof(ppc_op_mem).
const MemSize = 8

type rawMem struct {
	Base uint32
	Disp int32
}

// CrxSize is sizeof(ppc_op_crx).
const CrxSize = 12

type rawCrx struct {
	Scale uint32
	Reg   uint32
	Cond  uint32
}

type Operand struct {
	Type    OpType `json:"type"`
	Payload []byte `json:"payload"`
}

func (o Operand) Kind() OpType { return o.Type }

func (o Operand) Data() Data {
	switch o.Type {
	case OpReg:
		if r, ok := payload.Uint32(o.Payload, 0); ok {
			return RegOp{Reg(r)}
		}
	case OpImm:
		if v, ok := payload.Int64(o.Payload, 0); ok {
			return Imm{v}
		}
	case OpMem:
		var m rawMem
		if err := payload.Unpack(o.Payload, &m); err == nil {
			return Mem{Base: Reg(m.Base), Disp: m.Disp}
		}
	case OpCrx:
		var c rawCrx
		if err := payload.Unpack(o.Payload, &c); err == nil {
			return Crx{Scale: c.Scale, Reg: Reg(c.Reg), Cond: BranchCode(c.Cond)}
		}
	}
	return Other{o.Type}
}

func (o Operand) Reg() (Reg, bool) {
	r, ok := o.Data().(RegOp)
	return r.Reg, ok
}

func (o Operand) Imm() (int64, bool) {
	i, ok := o.Data().(Imm)
	return i.Value, ok
}

func (o Operand) Mem() (Mem, bool) {
	m, ok := o.Data().(Mem)
	return m, ok
}

// Detail mirrors cs_ppc.
type Detail struct {
	BC        BranchCode `json:"bc"`
	BH        BranchHint `json:"bh"`
	UpdateCR0 bool       `json:"update_cr0"`

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
