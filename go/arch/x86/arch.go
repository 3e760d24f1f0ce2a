// Package x86 decodes the x86 section of an engine detail block.
//
// The engine lays every operand out as a type tag followed by a union. The
// union is carried here as raw bytes and only reinterpreted after switching
// on the tag, so an operand with a tag this package does not model decodes
// to Other instead of being read under a guessed layout.
package x86

import (
	"fmt"

	"github.com/lunixbochs/safecs/go/arch/payload"
)

// PayloadSize is the size of the operand union (x86_op_mem is the widest member).
const PayloadSize = 24

// Data is the decoded payload of an Operand: Imm, RegOp, Mem or Other.
type Data interface {
	isData()
}

type Imm struct{ Value int64 }

type RegOp struct{ Reg Reg }

type Mem struct {
	Segment Reg
	Base    Reg
	Index   Reg
	Scale   int32
	Disp    int64
}

// Other is returned for tags without a modeled payload.
type Other struct{ Tag OpType }

func (Imm) isData()   {}
func (RegOp) isData() {}
func (Mem) isData()   {}
func (Other) isData() {}

func (i Imm) String() string   { return fmt.Sprintf("imm:%#x", i.Value) }
func (r RegOp) String() string { return fmt.Sprintf("reg:%d", r.Reg) }
func (o Other) String() string { return o.Tag.String() }
func (m Mem) String() string {
	return fmt.Sprintf("mem:[seg=%d base=%d index=%d scale=%d disp=%#x]", m.Segment, m.Base, m.Index, m.Scale, m.Disp)
}

// MemSize is sizeof(x86_op_mem).
const MemSize = 24

type rawMem struct {
	Segment uint32
	Base    uint32
	Index   uint32
	Scale   int32
	Disp    int64
}

type Operand struct {
	Type          OpType   `json:"type"`
	Payload       []byte   `json:"payload"`
	Size          uint8    `json:"size"`
	Access        Access   `json:"access"`
	AvxBcast      AvxBcast `json:"avx_bcast"`
	AvxZeroOpmask bool     `json:"avx_zero_opmask"`
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
			return Mem{
				Segment: Reg(m.Segment),
				Base:    Reg(m.Base),
				Index:   Reg(m.Index),
				Scale:   m.Scale,
				Disp:    m.Disp,
			}
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

// Detail mirrors cs_x86.
type Detail struct {
	Prefix   [4]Prefix `json:"prefix"`
	Opcode   [4]uint8  `json:"opcode"`
	Rex      uint8     `json:"rex"`
	AddrSize uint8     `json:"addr_size"`
	ModRM    uint8     `json:"modrm"`
	Sib      uint8     `json:"sib"`
	Disp     int64     `json:"disp"`
	SibIndex Reg       `json:"sib_index"`
	SibScale int8      `json:"sib_scale"`
	SibBase  Reg       `json:"sib_base"`
	XopCC    XopCC     `json:"xop_cc"`
	SseCC    SseCC     `json:"sse_cc"`
	AvxCC    AvxCC     `json:"avx_cc"`
	AvxSae   bool      `json:"avx_sae"`
	AvxRM    AvxRM     `json:"avx_rm"`
	Eflags   Eflags    `json:"eflags"`

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

// OpCountType counts the operands of a given type.
func (d *Detail) OpCountType(t OpType) int {
	count := 0
	for _, op := range d.Operands() {
		if op.Type == t {
			count++
		}
	}
	return count
}

// HasPrefix reports whether p occupies any prefix slot.
func (d *Detail) HasPrefix(p Prefix) bool {
	for _, v := range d.Prefix {
		if v == p && p != PrefixNone {
			return true
		}
	}
	return false
}
