package cs

// #include <capstone/capstone.h>
import "C"

import "unsafe"

// owner tracks the lifetime of the memory behind a set of views. Every
// retire invalidates the views handed out before it.
type owner struct {
	arch   Arch
	detail bool
	gen    uint64
}

func (o *owner) retire() { o.gen++ }

// Insn is a borrowed view of one decoded instruction. It reads zero values
// once its buffer is closed or its Walk slot has been reused.
type Insn struct {
	raw *C.cs_insn
	own *owner
	gen uint64
	// buf keeps a Disasm array reachable while its views are.
	buf *insns
}

// Valid reports whether the view still refers to live memory.
func (in *Insn) Valid() bool {
	return in != nil && in.raw != nil && in.own.gen == in.gen
}

func (in *Insn) ID() uint {
	if !in.Valid() {
		return 0
	}
	return uint(in.raw.id)
}

func (in *Insn) Address() uint64 {
	if !in.Valid() {
		return 0
	}
	return uint64(in.raw.address)
}

func (in *Insn) Addr() uint64 { return in.Address() }

// Size is the byte length the engine reported, which may exceed len(Bytes())
// on skipdata records.
func (in *Insn) Size() int {
	if !in.Valid() {
		return 0
	}
	return int(in.raw.size)
}

func (in *Insn) Bytes() []byte {
	if !in.Valid() {
		return nil
	}
	n := clamp(int(in.raw.size), len(in.raw.bytes))
	if n == 0 {
		return []byte{}
	}
	return C.GoBytes(unsafe.Pointer(&in.raw.bytes[0]), C.int(n))
}

func (in *Insn) Mnemonic() string {
	if !in.Valid() {
		return ""
	}
	b := unsafe.Slice((*byte)(unsafe.Pointer(&in.raw.mnemonic[0])), len(in.raw.mnemonic))
	return fixedString(b)
}

func (in *Insn) OpStr() string {
	if !in.Valid() {
		return ""
	}
	b := unsafe.Slice((*byte)(unsafe.Pointer(&in.raw.op_str[0])), len(in.raw.op_str))
	return fixedString(b)
}

// IsSkipData reports whether the record covers bytes skipped as data.
func (in *Insn) IsSkipData() bool {
	return in.Valid() && in.raw.id == 0
}

// Detail returns the detail block, or nil when detail was off for the
// decode, the record is skipped data, or the view is stale.
func (in *Insn) Detail() *Detail {
	if !in.Valid() || !in.own.detail || in.raw.id == 0 || in.raw.detail == nil {
		return nil
	}
	return &Detail{raw: in.raw.detail, in: in}
}

// Instruction is an owned copy of a decoded instruction.
type Instruction struct {
	ID       uint     `json:"id"`
	Address  uint64   `json:"address"`
	Size     int      `json:"size"`
	Bytes    []byte   `json:"bytes"`
	Mnemonic string   `json:"mnemonic"`
	OpStr    string   `json:"op_str"`
	Detail   *Details `json:"detail,omitempty"`
}

// Copy returns an owned copy of the view. A stale view copies as the zero Instruction.
func (in *Insn) Copy() Instruction {
	if !in.Valid() {
		return Instruction{}
	}
	out := Instruction{
		ID:       in.ID(),
		Address:  in.Address(),
		Size:     in.Size(),
		Bytes:    in.Bytes(),
		Mnemonic: in.Mnemonic(),
		OpStr:    in.OpStr(),
	}
	if d := in.Detail(); d != nil {
		out.Detail = d.Copy()
	}
	return out
}
