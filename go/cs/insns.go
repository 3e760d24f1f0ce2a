package cs

// #include <capstone/capstone.h>
import "C"

import (
	"runtime"
	"unsafe"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Insns owns an instruction array allocated by cs_disasm. Copies of an Insns
// share the array and see each other's Close.
type Insns struct {
	noCopy noCopy
	*insns
}

type insns struct {
	ptr   *C.cs_insn
	count int
	own   *owner
}

// Disasm decodes up to count instructions from code, the first at addr.
// A count of 0 decodes until the input ends or fails to decode.
//
// When nothing decodes the error is a *DecodeError carrying the engine's
// errno; errors.Is(err, ErrNoInstructions) holds when the engine reported no
// failure.
func (e *Engine) Disasm(code []byte, addr uint64, count int) (*Insns, error) {
	if e.closed {
		return nil, ErrClosed
	}
	if count < 0 {
		return nil, errors.Wrapf(ErrCount, "cs_disasm(count=%d)", count)
	}
	defer runtime.KeepAlive(e)
	var input *C.uint8_t
	if len(code) > 0 {
		input = (*C.uint8_t)(unsafe.Pointer(&code[0]))
	}
	var ptr *C.cs_insn
	n := int(C.cs_disasm(e.handle, input, C.size_t(len(code)), C.uint64_t(addr), C.size_t(count), &ptr))
	runtime.KeepAlive(code)
	if n == 0 {
		if ptr != nil {
			C.cs_free(ptr, 0)
		}
		return nil, errors.WithStack(&DecodeError{Code: Errno(C.cs_errno(e.handle))})
	}
	b := &Insns{insns: &insns{ptr: ptr, count: n, own: &owner{arch: e.arch, detail: e.detail}}}
	runtime.SetFinalizer(b.insns, func(b *insns) {
		if b.ptr != nil {
			Logger().Warn("instruction buffer was not closed", zap.Int("count", b.count))
			b.free()
		}
	})
	return b, nil
}

// Len returns the number of instructions, or 0 once closed.
func (b *Insns) Len() int {
	if b == nil || b.insns == nil || b.ptr == nil {
		return 0
	}
	return b.count
}

// At returns a view of instruction i, or nil when i is out of range or the
// buffer is closed.
func (b *Insns) At(i int) *Insn {
	if i < 0 || i >= b.Len() {
		return nil
	}
	raw := &unsafe.Slice(b.ptr, b.count)[i]
	return &Insn{raw: raw, own: b.own, gen: b.own.gen, buf: b.insns}
}

// Each calls fn on every instruction in order until fn returns false.
func (b *Insns) Each(fn func(*Insn) bool) {
	for i := 0; i < b.Len(); i++ {
		if !fn(b.At(i)) {
			return
		}
	}
}

// Copy returns owned copies of every instruction.
func (b *Insns) Copy() []Instruction {
	out := make([]Instruction, 0, b.Len())
	b.Each(func(in *Insn) bool {
		out = append(out, in.Copy())
		return true
	})
	return out
}

// Close frees the array with the count it was allocated with. Views handed
// out earlier go stale. Later calls are no-ops.
func (b *Insns) Close() {
	if b == nil || b.insns == nil || b.ptr == nil {
		return
	}
	runtime.SetFinalizer(b.insns, nil)
	b.free()
}

func (b *insns) free() {
	b.own.retire()
	C.cs_free(b.ptr, C.size_t(b.count))
	b.ptr = nil
}

// DisasmCopy decodes code into owned copies, freeing the engine array before returning.
func (e *Engine) DisasmCopy(code []byte, addr uint64, count int) ([]Instruction, error) {
	b, err := e.Disasm(code, addr, count)
	if err != nil {
		return nil, err
	}
	defer b.Close()
	return b.Copy(), nil
}
