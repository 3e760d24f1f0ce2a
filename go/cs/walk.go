package cs

// #include <stdlib.h>
// #include <capstone/capstone.h>
import "C"

import (
	"runtime"
	"unsafe"

	"github.com/pkg/errors"
)

// Walk decodes code one instruction at a time into a single engine slot,
// calling visit for each until the input is exhausted, an undecodable byte
// is reached (with skipdata off) or visit returns false.
//
// The view passed to visit is overwritten by the next iteration. The slot
// and the input copy are released before Walk returns, also when visit panics.
// Options cannot be changed from inside visit. Closing the engine from visit
// ends the walk.
func (e *Engine) Walk(code []byte, addr uint64, visit func(*Insn) bool) error {
	if e.closed {
		return ErrClosed
	}
	defer runtime.KeepAlive(e)
	if len(code) == 0 {
		return nil
	}
	slot := C.cs_malloc(e.handle)
	if slot == nil {
		return errors.Wrap(ErrMem, "cs_malloc() failed")
	}
	own := &owner{arch: e.arch, detail: e.detail}
	e.walking++
	defer func() {
		e.walking--
		own.retire()
		C.cs_free(slot, 1)
	}()

	input := (*C.uint8_t)(C.CBytes(code))
	defer C.free(unsafe.Pointer(input))
	cur := input
	size := C.size_t(len(code))
	pc := C.uint64_t(addr)
	for !e.closed && bool(C.cs_disasm_iter(e.handle, &cur, &size, &pc, slot)) {
		own.retire()
		if !visit(&Insn{raw: slot, own: own, gen: own.gen}) {
			break
		}
	}
	return nil
}

// WalkCopy collects owned copies of up to count instructions using Walk.
// A count of 0 collects all of them.
func (e *Engine) WalkCopy(code []byte, addr uint64, count int) ([]Instruction, error) {
	if count < 0 {
		return nil, errors.Wrapf(ErrCount, "walk(count=%d)", count)
	}
	var out []Instruction
	err := e.Walk(code, addr, func(in *Insn) bool {
		out = append(out, in.Copy())
		return count == 0 || len(out) < count
	})
	return out, err
}
