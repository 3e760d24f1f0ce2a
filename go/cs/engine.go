package cs

// #include <stdlib.h>
// #include <capstone/capstone.h>
import "C"

import (
	"runtime"
	"unicode/utf8"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Engine is an open engine handle. Copies of an Engine share one handle and
// see each other's Close.
type Engine struct {
	noCopy noCopy
	*engine
}

// engine is the handle state behind an Engine.
type engine struct {
	handle   C.csh
	arch     Arch
	mode     Mode
	detail   bool
	skipdata bool
	syntax   Syntax
	closed   bool
	walking  int
}

// New opens an engine for arch and mode. Detail and skipdata start disabled.
func New(arch Arch, mode Mode) (*Engine, error) {
	var handle C.csh
	if err := Errno(C.cs_open(C.cs_arch(arch), C.cs_mode(mode), &handle)); err != ErrOK {
		return nil, errors.Wrapf(err, "cs_open(%s, %#x) failed", arch, uint32(mode))
	}
	e := &Engine{engine: &engine{handle: handle, arch: arch, mode: mode}}
	runtime.SetFinalizer(e.engine, func(e *engine) {
		if !e.closed {
			Logger().Warn("engine was not closed", zap.Stringer("arch", e.arch), zap.Uint32("mode", uint32(e.mode)))
			e.release()
		}
	})
	Logger().Debug("cs_open", zap.Stringer("arch", arch), zap.Uint32("mode", uint32(mode)))
	return e, nil
}

// Close releases the handle. Later calls are no-ops.
func (e *Engine) Close() error {
	if e == nil || e.engine == nil || e.closed {
		return nil
	}
	runtime.SetFinalizer(e.engine, nil)
	return e.release()
}

func (e *engine) release() error {
	e.closed = true
	handle := e.handle
	e.handle = 0
	if err := Errno(C.cs_close(&handle)); err != ErrOK {
		return errors.Wrap(err, "cs_close() failed")
	}
	return nil
}

func (e *Engine) Closed() bool   { return e.engine == nil || e.closed }
func (e *Engine) Arch() Arch     { return e.arch }
func (e *Engine) Mode() Mode     { return e.mode }
func (e *Engine) Detail() bool   { return e.detail }
func (e *Engine) Skipdata() bool { return e.skipdata }
func (e *Engine) Syntax() Syntax { return e.syntax }

// SetOption forwards to cs_option. The engine's view of the detail, skipdata,
// syntax and mode settings only changes when the engine accepts the value.
func (e *Engine) SetOption(opt Option, value OptionValue) error {
	if e.closed {
		return ErrClosed
	}
	if e.walking > 0 {
		return ErrBusy
	}
	err := Errno(C.cs_option(e.handle, C.cs_opt_type(opt), C.size_t(value)))
	runtime.KeepAlive(e)
	if err != ErrOK {
		return errors.Wrapf(err, "cs_option(%s, %d) failed", opt, value)
	}
	switch opt {
	case OptDetail:
		e.detail = value != OptOff
	case OptSkipdata:
		e.skipdata = value != OptOff
	case OptSyntax:
		e.syntax = Syntax(value)
	case OptMode:
		e.mode = Mode(value)
	}
	return nil
}

func onOff(on bool) OptionValue {
	if on {
		return OptOn
	}
	return OptOff
}

func (e *Engine) SetDetail(on bool) error {
	return e.SetOption(OptDetail, onOff(on))
}

// SetSkipdata makes undecodable bytes come back as data records (ID 0)
// instead of ending the decode.
func (e *Engine) SetSkipdata(on bool) error {
	return e.SetOption(OptSkipdata, onOff(on))
}

func (e *Engine) SetSyntax(s Syntax) error {
	return e.SetOption(OptSyntax, OptionValue(s))
}

func (e *Engine) SetMode(m Mode) error {
	return e.SetOption(OptMode, OptionValue(m))
}

// goString converts an engine-owned string. Missing or non-UTF-8 names report false.
func goString(p *C.char) (string, bool) {
	if p == nil {
		return "", false
	}
	s := C.GoString(p)
	if !utf8.ValidString(s) {
		return "", false
	}
	return s, true
}

// RegName returns the engine's name for a register id of this engine's arch.
func (e *Engine) RegName(reg uint) (string, bool) {
	if e.closed {
		return "", false
	}
	defer runtime.KeepAlive(e)
	return goString(C.cs_reg_name(e.handle, C.uint(reg)))
}

func (e *Engine) InsnName(id uint) (string, bool) {
	if e.closed {
		return "", false
	}
	defer runtime.KeepAlive(e)
	return goString(C.cs_insn_name(e.handle, C.uint(id)))
}

func (e *Engine) GroupName(g Group) (string, bool) {
	if e.closed {
		return "", false
	}
	defer runtime.KeepAlive(e)
	return goString(C.cs_group_name(e.handle, C.uint(g)))
}

// Errno returns the engine's last error code.
func (e *Engine) Errno() Errno {
	if e.closed {
		return ErrCsh
	}
	defer runtime.KeepAlive(e)
	return Errno(C.cs_errno(e.handle))
}
