package cs

// #include <capstone/capstone.h>
import "C"

import (
	"fmt"

	"github.com/pkg/errors"
)

// Errno is a cs_err code.
type Errno int

const (
	ErrOK       Errno = C.CS_ERR_OK
	ErrMem      Errno = C.CS_ERR_MEM
	ErrArch     Errno = C.CS_ERR_ARCH
	ErrHandle   Errno = C.CS_ERR_HANDLE
	ErrCsh      Errno = C.CS_ERR_CSH
	ErrMode     Errno = C.CS_ERR_MODE
	ErrOption   Errno = C.CS_ERR_OPTION
	ErrDetail   Errno = C.CS_ERR_DETAIL
	ErrMemSetup Errno = C.CS_ERR_MEMSETUP
	ErrVersion  Errno = C.CS_ERR_VERSION
	ErrDiet     Errno = C.CS_ERR_DIET
	ErrSkipdata Errno = C.CS_ERR_SKIPDATA
	ErrX86ATT   Errno = C.CS_ERR_X86_ATT
	ErrX86Intel Errno = C.CS_ERR_X86_INTEL
	ErrX86Masm  Errno = C.CS_ERR_X86_MASM
)

var errnoNames = map[Errno]string{
	ErrOK:       "CS_ERR_OK",
	ErrMem:      "CS_ERR_MEM",
	ErrArch:     "CS_ERR_ARCH",
	ErrHandle:   "CS_ERR_HANDLE",
	ErrCsh:      "CS_ERR_CSH",
	ErrMode:     "CS_ERR_MODE",
	ErrOption:   "CS_ERR_OPTION",
	ErrDetail:   "CS_ERR_DETAIL",
	ErrMemSetup: "CS_ERR_MEMSETUP",
	ErrVersion:  "CS_ERR_VERSION",
	ErrDiet:     "CS_ERR_DIET",
	ErrSkipdata: "CS_ERR_SKIPDATA",
	ErrX86ATT:   "CS_ERR_X86_ATT",
	ErrX86Intel: "CS_ERR_X86_INTEL",
	ErrX86Masm:  "CS_ERR_X86_MASM",
}

// Name returns the C identifier of the code.
func (e Errno) Name() string {
	if name, ok := errnoNames[e]; ok {
		return name
	}
	return fmt.Sprintf("cs_err(%d)", int(e))
}

func (e Errno) Error() string {
	if msg, ok := goString(C.cs_strerror(C.cs_err(e))); ok && msg != "" {
		return msg
	}
	return "unknown error code " + e.Name()
}

var (
	// ErrClosed is returned by operations on a closed Engine.
	ErrClosed = errors.New("cs: engine is closed")
	// ErrNoInstructions matches a DecodeError whose engine reported no failure:
	// the input was empty or its first bytes did not decode.
	ErrNoInstructions = errors.New("cs: no instructions decoded")
	// ErrBusy is returned when options are changed from inside a Walk callback.
	ErrBusy = errors.New("cs: engine options cannot change during Walk")
	// ErrCount is returned for a negative instruction count.
	ErrCount = errors.New("cs: negative instruction count")
)

// DecodeError is returned when a batch decode produced no instructions.
type DecodeError struct {
	Code Errno
}

func (e *DecodeError) Error() string {
	if e.Code == ErrOK {
		return ErrNoInstructions.Error()
	}
	return fmt.Sprintf("cs: decode failed: %s (%s)", e.Code.Error(), e.Code.Name())
}

func (e *DecodeError) Is(target error) bool {
	return target == ErrNoInstructions && e.Code == ErrOK
}

func (e *DecodeError) Unwrap() error {
	if e.Code == ErrOK {
		return nil
	}
	return e.Code
}

// Kind groups errors by what the caller can do about them.
type Kind string

const (
	KindNone               Kind = ""
	KindConfiguration      Kind = "configuration"
	KindResourceExhaustion Kind = "resource exhaustion"
	KindDecodeFailure      Kind = "decode failure"
	KindClosed             Kind = "closed"
)

func KindOf(err error) Kind {
	if err == nil {
		return KindNone
	}
	var de *DecodeError
	if errors.As(err, &de) {
		if de.Code == ErrMem {
			return KindResourceExhaustion
		}
		return KindDecodeFailure
	}
	if errors.Is(err, ErrClosed) {
		return KindClosed
	}
	var code Errno
	if errors.As(err, &code) {
		switch code {
		case ErrMem:
			return KindResourceExhaustion
		case ErrHandle, ErrCsh:
			return KindClosed
		case ErrOK:
			return KindNone
		}
		return KindConfiguration
	}
	if errors.Is(err, ErrBusy) || errors.Is(err, ErrCount) {
		return KindConfiguration
	}
	return KindNone
}
