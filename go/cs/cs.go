// Package cs binds the Capstone disassembly engine.
//
// An Engine owns one engine handle. Disasm returns an Insns buffer that owns
// the engine-allocated instruction array; Walk decodes one instruction at a
// time into a single reusable slot. Both hand out *Insn views that are only
// valid while their backing memory is: a view from a closed buffer, or from
// a Walk iteration that has moved on, reports zero values instead of reading
// freed memory. Copy a view to keep it.
//
// Engines are not safe for concurrent use. Independent engines may be used
// from separate goroutines.
package cs

// #cgo LDFLAGS: -lcapstone
// #cgo freebsd CFLAGS: -I/usr/local/include
// #cgo freebsd LDFLAGS: -L/usr/local/lib
// #include <stdlib.h>
// #include <capstone/capstone.h>
import "C"

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

type Arch int

const (
	ArchARM   Arch = C.CS_ARCH_ARM
	ArchARM64 Arch = C.CS_ARCH_ARM64
	ArchMIPS  Arch = C.CS_ARCH_MIPS
	ArchX86   Arch = C.CS_ARCH_X86
	ArchPPC   Arch = C.CS_ARCH_PPC
	ArchSPARC Arch = C.CS_ARCH_SPARC
	ArchSYSZ  Arch = C.CS_ARCH_SYSZ
	ArchXCORE Arch = C.CS_ARCH_XCORE
	ArchM68K  Arch = C.CS_ARCH_M68K
	ArchAll   Arch = C.CS_ARCH_ALL
)

var archNames = map[Arch]string{
	ArchARM:   "arm",
	ArchARM64: "arm64",
	ArchMIPS:  "mips",
	ArchX86:   "x86",
	ArchPPC:   "ppc",
	ArchSPARC: "sparc",
	ArchSYSZ:  "sysz",
	ArchXCORE: "xcore",
	ArchM68K:  "m68k",
	ArchAll:   "all",
}

func (a Arch) String() string {
	if name, ok := archNames[a]; ok {
		return name
	}
	return fmt.Sprintf("arch(%d)", int(a))
}

// Mode is a cs_mode bit set. Several names share a bit on different architectures.
type Mode uint32

const (
	ModeLittleEndian Mode = C.CS_MODE_LITTLE_ENDIAN
	ModeARM          Mode = C.CS_MODE_ARM
	Mode16           Mode = C.CS_MODE_16
	Mode32           Mode = C.CS_MODE_32
	Mode64           Mode = C.CS_MODE_64
	ModeThumb        Mode = C.CS_MODE_THUMB
	ModeMClass       Mode = C.CS_MODE_MCLASS
	ModeV8           Mode = C.CS_MODE_V8
	ModeMicro        Mode = C.CS_MODE_MICRO
	ModeMips3        Mode = C.CS_MODE_MIPS3
	ModeMips32R6     Mode = C.CS_MODE_MIPS32R6
	ModeV9           Mode = C.CS_MODE_V9
	ModeQPX          Mode = C.CS_MODE_QPX
	ModeBigEndian    Mode = C.CS_MODE_BIG_ENDIAN
	ModeMips32       Mode = C.CS_MODE_MIPS32
	ModeMips64       Mode = C.CS_MODE_MIPS64
)

type Option int

const (
	OptSyntax   Option = C.CS_OPT_SYNTAX
	OptDetail   Option = C.CS_OPT_DETAIL
	OptMode     Option = C.CS_OPT_MODE
	OptSkipdata Option = C.CS_OPT_SKIPDATA
)

func (o Option) String() string {
	switch o {
	case OptSyntax:
		return "CS_OPT_SYNTAX"
	case OptDetail:
		return "CS_OPT_DETAIL"
	case OptMode:
		return "CS_OPT_MODE"
	case OptSkipdata:
		return "CS_OPT_SKIPDATA"
	}
	return fmt.Sprintf("option(%d)", int(o))
}

// OptionValue is the size_t argument of cs_option.
type OptionValue uint

const (
	OptOff OptionValue = C.CS_OPT_OFF
	OptOn  OptionValue = C.CS_OPT_ON
)

type Syntax OptionValue

const (
	SyntaxDefault   Syntax = C.CS_OPT_SYNTAX_DEFAULT
	SyntaxIntel     Syntax = C.CS_OPT_SYNTAX_INTEL
	SyntaxATT       Syntax = C.CS_OPT_SYNTAX_ATT
	SyntaxNoRegName Syntax = C.CS_OPT_SYNTAX_NOREGNAME
	SyntaxMasm      Syntax = C.CS_OPT_SYNTAX_MASM
)

var syntaxNames = map[string]Syntax{
	"":          SyntaxDefault,
	"default":   SyntaxDefault,
	"intel":     SyntaxIntel,
	"att":       SyntaxATT,
	"noregname": SyntaxNoRegName,
	"masm":      SyntaxMasm,
}

func ParseSyntax(name string) (Syntax, error) {
	if s, ok := syntaxNames[strings.ToLower(name)]; ok {
		return s, nil
	}
	return SyntaxDefault, errors.Errorf("unknown syntax %q (intel, att, masm, noregname)", name)
}

// Group is a generic cs_group_type id. Architectures add their own ids above these.
type Group uint8

const (
	GroupInvalid        Group = C.CS_GRP_INVALID
	GroupJump           Group = C.CS_GRP_JUMP
	GroupCall           Group = C.CS_GRP_CALL
	GroupRet            Group = C.CS_GRP_RET
	GroupInt            Group = C.CS_GRP_INT
	GroupIret           Group = C.CS_GRP_IRET
	GroupPrivilege      Group = C.CS_GRP_PRIVILEGE
	GroupBranchRelative Group = C.CS_GRP_BRANCH_RELATIVE
)

// Version returns the major and minor version of the linked engine.
func Version() (major, minor int) {
	var maj, min C.int
	C.cs_version(&maj, &min)
	return int(maj), int(min)
}

// Supports reports whether the linked engine was built with arch.
func Supports(arch Arch) bool {
	return bool(C.cs_support(C.int(arch)))
}
