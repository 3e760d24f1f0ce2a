package models

import (
	"fmt"

	"github.com/lunixbochs/safecs/go/cs"
)

type Arch struct {
	Name    string
	Bits    int
	CS_ARCH cs.Arch
	CS_MODE cs.Mode
}

// Detailed reports whether operand detail for this arch is decoded.
func (a *Arch) Detailed() bool {
	switch a.CS_ARCH {
	case cs.ArchX86, cs.ArchARM, cs.ArchPPC:
		return true
	}
	return false
}

// Engine returns the engine configuration for this arch.
func (a *Arch) Engine(detail, skipdata bool, syntax cs.Syntax) cs.Config {
	return cs.Config{
		Arch:     a.CS_ARCH,
		Mode:     a.CS_MODE,
		Detail:   detail,
		Skipdata: skipdata,
		Syntax:   syntax,
	}
}

func (a *Arch) String() string {
	return fmt.Sprintf("<Arch %s %d-bit (%s mode %#x)>", a.Name, a.Bits, a.CS_ARCH, uint32(a.CS_MODE))
}
