// Package arch names the engine configurations the tools know about.
package arch

import (
	"sort"

	"github.com/lunixbochs/fvbommel-util/sortorder"
	"github.com/pkg/errors"

	"github.com/lunixbochs/safecs/go/cs"
	"github.com/lunixbochs/safecs/go/models"
)

func def(name string, bits int, a cs.Arch, m cs.Mode) *models.Arch {
	return &models.Arch{Name: name, Bits: bits, CS_ARCH: a, CS_MODE: m}
}

var archMap = map[string]*models.Arch{
	"x86_16":  def("x86_16", 16, cs.ArchX86, cs.Mode16),
	"x86":     def("x86", 32, cs.ArchX86, cs.Mode32),
	"x86_64":  def("x86_64", 64, cs.ArchX86, cs.Mode64),
	"arm":     def("arm", 32, cs.ArchARM, cs.ModeARM),
	"armbe":   def("armbe", 32, cs.ArchARM, cs.ModeARM|cs.ModeBigEndian),
	"thumb":   def("thumb", 32, cs.ArchARM, cs.ModeThumb),
	"arm64":   def("arm64", 64, cs.ArchARM64, cs.ModeARM),
	"mips":    def("mips", 32, cs.ArchMIPS, cs.ModeMips32|cs.ModeBigEndian),
	"mipsel":  def("mipsel", 32, cs.ArchMIPS, cs.ModeMips32),
	"mips64":  def("mips64", 64, cs.ArchMIPS, cs.ModeMips64|cs.ModeBigEndian),
	"ppc":     def("ppc", 32, cs.ArchPPC, cs.Mode32|cs.ModeBigEndian),
	"ppc64":   def("ppc64", 64, cs.ArchPPC, cs.Mode64|cs.ModeBigEndian),
	"ppc64le": def("ppc64le", 64, cs.ArchPPC, cs.Mode64),
	"sparc":   def("sparc", 32, cs.ArchSPARC, cs.ModeBigEndian),
}

func GetArch(name string) (*models.Arch, error) {
	a, ok := archMap[name]
	if !ok {
		return nil, errors.Errorf("Arch '%s' not found.", name)
	}
	return a, nil
}

// Names lists the registered arch names in natural order.
func Names() []string {
	names := make([]string, 0, len(archMap))
	for name := range archMap {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return sortorder.NaturalLess(names[i], names[j]) })
	return names
}
