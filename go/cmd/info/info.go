package info

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-runewidth"

	"github.com/lunixbochs/safecs/go/arch"
	"github.com/lunixbochs/safecs/go/cmd"
	"github.com/lunixbochs/safecs/go/cs"
)

// Print writes the engine version and which registered arches it supports.
func Print(w io.Writer) {
	major, minor := cs.Version()
	fmt.Fprintf(w, "capstone %d.%d\n\n", major, minor)
	width := 0
	for _, name := range arch.Names() {
		if n := runewidth.StringWidth(name); n > width {
			width = n
		}
	}
	for _, name := range arch.Names() {
		a, _ := arch.GetArch(name)
		status := "supported"
		if !cs.Supports(a.CS_ARCH) {
			status = "not built"
		}
		detail := ""
		if a.Detailed() {
			detail = ", operand detail"
		}
		fmt.Fprintf(w, "%s | %2d-bit %s%s\n", runewidth.FillRight(name, width), a.Bits, status, detail)
	}
}

func Main(args []string) {
	if len(args) > 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s\n", args[0])
		os.Exit(1)
	}
	Print(os.Stdout)
}

func init() { cmd.Register("info", "print engine version and supported architectures", Main) }
