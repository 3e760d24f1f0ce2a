package repl

import (
	"os"

	"github.com/lunixbochs/safecs/go/cmd"
	"github.com/lunixbochs/safecs/go/ui"
)

func Main(args []string) {
	c := cmd.NewDisCmd("repl")
	c.NoInput = true
	if err := c.Parse(args); err != nil {
		c.PrintError(err)
		os.Exit(1)
	}
	dis, err := c.Capstone()
	if err != nil {
		c.PrintError(err)
		os.Exit(1)
	}
	defer dis.Close()
	if err := ui.NewRepl(dis, c.Config.Base, c.Listing()).Run(); err != nil {
		c.PrintError(err)
		os.Exit(1)
	}
}

func init() { cmd.Register("repl", "interactively disassemble hex lines", Main) }
