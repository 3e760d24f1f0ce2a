package dis

import (
	"os"

	"github.com/lunixbochs/safecs/go/cmd"
	"github.com/lunixbochs/safecs/go/cpu"
)

func run(c *cmd.DisCmd) error {
	code, err := c.Input()
	if err != nil {
		return err
	}
	dis, err := c.Capstone()
	if err != nil {
		return err
	}
	defer dis.Close()
	engine, err := dis.Engine()
	if err != nil {
		return err
	}
	listing, err := dis.DisCount(code, c.Config.Base, c.Config.Count)
	if err != nil {
		return err
	}
	for _, ins := range listing {
		owned, _ := cpu.Owned(ins)
		if err := c.Print(engine, owned); err != nil {
			return err
		}
	}
	return c.Check(dis, code)
}

func Main(args []string) {
	c := cmd.NewDisCmd("dis")
	c.ExtraUsage = "<hex | - | -f file>"
	if err := c.Parse(args); err != nil {
		c.PrintError(err)
		os.Exit(1)
	}
	if err := run(c); err != nil {
		c.PrintError(err)
		os.Exit(1)
	}
}

func init() { cmd.Register("dis", "disassemble code in one batch", Main) }
