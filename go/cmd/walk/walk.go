package walk

import (
	"os"

	"github.com/lunixbochs/safecs/go/cmd"
	"github.com/lunixbochs/safecs/go/cs"
)

func run(c *cmd.DisCmd, stop int) error {
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
	limit := c.Config.Count
	if stop > 0 && (limit == 0 || stop < limit) {
		limit = stop
	}
	var printErr error
	n := 0
	err = dis.Walk(code, c.Config.Base, func(in *cs.Insn) bool {
		if printErr = c.Print(engine, in.Copy()); printErr != nil {
			return false
		}
		n++
		return limit == 0 || n < limit
	})
	if err != nil {
		return err
	}
	if printErr != nil {
		return printErr
	}
	return c.Check(dis, code)
}

func Main(args []string) {
	c := cmd.NewDisCmd("walk")
	c.ExtraUsage = "<hex | - | -f file>"
	stop := c.Flags.Int("stop", 0, "end the walk after this many instructions")
	if err := c.Parse(args); err != nil {
		c.PrintError(err)
		os.Exit(1)
	}
	if err := run(c, *stop); err != nil {
		c.PrintError(err)
		os.Exit(1)
	}
}

func init() { cmd.Register("walk", "disassemble code one instruction at a time", Main) }
