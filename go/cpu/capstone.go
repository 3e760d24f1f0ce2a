package cpu

import (
	"github.com/pkg/errors"

	"github.com/lunixbochs/safecs/go/cs"
	"github.com/lunixbochs/safecs/go/models"
)

// Capstone disassembles through a lazily opened cs.Engine, caching owned
// copies per address.
type Capstone struct {
	Arch     cs.Arch
	Mode     cs.Mode
	Detail   bool
	Skipdata bool
	Syntax   cs.Syntax

	cs *cs.Engine
	dc *models.Discache
}

func NewCapstone(arch *models.Arch, detail, skipdata bool, syntax cs.Syntax) *Capstone {
	c := arch.Engine(detail, skipdata, syntax)
	return &Capstone{Arch: c.Arch, Mode: c.Mode, Detail: c.Detail, Skipdata: c.Skipdata, Syntax: c.Syntax}
}

func (c *Capstone) config() cs.Config {
	return cs.Config{Arch: c.Arch, Mode: c.Mode, Detail: c.Detail, Skipdata: c.Skipdata, Syntax: c.Syntax}
}

func (c *Capstone) Open() error {
	engine, err := c.config().Build()
	if err != nil {
		return errors.Wrap(err, "cs.New() failed")
	}
	c.cs = engine
	c.dc = models.NewDiscache()
	return nil
}

// Engine returns the underlying engine, opening it on first use.
func (c *Capstone) Engine() (*cs.Engine, error) {
	if c.cs == nil {
		if err := c.Open(); err != nil {
			return nil, err
		}
	}
	return c.cs, nil
}

func (c *Capstone) Dis(mem []byte, addr uint64) ([]models.Ins, error) {
	return c.DisCount(mem, addr, 0)
}

// DisCount decodes at most count instructions; 0 decodes everything. Only
// unbounded results are cached. The returned slice is the caller's.
func (c *Capstone) DisCount(mem []byte, addr uint64, count int) ([]models.Ins, error) {
	engine, err := c.Engine()
	if err != nil {
		return nil, err
	}
	if count == 0 {
		if ent := c.dc.Get(addr, mem); ent != nil {
			return append([]models.Ins(nil), ent.Dis...), nil
		}
	}
	dis, err := engine.DisasmCopy(mem, addr, count)
	if err != nil {
		return nil, errors.Wrap(err, "capstone disassembly failed")
	}
	ret := make([]models.Ins, len(dis))
	for i, ins := range dis {
		ret[i] = csIns{ins}
	}
	if count == 0 {
		c.dc.Put(addr, mem, append([]models.Ins(nil), ret...))
	}
	return ret, nil
}

// Walk streams instructions to visit without caching them.
func (c *Capstone) Walk(mem []byte, addr uint64, visit func(*cs.Insn) bool) error {
	engine, err := c.Engine()
	if err != nil {
		return err
	}
	return errors.Wrap(engine.Walk(mem, addr, visit), "capstone walk failed")
}

func (c *Capstone) Cache() *models.Discache { return c.dc }

func (c *Capstone) Close() error {
	if c.cs == nil {
		return nil
	}
	err := c.cs.Close()
	c.cs = nil
	c.dc = nil
	return err
}

// wrapper to make cs.Instruction conform to the models.Ins interface
type csIns struct{ ins cs.Instruction }

func (c csIns) Addr() uint64     { return c.ins.Address }
func (c csIns) Bytes() []byte    { return c.ins.Bytes }
func (c csIns) Mnemonic() string { return c.ins.Mnemonic }
func (c csIns) OpStr() string    { return c.ins.OpStr }

// Wrap adapts an owned instruction to models.Ins.
func Wrap(ins cs.Instruction) models.Ins { return csIns{ins} }

// Owned unwraps an instruction returned by Capstone.Dis.
func Owned(ins models.Ins) (cs.Instruction, bool) {
	if c, ok := ins.(csIns); ok {
		return c.ins, true
	}
	return cs.Instruction{}, false
}
