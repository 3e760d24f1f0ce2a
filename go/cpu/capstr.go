package cpu

import (
	cs "github.com/lunixbochs/capstr"
	"github.com/pkg/errors"

	"github.com/lunixbochs/safecs/go/models"
)

// Capstr disassembles through the capstr binding. It exists to cross-check
// Capstone: both link the same engine but marshal records differently.
type Capstr struct {
	Arch, Mode int

	cs *cs.Engine
	dc *models.Discache
}

func (c *Capstr) Open() (err error) {
	engine, err := cs.New(c.Arch, c.Mode)
	if err == nil {
		c.cs = engine
		c.dc = models.NewDiscache()
	}
	return errors.Wrap(err, "cs.New() failed")
}

func (c *Capstr) Dis(mem []byte, addr uint64) ([]models.Ins, error) {
	if c.cs == nil {
		if err := c.Open(); err != nil {
			return nil, err
		}
	}
	if ent := c.dc.Get(addr, mem); ent != nil {
		return ent.Dis, nil
	}
	dis, err := c.cs.Dis(mem, addr, 0)
	if err != nil {
		return nil, errors.Wrap(err, "capstone disassembly failed")
	}
	ret := make([]models.Ins, len(dis))
	for i, v := range dis {
		ret[i] = v
	}
	c.dc.Put(addr, mem, ret)
	return ret, nil
}

type Disassembler interface {
	Dis(mem []byte, addr uint64) ([]models.Ins, error)
}

// NewCapstr returns a Capstr for the same engine settings as arch.
func NewCapstr(arch *models.Arch) *Capstr {
	return &Capstr{Arch: int(arch.CS_ARCH), Mode: int(arch.CS_MODE)}
}

// CrossCheck decodes mem with both disassemblers and reports the first
// record where they disagree.
func CrossCheck(a, b Disassembler, mem []byte, addr uint64) error {
	da, err := a.Dis(mem, addr)
	if err != nil {
		return err
	}
	db, err := b.Dis(mem, addr)
	if err != nil {
		return err
	}
	if len(da) != len(db) {
		return errors.Errorf("decoded %d instructions vs %d", len(da), len(db))
	}
	for i := range da {
		x, y := da[i], db[i]
		if x.Addr() != y.Addr() || x.Mnemonic() != y.Mnemonic() || x.OpStr() != y.OpStr() || string(x.Bytes()) != string(y.Bytes()) {
			return errors.Errorf("instruction %d differs: 0x%x %s %s vs 0x%x %s %s",
				i, x.Addr(), x.Mnemonic(), x.OpStr(), y.Addr(), y.Mnemonic(), y.OpStr())
		}
	}
	return nil
}
