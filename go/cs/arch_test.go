package cs

import (
	"testing"

	"github.com/lunixbochs/safecs/go/arch/arm"
	"github.com/lunixbochs/safecs/go/arch/ppc"
)

func TestArmDetail(t *testing.T) {
	// bl #0xfbc; str lr, [sp, #-4]!
	e := newEngine(t, Config{Arch: ArchARM, Mode: ModeARM, Detail: true})
	b, err := e.Disasm(decodeHex(t, "edffffeb04e02de5"), 0x1000, 0)
	if err != nil {
		t.Fatal(err)
	}
	defer b.Close()
	if b.Len() != 2 {
		t.Fatalf("decoded %d instructions", b.Len())
	}
	if b.At(0).Mnemonic() != "bl" || !b.At(0).Detail().InGroup(GroupJump) && !b.At(0).Detail().InGroup(GroupCall) {
		t.Fatalf("bad branch %s %v", b.At(0).Mnemonic(), b.At(0).Detail().Groups())
	}
	detail := b.At(1).Detail()
	if _, ok := detail.X86(); ok {
		t.Fatal("x86 projection of an arm detail")
	}
	d, ok := detail.Arm()
	if !ok {
		t.Fatal("missing arm detail")
	}
	if b.At(1).Mnemonic() != "str" {
		t.Fatalf("got %s", b.At(1).Mnemonic())
	}
	if d.CC != arm.CCAL || d.Conditional() || !d.Writeback {
		t.Fatalf("bad flags %+v", d)
	}
	ops := d.Operands()
	if len(ops) != 2 || ops[0].Type != arm.OpReg || ops[1].Type != arm.OpMem {
		t.Fatalf("bad operands %+v", ops)
	}
	reg := ops[0].Data().(arm.RegOp)
	if name, _ := e.RegName(uint(reg.Reg)); name != "lr" {
		t.Fatalf("operand 0 is %s", name)
	}
	mem := ops[1].Data().(arm.Mem)
	if name, _ := e.RegName(uint(mem.Base)); name != "sp" {
		t.Fatalf("operand 1 base is %s", name)
	}
}

func TestPPCDetail(t *testing.T) {
	// lwz r1, 0(r31)
	e := newEngine(t, Config{Arch: ArchPPC, Mode: Mode32 | ModeBigEndian, Detail: true})
	b, err := e.Disasm(decodeHex(t, "803f0000"), 0x1000, 0)
	if err != nil {
		t.Fatal(err)
	}
	defer b.Close()
	in := b.At(0)
	if in.Mnemonic() != "lwz" || in.Size() != 4 {
		t.Fatalf("got %s size %d", in.Mnemonic(), in.Size())
	}
	if _, ok := in.Detail().Arm(); ok {
		t.Fatal("arm projection of a ppc detail")
	}
	d, ok := in.Detail().PPC()
	if !ok {
		t.Fatal("missing ppc detail")
	}
	ops := d.Operands()
	if len(ops) != 2 {
		t.Fatalf("lwz has %d operands", len(ops))
	}
	reg, ok := ops[0].Data().(ppc.RegOp)
	if !ok {
		t.Fatalf("operand 0 is %v", ops[0].Data())
	}
	if name, _ := e.RegName(uint(reg.Reg)); name != "r1" {
		t.Fatalf("operand 0 is %s", name)
	}
	mem, ok := ops[1].Data().(ppc.Mem)
	if !ok {
		t.Fatalf("operand 1 is %v", ops[1].Data())
	}
	if name, _ := e.RegName(uint(mem.Base)); name != "r31" || mem.Disp != 0 {
		t.Fatalf("bad memory operand %v", mem)
	}
}
