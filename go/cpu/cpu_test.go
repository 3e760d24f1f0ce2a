package cpu

import (
	"encoding/hex"
	"testing"

	capstr "github.com/lunixbochs/capstr"

	"github.com/lunixbochs/safecs/go/cs"
	"github.com/lunixbochs/safecs/go/models"
)

// bl #0xfbc; str lr, [sp, #-4]!
var armHex = "edffffeb04e02de5"

var arm = &models.Arch{Name: "arm", Bits: 32, CS_ARCH: cs.ArchARM, CS_MODE: cs.ModeARM}

func decodeHex(t *testing.T, s string) []byte {
	code, err := hex.DecodeString(s)
	if err != nil {
		t.Fatal(err)
	}
	return code
}

func TestCapstoneDis(t *testing.T) {
	c := NewCapstone(arm, true, false, cs.SyntaxDefault)
	defer c.Close()
	code := decodeHex(t, armHex)
	dis, err := c.Dis(code, 0x1000)
	if err != nil {
		t.Fatal(err)
	}
	if len(dis) != 2 || dis[0].Mnemonic() != "bl" || dis[1].Addr() != 0x1004 {
		t.Fatalf("bad listing %v", dis)
	}
	ins, ok := Owned(dis[1])
	if !ok || ins.Detail == nil || ins.Detail.Arm == nil {
		t.Fatal("missing arm detail")
	}
	again, err := c.Dis(code, 0x1000)
	if err != nil {
		t.Fatal(err)
	}
	if hits, _ := c.Cache().Stats(); hits != 1 {
		t.Fatalf("%d cache hits", hits)
	}
	dis[0], again[1] = nil, nil
	third, err := c.Dis(code, 0x1000)
	if err != nil {
		t.Fatal(err)
	}
	if len(third) != 2 || third[0] == nil || third[1] == nil || third[0].Mnemonic() != "bl" {
		t.Fatalf("cached listing changed by a caller: %v", third)
	}

	one, err := c.DisCount(code, 0x1000, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(one) != 1 {
		t.Fatalf("count 1 decoded %d", len(one))
	}
}

func TestCapstoneWalk(t *testing.T) {
	c := NewCapstone(arm, false, false, cs.SyntaxDefault)
	defer c.Close()
	var mnems []string
	err := c.Walk(decodeHex(t, armHex), 0x1000, func(in *cs.Insn) bool {
		mnems = append(mnems, in.Mnemonic())
		return true
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(mnems) != 2 || mnems[1] != "str" {
		t.Fatalf("walked %v", mnems)
	}
	if err := c.Close(); err != nil {
		t.Fatal(err)
	}
	if err := c.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestCapstoneOpenError(t *testing.T) {
	c := &Capstone{Arch: cs.Arch(99)}
	if _, err := c.Dis([]byte{0}, 0); err == nil {
		t.Fatal("opened an unknown arch")
	}
}

func TestCrossCheck(t *testing.T) {
	a := NewCapstone(arm, false, false, cs.SyntaxDefault)
	defer a.Close()
	b := &Capstr{Arch: capstr.ARCH_ARM, Mode: capstr.MODE_ARM}
	if err := CrossCheck(a, b, decodeHex(t, armHex), 0x1000); err != nil {
		t.Fatal(err)
	}
	if err := CrossCheck(a, NewCapstr(arm), decodeHex(t, armHex), 0x2000); err != nil {
		t.Fatal(err)
	}
}
