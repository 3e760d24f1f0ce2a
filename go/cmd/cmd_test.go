package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/shibukawa/configdir"

	"github.com/lunixbochs/safecs/go/arch/payload"
	"github.com/lunixbochs/safecs/go/arch/x86"
	"github.com/lunixbochs/safecs/go/cs"
)

type fakeNames map[uint]string

func (f fakeNames) RegName(reg uint) (string, bool) {
	name, ok := f[reg]
	return name, ok
}

func (f fakeNames) GroupName(g cs.Group) (string, bool) {
	if g == cs.GroupJump {
		return "jump", true
	}
	return "", false
}

func TestPrintDetail(t *testing.T) {
	reg := make([]byte, x86.PayloadSize)
	payload.Order.PutUint32(reg, 35)
	mem, err := payload.Put(&struct {
		Segment, Base, Index uint32
		Scale                int32
		Disp                 int64
	}{0, 41, 0, 1, 0x13b8})
	if err != nil {
		t.Fatal(err)
	}
	ins := cs.Instruction{
		ID:       1,
		Mnemonic: "mov",
		Detail: &cs.Details{
			Groups:   []cs.Group{cs.GroupJump, 200},
			RegsRead: []uint16{7},
			X86: &x86.Detail{
				OpCount: 2,
				Ops: []x86.Operand{
					{Type: x86.OpReg, Payload: reg, Size: 8, Access: x86.AccessWrite},
					{Type: x86.OpMem, Payload: mem, Size: 8, Access: x86.AccessRead},
				},
			},
		},
	}
	var buf bytes.Buffer
	PrintDetail(&buf, fakeNames{35: "rax", 41: "rip"}, ins)
	want := []string{
		"    groups: jump group(200)",
		"    reads: reg(7)",
		"    op0: reg rax size=8 w",
		"    op1: mem [rip + 0x13b8] size=8 r",
	}
	out := buf.String()
	for _, w := range want {
		if !strings.Contains(out, w+"\n") {
			t.Fatalf("missing %q in:\n%s", w, out)
		}
	}
}

func TestPrintDetailData(t *testing.T) {
	var buf bytes.Buffer
	PrintDetail(&buf, fakeNames{}, cs.Instruction{Bytes: []byte{0x8b}, Mnemonic: ".byte"})
	if buf.String() != "    data: \"\\x8b\"\n" {
		t.Fatalf("got %q", buf.String())
	}
}

func TestPrintError(t *testing.T) {
	var buf bytes.Buffer
	PrintError(&buf, errors.Wrap(cs.ErrMem, "cs_malloc() failed"))
	out := buf.String()
	if !strings.Contains(out, "Error: cs_malloc() failed") || !strings.Contains(out, "Kind: resource exhaustion") {
		t.Fatalf("bad error output:\n%s", out)
	}
	if !strings.Contains(out, "TestPrintError()") {
		t.Fatalf("missing stack trace:\n%s", out)
	}
	buf.Reset()
	PrintError(&buf, fmt.Errorf("plain"))
	if strings.Count(buf.String(), "\n") != 2 {
		t.Fatalf("plain error printed a trace:\n%s", buf.String())
	}
}

func testCmd(t *testing.T, config string) *DisCmd {
	c := NewDisCmd("dis")
	c.Out, c.Err = io.Discard, io.Discard
	c.Dirs = configdir.New("safecs", "test")
	c.Dirs.LocalPath = t.TempDir()
	c.Terminal = true
	if config != "" {
		if err := os.WriteFile(filepath.Join(c.Dirs.LocalPath, "config.json"), []byte(config), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return c
}

func savedConfig(t *testing.T, c *DisCmd) string {
	data, err := os.ReadFile(filepath.Join(c.Dirs.LocalPath, "config.json"))
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestParseColor(t *testing.T) {
	c := testCmd(t, `{"color": false}`)
	if err := c.Parse([]string{"dis", "-save", "90"}); err != nil {
		t.Fatal(err)
	}
	if c.Listing().Color {
		t.Fatal("terminal overrode color: false from the config")
	}
	if saved := savedConfig(t, c); !strings.Contains(saved, `"color": false`) {
		t.Fatalf("saved config lost color: false:\n%s", saved)
	}

	c = testCmd(t, "")
	if err := c.Parse([]string{"dis", "-save", "90"}); err != nil {
		t.Fatal(err)
	}
	if !c.Listing().Color {
		t.Fatal("no color on a terminal")
	}
	if saved := savedConfig(t, c); strings.Contains(saved, "color") {
		t.Fatalf("saved the detected color:\n%s", saved)
	}

	c = testCmd(t, `{"color": false}`)
	if err := c.Parse([]string{"dis", "-color", "90"}); err != nil {
		t.Fatal(err)
	}
	if !c.Listing().Color {
		t.Fatal("-color did not override the config")
	}
}
