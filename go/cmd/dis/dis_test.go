package dis

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/shibukawa/configdir"

	"github.com/lunixbochs/safecs/go/cmd"
	"github.com/lunixbochs/safecs/go/cs"
)

// push rbp; mov rax, qword ptr [rip + 0x13b8]; ret
const code = "55488b05b8130000c3"

func runDis(t *testing.T, args ...string) string {
	c := cmd.NewDisCmd("dis")
	var out bytes.Buffer
	c.Out, c.Err = &out, io.Discard
	c.Dirs = configdir.New("safecs", "test")
	c.Dirs.LocalPath = t.TempDir()
	c.Terminal = false
	if err := c.Parse(append([]string{"dis"}, args...)); err != nil {
		t.Fatal(err)
	}
	if err := run(c); err != nil {
		t.Fatal(err)
	}
	return out.String()
}

func TestDis(t *testing.T) {
	lines := strings.Split(strings.TrimSpace(runDis(t, code)), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines:\n%s", len(lines), strings.Join(lines, "\n"))
	}
	if !strings.HasPrefix(lines[0], "0x1000:") || !strings.Contains(lines[0], "push") {
		t.Fatalf("bad first line %q", lines[0])
	}
	if !strings.HasPrefix(lines[2], "0x1008:") || !strings.Contains(lines[2], "ret") {
		t.Fatalf("bad last line %q", lines[2])
	}
}

func TestDisCount(t *testing.T) {
	out := strings.TrimSpace(runDis(t, "-count", "2", "-base", "0x400000", code))
	lines := strings.Split(out, "\n")
	if len(lines) != 2 || !strings.HasPrefix(lines[1], "0x400001:") {
		t.Fatalf("bad limited listing:\n%s", out)
	}
}

func TestDisJSON(t *testing.T) {
	sc := bufio.NewScanner(strings.NewReader(runDis(t, "-json", "-detail", code)))
	var got []cs.Instruction
	for sc.Scan() {
		var ins cs.Instruction
		if err := json.Unmarshal(sc.Bytes(), &ins); err != nil {
			t.Fatalf("bad json %q: %v", sc.Text(), err)
		}
		got = append(got, ins)
	}
	if len(got) != 3 {
		t.Fatalf("got %d objects", len(got))
	}
	if got[1].Address != 0x1001 || got[1].Mnemonic != "mov" || got[1].Size != 7 {
		t.Fatalf("bad instruction %+v", got[1])
	}
	if got[1].Detail == nil || got[1].Detail.X86 == nil {
		t.Fatal("missing detail in json")
	}
}
