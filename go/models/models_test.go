package models

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shibukawa/configdir"

	"github.com/lunixbochs/safecs/go/cs"
)

type testIns struct {
	addr  uint64
	raw   []byte
	mn    string
	opstr string
}

func (t testIns) Addr() uint64     { return t.addr }
func (t testIns) Bytes() []byte    { return t.raw }
func (t testIns) Mnemonic() string { return t.mn }
func (t testIns) OpStr() string    { return t.opstr }

var listing = []Ins{
	testIns{0x1000, []byte{0x55}, "push", "rbp"},
	testIns{0x1001, []byte{0x48, 0x8b, 0x05, 0xb8, 0x13, 0x00, 0x00}, "mov", "rax, qword ptr [rip + 0x13b8]"},
	testIns{0x1008, []byte{0xc3}, "ret", ""},
}

func TestListing(t *testing.T) {
	lines := Listing{Bytes: true}.Lines(listing)
	want := []string{
		"0x1000:             55 push rbp",
		"0x1001: 488b05b8130000 mov  rax, qword ptr [rip + 0x13b8]",
		"0x1008:             c3 ret",
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d:\n got %q\nwant %q", i, lines[i], want[i])
		}
	}
	plain := Listing{}.Format(listing[:1])
	if plain != "0x1000: push rbp" {
		t.Fatalf("got %q", plain)
	}
	colored := Listing{Color: true}.Format(listing[:1])
	if !strings.Contains(colored, "\x1b[") || !strings.Contains(colored, "push") {
		t.Fatalf("no color in %q", colored)
	}
}

func TestRepr(t *testing.T) {
	if got := Repr([]byte("ab\x00"), 0); got != `"ab\x00"` {
		t.Fatalf("got %s", got)
	}
	if got := Repr([]byte("abcdefgh"), 6); got != `"abc"...` {
		t.Fatalf("got %s", got)
	}
}

func TestDiscache(t *testing.T) {
	d := NewDiscache()
	mem := []byte{0x55}
	d.Put(0x1000, mem, listing[:1])
	mem[0] = 0x90
	if d.Get(0x1000, mem) != nil {
		t.Fatal("cache hit after the input changed")
	}
	ent := d.Get(0x1000, []byte{0x55})
	if ent == nil || len(ent.Dis) != 1 || ent.Dis[0].Mnemonic() != "push" {
		t.Fatal("cache miss for stored bytes")
	}
	if d.Get(0x2000, []byte{0x55}) != nil {
		t.Fatal("cache hit at another address")
	}
	if hits, misses := d.Stats(); hits != 1 || misses != 2 {
		t.Fatalf("stats %d/%d", hits, misses)
	}
	d.Reset()
	if d.Len() != 0 {
		t.Fatal("reset kept entries")
	}
}

func testDirs(t *testing.T) configdir.ConfigDir {
	dirs := configdir.New("safecs", "test")
	dirs.LocalPath = t.TempDir()
	return dirs
}

func TestLoadConfig(t *testing.T) {
	dirs := testDirs(t)
	c, err := LoadConfig(dirs)
	if err != nil {
		t.Fatal(err)
	}
	if *c != *DefaultConfig() {
		t.Fatalf("missing file should give defaults, got %+v", c)
	}
	data := `{"arch": "arm", "detail": true, "syntax": "att", "count": 4}`
	if err := os.WriteFile(filepath.Join(dirs.LocalPath, ConfigFile), []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	c, err = LoadConfig(dirs)
	if err != nil {
		t.Fatal(err)
	}
	if c.Arch != "arm" || !c.Detail || c.Count != 4 || c.Syntax != "att" || !c.Bytes || c.Base != 0x1000 {
		t.Fatalf("bad config %+v", c)
	}
}

func TestSaveConfig(t *testing.T) {
	dirs := testDirs(t)
	c := DefaultConfig()
	c.Skipdata = true
	if err := c.Save(dirs); err != nil {
		t.Fatal(err)
	}
	loaded, err := LoadConfig(dirs)
	if err != nil {
		t.Fatal(err)
	}
	if *loaded != *c {
		t.Fatalf("got %+v, want %+v", loaded, c)
	}
}

func TestConfigColor(t *testing.T) {
	dirs := testDirs(t)
	c := DefaultConfig()
	if c.UseColor(false) || !c.UseColor(true) {
		t.Fatal("unset color should follow the terminal")
	}
	off := false
	c.Color = &off
	if err := c.Save(dirs); err != nil {
		t.Fatal(err)
	}
	loaded, err := LoadConfig(dirs)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Color == nil || loaded.UseColor(true) {
		t.Fatalf("color: false lost on reload: %v", loaded.Color)
	}
}

func TestBadConfig(t *testing.T) {
	dirs := testDirs(t)
	if err := os.WriteFile(filepath.Join(dirs.LocalPath, ConfigFile), []byte("{"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(dirs); err == nil {
		t.Fatal("loaded a broken config")
	}
}

func TestConfigEngine(t *testing.T) {
	arch := &Arch{Name: "x86_64", Bits: 64, CS_ARCH: cs.ArchX86, CS_MODE: cs.Mode64}
	c := DefaultConfig()
	c.Detail = true
	c.Syntax = "intel"
	ec, err := c.Engine(arch)
	if err != nil {
		t.Fatal(err)
	}
	if ec.Arch != cs.ArchX86 || ec.Mode != cs.Mode64 || !ec.Detail || ec.Syntax != cs.SyntaxIntel {
		t.Fatalf("bad engine config %+v", ec)
	}
	c.Syntax = "gas"
	if _, err := c.Engine(arch); err == nil {
		t.Fatal("accepted unknown syntax")
	}
	if !arch.Detailed() {
		t.Fatal("x86 should be detailed")
	}
}

func TestParseHex(t *testing.T) {
	for _, in := range []string{"55488b", "55 48 8b", `\x55\x48\x8b`, "0x55, 0x48, 0x8b", " 55\t48\n8b "} {
		code, err := ParseHex(in)
		if err != nil {
			t.Fatalf("%q: %v", in, err)
		}
		if string(code) != "\x55\x48\x8b" {
			t.Fatalf("%q decoded to %x", in, code)
		}
	}
	if _, err := ParseHex("5"); err == nil {
		t.Fatal("decoded an odd digit count")
	}
}

func TestPrintFlags(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.String("arch", "x86_64", "architecture")
	fs.Bool("detail", false, strings.Repeat("long description ", 8))
	var flags []*flag.Flag
	fs.VisitAll(func(f *flag.Flag) { flags = append(flags, f) })
	var buf bytes.Buffer
	PrintFlags(&buf, flags)
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if !strings.HasPrefix(lines[0], "  -arch   (x86_64) architecture") {
		t.Fatalf("bad first line %q", lines[0])
	}
	for _, l := range lines {
		if len(l) > 80 {
			t.Fatalf("line exceeds 80 columns: %q", l)
		}
	}
	if len(lines) < 3 {
		t.Fatalf("long usage was not wrapped: %q", buf.String())
	}
}
