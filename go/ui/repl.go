package ui

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pkg/errors"
	"github.com/shibukawa/configdir"

	"github.com/lunixbochs/safecs/go/cpu"
	"github.com/lunixbochs/safecs/go/models"
)

// Repl reads one line of hex per entry and prints its disassembly. The
// address advances past the decoded bytes. A trailing backslash continues
// the entry on the next line.
//
// Commands: ".base <addr>" moves the address, ".cache" prints cache stats.
type Repl struct {
	dis     *cpu.Capstone
	listing models.Listing
	addr    uint64
	rl      *readline.Instance

	multiline bool
	lines     []string
}

func NewRepl(dis *cpu.Capstone, base uint64, listing models.Listing) *Repl {
	return &Repl{dis: dis, listing: listing, addr: base}
}

func historyPath() string {
	configDirs := configdir.New("safecs", "repl")
	cacheDir := configDirs.QueryCacheFolder()
	if err := cacheDir.MkdirAll(); err != nil {
		return ""
	}
	return filepath.Join(cacheDir.Path, "history")
}

func (r *Repl) Addr() uint64 { return r.addr }

// Exec handles one complete entry and returns the text to print.
func (r *Repl) Exec(line string) (string, error) {
	line = strings.TrimSpace(line)
	switch {
	case line == "":
		return "", nil
	case strings.HasPrefix(line, ".base"):
		arg := strings.TrimSpace(strings.TrimPrefix(line, ".base"))
		addr, err := strconv.ParseUint(arg, 0, 64)
		if err != nil {
			return "", errors.Wrapf(err, "bad address %q", arg)
		}
		r.addr = addr
		return "", nil
	case line == ".cache":
		cache := r.dis.Cache()
		if cache == nil {
			return "cache empty", nil
		}
		hits, misses := cache.Stats()
		return fmt.Sprintf("%d entries, %d hits, %d misses", cache.Len(), hits, misses), nil
	}
	code, err := models.ParseHex(line)
	if err != nil {
		return "", err
	}
	dis, err := r.dis.Dis(code, r.addr)
	if err != nil {
		return "", err
	}
	for _, ins := range dis {
		r.addr += uint64(len(ins.Bytes()))
	}
	return r.listing.Format(dis), nil
}

func (r *Repl) setPrompt() {
	if r.multiline {
		r.rl.SetPrompt("... ")
	} else {
		r.rl.SetPrompt(fmt.Sprintf("%#x> ", r.addr))
	}
}

func (r *Repl) Reset() {
	r.lines = nil
	r.multiline = false
	r.setPrompt()
}

// Run reads entries until EOF or an interrupt on an empty line.
func (r *Repl) Run() error {
	rl, err := readline.NewEx(&readline.Config{
		InterruptPrompt: "\n",
		HistoryFile:     historyPath(),
	})
	if err != nil {
		return errors.Wrap(err, "failed to start readline")
	}
	r.rl = rl
	defer rl.Close()
	r.Reset()
	out := rl.Stdout()
	for {
		ln := rl.Line()
		if ln.Error == readline.ErrInterrupt {
			if len(ln.Line) == 0 && !r.multiline {
				return nil
			}
			r.Reset()
			continue
		} else if ln.CanContinue() {
			continue
		} else if ln.CanBreak() {
			return nil
		}
		if strings.HasSuffix(ln.Line, `\`) {
			r.lines = append(r.lines, strings.TrimSuffix(ln.Line, `\`))
			r.multiline = true
			r.setPrompt()
			continue
		}
		entry := strings.Join(append(r.lines, ln.Line), " ")
		r.lines = nil
		r.multiline = false
		r.print(out, entry)
		r.setPrompt()
	}
}

func (r *Repl) print(out io.Writer, entry string) {
	text, err := r.Exec(entry)
	if err != nil {
		fmt.Fprintf(out, "error: %s\n", err)
		return
	}
	if text != "" {
		fmt.Fprintln(out, text)
	}
}
