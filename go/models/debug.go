package models

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/mgutz/ansi"
)

var (
	addrColor = ansi.ColorCode("cyan")
	mnemColor = ansi.ColorCode("yellow+b")
	dataColor = ansi.ColorCode("black+h")
)

// Listing formats instructions one per line as
// "0x<addr>: <hex bytes> <mnemonic> <operands>".
type Listing struct {
	Bytes bool
	Color bool
	// Pad is the minimum width of the byte column, in bytes.
	Pad int
}

func (l Listing) colorize(s, color string) string {
	if !l.Color || s == "" {
		return s
	}
	return color + s + ansi.Reset
}

func (l Listing) Lines(ins []Ins) []string {
	width := l.Pad
	mnemWidth := 0
	for _, in := range ins {
		if n := len(in.Bytes()); n > width {
			width = n
		}
		if n := runewidth.StringWidth(in.Mnemonic()); n > mnemWidth {
			mnemWidth = n
		}
	}
	out := make([]string, 0, len(ins))
	for _, in := range ins {
		line := l.colorize(fmt.Sprintf("0x%x:", in.Addr()), addrColor)
		if l.Bytes {
			data := hex.EncodeToString(in.Bytes())
			line += " " + strings.Repeat(" ", (width-len(in.Bytes()))*2) + data
		}
		color := mnemColor
		if strings.HasPrefix(in.Mnemonic(), ".") {
			color = dataColor
		}
		mn := in.Mnemonic()
		if in.OpStr() != "" {
			mn = runewidth.FillRight(mn, mnemWidth)
		}
		line += " " + l.colorize(mn, color)
		if in.OpStr() != "" {
			line += " " + in.OpStr()
		}
		out = append(out, line)
	}
	return out
}

func (l Listing) Format(ins []Ins) string {
	return strings.Join(l.Lines(ins), "\n")
}

// Repr quotes p, escaping non-printable bytes and truncating to strsize.
func Repr(p []byte, strsize int) string {
	tmp := make([]string, len(p))
	for i, b := range p {
		if b >= 0x20 && b <= 0x7e {
			tmp[i] = string(b)
		} else {
			tmp[i] = fmt.Sprintf("\\x%02x", b)
		}
	}
	out := strings.Join(tmp, "")
	if strsize > 0 && len(out) > strsize {
		for i := len(tmp) - 1; len(out) > strsize-3; i-- {
			out = strings.Join(tmp[:i], "")
		}
		return "\"" + out + "\"..."
	}
	return "\"" + out + "\""
}
