package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/lunixbochs/safecs/go/arch/arm"
	"github.com/lunixbochs/safecs/go/arch/ppc"
	"github.com/lunixbochs/safecs/go/arch/x86"
	"github.com/lunixbochs/safecs/go/cs"
	"github.com/lunixbochs/safecs/go/models"
)

// Names resolves engine ids for display, falling back to the number.
type Names interface {
	RegName(reg uint) (string, bool)
	GroupName(g cs.Group) (string, bool)
}

func regName(n Names, reg uint) string {
	if name, ok := n.RegName(reg); ok {
		return name
	}
	return fmt.Sprintf("reg(%d)", reg)
}

func regList(n Names, regs []uint16) string {
	out := make([]string, len(regs))
	for i, r := range regs {
		out[i] = regName(n, uint(r))
	}
	return strings.Join(out, " ")
}

func groupList(n Names, groups []cs.Group) string {
	out := make([]string, len(groups))
	for i, g := range groups {
		if name, ok := n.GroupName(g); ok {
			out[i] = name
		} else {
			out[i] = fmt.Sprintf("group(%d)", g)
		}
	}
	return strings.Join(out, " ")
}

// PrintDetail writes the detail block of ins, indented under its listing line.
func PrintDetail(w io.Writer, n Names, ins cs.Instruction) {
	d := ins.Detail
	if d == nil {
		if ins.ID == 0 {
			fmt.Fprintf(w, "    data: %s\n", models.Repr(ins.Bytes, 0))
		}
		return
	}
	if len(d.Groups) > 0 {
		fmt.Fprintf(w, "    groups: %s\n", groupList(n, d.Groups))
	}
	if len(d.RegsRead) > 0 {
		fmt.Fprintf(w, "    reads: %s\n", regList(n, d.RegsRead))
	}
	if len(d.RegsWritten) > 0 {
		fmt.Fprintf(w, "    writes: %s\n", regList(n, d.RegsWritten))
	}
	var ops []string
	switch {
	case d.X86 != nil:
		for _, op := range d.X86.Operands() {
			ops = append(ops, x86Op(n, op))
		}
		if d.X86.Eflags != 0 {
			fmt.Fprintf(w, "    eflags: %#x\n", uint64(d.X86.Eflags))
		}
	case d.Arm != nil:
		for _, op := range d.Arm.Operands() {
			ops = append(ops, armOp(n, op))
		}
		if d.Arm.Conditional() {
			fmt.Fprintf(w, "    cc: %s\n", d.Arm.CC)
		}
		if d.Arm.Writeback {
			fmt.Fprintf(w, "    writeback\n")
		}
	case d.PPC != nil:
		for _, op := range d.PPC.Operands() {
			ops = append(ops, ppcOp(n, op))
		}
		if d.PPC.BC != 0 {
			fmt.Fprintf(w, "    bc: %s\n", d.PPC.BC)
		}
	}
	for i, op := range ops {
		fmt.Fprintf(w, "    op%d: %s\n", i, op)
	}
}

func memString(n Names, base, index uint, scale int64, disp int64) string {
	var parts []string
	if base != 0 {
		parts = append(parts, regName(n, base))
	}
	if index != 0 {
		parts = append(parts, fmt.Sprintf("%s*%d", regName(n, index), scale))
	}
	if disp != 0 || len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("%#x", disp))
	}
	return "mem [" + strings.Join(parts, " + ") + "]"
}

func x86Op(n Names, op x86.Operand) string {
	var s string
	switch v := op.Data().(type) {
	case x86.RegOp:
		s = "reg " + regName(n, uint(v.Reg))
	case x86.Imm:
		s = fmt.Sprintf("imm %#x", v.Value)
	case x86.Mem:
		s = memString(n, uint(v.Base), uint(v.Index), int64(v.Scale), v.Disp)
		if v.Segment != 0 {
			s = regName(n, uint(v.Segment)) + ":" + s
		}
	default:
		s = fmt.Sprint(v)
	}
	s += fmt.Sprintf(" size=%d", op.Size)
	if op.Access != 0 {
		s += " " + op.Access.String()
	}
	return s
}

func armOp(n Names, op arm.Operand) string {
	var s string
	switch v := op.Data().(type) {
	case arm.RegOp:
		s = "reg " + regName(n, uint(v.Reg))
	case arm.Imm:
		s = fmt.Sprintf("imm %#x", v.Value)
	case arm.Mem:
		s = memString(n, uint(v.Base), uint(v.Index), int64(v.Scale), int64(v.Disp))
		if v.LShift != 0 {
			s += fmt.Sprintf(" lsl %d", v.LShift)
		}
	default:
		s = fmt.Sprint(v)
	}
	if op.Shift.Type != arm.ShiftInvalid {
		if op.Shift.Type.ByReg() {
			s += fmt.Sprintf(" %s %s", op.Shift.Type, regName(n, uint(op.Shift.Value)))
		} else {
			s += fmt.Sprintf(" %s #%d", op.Shift.Type, op.Shift.Value)
		}
	}
	if op.Subtracted {
		s += " subtracted"
	}
	return s
}

func ppcOp(n Names, op ppc.Operand) string {
	switch v := op.Data().(type) {
	case ppc.RegOp:
		return "reg " + regName(n, uint(v.Reg))
	case ppc.Imm:
		return fmt.Sprintf("imm %#x", v.Value)
	case ppc.Mem:
		return memString(n, uint(v.Base), 0, 0, int64(v.Disp))
	case ppc.Crx:
		return fmt.Sprintf("crx %s scale=%d cond=%s", regName(n, uint(v.Reg)), v.Scale, v.Cond)
	default:
		return fmt.Sprint(v)
	}
}
