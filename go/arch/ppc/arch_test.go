package ppc

import (
	"math/rand"
	"testing"

	"github.com/lunixbochs/safecs/go/arch/payload"
	"github.com/lunixbochs/struc"
)

func TestOperandData(t *testing.T) {
	b := make([]byte, PayloadSize)
	payload.Order.PutUint32(b, 3)
	if d := (Operand{Type: OpReg, Payload: b}).Data(); d != (RegOp{3}) {
		t.Fatalf("reg decoded to %#v", d)
	}

	imm := make([]byte, PayloadSize)
	payload.Order.PutUint64(imm, uint64(0xffffffffffff8000))
	if v, ok := (Operand{Type: OpImm, Payload: imm}).Imm(); !ok || v != -0x8000 {
		t.Fatalf("imm decoded to %d, %v", v, ok)
	}

	mem, err := payload.Put(&rawMem{Base: 2, Disp: -16})
	if err != nil {
		t.Fatal(err)
	}
	if m, ok := (Operand{Type: OpMem, Payload: mem}).Mem(); !ok || m != (Mem{Base: 2, Disp: -16}) {
		t.Fatalf("mem decoded to %+v, %v", m, ok)
	}

	crx, err := payload.Put(&rawCrx{Scale: 4, Reg: 7, Cond: uint32(BCEQ)})
	if err != nil {
		t.Fatal(err)
	}
	d := (Operand{Type: OpCrx, Payload: crx}).Data()
	if d != (Crx{Scale: 4, Reg: 7, Cond: BCEQ}) {
		t.Fatalf("crx decoded to %#v", d)
	}
	if _, ok := (Operand{Type: OpCrx, Payload: crx[:8]}).Data().(Other); !ok {
		t.Fatal("short crx payload did not decode to Other")
	}
}

func TestOperandDataNeverPanics(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 4000; i++ {
		b := make([]byte, r.Intn(PayloadSize+1))
		r.Read(b)
		op := Operand{Type: OpType(r.Intn(70)), Payload: b}
		d := op.Data()
		if d == nil {
			t.Fatal("Data() returned nil")
		}
		switch op.Type {
		case OpReg, OpImm, OpMem, OpCrx:
		default:
			if _, ok := d.(Other); !ok {
				t.Fatalf("tag %d decoded to %#v", op.Type, d)
			}
		}
	}
}

func TestBranchCode(t *testing.T) {
	if BCLT != 12 || BCEQ != 76 || BCNE != 68 || BCGE != 4 {
		t.Fatal("branch code values drifted")
	}
	if BCNE.String() != "ne" || BranchCode(1).String() != "bc(1)" {
		t.Fatal("bad branch code names")
	}
	d := &Detail{OpCount: 3, Ops: []Operand{{Type: OpCrx}, {Type: OpImm}}}
	if len(d.Operands()) != 2 || d.OpCountType(OpCrx) != 1 {
		t.Fatal("Operands() not clamped to the backing array")
	}
}

func TestLayout(t *testing.T) {
	for _, c := range []struct {
		v    interface{}
		want int
	}{{&rawMem{}, MemSize}, {&rawCrx{}, CrxSize}} {
		n, err := struc.Sizeof(c.v)
		if err != nil {
			t.Fatal(err)
		}
		if n != c.want || n > PayloadSize {
			t.Fatalf("%T is %d bytes, want %d within a %d byte payload", c.v, n, c.want, PayloadSize)
		}
	}
}
