package cs

import (
	"reflect"
	"testing"
)

func TestWalkMatchesDisasm(t *testing.T) {
	code := decodeHex(t, x86Hex+"c3"+"4889e5")
	e := newEngine(t, Config{Arch: ArchX86, Mode: Mode64, Detail: true})
	batch, err := e.DisasmCopy(code, 0x1000, 0)
	if err != nil {
		t.Fatal(err)
	}
	walked, err := e.WalkCopy(code, 0x1000, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(batch, walked) {
		t.Fatalf("walk differs from batch:\n%+v\n%+v", walked, batch)
	}
}

func TestWalkEarlyStop(t *testing.T) {
	before := snapshot()
	e := openEngine(t, Config{Arch: ArchX86, Mode: Mode64, Detail: true})
	visits := 0
	err := e.Walk(decodeHex(t, x86Hex), 0x1000, func(in *Insn) bool {
		visits++
		return false
	})
	if err != nil {
		t.Fatal(err)
	}
	if visits != 1 {
		t.Fatalf("visited %d times after stopping", visits)
	}
	e.Close()
	expectBlocks(t, before)

	e = newEngine(t, Config{Arch: ArchX86, Mode: Mode64})

	out, err := e.WalkCopy(decodeHex(t, x86Hex), 0x1000, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 || out[0].Address != 0x1000 {
		t.Fatalf("bad limited walk %+v", out)
	}
}

func TestWalkStaleView(t *testing.T) {
	e := newEngine(t, Config{Arch: ArchX86, Mode: Mode64, Detail: true})
	var first *Insn
	var firstDetail *Detail
	err := e.Walk(decodeHex(t, x86Hex), 0x1000, func(in *Insn) bool {
		if first == nil {
			first, firstDetail = in, in.Detail()
			return true
		}
		if first.Valid() || first.Address() != 0 || firstDetail.RegsWritten() != nil {
			t.Error("previous view still reads after the slot moved on")
		}
		if in.Address() != 0x1001 {
			t.Errorf("bad address %#x", in.Address())
		}
		return true
	})
	if err != nil {
		t.Fatal(err)
	}
	if first.Valid() || first.Mnemonic() != "" {
		t.Fatal("view still reads after Walk returned")
	}
}

func TestWalkPanic(t *testing.T) {
	before := snapshot()
	e := openEngine(t, Config{Arch: ArchX86, Mode: Mode64, Detail: true})
	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("panic was swallowed")
			}
		}()
		e.Walk(decodeHex(t, x86Hex), 0, func(*Insn) bool {
			panic("visit")
		})
	}()
	if err := e.SetDetail(false); err != nil {
		t.Fatalf("engine stuck after panic: %v", err)
	}
	e.Close()
	expectBlocks(t, before)
}

func TestWalkOptionsLocked(t *testing.T) {
	e := newEngine(t, Config{Arch: ArchX86, Mode: Mode64})
	err := e.Walk(decodeHex(t, x86Hex), 0, func(*Insn) bool {
		if err := e.SetDetail(true); err != ErrBusy {
			t.Errorf("SetDetail inside Walk: %v", err)
		}
		return true
	})
	if err != nil {
		t.Fatal(err)
	}
	if e.Detail() {
		t.Fatal("detail changed during Walk")
	}
}

func TestWalkCloseInside(t *testing.T) {
	before := snapshot()
	e := openEngine(t, Config{Arch: ArchX86, Mode: Mode64, Detail: true})
	visits := 0
	err := e.Walk(decodeHex(t, x86Hex), 0, func(*Insn) bool {
		visits++
		e.Close()
		return true
	})
	if err != nil {
		t.Fatal(err)
	}
	if visits != 1 {
		t.Fatalf("walk continued on a closed engine: %d visits", visits)
	}
	expectBlocks(t, before)
}

func TestWalkEmpty(t *testing.T) {
	before := snapshot()
	e := openEngine(t, Config{Arch: ArchX86, Mode: Mode64})
	err := e.Walk(nil, 0, func(*Insn) bool {
		t.Fatal("visited an empty input")
		return true
	})
	if err != nil {
		t.Fatal(err)
	}
	e.Close()
	expectBlocks(t, before)
}

func TestWalkSkipdata(t *testing.T) {
	e := newEngine(t, Config{Arch: ArchX86, Mode: Mode64, Detail: true, Skipdata: true})
	var ids []uint
	err := e.Walk(decodeHex(t, "55488b"), 0, func(in *Insn) bool {
		ids = append(ids, in.ID())
		if in.IsSkipData() && in.Detail() != nil {
			t.Error("data record with detail")
		}
		return true
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(ids) < 2 || ids[0] == 0 || ids[len(ids)-1] != 0 {
		t.Fatalf("bad ids %v", ids)
	}
}
