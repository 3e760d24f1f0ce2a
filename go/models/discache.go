package models

import (
	"bytes"
	"sync"
)

type DiscacheEntry struct {
	Addr uint64
	Mem  []byte
	Dis  []Ins
}

// Discache remembers decoded instructions per address, keyed by the exact
// input bytes. Entries must hold owned instructions, never engine views.
type Discache struct {
	sync.RWMutex
	cache map[uint64]*DiscacheEntry

	hits, misses int
}

func NewDiscache() *Discache {
	return &Discache{cache: make(map[uint64]*DiscacheEntry)}
}

func (d *Discache) Get(addr uint64, mem []byte) *DiscacheEntry {
	d.Lock()
	defer d.Unlock()
	if ent, ok := d.cache[addr]; ok && bytes.Equal(mem, ent.Mem) {
		d.hits++
		return ent
	}
	d.misses++
	return nil
}

// Put stores a copy of mem so later writes by the caller don't change the key.
func (d *Discache) Put(addr uint64, mem []byte, dis []Ins) {
	d.Lock()
	d.cache[addr] = &DiscacheEntry{
		Addr: addr,
		Mem:  append([]byte(nil), mem...),
		Dis:  dis,
	}
	d.Unlock()
}

func (d *Discache) Len() int {
	d.RLock()
	defer d.RUnlock()
	return len(d.cache)
}

func (d *Discache) Stats() (hits, misses int) {
	d.RLock()
	defer d.RUnlock()
	return d.hits, d.misses
}

func (d *Discache) Reset() {
	d.Lock()
	d.cache = make(map[uint64]*DiscacheEntry)
	d.hits, d.misses = 0, 0
	d.Unlock()
}
