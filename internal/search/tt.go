/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package search

import "unsafe"

// ElementSize is the in-memory size of one primary-table slot, used by
// NewTtTable to turn a megabyte budget into a slot count the same way
// the teacher's own transpositiontable package sizes its array.
var ElementSize = int(unsafe.Sizeof(TTableEntry{}))

// TtTable is the transposition table: a primary bounded array cache
// indexed by the low bits of the Zobrist key, plus a small, separately
// managed PV-protection cache that keeps principal-variation nodes alive
// across generations so get_pv_line can always recover the PV even after
// the primary cache has overwritten the nodes that produced it. No
// ecosystem LRU library is used for either cache - see DESIGN.md.
type TtTable struct {
	table      []TTableEntry
	mask       uint64
	generation uint8

	pv      map[uint64]TTableEntry
	pvOrder []uint64
	pvCap   int

	probes, hits, stores uint64
}

// NewTtTable builds a table sized to approximately sizeMB megabytes,
// rounded down to the nearest power-of-two slot count, with a
// PV-protection cache capped at pvCap entries.
func NewTtTable(sizeMB, pvCap int) *TtTable {
	if sizeMB < 1 {
		sizeMB = 1
	}
	if pvCap < 1 {
		pvCap = 1
	}
	bytes := sizeMB * 1024 * 1024
	slots := bytes / ElementSize
	size := 1
	for size*2 <= slots {
		size *= 2
	}
	if size < 1 {
		size = 1
	}
	return &TtTable{
		table: make([]TTableEntry, size),
		mask:  uint64(size - 1),
		pv:    make(map[uint64]TTableEntry, pvCap),
		pvCap: pvCap,
	}
}

// NewGeneration advances the table's search generation, called once per
// root search so that same-slot entries from a prior search age out
// even if their depth would otherwise still look attractive.
func (t *TtTable) NewGeneration() {
	t.generation++
}

// Clear empties both caches.
func (t *TtTable) Clear() {
	for i := range t.table {
		t.table[i] = TTableEntry{}
	}
	t.pv = make(map[uint64]TTableEntry, t.pvCap)
	t.pvOrder = t.pvOrder[:0]
	t.generation = 0
}

func (t *TtTable) index(key uint64) uint64 {
	return key & t.mask
}

// Store inserts e into the primary cache, honouring the replacement
// order in TTableEntry.Supersedes.
func (t *TtTable) Store(e TTableEntry) {
	e.Generation = t.generation
	idx := t.index(e.Key)
	existing := t.table[idx]
	if existing.Supersedes(e, t.generation) {
		return
	}
	t.table[idx] = e
	t.stores++
}

// Probe looks up key in the primary cache. ok is false on a miss or a
// key collision (the slot holds a different position's entry).
func (t *TtTable) Probe(key uint64) (TTableEntry, bool) {
	t.probes++
	e := t.table[t.index(key)]
	if e.Kind == NoNode || e.Key != key {
		return TTableEntry{}, false
	}
	t.hits++
	return e, true
}

// StorePV mirrors e into the PV-protection cache, evicting the oldest
// entry (simple FIFO) when the cache is full. e's own Kind is kept as
// written by the main search - the PV cache is a second home for an
// entry, not a retagging of it - so a mirrored ExactNode is still read
// back as an ExactNode by ProbePV. This cache is never subject to the
// primary cache's generation aging: a PV node is worth remembering for
// exactly as long as it is still on the current principal variation,
// which get_pv_line enforces by only ever reading through it from the
// root.
func (t *TtTable) StorePV(e TTableEntry) {
	if _, exists := t.pv[e.Key]; !exists {
		if len(t.pvOrder) >= t.pvCap {
			oldest := t.pvOrder[0]
			t.pvOrder = t.pvOrder[1:]
			delete(t.pv, oldest)
		}
		t.pvOrder = append(t.pvOrder, e.Key)
	}
	t.pv[e.Key] = e
}

// ProbePV looks up key in the PV-protection cache.
func (t *TtTable) ProbePV(key uint64) (TTableEntry, bool) {
	e, ok := t.pv[key]
	return e, ok
}

// HashfullPermille estimates how full the primary cache is, in the
// UCI "info hashfull" per-mille scale, by sampling the first 1000 slots.
func (t *TtTable) HashfullPermille() int {
	n := len(t.table)
	if n == 0 {
		return 0
	}
	sample := n
	if sample > 1000 {
		sample = 1000
	}
	used := 0
	for i := 0; i < sample; i++ {
		if t.table[i].Kind != NoNode && t.table[i].Generation == t.generation {
			used++
		}
	}
	return used * 1000 / sample
}

// MemoryBytes returns the primary cache's approximate memory footprint.
func (t *TtTable) MemoryBytes() int {
	return len(t.table) * ElementSize
}

// Stats returns probe/hit/store counters for UCI diagnostics.
func (t *TtTable) Stats() (probes, hits, stores uint64) {
	return t.probes, t.hits, t.stores
}
