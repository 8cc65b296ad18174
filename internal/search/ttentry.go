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

import "github.com/corvidchess/corvid/internal/chess"

// NodeKind tags what a TTableEntry's score actually means relative to
// the window it was computed with.
type NodeKind uint8

const (
	// NoNode marks an unused slot.
	NoNode NodeKind = iota
	// ExactNode stores an exact score: the search completed inside the
	// window without failing high or low.
	ExactNode
	// LowerNode stores a fail-high: the true score is at least Score
	// (a beta cutoff occurred).
	LowerNode
	// UpperNode stores a fail-low: the true score is at most Score (no
	// move raised alpha).
	UpperNode
	// LeafNode stores a quiescence-search result: it carries no move,
	// does not seed move ordering, and is shallower than any real
	// search depth.
	LeafNode
	// EdgeNode stores a terminal position (checkmate or stalemate) or a
	// declared draw (repetition or fifty-move rule): its score is final
	// at any depth.
	EdgeNode
)

// kindRank totally orders node kinds for TT replacement: Edge beats
// Exact beats Leaf beats Lower beats Upper, regardless of depth - the
// fixed Open Question decision recorded in DESIGN.md (Exact outranking
// a deeper Leaf was the part of this order that was actually in
// question; the rest follows the §3 ordering directly).
var kindRank = map[NodeKind]int{
	NoNode:    -1,
	UpperNode: 0,
	LowerNode: 1,
	LeafNode:  2,
	ExactNode: 3,
	EdgeNode:  4,
}

// TTableEntry is a transposition table slot. Moves carries the node's
// top replies (best first); Score mirrors Moves' best score so a Probe
// never needs to reach into Moves just to compare against a window.
type TTableEntry struct {
	Key        uint64
	Moves      BestMoves
	Score      Value
	Depth      Depth
	Kind       NodeKind
	Generation uint8
}

// Move returns the entry's single best reply, or chess.MoveNone if it
// carries none (possible for a Leaf entry written from quiescence).
func (e TTableEntry) Move() chess.Move {
	if rm, ok := e.Moves.Peek(); ok {
		return rm.Move
	}
	return chess.MoveNone
}

// IsEdge reports whether the entry is a terminal or draw edge entry.
func (e TTableEntry) IsEdge() bool {
	return e.Kind == EdgeNode
}

// Supersedes reports whether the entry already stored in a slot
// outranks candidate, given the table's current search generation, and
// so should be kept instead of overwritten. Entries from an older
// generation are always replaceable. Among same-generation entries the
// §3 ordering applies: kind rank first, then depth, then score as a
// final tie-break.
func (existing TTableEntry) Supersedes(candidate TTableEntry, currentGeneration uint8) bool {
	if existing.Kind == NoNode {
		return false
	}
	if existing.Generation != currentGeneration {
		return false
	}
	er, cr := kindRank[existing.Kind], kindRank[candidate.Kind]
	if er != cr {
		return er > cr
	}
	if existing.Depth != candidate.Depth {
		return existing.Depth > candidate.Depth
	}
	return existing.Score >= candidate.Score
}

// Probe classifies how this entry interacts with window w, mirroring
// the teacher's own TT-value-to-cutoff logic: an Exact entry is always
// usable, a Lower entry can cause a beta cutoff if its score already
// meets beta, and an Upper entry can cause an alpha cutoff if its score
// already falls below alpha.
func (e TTableEntry) Probe(w AlphaBeta) (Value, bool) {
	switch e.Kind {
	case ExactNode:
		return e.Score, true
	case LowerNode:
		if e.Score >= w.Beta {
			return e.Score, true
		}
	case UpperNode:
		if e.Score <= w.Alpha {
			return e.Score, true
		}
	}
	return ValueNone, false
}
