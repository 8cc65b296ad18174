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

import (
	"github.com/corvidchess/corvid/assert"
	"github.com/corvidchess/corvid/internal/chess"
)

// RatedMove pairs a move with the score it was found to produce.
type RatedMove struct {
	Move  chess.Move
	Score Value
}

// Mark applies Mark to the move's score, used when a RatedMove recovered
// from the transposition table needs its mate distance corrected for the
// ply it is being read back at.
func (r RatedMove) Mark() RatedMove {
	return RatedMove{Move: r.Move, Score: Mark(r.Score)}
}

// BestMoves is a bounded, insertion-sorted container of the top three
// distinct moves found at a node, highest score first. It never holds
// the same move twice: pushing a move already present updates its score
// in place, keeping the list a clean multi-PV-free top-3 without a
// separate dedup pass.
type BestMoves struct {
	moves [3]RatedMove
	n     int
}

// Push inserts rm, keeping the container sorted by descending score and
// capped at three entries. The caller is responsible for only pushing a
// given move once per node; Push asserts that disjointness in debug
// builds and falls back to an in-place score update in release builds
// rather than inserting a duplicate.
func (b *BestMoves) Push(rm RatedMove) {
	for i := 0; i < b.n; i++ {
		if b.moves[i].Move == rm.Move {
			if assert.DEBUG {
				assert.Assert(false, "BestMoves.Push: move %v already present, caller must push disjoint moves", rm.Move)
			}
			b.moves[i].Score = rm.Score
			b.resort()
			return
		}
	}
	if b.n < len(b.moves) {
		b.moves[b.n] = rm
		b.n++
		b.resort()
		return
	}
	if rm.Score > b.moves[b.n-1].Score {
		b.moves[b.n-1] = rm
		b.resort()
	}
}

func (b *BestMoves) resort() {
	for i := 1; i < b.n; i++ {
		tmp := b.moves[i]
		j := i
		for j > 0 && b.moves[j-1].Score < tmp.Score {
			b.moves[j] = b.moves[j-1]
			j--
		}
		b.moves[j] = tmp
	}
}

// Peek returns the best move without removing it. ok is false when empty.
func (b *BestMoves) Peek() (RatedMove, bool) {
	if b.n == 0 {
		return RatedMove{}, false
	}
	return b.moves[0], true
}

// Pop removes and returns the best move. ok is false when empty.
func (b *BestMoves) Pop() (RatedMove, bool) {
	rm, ok := b.Peek()
	if !ok {
		return rm, false
	}
	for i := 1; i < b.n; i++ {
		b.moves[i-1] = b.moves[i]
	}
	b.n--
	return rm, true
}

// Score returns the current best score, or -Mate when empty.
func (b *BestMoves) Score() Value {
	if b.n == 0 {
		return -Mate
	}
	return b.moves[0].Score
}

// Len returns how many moves are currently stored (0..3).
func (b *BestMoves) Len() int {
	return b.n
}

// Contains reports whether m is already stored.
func (b *BestMoves) Contains(m chess.Move) bool {
	for i := 0; i < b.n; i++ {
		if b.moves[i].Move == m {
			return true
		}
	}
	return false
}

// At returns the i-th best move (0 is best). Panics if i is out of range.
func (b *BestMoves) At(i int) RatedMove {
	if i < 0 || i >= b.n {
		panic("BestMoves: index out of range")
	}
	return b.moves[i]
}
