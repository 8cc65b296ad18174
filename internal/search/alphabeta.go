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
	"math"

	"github.com/corvidchess/corvid/internal/chess"
	"github.com/corvidchess/corvid/internal/config"
	"github.com/corvidchess/corvid/internal/logging"
)

var log = logging.GetLog("search")

// abSearch is the recursive negamax core. It returns the score from the
// side-to-move's point of view at ply, mate-distance corrected, and ok
// is false when the caller's deadline expired mid-search - in which
// case the score is meaningless and must be discarded, not promoted.
func (e *Engine) abSearch(pos *chess.Position, hist *BoardHistory, depth Depth, ply int, w AlphaBeta, isPV, doNull bool) (Value, bool) {
	log.Debugf("Ply %-2d Depth %-2d a:%-6d b:%-6d pv:%-5v start", ply, depth, w.Alpha, w.Beta, isPV)
	defer log.Debugf("Ply %-2d Depth %-2d a:%-6d b:%-6d pv:%-5v end", ply, depth, w.Alpha, w.Beta, isPV)

	if e.outOfTime() {
		return ValueNone, false
	}
	e.nodes++
	if ply > e.seldepth {
		e.seldepth = ply
	}

	key := pos.Key()
	if ply > 0 && (hist.IsDraw(key) || pos.HalfmoveClock() >= 100) {
		if config.Settings.Search.UseTT {
			e.tt.Store(TTableEntry{Key: key, Score: ValueDraw, Depth: DepthMax, Kind: EdgeNode})
		}
		return ValueDraw, true
	}

	if depth <= DepthZero {
		v, ok := e.qsearch(pos, hist, w)
		if ok && config.Settings.Search.UseTT {
			e.tt.Store(TTableEntry{Key: key, Score: v, Depth: DepthLeaf, Kind: LeafNode})
		}
		return v, ok
	}

	// Mate distance pruning: a mate already found closer to the root
	// than this node could possibly report makes the window moot.
	if mateAlpha := -Mate + Value(ply); w.Alpha < mateAlpha {
		w.Alpha = mateAlpha
	}
	if mateBeta := Mate - Value(ply); w.Beta > mateBeta {
		w.Beta = mateBeta
	}
	if config.Settings.Search.UseMDP && w.Alpha >= w.Beta {
		return w.Alpha, true
	}

	var pvSeed BestMoves
	if config.Settings.Search.UseTT {
		entry, ok := e.tt.Probe(key)
		if !ok {
			entry, ok = e.tt.ProbePV(key)
		}
		if ok {
			if entry.Kind == EdgeNode {
				return Mark(entry.Score), true
			}
			if !isPV && Depth(entry.Depth) >= depth {
				if v, ok := entry.Probe(w); ok {
					return Mark(v), true
				}
			}
			if entry.Kind != LeafNode {
				pvSeed = entry.Moves
			}
		}
	}

	inCheck := pos.InCheck()

	// Null-move pruning: if passing the move still leaves the side to
	// move comfortably above beta, the position is almost certainly a
	// cutoff without spending effort enumerating its replies.
	if config.Settings.Search.UseNullMove && doNull && !isPV && !inCheck &&
		depth > Depth(config.Settings.Search.NmpMinBase) && w.Beta < ValueInf {
		r := Depth(2)
		if depth >= Depth(config.Settings.Search.NmpDepth) {
			r = 3
		}
		reduced := depth - r - 1
		if reduced < DepthZero {
			reduced = DepthZero
		}
		u := pos.DoNullMove()
		childWindow := w.Negate().NullWindow()
		nv, ok := e.abSearch(pos, hist, reduced, ply+1, childWindow, false, false)
		pos.UndoNullMove(u)
		if !ok {
			return ValueNone, false
		}
		nv = -nv
		if nv >= w.Beta {
			return Mark(nv), true
		}
	}

	gen := NewOrderedMoveGen(pos, pvSeed, e.killerMoves(ply), false)
	var best BestMoves
	legalMoves := 0
	movesSearched := 0
	alphaAtEntry := w.Alpha
	cut := false

	for {
		m, ok := gen.Next()
		if !ok {
			break
		}
		u := pos.DoMove(m)
		legalMoves++
		hist.Push(pos.Key(), u.WasIrreversible())
		tactical := u.WasCapture() || m.MoveType() == chess.Promotion

		childDepth := depth - 1
		givesCheck := pos.InCheck()

		var value Value
		var ok2 bool
		switch {
		case movesSearched == 0 && isPV:
			value, ok2 = e.abSearch(pos, hist, childDepth, ply+1, w.Negate(), true, true)
		default:
			r := Depth(0)
			if config.Settings.Search.UseLmr &&
				depth >= Depth(config.Settings.Search.LmrDepth) &&
				movesSearched >= config.Settings.Search.LmrMovesSearched &&
				!inCheck && !givesCheck {
				r = lmrReduction(depth, movesSearched, tactical)
			}
			reducedDepth := childDepth - r
			if reducedDepth < DepthZero {
				reducedDepth = DepthZero
			}
			childWindow := w.NullWindow().Negate()
			value, ok2 = e.abSearch(pos, hist, reducedDepth, ply+1, childWindow, false, true)
			if ok2 && r > 0 && -value > w.Alpha {
				value, ok2 = e.abSearch(pos, hist, childDepth, ply+1, childWindow, false, true)
			}
		}

		hist.Pop()
		pos.UndoMove(u)
		if !ok2 {
			return ValueNone, false
		}
		score := -value
		best.Push(RatedMove{Move: m, Score: score})
		movesSearched++

		var result NegamaxResult
		result, w = w.Negamax(score)
		if result == Pruned {
			if !u.WasCapture() && m.MoveType() != chess.Promotion {
				e.recordKiller(ply, m)
			}
			cut = true
			break
		}
	}

	if legalMoves == 0 {
		sc := ValueDraw
		if inCheck {
			sc = -Mate + Value(ply)
		}
		if config.Settings.Search.UseTT {
			e.tt.Store(TTableEntry{Key: key, Score: sc, Depth: DepthMax, Kind: EdgeNode})
		}
		return Mark(sc), true
	}

	var kind NodeKind
	switch {
	case cut:
		kind = LowerNode
	case w.Alpha == alphaAtEntry:
		kind = UpperNode
	default:
		kind = ExactNode
	}
	finalScore := best.Score()
	if config.Settings.Search.UseTT {
		entry := TTableEntry{Key: key, Moves: best, Score: finalScore, Depth: depth, Kind: kind}
		e.tt.Store(entry)
		if isPV && kind == ExactNode {
			e.tt.StorePV(entry)
		}
	}
	return Mark(finalScore), true
}

// qsearch resolves captures (and, while in check, all evasions) until
// the position is quiet enough for the static evaluator to be trusted.
// It carries no deadline check of its own - a capture sequence is
// always finite, bounded by the material left on the board - and so
// always runs to completion once entered.
func (e *Engine) qsearch(pos *chess.Position, hist *BoardHistory, w AlphaBeta) (Value, bool) {
	e.nodes++
	inCheck := pos.InCheck()

	var best Value
	if !inCheck {
		standPat := e.eval(pos)
		if config.Settings.Search.UseQSStandpat {
			if result, neww := w.Negamax(standPat); result == Pruned {
				return Mark(standPat), true
			} else {
				w = neww
			}
		}
		best = standPat
	} else {
		best = -Mate
	}

	gen := NewOrderedMoveGen(pos, BestMoves{}, nil, true)
	for {
		m, ok := gen.Next()
		if !ok {
			break
		}
		u := pos.DoMove(m)
		hist.Push(pos.Key(), u.WasIrreversible())
		value, ok2 := e.qsearch(pos, hist, w.Negate())
		hist.Pop()
		pos.UndoMove(u)
		if !ok2 {
			return ValueNone, false
		}
		value = -value
		if value > best {
			best = value
		}
		result, neww := w.Negamax(value)
		w = neww
		if result == Pruned {
			break
		}
	}
	return Mark(best), true
}

// lmrReduction computes the late-move-reduction depth cut for the
// i-th move searched at depth, following a softer curve for tactical
// moves (captures/promotions) than for quiet ones, clamped to leave at
// least a zero-depth (quiescence) search behind.
func lmrReduction(depth Depth, movesSearched int, tactical bool) Depth {
	d := float64(depth)
	i := float64(movesSearched)
	var r float64
	if tactical {
		r = 0.7 + 0.3*math.Log(1+d) + 0.3*math.Log(1+i)
	} else {
		r = 1.0 + 0.5*math.Log(1+d) + 0.7*math.Log(1+i)
	}
	red := Depth(math.Floor(r))
	if red < 0 {
		red = 0
	}
	if red > depth-1 {
		red = depth - 1
	}
	return red
}
