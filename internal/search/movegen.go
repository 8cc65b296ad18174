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
	"sort"

	"github.com/corvidchess/corvid/internal/chess"
)

// OrderedMoveGen hands moves to ab_search/qsearch in the order that
// maximizes alpha-beta cutoffs: the PV seed recovered from the
// transposition table first (best score first), then captures from
// most to least valuable victim, then killer moves, then the remaining
// quiet moves. The quiescence variant omits quiet moves entirely unless
// the side to move is in check, since a position not in check can
// always choose to stand pat instead of making a losing quiet move.
type OrderedMoveGen struct {
	pvSeed     []chess.Move
	pvi        int
	captures   []chess.RankedMove
	quiets     []chess.RankedMove
	killers    []chess.Move
	ci, qi, ki int
}

// NewOrderedMoveGen builds a generator over pos's legal moves. pvSeed is
// the node's BestMoves entry recovered from the TT, best score first,
// and may be empty. killers are tried after captures and before the
// remaining quiet moves, skipped if quiescence and not inCheck.
func NewOrderedMoveGen(pos *chess.Position, pvSeed BestMoves, killers []chess.Move, quiescence bool) *OrderedMoveGen {
	inCheck := pos.InCheck()
	all := pos.GenerateMoves(quiescence && !inCheck)

	g := &OrderedMoveGen{}
	for i := 0; i < pvSeed.Len(); i++ {
		g.pvSeed = append(g.pvSeed, pvSeed.At(i).Move)
	}

	for _, rm := range all {
		if seeded(g.pvSeed, rm.Move) {
			continue
		}
		if rm.Rank > 0 {
			g.captures = append(g.captures, rm)
		} else if !quiescence || inCheck {
			g.quiets = append(g.quiets, rm)
		}
	}
	sort.SliceStable(g.captures, func(i, j int) bool { return g.captures[i].Rank > g.captures[j].Rank })

	if !quiescence || inCheck {
		for _, k := range killers {
			if k == chess.MoveNone || seeded(g.pvSeed, k) {
				continue
			}
			for i, rm := range g.quiets {
				if rm.Move == k {
					g.quiets = append(g.quiets[:i], g.quiets[i+1:]...)
					g.killers = append(g.killers, k)
					break
				}
			}
		}
	}
	return g
}

func seeded(pvSeed []chess.Move, m chess.Move) bool {
	for _, s := range pvSeed {
		if s == m {
			return true
		}
	}
	return false
}

// Next returns the next move in order, or ok == false when exhausted.
func (g *OrderedMoveGen) Next() (chess.Move, bool) {
	if g.pvi < len(g.pvSeed) {
		m := g.pvSeed[g.pvi]
		g.pvi++
		return m, true
	}
	if g.ci < len(g.captures) {
		m := g.captures[g.ci].Move
		g.ci++
		return m, true
	}
	if g.ki < len(g.killers) {
		m := g.killers[g.ki]
		g.ki++
		return m, true
	}
	if g.qi < len(g.quiets) {
		m := g.quiets[g.qi].Move
		g.qi++
		return m, true
	}
	return chess.MoveNone, false
}
