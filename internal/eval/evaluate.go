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

package eval

import (
	"github.com/corvidchess/corvid/internal/chess"
	"github.com/corvidchess/corvid/internal/config"
	"github.com/corvidchess/corvid/internal/search"
)

// Evaluate scores pos from the side-to-move's point of view, combining
// material, piece-square placement and a tempo bonus, tapered between
// middle-game and end-game weights by the non-pawn, non-king material
// still on the board. It satisfies search.Evaluator.
func Evaluate(pos *chess.Position) search.Value {
	var score Score
	phase := 0

	for sq := chess.Square(0); sq < 64; sq++ {
		pc := pos.PieceAt(sq)
		if pc == chess.NoPiece {
			continue
		}
		pt := pc.Type()
		c := pc.Color()
		sign := int16(1)
		if c == chess.Black {
			sign = -1
		}

		if config.Settings.Eval.UseMaterial {
			score.Mid += sign * materialValue[pt]
			score.End += sign * materialValue[pt]
		}
		if config.Settings.Eval.UsePSQT {
			mid, end := at(pt, c, sq)
			score.Mid += sign * mid
			score.End += sign * end
		}
		phase += phaseWeight[pt]
	}

	if pos.SideToMove() == chess.White {
		score.Mid += config.Settings.Eval.Tempo
	} else {
		score.Mid -= config.Settings.Eval.Tempo
	}

	value := search.Value(score.Tapered(phase, config.Settings.Eval.PhaseMax))
	if pos.SideToMove() == chess.Black {
		value = -value
	}
	return value
}
