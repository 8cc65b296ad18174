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

// Package eval is the static evaluation external collaborator: a pure
// function from a position to a Score from the side-to-move's point of
// view. It carries material and piece-square tables, tapered between a
// middle-game and an end-game value by the remaining non-pawn material
// on the board, the same two-phase blend the teacher's own evaluator
// uses for its positional terms.
package eval

// Score is a middle-game/end-game pair of centipawn-scale values,
// blended by game phase at the end of evaluation.
type Score struct {
	Mid int16
	End int16
}

// Add accumulates other into s.
func (s *Score) Add(other Score) {
	s.Mid += other.Mid
	s.End += other.End
}

// Sub subtracts other from s.
func (s *Score) Sub(other Score) {
	s.Mid -= other.Mid
	s.End -= other.End
}

// Tapered blends Mid and End by phase/phaseMax, phase==phaseMax being a
// full middle-game board and phase==0 a bare-kings endgame.
func (s Score) Tapered(phase, phaseMax int) int32 {
	if phaseMax <= 0 {
		return int32(s.End)
	}
	if phase > phaseMax {
		phase = phaseMax
	}
	if phase < 0 {
		phase = 0
	}
	return (int32(s.Mid)*int32(phase) + int32(s.End)*int32(phaseMax-phase)) / int32(phaseMax)
}
