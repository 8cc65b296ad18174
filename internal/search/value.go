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

// Package search implements the engine's core: iterative-deepening
// alpha-beta with a transposition table, quiescence search, null-move
// and late-move reductions, draw detection by repetition, and principal
// variation recovery. Move generation, board representation and static
// evaluation are supplied by internal/chess and internal/eval; search
// only depends on the small surface area described by the Position and
// Evaluator types in this package.
package search

import (
	"fmt"
	"strconv"
)

// Value is a score in whole centipawns. Base below is a declared
// scaling constant that no computation in this engine uses; evaluation
// and search results are always whole centipawns.
type Value int32

// Base is a scaling factor for Value. 720720 = lcm(1..16), so it
// divides evenly by every integer from 1 to 16.
const Base Value = 720720

const (
	// ValueZero is a neutral, drawn score.
	ValueZero Value = 0
	// ValueDraw is the score of a detected draw (repetition, fifty-move,
	// or stalemate - see the fixed Stalemate decision in DESIGN.md).
	ValueDraw Value = 0
	// ValueInf bounds the alpha-beta window from outside any reachable
	// score, used to seed the root window.
	ValueInf Value = 32000
	// ValueNone marks "no value computed", distinct from any legal score.
	ValueNone Value = -ValueInf - 1

	// Mate is the score of delivering checkmate on the current move.
	Mate Value = 31000
	// MateCutoff is the threshold above which (in absolute value) a
	// score is considered a mate score rather than a material score.
	MateCutoff Value = Mate - 1000
	// MateMove is the score one ply below Mate: "mate in one ply from
	// here", the value a child node reports to a parent that is one ply
	// closer to the mating move.
	MateMove Value = Mate - 1
)

// IsValid reports whether v is within the representable score range.
func (v Value) IsValid() bool {
	return v >= -ValueInf && v <= ValueInf
}

// IsMateValue reports whether v represents a forced mate in either
// direction.
func (v Value) IsMateValue() bool {
	a := v
	if a < 0 {
		a = -a
	}
	return a > MateCutoff && a <= Mate
}

// Mark adjusts a mate score by one ply of distance-from-root as it is
// returned from a child node to its parent. Only mate scores are
// touched; material scores pass through unchanged. This is what keeps
// "mate in N" measured in plies from the position the score is reported
// at, rather than from the leaf where the mate was first detected.
func Mark(v Value) Value {
	switch {
	case v > MateCutoff:
		return v - 1
	case v < -MateCutoff:
		return v + 1
	default:
		return v
	}
}

// String renders v the way UCI "info score" expects: "cp N" or
// "mate N" (N negative when the side to move is getting mated).
func (v Value) String() string {
	if v == ValueNone {
		return "none"
	}
	if v.IsMateValue() {
		if v > 0 {
			pliesToMate := Mate - v
			return "mate " + strconv.Itoa(int((pliesToMate+1)/2))
		}
		pliesToMate := Mate + v
		return "mate -" + strconv.Itoa(int((pliesToMate+1)/2))
	}
	return fmt.Sprintf("cp %d", int(v))
}
