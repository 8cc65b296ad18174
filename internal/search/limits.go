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
	"time"

	"github.com/corvidchess/corvid/internal/chess"
	"github.com/corvidchess/corvid/internal/moveslice"
)

// Limits holds everything a "go" command can tell the search about how
// to bound itself. Pondering and mate-search limits are not part of
// this engine's scope and have no field here.
type Limits struct {
	// Infinite disables the time deadline, so the search runs until
	// "stop" or until a Depth or Nodes limit below is reached.
	Infinite bool

	// Depth, if non-zero, stops iterative deepening after this ply.
	Depth int
	// Nodes, if non-zero, stops the search once this many nodes have
	// been visited, checked after each completed iterative-deepening
	// depth (so the last depth may overshoot it).
	Nodes uint64
	// Moves holds a root move set ("searchmoves"). The UCI parser does
	// not fill it and the search does not read it: every legal root
	// move is searched.
	Moves moveslice.MoveSlice

	// TimeControl is true when White/BlackTime govern the search
	// instead of MoveTime or Infinite.
	TimeControl bool
	WhiteTime   time.Duration
	BlackTime   time.Duration
	WhiteInc    time.Duration
	BlackInc    time.Duration
	MoveTime    time.Duration
	MovesToGo   int
}

// NewSearchLimits creates an empty Limits instance.
func NewSearchLimits() *Limits {
	return &Limits{}
}

// TimeBudget computes how long the search should spend on this move
// given the side to move's clock, following the same simple formula the
// teacher uses: the remaining time split over an estimate of the moves
// left in the game, plus the increment, with a safety margin subtracted
// so the engine never returns a move after actually running out of
// time. Advanced time management (pondering, handling sudden time
// pressure asymmetrically, etc.) is out of scope.
func (l *Limits) TimeBudget(sideToMove chess.Color) time.Duration {
	if !l.TimeControl {
		return l.MoveTime
	}
	myTime, myInc := l.WhiteTime, l.WhiteInc
	if sideToMove == chess.Black {
		myTime, myInc = l.BlackTime, l.BlackInc
	}
	movesToGo := l.MovesToGo
	if movesToGo <= 0 {
		movesToGo = 30
	}
	budget := myTime/time.Duration(movesToGo) + myInc
	const safetyMargin = 50 * time.Millisecond
	budget -= safetyMargin
	if budget < 0 {
		budget = 0
	}
	if budget > myTime {
		budget = myTime
	}
	return budget
}
