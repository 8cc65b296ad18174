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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/corvidchess/corvid/internal/chess"
	"github.com/corvidchess/corvid/internal/eval"
)

func newTestEngine() *Engine {
	return NewEngine(4, 64, eval.Evaluate)
}

func mustPosition(t *testing.T, fen string) *chess.Position {
	p := chess.NewPosition()
	err := p.SetFen(fen)
	assert.NoError(t, err)
	return p
}

// White mates in one with Ra1-a8: the black king on g8 is boxed in by
// its own pawns and the back rank is fully covered by the rook.
func TestEngine_FindsMateInOne(t *testing.T) {
	e := newTestEngine()
	pos := mustPosition(t, "6k1/5ppp/8/8/8/8/8/R6K w - - 0 1")
	hist := NewBoardHistory()

	limits := NewSearchLimits()
	limits.Depth = 3
	best, err := e.Go(pos, hist, limits, nil)

	assert.NoError(t, err)
	assert.Equal(t, "a1a8", best.String())
}

// A well-known KQ-vs-K stalemate trap: black to move has no legal move
// and is not in check, so the root is terminal with no best move.
func TestEngine_StalematePositionIsTerminal(t *testing.T) {
	e := newTestEngine()
	pos := mustPosition(t, "7k/5Q2/5K2/8/8/8/8/8 b - - 0 1")
	assert.True(t, pos.Stalemate())
	hist := NewBoardHistory()

	limits := NewSearchLimits()
	limits.Depth = 2
	_, err := e.Go(pos, hist, limits, nil)

	assert.ErrorIs(t, err, ErrTerminalPosition)
}

// BestMove on a checkmated position reports no move at all.
func TestEngine_CheckmatePositionHasNoBestMove(t *testing.T) {
	e := newTestEngine()
	// Black king on g8 is mated by the rook on a8 (see the mate-in-one
	// test above, one ply further along).
	pos := mustPosition(t, "R5k1/5ppp/8/8/8/8/8/7K b - - 0 1")
	assert.True(t, pos.Checkmate())
	hist := NewBoardHistory()

	_, ok := e.BestMove(pos, hist)
	assert.False(t, ok)
}

func TestEngine_ClearTTResetsHashfull(t *testing.T) {
	e := newTestEngine()
	pos := mustPosition(t, chess.StartFen)
	hist := NewBoardHistory()

	e.MinSearch(pos, hist)
	e.ClearTT()
	assert.Equal(t, 0, e.HashfullPermille())
}

// Two concurrent Go calls on the same Engine: the second must be
// refused with ErrSearchRunning while the first is still in flight.
func TestEngine_RefusesConcurrentSearch(t *testing.T) {
	e := newTestEngine()
	pos := mustPosition(t, chess.StartFen)
	hist := NewBoardHistory()

	limits := NewSearchLimits()
	limits.Infinite = true

	started := make(chan struct{})
	done := make(chan struct{})
	go func() {
		close(started)
		_, _ = e.Go(pos, hist, limits, nil)
		close(done)
	}()
	<-started
	time.Sleep(20 * time.Millisecond)

	_, err := e.Go(pos, NewBoardHistory(), NewSearchLimits(), nil)
	assert.ErrorIs(t, err, ErrSearchRunning)

	e.Stop()
	<-done
}

// Iterative deepening must report non-decreasing depth across successive
// calls to IterativeDeepeningSearch.
func TestEngine_IterativeDeepeningMonotonic(t *testing.T) {
	e := newTestEngine()
	pos := mustPosition(t, chess.StartFen)
	hist := NewBoardHistory()

	var lastDepth Depth
	for i := 0; i < 4; i++ {
		entry, err := e.IterativeDeepeningSearch(pos, hist)
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, entry.Depth, lastDepth)
		lastDepth = entry.Depth
	}
}
