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

	"github.com/stretchr/testify/assert"

	"github.com/corvidchess/corvid/internal/chess"
)

func TestBestMoves_EmptyScore(t *testing.T) {
	var b BestMoves
	assert.EqualValues(t, -Mate, b.Score())
	assert.Equal(t, 0, b.Len())
	_, ok := b.Peek()
	assert.False(t, ok)
}

func TestBestMoves_PushOrdersDescending(t *testing.T) {
	var b BestMoves
	b.Push(RatedMove{Move: chess.Move(1), Score: Value(10)})
	b.Push(RatedMove{Move: chess.Move(2), Score: Value(30)})
	b.Push(RatedMove{Move: chess.Move(3), Score: Value(20)})

	assert.Equal(t, 3, b.Len())
	assert.EqualValues(t, 30, b.Score())
	assert.Equal(t, chess.Move(2), b.At(0).Move)
	assert.Equal(t, chess.Move(3), b.At(1).Move)
	assert.Equal(t, chess.Move(1), b.At(2).Move)
}

func TestBestMoves_CapAtThreeKeepsBest(t *testing.T) {
	var b BestMoves
	b.Push(RatedMove{Move: chess.Move(1), Score: Value(10)})
	b.Push(RatedMove{Move: chess.Move(2), Score: Value(20)})
	b.Push(RatedMove{Move: chess.Move(3), Score: Value(30)})
	b.Push(RatedMove{Move: chess.Move(4), Score: Value(5)})

	assert.Equal(t, 3, b.Len())
	assert.False(t, b.Contains(chess.Move(4)))
	assert.True(t, b.Contains(chess.Move(3)))

	// A move that beats the current worst entry displaces it.
	b.Push(RatedMove{Move: chess.Move(5), Score: Value(15)})
	assert.True(t, b.Contains(chess.Move(5)))
	assert.False(t, b.Contains(chess.Move(1)))
}

func TestBestMoves_PushDuplicateUpdatesInPlace(t *testing.T) {
	var b BestMoves
	b.Push(RatedMove{Move: chess.Move(1), Score: Value(10)})
	b.Push(RatedMove{Move: chess.Move(2), Score: Value(20)})
	b.Push(RatedMove{Move: chess.Move(1), Score: Value(50)})

	assert.Equal(t, 2, b.Len())
	assert.EqualValues(t, 50, b.Score())
	assert.Equal(t, chess.Move(1), b.At(0).Move)
}

func TestBestMoves_PopRemovesBest(t *testing.T) {
	var b BestMoves
	b.Push(RatedMove{Move: chess.Move(1), Score: Value(10)})
	b.Push(RatedMove{Move: chess.Move(2), Score: Value(30)})

	rm, ok := b.Pop()
	assert.True(t, ok)
	assert.Equal(t, chess.Move(2), rm.Move)
	assert.Equal(t, 1, b.Len())

	rm, ok = b.Pop()
	assert.True(t, ok)
	assert.Equal(t, chess.Move(1), rm.Move)

	_, ok = b.Pop()
	assert.False(t, ok)
}

func TestRatedMove_Mark(t *testing.T) {
	rm := RatedMove{Move: chess.Move(7), Score: Mate}
	marked := rm.Mark()
	assert.Equal(t, chess.Move(7), marked.Move)
	assert.EqualValues(t, Mate-1, marked.Score)
}
