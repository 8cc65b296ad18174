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
)

func TestBoardHistory_IsDrawOnThirdOccurrence(t *testing.T) {
	h := NewBoardHistory()
	const key = uint64(0xABC)

	h.Push(key, false)
	assert.False(t, h.IsDraw(key))
	h.Push(key, false)
	assert.False(t, h.IsDraw(key))
	// A third occurrence is a draw.
	h.Push(key, false)
	assert.True(t, h.IsDraw(key))
}

func TestBoardHistory_IrreversibleMoveResetsHistory(t *testing.T) {
	h := NewBoardHistory()
	h.Push(1, false)
	h.Push(1, false)
	assert.Equal(t, 2, h.Len())

	h.Push(2, true)
	assert.Equal(t, 1, h.Len())
	last, ok := h.Last()
	assert.True(t, ok)
	assert.EqualValues(t, 2, last)
	assert.False(t, h.IsDraw(1))
}

func TestBoardHistory_PopUndoesPush(t *testing.T) {
	h := NewBoardHistory()
	h.Push(1, false)
	h.Push(2, false)
	h.Pop()

	last, ok := h.Last()
	assert.True(t, ok)
	assert.EqualValues(t, 1, last)
	assert.Equal(t, 1, h.Len())
}

func TestBoardHistory_PopPastClearIsNoop(t *testing.T) {
	h := NewBoardHistory()
	h.Push(1, true)
	h.Pop()
	h.Pop()
	assert.Equal(t, 0, h.Len())
	_, ok := h.Last()
	assert.False(t, ok)
}
