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

func TestAlphaBeta_Negate(t *testing.T) {
	w := NewAlphaBeta(Value(-100), Value(200))
	n := w.Negate()
	assert.EqualValues(t, -200, n.Alpha)
	assert.EqualValues(t, 100, n.Beta)
}

func TestAlphaBeta_NullWindow(t *testing.T) {
	w := NewAlphaBeta(Value(50), Value(200))
	n := w.NullWindow()
	assert.True(t, n.IsNull())
	assert.EqualValues(t, 50, n.Alpha)
	assert.EqualValues(t, 51, n.Beta)
	assert.False(t, w.IsNull())
}

func TestAlphaBeta_Negamax(t *testing.T) {
	w := NewAlphaBeta(Value(0), Value(100))

	result, same := w.Negamax(Value(-10))
	assert.Equal(t, Worse, result)
	assert.Equal(t, w, same)

	result, raised := w.Negamax(Value(50))
	assert.Equal(t, Best, result)
	assert.EqualValues(t, 50, raised.Alpha)
	assert.EqualValues(t, 100, raised.Beta)

	result, _ = w.Negamax(Value(100))
	assert.Equal(t, Pruned, result)

	result, _ = w.Negamax(Value(150))
	assert.Equal(t, Pruned, result)
}
