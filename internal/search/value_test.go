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

func TestValue_IsValid(t *testing.T) {
	assert.True(t, ValueZero.IsValid())
	assert.True(t, ValueInf.IsValid())
	assert.True(t, (-ValueInf).IsValid())
	assert.False(t, ValueNone.IsValid())
}

func TestValue_IsMateValue(t *testing.T) {
	assert.True(t, Mate.IsMateValue())
	assert.True(t, (-Mate).IsMateValue())
	assert.True(t, (MateCutoff + 1).IsMateValue())
	assert.False(t, MateCutoff.IsMateValue())
	assert.False(t, ValueZero.IsMateValue())
}

func TestMark(t *testing.T) {
	assert.EqualValues(t, Mate-1, Mark(Mate))
	assert.EqualValues(t, -Mate+1, Mark(-Mate))
	assert.EqualValues(t, ValueZero, Mark(ValueZero))
	assert.EqualValues(t, Value(100), Mark(Value(100)))
}

func TestValue_String(t *testing.T) {
	assert.Equal(t, "cp 100", Value(100).String())
	assert.Equal(t, "cp -50", Value(-50).String())
	assert.Equal(t, "none", ValueNone.String())
	// Mate in one ply (the side to move delivers mate with its next move).
	assert.Equal(t, "mate 1", Mark(Mate).String())
	assert.Equal(t, "mate -1", Mark(-Mate).String())
}
