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

func TestTTableEntry_Move(t *testing.T) {
	var e TTableEntry
	assert.Equal(t, chess.MoveNone, e.Move())

	e.Moves.Push(RatedMove{Move: chess.Move(42), Score: Value(10)})
	assert.Equal(t, chess.Move(42), e.Move())
}

func TestTTableEntry_IsEdge(t *testing.T) {
	assert.True(t, TTableEntry{Kind: EdgeNode}.IsEdge())
	assert.False(t, TTableEntry{Kind: ExactNode}.IsEdge())
}

func TestTTableEntry_Supersedes_EmptySlotNeverSupersedes(t *testing.T) {
	var empty TTableEntry
	candidate := TTableEntry{Kind: UpperNode, Depth: 1}
	assert.False(t, empty.Supersedes(candidate, 0))
}

func TestTTableEntry_Supersedes_OlderGenerationAlwaysReplaced(t *testing.T) {
	existing := TTableEntry{Kind: ExactNode, Depth: 10, Generation: 1}
	candidate := TTableEntry{Kind: UpperNode, Depth: 1, Generation: 2}
	assert.False(t, existing.Supersedes(candidate, 2))
}

func TestTTableEntry_Supersedes_ExactBeatsDeeperLeaf(t *testing.T) {
	existing := TTableEntry{Kind: ExactNode, Depth: 1, Generation: 0}
	candidate := TTableEntry{Kind: LeafNode, Depth: 50, Generation: 0}
	assert.True(t, existing.Supersedes(candidate, 0))
}

func TestTTableEntry_Supersedes_SameKindDeeperWins(t *testing.T) {
	shallow := TTableEntry{Kind: ExactNode, Depth: 3, Generation: 0}
	deep := TTableEntry{Kind: ExactNode, Depth: 7, Generation: 0}
	assert.False(t, shallow.Supersedes(deep, 0))
	assert.True(t, deep.Supersedes(shallow, 0))
}

func TestTTableEntry_Probe(t *testing.T) {
	w := NewAlphaBeta(Value(0), Value(100))

	exact := TTableEntry{Kind: ExactNode, Score: Value(42)}
	v, ok := exact.Probe(w)
	assert.True(t, ok)
	assert.EqualValues(t, 42, v)

	lowerCutoff := TTableEntry{Kind: LowerNode, Score: Value(150)}
	v, ok = lowerCutoff.Probe(w)
	assert.True(t, ok)
	assert.EqualValues(t, 150, v)

	lowerNoCutoff := TTableEntry{Kind: LowerNode, Score: Value(10)}
	_, ok = lowerNoCutoff.Probe(w)
	assert.False(t, ok)

	upperCutoff := TTableEntry{Kind: UpperNode, Score: Value(-10)}
	v, ok = upperCutoff.Probe(w)
	assert.True(t, ok)
	assert.EqualValues(t, -10, v)

	upperNoCutoff := TTableEntry{Kind: UpperNode, Score: Value(50)}
	_, ok = upperNoCutoff.Probe(w)
	assert.False(t, ok)
}
