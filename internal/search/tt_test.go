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

func TestTtTable_StoreAndProbeRoundtrip(t *testing.T) {
	tt := NewTtTable(1, 4)
	e := TTableEntry{Key: 0xC0FFEE, Score: Value(77), Depth: 3, Kind: ExactNode}
	tt.Store(e)

	got, ok := tt.Probe(0xC0FFEE)
	assert.True(t, ok)
	assert.EqualValues(t, 77, got.Score)
}

func TestTtTable_ProbeMissOnKeyCollision(t *testing.T) {
	tt := NewTtTable(1, 4)
	size := uint64(len(tt.table))
	tt.Store(TTableEntry{Key: 1, Score: Value(1), Depth: 1, Kind: ExactNode})
	// A different key that maps to the same slot must not be mistaken for
	// the stored one.
	_, ok := tt.Probe(1 + size)
	assert.False(t, ok)
}

func TestTtTable_StoreHonoursSupersedes(t *testing.T) {
	tt := NewTtTable(1, 4)
	deep := TTableEntry{Key: 5, Score: Value(10), Depth: 8, Kind: ExactNode}
	shallow := TTableEntry{Key: 5, Score: Value(99), Depth: 2, Kind: ExactNode}

	tt.Store(deep)
	tt.Store(shallow)

	got, ok := tt.Probe(5)
	assert.True(t, ok)
	assert.EqualValues(t, 8, got.Depth)
	assert.EqualValues(t, 10, got.Score)
}

func TestTtTable_NewGenerationAllowsReplacement(t *testing.T) {
	tt := NewTtTable(1, 4)
	deep := TTableEntry{Key: 5, Score: Value(10), Depth: 8, Kind: ExactNode}
	tt.Store(deep)

	tt.NewGeneration()
	shallow := TTableEntry{Key: 5, Score: Value(99), Depth: 2, Kind: ExactNode}
	tt.Store(shallow)

	got, ok := tt.Probe(5)
	assert.True(t, ok)
	assert.EqualValues(t, 2, got.Depth)
	assert.EqualValues(t, 1, got.Generation)
}

func TestTtTable_Clear(t *testing.T) {
	tt := NewTtTable(1, 4)
	tt.Store(TTableEntry{Key: 1, Score: Value(1), Depth: 1, Kind: ExactNode})
	tt.StorePV(TTableEntry{Key: 1, Score: Value(1), Depth: 1, Kind: ExactNode})

	tt.Clear()

	_, ok := tt.Probe(1)
	assert.False(t, ok)
	_, ok = tt.ProbePV(1)
	assert.False(t, ok)
}

func TestTtTable_StorePVKeepsKindAndEvictsFIFO(t *testing.T) {
	tt := NewTtTable(1, 2)
	tt.StorePV(TTableEntry{Key: 1, Kind: LowerNode, Score: Value(5)})
	tt.StorePV(TTableEntry{Key: 2, Kind: ExactNode, Score: Value(6)})
	tt.StorePV(TTableEntry{Key: 3, Kind: ExactNode, Score: Value(7)})

	// Cache capped at 2: the oldest entry (key 1) is evicted.
	_, ok := tt.ProbePV(1)
	assert.False(t, ok)

	e2, ok := tt.ProbePV(2)
	assert.True(t, ok)
	assert.Equal(t, ExactNode, e2.Kind)

	e3, ok := tt.ProbePV(3)
	assert.True(t, ok)
	assert.Equal(t, ExactNode, e3.Kind)
}

func TestTtTable_HashfullPermille(t *testing.T) {
	tt := NewTtTable(1, 4)
	assert.Equal(t, 0, tt.HashfullPermille())
	tt.Store(TTableEntry{Key: 1, Kind: ExactNode, Depth: 1})
	assert.Greater(t, tt.HashfullPermille(), 0)
}
