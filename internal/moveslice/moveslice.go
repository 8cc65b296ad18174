//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package moveslice provides helper functionality for slices of type
// chess.Move. Its only user is search.Limits, whose Moves field is a
// MoveSlice.
package moveslice

import (
	"fmt"
	"strings"

	"github.com/corvidchess/corvid/internal/chess"
)

// MoveSlice represents a data structure (go slice) for chess.Move.
type MoveSlice []chess.Move

// NewMoveSlice creates a new move slice with the given capacity
// and 0 elements.
func NewMoveSlice(cap int) *MoveSlice {
	moves := make([]chess.Move, 0, cap)
	return (*MoveSlice)(&moves)
}

// Len returns the number of moves currently stored in the slice.
func (ms *MoveSlice) Len() int {
	return len(*ms)
}

// Cap returns the capacity of the slice.
func (ms *MoveSlice) Cap() int {
	return cap(*ms)
}

// PushBack appends an element at the end of the slice.
func (ms *MoveSlice) PushBack(m chess.Move) {
	*ms = append(*ms, m)
}

// PopBack removes and returns the move from the back of the slice.
// If the slice is empty, the call panics.
func (ms *MoveSlice) PopBack() chess.Move {
	if len(*ms) <= 0 {
		panic("MoveSlice: PopBack() called on empty slice")
	}
	backMove := (*ms)[len(*ms)-1]
	*ms = (*ms)[:len(*ms)-1]
	return backMove
}

// PushFront prepends an element at the beginning of the slice using
// the underlying array (does not create a new array when capacity
// allows).
func (ms *MoveSlice) PushFront(m chess.Move) {
	*ms = append(*ms, chess.MoveNone)
	copy((*ms)[1:], *ms)
	(*ms)[0] = m
}

// Front returns the move at the front of the slice.
// This call panics if the slice is empty.
func (ms *MoveSlice) Front() chess.Move {
	if len(*ms) <= 0 {
		panic("MoveSlice: Front() called when empty")
	}
	return (*ms)[0]
}

// At returns the move at index i in the slice without removing the move
// from the slice.
func (ms *MoveSlice) At(i int) chess.Move {
	if len(*ms) == 0 || i < 0 || i >= len(*ms) {
		panic("MoveSlice: Index out of bounds")
	}
	return (*ms)[i]
}

// Clear removes all moves from the slice, but retains the current capacity.
func (ms *MoveSlice) Clear() {
	*ms = (*ms)[:0]
}

// Clone copies the MoveSlice into a newly created MoveSlice, doing a deep copy.
func (ms *MoveSlice) Clone() *MoveSlice {
	dest := make([]chess.Move, ms.Len(), ms.Cap())
	copy(dest, *ms)
	return (*MoveSlice)(&dest)
}

// Equals returns true if all elements of the MoveSlice equal the
// elements of the other MoveSlice in the same order.
func (ms *MoveSlice) Equals(other *MoveSlice) bool {
	if ms.Len() != other.Len() {
		return false
	}
	for i, m := range *ms {
		if m != (*other)[i] {
			return false
		}
	}
	return true
}

// String returns a string representation of a slice of moves.
func (ms *MoveSlice) String() string {
	var b strings.Builder
	size := len(*ms)
	b.WriteString(fmt.Sprintf("MoveList: [%d] { ", size))
	for i := 0; i < size; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(ms.At(i).String())
	}
	b.WriteString(" }")
	return b.String()
}

// StringUci returns a string with a space separated list of all moves
// in the list in UCI protocol format, as sent after "pv" in a UCI info line.
func (ms *MoveSlice) StringUci() string {
	var b strings.Builder
	size := len(*ms)
	for i := 0; i < size; i++ {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString((*ms)[i].StringUci())
	}
	return b.String()
}
