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

package chess

import "math/bits"

// Bitboard is a 64-bit set of squares, bit i corresponding to Square(i).
// Unlike the teacher's magic-bitboard attack tables, this engine only
// uses Bitboard for occupancy tracking and simple pawn/knight/king
// attack lookups (precomputed knight and king tables); sliding piece
// attacks are computed by ray
// scanning in attacks.go rather than precomputed magic tables.
type Bitboard uint64

const EmptyBitboard Bitboard = 0

// SquareBit returns the singleton bitboard for sq.
func SquareBit(sq Square) Bitboard {
	return Bitboard(1) << uint(sq)
}

// Set returns bb with sq added.
func (bb Bitboard) Set(sq Square) Bitboard {
	return bb | SquareBit(sq)
}

// Clear returns bb with sq removed.
func (bb Bitboard) Clear(sq Square) Bitboard {
	return bb &^ SquareBit(sq)
}

// Has reports whether sq is a member of bb.
func (bb Bitboard) Has(sq Square) bool {
	return bb&SquareBit(sq) != 0
}

// Count returns the number of set bits (population count).
func (bb Bitboard) Count() int {
	return bits.OnesCount64(uint64(bb))
}

// PopLSB returns the least significant set square and bb with that
// square removed. Must not be called on an empty bitboard.
func (bb Bitboard) PopLSB() (Square, Bitboard) {
	sq := Square(bits.TrailingZeros64(uint64(bb)))
	return sq, bb & (bb - 1)
}

// IsEmpty reports whether bb has no members.
func (bb Bitboard) IsEmpty() bool {
	return bb == 0
}
