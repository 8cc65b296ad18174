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

import "strings"

// Move is a 32-bit encoding of a chess move.
//  BITMAP
//  |-unused -----------------|-Move -------------------------|
//                             1 1 1 1 1 1 0 0 0 0 0 0 0 0 0 0
//                             5 4 3 2 1 0 9 8 7 6 5 4 3 2 1 0
//  ---------------------------|--------------------------------
//                             |                     1 1 1 1 1 1  to
//                             |         1 1 1 1 1 1              from
//                             |     1 1                          promotion piece type (pt-2, 0-3)
//                             | 1 1                              move type
// Search's own move-ordering score is kept out of this encoding on
// purpose: spec's RatedMove already pairs a Move with a score, and a
// second, conflicting sort value embedded in Move itself would give the
// engine two sources of truth for a move's rank.
type Move uint32

// MoveNone is the zero value, an invalid move used as a sentinel.
const MoveNone Move = 0

// MoveType distinguishes the special move kinds from a normal move.
type MoveType uint8

const (
	Normal MoveType = iota
	Promotion
	EnPassant
	Castling
)

func (t MoveType) String() string {
	switch t {
	case Promotion:
		return "p"
	case EnPassant:
		return "e"
	case Castling:
		return "c"
	default:
		return "n"
	}
}

const (
	fromShift     uint   = 6
	promTypeShift uint   = 12
	typeShift     uint   = 14
	squareMask    Move   = 0x3F
	toMask               = squareMask
	fromMask             = squareMask << fromShift
	promTypeMask  Move   = 3 << promTypeShift
	moveTypeMask  Move   = 3 << typeShift
)

// NewMove encodes a move. promType is only meaningful when t == Promotion.
func NewMove(from, to Square, t MoveType, promType PieceType) Move {
	if promType < Knight {
		promType = Knight
	}
	return Move(to) |
		Move(from)<<fromShift |
		Move(promType-Knight)<<promTypeShift |
		Move(t)<<typeShift
}

// To returns the destination square.
func (m Move) To() Square {
	return Square(m & toMask)
}

// From returns the origin square.
func (m Move) From() Square {
	return Square((m & fromMask) >> fromShift)
}

// MoveType returns the move's kind.
func (m Move) MoveType() MoveType {
	return MoveType((m & moveTypeMask) >> typeShift)
}

// PromotionType returns the piece type promoted to; only meaningful
// when MoveType() == Promotion.
func (m Move) PromotionType() PieceType {
	return PieceType((m&promTypeMask)>>promTypeShift) + Knight
}

// IsValid reports whether m carries valid squares; MoveNone is not valid.
func (m Move) IsValid() bool {
	return m != MoveNone && m.From().IsValid() && m.To().IsValid()
}

// String returns a long-algebraic, UCI-compatible representation.
func (m Move) String() string {
	if m == MoveNone {
		return "0000"
	}
	var sb strings.Builder
	sb.WriteString(m.From().String())
	sb.WriteString(m.To().String())
	if m.MoveType() == Promotion {
		sb.WriteString(strings.ToLower(m.PromotionType().Char()))
	}
	return sb.String()
}

// StringUci is an alias for String kept for symmetry with the teacher's
// Move type, which distinguishes a verbose debug String() from a plain
// protocol StringUci(). This Move's String() is already UCI-shaped.
func (m Move) StringUci() string {
	return m.String()
}
