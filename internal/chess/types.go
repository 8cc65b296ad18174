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

// Package chess provides board representation, move generation and FEN
// handling. It is the concrete "external collaborator" the search core
// is written against: search never reaches into a Position's internals,
// only calls its exported methods.
package chess

import "fmt"

// Color identifies a side to move or a piece's owner.
type Color int8

const (
	White Color = iota
	Black
	NoColor
)

// Opposite returns the other color.
func (c Color) Opposite() Color {
	return c ^ 1
}

func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	default:
		return "none"
	}
}

// PieceType identifies a piece kind irrespective of color.
type PieceType int8

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	PieceTypeLength = int(King) + 1
)

var pieceTypeChars = [PieceTypeLength]string{"", "P", "N", "B", "R", "Q", "K"}

// Char returns the upper-case algebraic letter for the piece type ("" for NoPieceType).
func (pt PieceType) Char() string {
	return pieceTypeChars[pt]
}

func (pt PieceType) String() string {
	switch pt {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	default:
		return "none"
	}
}

// Piece is a colored piece, encoded as color*6 + pieceType for pieceType
// 1..6, with Piece 0 reserved for NoPiece.
type Piece int8

const NoPiece Piece = 0

// NewPiece builds a Piece from a color and a piece type.
func NewPiece(c Color, pt PieceType) Piece {
	if pt == NoPieceType {
		return NoPiece
	}
	return Piece(int8(c)*6 + int8(pt))
}

// Type returns the piece's type.
func (p Piece) Type() PieceType {
	if p == NoPiece {
		return NoPieceType
	}
	return PieceType((int8(p) - 1) % 6 + 1)
}

// Color returns the piece's owner.
func (p Piece) Color() Color {
	if p == NoPiece {
		return NoColor
	}
	if int8(p) <= 6 {
		return White
	}
	return Black
}

var pieceChars = " PNBRQKpnbrqk"

// Char returns the FEN character for the piece (upper-case for white).
func (p Piece) Char() string {
	return string(pieceChars[p])
}

func (p Piece) String() string {
	if p == NoPiece {
		return "-"
	}
	return fmt.Sprintf("%s %s", p.Color(), p.Type())
}

// Square is a board square, 0 (a1) through 63 (h8), file-major within rank
// (a1=0, b1=1, ..., h1=7, a2=8, ...).
type Square int8

const NoSquare Square = -1

// NewSquare builds a Square from a file and a rank, both 0-based.
func NewSquare(f File, r Rank) Square {
	return Square(int8(r)*8 + int8(f))
}

// File returns the square's file (0=a .. 7=h).
func (sq Square) File() File {
	return File(sq % 8)
}

// Rank returns the square's rank (0=1st rank .. 7=8th rank).
func (sq Square) Rank() Rank {
	return Rank(sq / 8)
}

// IsValid reports whether sq is on the board.
func (sq Square) IsValid() bool {
	return sq >= 0 && sq < 64
}

func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+byte(sq.File()), '1'+byte(sq.Rank()))
}

// File is a board file, 0 (a) through 7 (h).
type File int8

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
	FileNone = File(-1)
)

// Rank is a board rank, 0 (1st) through 7 (8th).
type Rank int8

const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
	RankNone = Rank(-1)
)

// CastlingRights is a 4-bit mask of remaining castling rights.
type CastlingRights uint8

const (
	WhiteOO CastlingRights = 1 << iota
	WhiteOOO
	BlackOO
	BlackOOO
	NoCastling CastlingRights = 0
	AnyCastling                = WhiteOO | WhiteOOO | BlackOO | BlackOOO
)

// Has reports whether all bits in mask are set.
func (cr CastlingRights) Has(mask CastlingRights) bool {
	return cr&mask == mask
}
