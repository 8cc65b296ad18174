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

// Attack generation. The teacher engine precomputes sliding-piece attacks
// with magic bitboards (internal/types/magic.go); the source for that
// table generation did not come through in the retrieval pack, and
// hand-transcribing magic numbers without being able to compile or test
// them is a correctness risk this package avoids. Sliding attacks here
// are computed by ray scanning against the live occupancy instead -
// slower per call, but the only technique that can be written with
// confidence without a compiler in the loop.

var knightAttacks [64]Bitboard
var kingAttacks [64]Bitboard

type delta struct{ df, dr int }

var knightDeltas = []delta{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
var kingDeltas = []delta{{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1}}

var bishopDirs = []delta{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
var rookDirs = []delta{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

func init() {
	for sq := Square(0); sq < 64; sq++ {
		knightAttacks[sq] = jumpAttacks(sq, knightDeltas)
		kingAttacks[sq] = jumpAttacks(sq, kingDeltas)
	}
}

func jumpAttacks(sq Square, deltas []delta) Bitboard {
	var bb Bitboard
	f, r := int(sq.File()), int(sq.Rank())
	for _, d := range deltas {
		nf, nr := f+d.df, r+d.dr
		if nf >= 0 && nf < 8 && nr >= 0 && nr < 8 {
			bb = bb.Set(NewSquare(File(nf), Rank(nr)))
		}
	}
	return bb
}

func slidingAttacks(sq Square, occ Bitboard, dirs []delta) Bitboard {
	var bb Bitboard
	f, r := int(sq.File()), int(sq.Rank())
	for _, d := range dirs {
		nf, nr := f+d.df, r+d.dr
		for nf >= 0 && nf < 8 && nr >= 0 && nr < 8 {
			s := NewSquare(File(nf), Rank(nr))
			bb = bb.Set(s)
			if occ.Has(s) {
				break
			}
			nf += d.df
			nr += d.dr
		}
	}
	return bb
}

// BishopAttacks returns the bishop attack set from sq given occupancy occ.
func BishopAttacks(sq Square, occ Bitboard) Bitboard {
	return slidingAttacks(sq, occ, bishopDirs)
}

// RookAttacks returns the rook attack set from sq given occupancy occ.
func RookAttacks(sq Square, occ Bitboard) Bitboard {
	return slidingAttacks(sq, occ, rookDirs)
}

// QueenAttacks returns the queen attack set from sq given occupancy occ.
func QueenAttacks(sq Square, occ Bitboard) Bitboard {
	return BishopAttacks(sq, occ) | RookAttacks(sq, occ)
}

// KnightAttacks returns the knight attack set from sq.
func KnightAttacks(sq Square) Bitboard {
	return knightAttacks[sq]
}

// KingAttacks returns the king attack set from sq.
func KingAttacks(sq Square) Bitboard {
	return kingAttacks[sq]
}

// PawnAttacks returns the squares a pawn of color c on sq attacks.
func PawnAttacks(c Color, sq Square) Bitboard {
	f, r := int(sq.File()), int(sq.Rank())
	dr := 1
	if c == Black {
		dr = -1
	}
	var bb Bitboard
	if f > 0 && r+dr >= 0 && r+dr < 8 {
		bb = bb.Set(NewSquare(File(f-1), Rank(r+dr)))
	}
	if f < 7 && r+dr >= 0 && r+dr < 8 {
		bb = bb.Set(NewSquare(File(f+1), Rank(r+dr)))
	}
	return bb
}

// AttacksByPieceType returns the attack set of a piece of type pt and
// color c standing on sq, given occupancy occ, for lookups where the
// piece type is only known at runtime.
func AttacksByPieceType(pt PieceType, c Color, sq Square, occ Bitboard) Bitboard {
	switch pt {
	case Pawn:
		return PawnAttacks(c, sq)
	case Knight:
		return KnightAttacks(sq)
	case Bishop:
		return BishopAttacks(sq, occ)
	case Rook:
		return RookAttacks(sq, occ)
	case Queen:
		return QueenAttacks(sq, occ)
	case King:
		return KingAttacks(sq)
	default:
		return EmptyBitboard
	}
}
