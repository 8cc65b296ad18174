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

// RankedMove pairs a legal move with a coarse static rank used to seed
// the search core's own ordered move generator: captures are ranked by
// victim type (queen highest, pawn lowest) before the search layer
// re-orders by TT move and killers; quiet moves all share rank
// zero and keep generation order.
type RankedMove struct {
	Move Move
	Rank int
}

// victimRank orders MVV capture scoring by victim type: Queens, then
// Rooks, then Bishops, then Knights, then Pawns, each in its own tier
// so sort.SliceStable never leaves two victim types interleaved.
var victimRank = [PieceTypeLength]int{0, 10, 20, 30, 40, 50, 0}

// GenerateMoves returns all legal moves. If capturesOnly is true, only
// captures (including capturing promotions and en-passant captures) are
// returned - the set quiescence search draws from; promotions that
// capture nothing are not included.
func (p *Position) GenerateMoves(capturesOnly bool) []RankedMove {
	moves := p.generatePseudoLegal(capturesOnly)
	legal := moves[:0]
	us := p.sideToMove
	for _, rm := range moves {
		undo := p.DoMove(rm.Move)
		if !p.IsAttacked(p.kingSq[us], us.Opposite()) {
			legal = append(legal, rm)
		}
		p.UndoMove(undo)
	}
	return legal
}

func (p *Position) generatePseudoLegal(capturesOnly bool) []RankedMove {
	moves := make([]RankedMove, 0, 48)
	us := p.sideToMove
	them := us.Opposite()
	ownOcc := p.byColor[us]
	enemyOcc := p.byColor[them]

	// pawns
	pawns := p.byType[Pawn] & ownOcc
	forward := Rank(1)
	startRank := Rank2
	lastRank := Rank8
	if us == Black {
		forward = -1
		startRank = Rank7
		lastRank = Rank1
	}
	bb := pawns
	for !bb.IsEmpty() {
		from, rest := bb.PopLSB()
		bb = rest
		to1 := NewSquare(from.File(), from.Rank()+forward)
		if to1.IsValid() && !p.all.Has(to1) {
			if !capturesOnly {
				addPawnMoves(&moves, from, to1, lastRank)
			}
			if from.Rank() == startRank {
				to2 := NewSquare(from.File(), from.Rank()+2*forward)
				if to2.IsValid() && !p.all.Has(to2) && !capturesOnly {
					moves = append(moves, RankedMove{NewMove(from, to2, Normal, NoPieceType), 0})
				}
			}
		}
		atk := PawnAttacks(us, from)
		capTargets := atk & enemyOcc
		for !capTargets.IsEmpty() {
			to, r := capTargets.PopLSB()
			capTargets = r
			addPawnCaptureMoves(&moves, p, from, to, lastRank)
		}
		if p.epSquare != NoSquare && atk.Has(p.epSquare) {
			moves = append(moves, RankedMove{NewMove(from, p.epSquare, EnPassant, NoPieceType), victimRank[Pawn]})
		}
	}

	addJumperMoves(&moves, p, Knight, ownOcc, enemyOcc, capturesOnly, KnightAttacksFor)
	addSliderMoves(&moves, p, Bishop, ownOcc, enemyOcc, capturesOnly, BishopAttacks)
	addSliderMoves(&moves, p, Rook, ownOcc, enemyOcc, capturesOnly, RookAttacks)
	addSliderMoves(&moves, p, Queen, ownOcc, enemyOcc, capturesOnly, QueenAttacks)
	addJumperMoves(&moves, p, King, ownOcc, enemyOcc, capturesOnly, KingAttacksFor)

	if !capturesOnly {
		p.addCastlingMoves(&moves, us)
	}

	return moves
}

// KnightAttacksFor and KingAttacksFor adapt the occupancy-independent
// jump attack functions to the slider-shaped signature used by
// addJumperMoves so both piece families share one loop body.
func KnightAttacksFor(sq Square, _ Bitboard) Bitboard { return KnightAttacks(sq) }
func KingAttacksFor(sq Square, _ Bitboard) Bitboard   { return KingAttacks(sq) }

func addJumperMoves(moves *[]RankedMove, p *Position, pt PieceType, ownOcc, enemyOcc Bitboard, capturesOnly bool, attacks func(Square, Bitboard) Bitboard) {
	bb := p.byType[pt] & ownOcc
	for !bb.IsEmpty() {
		from, rest := bb.PopLSB()
		bb = rest
		targets := attacks(from, p.all) &^ ownOcc
		if capturesOnly {
			targets &= enemyOcc
		}
		for !targets.IsEmpty() {
			to, r := targets.PopLSB()
			targets = r
			rank := 0
			if enemyOcc.Has(to) {
				rank = victimRank[p.board[to].Type()]
			}
			*moves = append(*moves, RankedMove{NewMove(from, to, Normal, NoPieceType), rank})
		}
	}
}

func addSliderMoves(moves *[]RankedMove, p *Position, pt PieceType, ownOcc, enemyOcc Bitboard, capturesOnly bool, attacks func(Square, Bitboard) Bitboard) {
	addJumperMoves(moves, p, pt, ownOcc, enemyOcc, capturesOnly, attacks)
}

func addPawnMoves(moves *[]RankedMove, from, to Square, lastRank Rank) {
	if to.Rank() == lastRank {
		for _, pt := range []PieceType{Queen, Rook, Bishop, Knight} {
			*moves = append(*moves, RankedMove{NewMove(from, to, Promotion, pt), 0})
		}
		return
	}
	*moves = append(*moves, RankedMove{NewMove(from, to, Normal, NoPieceType), 0})
}

func addPawnCaptureMoves(moves *[]RankedMove, p *Position, from, to Square, lastRank Rank) {
	rank := victimRank[p.board[to].Type()]
	if to.Rank() == lastRank {
		for _, pt := range []PieceType{Queen, Rook, Bishop, Knight} {
			*moves = append(*moves, RankedMove{NewMove(from, to, Promotion, pt), rank})
		}
		return
	}
	*moves = append(*moves, RankedMove{NewMove(from, to, Normal, NoPieceType), rank})
}

func (p *Position) addCastlingMoves(moves *[]RankedMove, us Color) {
	them := us.Opposite()
	rank := Rank1
	ooRight, oooRight := WhiteOO, WhiteOOO
	if us == Black {
		rank = Rank8
		ooRight, oooRight = BlackOO, BlackOOO
	}
	kingSq := NewSquare(FileE, rank)
	if p.kingSq[us] != kingSq || p.IsAttacked(kingSq, them) {
		return
	}
	if p.castling.Has(ooRight) {
		f, g, h := NewSquare(FileF, rank), NewSquare(FileG, rank), NewSquare(FileH, rank)
		if p.board[f] == NoPiece && p.board[g] == NoPiece && p.board[h].Type() == Rook &&
			!p.IsAttacked(f, them) && !p.IsAttacked(g, them) {
			*moves = append(*moves, RankedMove{NewMove(kingSq, g, Castling, NoPieceType), 0})
		}
	}
	if p.castling.Has(oooRight) {
		d, c, b, a := NewSquare(FileD, rank), NewSquare(FileC, rank), NewSquare(FileB, rank), NewSquare(FileA, rank)
		if p.board[d] == NoPiece && p.board[c] == NoPiece && p.board[b] == NoPiece && p.board[a].Type() == Rook &&
			!p.IsAttacked(d, them) && !p.IsAttacked(c, them) {
			*moves = append(*moves, RankedMove{NewMove(kingSq, c, Castling, NoPieceType), 0})
		}
	}
}

// Checkmate reports whether the side to move is in check with no legal
// moves.
func (p *Position) Checkmate() bool {
	return p.InCheck() && len(p.GenerateMoves(false)) == 0
}

// Stalemate reports whether the side to move is not in check but has no
// legal moves.
func (p *Position) Stalemate() bool {
	return !p.InCheck() && len(p.GenerateMoves(false)) == 0
}
