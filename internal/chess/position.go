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

import (
	"fmt"
	"strconv"
	"strings"
)

// StartFen is the FEN of the standard chess starting position.
const StartFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Position is a mailbox-plus-bitboard board representation. Bitboards
// are kept per color and per piece type for move generation; the
// mailbox array is authoritative for "what piece is on this square"
// lookups during generation and eval.
type Position struct {
	board      [64]Piece
	byColor    [2]Bitboard
	byType     [7]Bitboard // indexed by PieceType, 0 unused
	all        Bitboard
	sideToMove Color
	castling   CastlingRights
	epSquare   Square
	halfmove   int
	fullmove   int
	key        uint64
	kingSq     [2]Square
}

// UndoInfo carries what DoMove mutated so UndoMove can restore it
// without re-deriving it from the resulting position.
type UndoInfo struct {
	move         Move
	movedType    PieceType
	captured     Piece
	capturedAt   Square
	prevCastling CastlingRights
	prevEpSquare Square
	prevHalfmove int
	prevKey      uint64
}

// WasIrreversible reports whether the move this UndoInfo belongs to was
// a capture or a pawn move, i.e. it cannot recur and so resets any
// repetition count.
func (u UndoInfo) WasIrreversible() bool {
	return u.captured != NoPiece || u.movedType == Pawn
}

// WasCapture reports whether the move this UndoInfo belongs to captured
// a piece, including en passant.
func (u UndoInfo) WasCapture() bool {
	return u.captured != NoPiece
}

// NewPosition returns a position set to the standard starting position.
func NewPosition() *Position {
	p := &Position{}
	_ = p.SetFen(StartFen)
	return p
}

// HalfmoveClock returns the number of halfmoves since the last capture
// or pawn move, as used by the 50-move-rule draw check.
func (p *Position) HalfmoveClock() int {
	return p.halfmove
}

// Key returns the position's Zobrist hash.
func (p *Position) Key() uint64 {
	return p.key
}

// SideToMove returns the color to move.
func (p *Position) SideToMove() Color {
	return p.sideToMove
}

// PieceAt returns the piece on sq, or NoPiece.
func (p *Position) PieceAt(sq Square) Piece {
	return p.board[sq]
}

// Occupied returns the full board occupancy.
func (p *Position) Occupied() Bitboard {
	return p.all
}

// ByColor returns the occupancy bitboard for c.
func (p *Position) ByColor(c Color) Bitboard {
	return p.byColor[c]
}

// ByPieceType returns the occupancy bitboard for all pieces of type pt
// regardless of color.
func (p *Position) ByPieceType(pt PieceType) Bitboard {
	return p.byType[pt]
}

// KingSquare returns the square of c's king.
func (p *Position) KingSquare(c Color) Square {
	return p.kingSq[c]
}

// SetFen parses a FEN string and replaces the position's state with it.
func (p *Position) SetFen(fen string) error {
	fields := strings.Fields(strings.TrimSpace(fen))
	if len(fields) < 4 {
		return fmt.Errorf("chess: malformed FEN, expected at least 4 fields: %q", fen)
	}

	var board [64]Piece
	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return fmt.Errorf("chess: malformed FEN board, expected 8 ranks: %q", fen)
	}
	for i, rankStr := range ranks {
		rank := Rank(7 - i)
		file := FileA
		for _, ch := range rankStr {
			switch {
			case ch >= '1' && ch <= '8':
				file += File(ch - '0')
			default:
				pc, err := pieceFromChar(ch)
				if err != nil {
					return err
				}
				if file > FileH {
					return fmt.Errorf("chess: malformed FEN rank %q", rankStr)
				}
				board[NewSquare(file, rank)] = pc
				file++
			}
		}
	}

	var stm Color
	switch fields[1] {
	case "w":
		stm = White
	case "b":
		stm = Black
	default:
		return fmt.Errorf("chess: malformed FEN side to move: %q", fields[1])
	}

	var castling CastlingRights
	if fields[2] != "-" {
		for _, ch := range fields[2] {
			switch ch {
			case 'K':
				castling |= WhiteOO
			case 'Q':
				castling |= WhiteOOO
			case 'k':
				castling |= BlackOO
			case 'q':
				castling |= BlackOOO
			default:
				return fmt.Errorf("chess: malformed FEN castling field: %q", fields[2])
			}
		}
	}

	epSquare := NoSquare
	if fields[3] != "-" {
		epSquare = parseSquare(fields[3])
		if epSquare == NoSquare {
			return fmt.Errorf("chess: malformed FEN en passant field: %q", fields[3])
		}
	}

	halfmove := 0
	fullmove := 1
	if len(fields) >= 5 {
		if v, err := strconv.Atoi(fields[4]); err == nil {
			halfmove = v
		}
	}
	if len(fields) >= 6 {
		if v, err := strconv.Atoi(fields[5]); err == nil && v > 0 {
			fullmove = v
		}
	}

	p.board = board
	p.byColor = [2]Bitboard{}
	p.byType = [7]Bitboard{}
	p.all = EmptyBitboard
	for sq := Square(0); sq < 64; sq++ {
		pc := board[sq]
		if pc == NoPiece {
			continue
		}
		p.byColor[pc.Color()] = p.byColor[pc.Color()].Set(sq)
		p.byType[pc.Type()] = p.byType[pc.Type()].Set(sq)
		p.all = p.all.Set(sq)
		if pc.Type() == King {
			p.kingSq[pc.Color()] = sq
		}
	}
	p.sideToMove = stm
	p.castling = castling
	p.epSquare = epSquare
	p.halfmove = halfmove
	p.fullmove = fullmove
	p.key = p.computeKey()
	return nil
}

func pieceFromChar(ch rune) (Piece, error) {
	idx := strings.IndexRune(pieceChars, ch)
	if idx <= 0 {
		return NoPiece, fmt.Errorf("chess: unknown FEN piece character: %q", string(ch))
	}
	return Piece(idx), nil
}

func parseSquare(s string) Square {
	if len(s) != 2 {
		return NoSquare
	}
	f := s[0]
	r := s[1]
	if f < 'a' || f > 'h' || r < '1' || r > '8' {
		return NoSquare
	}
	return NewSquare(File(f-'a'), Rank(r-'1'))
}

// String renders the position as FEN.
func (p *Position) String() string {
	var sb strings.Builder
	for r := 7; r >= 0; r-- {
		empty := 0
		for f := 0; f < 8; f++ {
			sq := NewSquare(File(f), Rank(r))
			pc := p.board[sq]
			if pc == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(pc.Char())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r > 0 {
			sb.WriteByte('/')
		}
	}
	if p.sideToMove == White {
		sb.WriteString(" w ")
	} else {
		sb.WriteString(" b ")
	}
	if p.castling == NoCastling {
		sb.WriteString("-")
	} else {
		if p.castling.Has(WhiteOO) {
			sb.WriteString("K")
		}
		if p.castling.Has(WhiteOOO) {
			sb.WriteString("Q")
		}
		if p.castling.Has(BlackOO) {
			sb.WriteString("k")
		}
		if p.castling.Has(BlackOOO) {
			sb.WriteString("q")
		}
	}
	sb.WriteString(" ")
	if p.epSquare == NoSquare {
		sb.WriteString("-")
	} else {
		sb.WriteString(p.epSquare.String())
	}
	sb.WriteString(fmt.Sprintf(" %d %d", p.halfmove, p.fullmove))
	return sb.String()
}

func (p *Position) computeKey() uint64 {
	var key uint64
	for sq := Square(0); sq < 64; sq++ {
		pc := p.board[sq]
		if pc != NoPiece {
			key ^= zobristPiece[pc][sq]
		}
	}
	key ^= zobristCastle[p.castling]
	if p.epSquare != NoSquare {
		key ^= zobristEp[p.epSquare.File()]
	}
	if p.sideToMove == Black {
		key ^= zobristSideKey
	}
	return key
}

func (p *Position) place(pc Piece, sq Square) {
	p.board[sq] = pc
	p.byColor[pc.Color()] = p.byColor[pc.Color()].Set(sq)
	p.byType[pc.Type()] = p.byType[pc.Type()].Set(sq)
	p.all = p.all.Set(sq)
	p.key ^= zobristPiece[pc][sq]
}

func (p *Position) remove(sq Square) Piece {
	pc := p.board[sq]
	if pc == NoPiece {
		return NoPiece
	}
	p.board[sq] = NoPiece
	p.byColor[pc.Color()] = p.byColor[pc.Color()].Clear(sq)
	p.byType[pc.Type()] = p.byType[pc.Type()].Clear(sq)
	p.all = p.all.Clear(sq)
	p.key ^= zobristPiece[pc][sq]
	return pc
}

// DoMove applies m (assumed pseudo-legal) and returns the information
// needed to undo it.
func (p *Position) DoMove(m Move) UndoInfo {
	undo := UndoInfo{
		move:         m,
		prevCastling: p.castling,
		prevEpSquare: p.epSquare,
		prevHalfmove: p.halfmove,
		prevKey:      p.key,
		capturedAt:   NoSquare,
	}

	from, to := m.From(), m.To()
	moving := p.board[from]
	us := p.sideToMove
	undo.movedType = moving.Type()

	p.key ^= zobristCastle[p.castling]
	if p.epSquare != NoSquare {
		p.key ^= zobristEp[p.epSquare.File()]
	}

	captureSq := to
	if m.MoveType() == EnPassant {
		dir := 1
		if us == Black {
			dir = -1
		}
		captureSq = NewSquare(to.File(), to.Rank()-Rank(dir))
	}
	if m.MoveType() == EnPassant || p.board[to] != NoPiece {
		undo.captured = p.remove(captureSq)
		undo.capturedAt = captureSq
	}

	p.remove(from)
	if m.MoveType() == Promotion {
		p.place(NewPiece(us, m.PromotionType()), to)
	} else {
		p.place(moving, to)
	}

	if moving.Type() == King {
		p.kingSq[us] = to
	}

	if m.MoveType() == Castling {
		p.doCastlingRookMove(us, to)
	}

	p.epSquare = NoSquare
	if moving.Type() == Pawn {
		df := int(to.Rank()) - int(from.Rank())
		if df == 2 || df == -2 {
			epRank := (to.Rank() + from.Rank()) / 2
			p.epSquare = NewSquare(to.File(), epRank)
		}
	}

	p.castling &^= castlingLost(from) | castlingLost(to)

	if moving.Type() == Pawn || undo.captured != NoPiece {
		p.halfmove = 0
	} else {
		p.halfmove++
	}
	if us == Black {
		p.fullmove++
	}

	p.key ^= zobristCastle[p.castling]
	if p.epSquare != NoSquare {
		p.key ^= zobristEp[p.epSquare.File()]
	}
	p.key ^= zobristSideKey
	p.sideToMove = us.Opposite()

	return undo
}

func (p *Position) doCastlingRookMove(us Color, kingTo Square) {
	rank := Rank1
	if us == Black {
		rank = Rank8
	}
	if kingTo.File() == FileG {
		rookFrom := NewSquare(FileH, rank)
		rookTo := NewSquare(FileF, rank)
		p.place(p.remove(rookFrom), rookTo)
	} else {
		rookFrom := NewSquare(FileA, rank)
		rookTo := NewSquare(FileD, rank)
		p.place(p.remove(rookFrom), rookTo)
	}
}

func (p *Position) undoCastlingRookMove(us Color, kingTo Square) {
	rank := Rank1
	if us == Black {
		rank = Rank8
	}
	if kingTo.File() == FileG {
		rookFrom := NewSquare(FileF, rank)
		rookTo := NewSquare(FileH, rank)
		p.place(p.remove(rookFrom), rookTo)
	} else {
		rookFrom := NewSquare(FileD, rank)
		rookTo := NewSquare(FileA, rank)
		p.place(p.remove(rookFrom), rookTo)
	}
}

func castlingLost(sq Square) CastlingRights {
	switch sq {
	case NewSquare(FileE, Rank1):
		return WhiteOO | WhiteOOO
	case NewSquare(FileH, Rank1):
		return WhiteOO
	case NewSquare(FileA, Rank1):
		return WhiteOOO
	case NewSquare(FileE, Rank8):
		return BlackOO | BlackOOO
	case NewSquare(FileH, Rank8):
		return BlackOO
	case NewSquare(FileA, Rank8):
		return BlackOOO
	default:
		return NoCastling
	}
}

// UndoMove reverts a move previously applied with DoMove.
func (p *Position) UndoMove(u UndoInfo) {
	us := p.sideToMove.Opposite()
	from, to := u.move.From(), u.move.To()

	if u.move.MoveType() == Castling {
		p.undoCastlingRookMove(us, to)
	}

	moved := p.remove(to)
	if u.move.MoveType() == Promotion {
		p.place(NewPiece(us, Pawn), from)
	} else {
		p.place(moved, from)
	}
	if moved.Type() == King {
		p.kingSq[us] = from
	}

	if u.captured != NoPiece {
		p.place(u.captured, u.capturedAt)
	}

	p.castling = u.prevCastling
	p.epSquare = u.prevEpSquare
	p.halfmove = u.prevHalfmove
	p.key = u.prevKey
	if us == Black {
		p.fullmove--
	}
	p.sideToMove = us
}

// DoNullMove makes a null move (passes the turn without moving a piece),
// used by the search core's null-move pruning.
func (p *Position) DoNullMove() UndoInfo {
	undo := UndoInfo{prevEpSquare: p.epSquare, prevKey: p.key, capturedAt: NoSquare}
	if p.epSquare != NoSquare {
		p.key ^= zobristEp[p.epSquare.File()]
	}
	p.epSquare = NoSquare
	p.key ^= zobristSideKey
	p.sideToMove = p.sideToMove.Opposite()
	return undo
}

// UndoNullMove reverts a null move.
func (p *Position) UndoNullMove(u UndoInfo) {
	p.sideToMove = p.sideToMove.Opposite()
	p.key = u.prevKey
	p.epSquare = u.prevEpSquare
}

// IsAttacked reports whether sq is attacked by any piece of color by.
func (p *Position) IsAttacked(sq Square, by Color) bool {
	occ := p.all
	if KnightAttacks(sq)&p.byType[Knight]&p.byColor[by] != 0 {
		return true
	}
	if KingAttacks(sq)&p.byType[King]&p.byColor[by] != 0 {
		return true
	}
	// PawnAttacks(by, s) gives squares a by-colored pawn on s attacks;
	// sq is attacked by a by-pawn if that pawn's attack set contains sq,
	// which is symmetric to asking whether a pawn of the opposite color
	// placed on sq would attack one of by's pawns' squares.
	if PawnAttacks(by.Opposite(), sq)&p.byType[Pawn]&p.byColor[by] != 0 {
		return true
	}
	if BishopAttacks(sq, occ)&(p.byType[Bishop]|p.byType[Queen])&p.byColor[by] != 0 {
		return true
	}
	if RookAttacks(sq, occ)&(p.byType[Rook]|p.byType[Queen])&p.byColor[by] != 0 {
		return true
	}
	return false
}

// InCheck reports whether the side to move's king is attacked.
func (p *Position) InCheck() bool {
	return p.IsAttacked(p.kingSq[p.sideToMove], p.sideToMove.Opposite())
}
