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

package eval

import "github.com/corvidchess/corvid/internal/chess"

// materialValue is the classic centipawn value of each piece type.
var materialValue = [chess.PieceTypeLength]int16{
	chess.NoPieceType: 0,
	chess.Pawn:        100,
	chess.Knight:      320,
	chess.Bishop:      330,
	chess.Rook:        500,
	chess.Queen:       900,
	chess.King:        0,
}

// phaseWeight is how much each piece type (other than king and pawn)
// contributes to the game-phase counter that Tapered blends on.
var phaseWeight = [chess.PieceTypeLength]int{
	chess.Knight: 1,
	chess.Bishop: 1,
	chess.Rook:   2,
	chess.Queen:  4,
}
