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

// NegamaxResult classifies where a candidate score falls relative to an
// AlphaBeta window, from the perspective of the node computing it.
type NegamaxResult int8

const (
	// Worse means the candidate did not raise alpha.
	Worse NegamaxResult = iota
	// Best means the candidate raised alpha (and is, so far, the best
	// move found at this node).
	Best
	// Pruned means the candidate met or exceeded beta: the caller can
	// stop searching siblings and fail high.
	Pruned
)

// AlphaBeta is the search window carried down the tree. It always holds
// alpha < beta from the perspective of the side to move at the node
// that owns it.
type AlphaBeta struct {
	Alpha Value
	Beta  Value
}

// NewAlphaBeta builds a window, clamping degenerate inputs is the
// caller's responsibility - this type does not validate alpha < beta so
// that null windows (beta == alpha+1) remain representable.
func NewAlphaBeta(alpha, beta Value) AlphaBeta {
	return AlphaBeta{Alpha: alpha, Beta: beta}
}

// Negate returns the window as seen by the opponent one ply down:
// negamax's alpha/beta swap-and-negate.
func (w AlphaBeta) Negate() AlphaBeta {
	return AlphaBeta{Alpha: -w.Beta, Beta: -w.Alpha}
}

// NullWindow returns a zero-width window just above alpha, used for PVS
// re-search probes.
func (w AlphaBeta) NullWindow() AlphaBeta {
	return AlphaBeta{Alpha: w.Alpha, Beta: w.Alpha + 1}
}

// IsNull reports whether w has zero width (beta == alpha+1).
func (w AlphaBeta) IsNull() bool {
	return w.Beta == w.Alpha+1
}

// Negamax classifies score against w and, when it raises alpha, returns
// the window updated with the new alpha so the caller can thread it into
// the next sibling search without a separate mutation step.
func (w AlphaBeta) Negamax(score Value) (NegamaxResult, AlphaBeta) {
	if score >= w.Beta {
		return Pruned, w
	}
	if score > w.Alpha {
		return Best, AlphaBeta{Alpha: score, Beta: w.Beta}
	}
	return Worse, w
}
