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

import "github.com/corvidchess/corvid/internal/config"

// BoardHistory tracks the Zobrist keys of positions reached on the
// current search path (and the game so far, when seeded by the UCI
// front-end) to detect draws by repetition. Its capacity defaults to
// config.Settings.Search.HistoryCap but is never below 9, since a
// repetition needs at least that many plies to be possible at all.
//
// Push only extends the ring when the move being recorded is reversible
// (no capture, no pawn move): an irreversible move cannot be undone by
// repetition, so any key recorded before it can never recur and the ring
// is cleared instead of grown. This mirrors the copy-on-push discipline
// of a history that chains on reversible moves and resets on capture or
// pawn pushes, avoiding the need to scan past an irreversible move when
// checking for a draw.
type BoardHistory struct {
	keys  []uint64
	marks []truncation
}

// truncation records, for one Push, whether it truncated the ring and
// the prefix it truncated away - the ring is shared across every
// sibling move at a node, so truncation must be undone on the matching
// Pop instead of just shrinking by one, or a later sibling would search
// with the earlier siblings' truncated prefix missing.
type truncation struct {
	truncated bool
	prefix    []uint64
}

// NewBoardHistory returns an empty history with the configured capacity.
func NewBoardHistory() *BoardHistory {
	cap := config.Settings.Search.HistoryCap
	if cap < 9 {
		cap = 9
	}
	return &BoardHistory{keys: make([]uint64, 0, cap)}
}

// Push records key as the position reached after a move. irreversible
// must be true iff that move was a capture or a pawn move.
func (h *BoardHistory) Push(key uint64, irreversible bool) {
	m := truncation{truncated: irreversible}
	if irreversible {
		m.prefix = append([]uint64(nil), h.keys...)
		h.keys = h.keys[:0]
	}
	h.keys = append(h.keys, key)
	h.marks = append(h.marks, m)
}

// Pop removes the most recently pushed key, undoing the effect of the
// matching Push. It is the caller's responsibility to pair every Push
// with exactly one Pop in LIFO order as moves are undone; if that Push
// truncated the ring, Pop restores the truncated prefix so the next
// sibling move sees the same history the truncated one did. Pop on an
// empty history is a no-op rather than a panic - the search never walks
// back across the root.
func (h *BoardHistory) Pop() {
	if len(h.marks) == 0 {
		return
	}
	m := h.marks[len(h.marks)-1]
	h.marks = h.marks[:len(h.marks)-1]
	if m.truncated {
		h.keys = m.prefix
		return
	}
	if len(h.keys) > 0 {
		h.keys = h.keys[:len(h.keys)-1]
	}
}

// Last returns the most recently pushed key. ok is false when empty.
func (h *BoardHistory) Last() (uint64, bool) {
	if len(h.keys) == 0 {
		return 0, false
	}
	return h.keys[len(h.keys)-1], true
}

// IsDraw reports whether key occurs at least three times in the
// history, i.e. the position just pushed (the tail) had already
// occurred twice earlier and is now a third occurrence.
func (h *BoardHistory) IsDraw(key uint64) bool {
	count := 0
	for _, k := range h.keys {
		if k == key {
			count++
			if count >= 3 {
				return true
			}
		}
	}
	return false
}

// Len returns the number of keys currently tracked.
func (h *BoardHistory) Len() int {
	return len(h.keys)
}
