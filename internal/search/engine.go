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

import (
	"errors"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/corvidchess/corvid/internal/chess"
	"github.com/corvidchess/corvid/internal/util"
)

// ErrSearchRunning is returned by Engine.Go when a search is already in
// progress - the Engine's own weight-1 semaphore holds a second caller
// off rather than starting a concurrent search.
var ErrSearchRunning = errors.New("search: a search is already running")

// ErrTerminalPosition is returned when the root position is already
// checkmate, stalemate, or a declared draw: there is nothing left for
// iterative deepening to deepen.
var ErrTerminalPosition = errors.New("search: root position is terminal")

// ErrDeadline is returned by a single iterative-deepening step when the
// deadline fired before that depth completed. The caller discards the
// partial iteration and keeps the previous depth's result.
var ErrDeadline = errors.New("search: deadline fired before depth completed")

// Progress is called once per completed iterative-deepening depth (and
// once more for the final result), mirroring the fields a UCI "info"
// line needs.
type Progress struct {
	Depth    Depth
	SelDepth int
	Score    Value
	Nodes    uint64
	Elapsed  time.Duration
	Hashfull int
	PV       []chess.Move
}

// ProgressFunc receives one Progress report per completed depth.
type ProgressFunc func(Progress)

// Engine is the search façade described by spec.md §4.4: iterative
// deepening driving ab_search to successively greater depths, node and
// hashfull accounting, killer-move tables, and principal-variation
// recovery, all built on a single shared transposition table. Only one
// search runs at a time; Go acquires a weight-1 semaphore for its
// duration the same way the teacher's own Search.initSemaphore/
// isRunning pair gates its worker goroutine (see SPEC_FULL.md §1.6).
type Engine struct {
	tt   *TtTable
	eval Evaluator

	sem     *semaphore.Weighted
	running *util.Bool
	stop    *util.Bool

	deadline   time.Time
	noDeadline bool

	nodes    uint64
	seldepth int

	killers [DepthMax + 1][2]chess.Move
}

// NewEngine builds an Engine with a ttSizeMB-sized transposition table
// (PV-protection cache capped at pvCap entries) and the given static
// evaluator, which satisfies Evaluator.
func NewEngine(ttSizeMB, pvCap int, eval Evaluator) *Engine {
	return &Engine{
		tt:      NewTtTable(ttSizeMB, pvCap),
		eval:    eval,
		sem:     semaphore.NewWeighted(1),
		running: util.NewBool(false),
		stop:    util.NewBool(false),
	}
}

// IsRunning reports whether a search is currently in progress.
func (e *Engine) IsRunning() bool {
	return e.running.Load()
}

// Stop triggers cancellation of the search in progress - the UCI "stop"
// command's effect. A no-op if no search is running; the next deadline
// poll inside ab_search observes it and unwinds the recursion.
func (e *Engine) Stop() {
	e.stop.Store(true)
}

// Nodes returns the number of nodes visited by the most recently
// started search.
func (e *Engine) Nodes() uint64 {
	return e.nodes
}

// HashfullPermille reports the primary transposition cache's fill
// level in UCI "info hashfull" per-mille units.
func (e *Engine) HashfullPermille() int {
	return e.tt.HashfullPermille()
}

// ResizeTT rebuilds the transposition table at a new size, discarding
// its contents - the UCI "setoption name Hash value N" handler's effect.
func (e *Engine) ResizeTT(sizeMB int) {
	e.tt = NewTtTable(sizeMB, e.tt.pvCap)
}

// ClearTT empties the transposition table without changing its size -
// the UCI "ucinewgame" handler's effect.
func (e *Engine) ClearTT() {
	e.tt.Clear()
}

// StartNewSearch resets per-search counters, clears the cancellation
// flag, advances the table's generation, and clears the killer-move
// tables. Called once at the top of Go, before the first depth.
func (e *Engine) StartNewSearch() {
	e.nodes = 0
	e.seldepth = 0
	e.stop.Store(false)
	e.tt.NewGeneration()
	for i := range e.killers {
		e.killers[i][0] = chess.MoveNone
		e.killers[i][1] = chess.MoveNone
	}
}

// outOfTime is the deadline poll taken at the top of every ab_search
// call: cooperative cancellation via the stop flag, or an ordinary
// wall-clock deadline unless the search was started with Infinite.
func (e *Engine) outOfTime() bool {
	if e.stop.Load() {
		return true
	}
	if e.noDeadline {
		return false
	}
	return !e.deadline.IsZero() && time.Now().After(e.deadline)
}

// killerMoves returns the two killer moves recorded for ply, tried
// after captures and before remaining quiet moves by the ordered move
// generator.
func (e *Engine) killerMoves(ply int) []chess.Move {
	if ply < 0 || ply > int(DepthMax) {
		return nil
	}
	return e.killers[ply][:]
}

// recordKiller remembers m as a killer at ply: a quiet move that caused
// a beta cutoff, and so is worth trying early in sibling nodes at the
// same ply. Keeps the two most recent distinct killers, newest first.
func (e *Engine) recordKiller(ply int, m chess.Move) {
	if ply < 0 || ply > int(DepthMax) {
		return
	}
	if e.killers[ply][0] == m {
		return
	}
	e.killers[ply][1] = e.killers[ply][0]
	e.killers[ply][0] = m
}

// MinSearch returns the root's transposition table entry at depth >= 1,
// running a depth-1 full-width search first if the table has nothing
// usable yet for this position. It never fails: a depth-1 search has an
// effectively infinite deadline.
func (e *Engine) MinSearch(pos *chess.Position, hist *BoardHistory) TTableEntry {
	key := pos.Key()
	if entry, ok := e.tt.Probe(key); ok && entry.Kind != LeafNode && Depth(entry.Depth) >= 1 {
		return entry
	}
	if entry, ok := e.tt.ProbePV(key); ok && entry.Kind != LeafNode && Depth(entry.Depth) >= 1 {
		return entry
	}

	savedNoDeadline, savedDeadline := e.noDeadline, e.deadline
	e.noDeadline = true
	e.stop.Store(false)
	w := NewAlphaBeta(-Mate, Mate)
	e.abSearch(pos, hist, 1, 0, w, true, true)
	e.noDeadline, e.deadline = savedNoDeadline, savedDeadline

	if entry, ok := e.tt.Probe(key); ok {
		return entry
	}
	if entry, ok := e.tt.ProbePV(key); ok {
		return entry
	}
	return TTableEntry{}
}

// IterativeDeepeningSearch runs one additional depth of ab_search past
// whatever the transposition table already holds for the root,
// following spec.md §4.4 exactly: read the root entry (via MinSearch
// when the table has nothing usable), refuse to deepen a terminal
// position, search one ply deeper with the full window, and - on
// success - promote the new PV into the PV-protection cache before
// returning it. On a deadline, the prior PV is left untouched and
// ErrDeadline is returned.
func (e *Engine) IterativeDeepeningSearch(pos *chess.Position, hist *BoardHistory) (TTableEntry, error) {
	root := e.MinSearch(pos, hist)
	if root.Kind == EdgeNode {
		return root, ErrTerminalPosition
	}

	targetDepth := Depth(root.Depth) + 1
	if targetDepth < 1 {
		targetDepth = 1
	}

	w := NewAlphaBeta(-Mate, Mate)
	if _, ok := e.abSearch(pos, hist, targetDepth, 0, w, true, true); !ok {
		return TTableEntry{}, ErrDeadline
	}

	key := pos.Key()
	entry, ok := e.tt.Probe(key)
	if !ok {
		entry, ok = e.tt.ProbePV(key)
	}
	if !ok {
		return TTableEntry{}, ErrDeadline
	}
	e.promotePV(pos)
	return entry, nil
}

// promotePV walks the principal variation starting at root through the
// primary transposition cache and mirrors every node it passes through
// into the PV-protection cache, so a later slot replacement in the
// primary cache can never strand get_pv_line without a way to recover
// the line that iterative deepening just found. Bounded by a
// visited-key set in case of a transposition cycle.
func (e *Engine) promotePV(root *chess.Position) {
	pos := *root
	visited := make(map[uint64]bool, DepthMax)
	for i := 0; i < int(DepthMax); i++ {
		key := pos.Key()
		if visited[key] {
			return
		}
		visited[key] = true

		entry, ok := e.tt.Probe(key)
		if !ok {
			return
		}
		e.tt.StorePV(entry)
		if entry.Kind == EdgeNode {
			return
		}

		rm, ok := entry.Moves.Peek()
		if !ok {
			return
		}
		pos.DoMove(rm.Move)
	}
}

// PVLine is get_pv_line: a principal variation recovered by repeatedly
// looking up the current position in the transposition table (primary,
// then PV cache), yielding its best move, and applying that move,
// stopping on a transposition cycle, a miss, or a terminal node.
func (e *Engine) PVLine(root *chess.Position) []chess.Move {
	pos := *root
	visited := make(map[uint64]bool, DepthMax)
	var line []chess.Move
	for i := 0; i < int(DepthMax); i++ {
		key := pos.Key()
		if visited[key] {
			break
		}
		visited[key] = true

		entry, ok := e.tt.Probe(key)
		if !ok {
			entry, ok = e.tt.ProbePV(key)
		}
		if !ok {
			break
		}
		rm, ok := entry.Moves.Peek()
		if !ok {
			break
		}
		line = append(line, rm.Move)
		if entry.Kind == EdgeNode {
			break
		}
		pos.DoMove(rm.Move)
	}
	return line
}

// BestMove returns min_search(history).peek(): the best move known for
// pos without deepening any further, or ok == false if the root has no
// legal move (checkmate or stalemate).
func (e *Engine) BestMove(pos *chess.Position, hist *BoardHistory) (chess.Move, bool) {
	rm, ok := e.MinSearch(pos, hist).Moves.Peek()
	if !ok {
		return chess.MoveNone, false
	}
	return rm.Move, true
}

// Go runs the full iterative-deepening loop: StartNewSearch, then
// repeated IterativeDeepeningSearch calls at increasing depth until the
// deadline fires, a depth or node limit is reached, or the position is
// proven terminal, reporting each completed depth through progress.
// Only one Go call runs at a time across an Engine; a concurrent call
// returns ErrSearchRunning immediately.
func (e *Engine) Go(pos *chess.Position, hist *BoardHistory, limits *Limits, progress ProgressFunc) (chess.Move, error) {
	if !e.sem.TryAcquire(1) {
		return chess.MoveNone, ErrSearchRunning
	}
	defer e.sem.Release(1)
	e.running.Store(true)
	defer e.running.Store(false)

	e.StartNewSearch()
	e.noDeadline = limits.Infinite
	e.deadline = time.Time{}
	if !limits.Infinite && (limits.TimeControl || limits.MoveTime > 0) {
		e.deadline = time.Now().Add(limits.TimeBudget(pos.SideToMove()))
	}

	maxDepth := DepthMax
	if limits.Depth > 0 && Depth(limits.Depth) < maxDepth {
		maxDepth = Depth(limits.Depth)
	}

	start := time.Now()
	var last TTableEntry
	haveResult := false

	for {
		entry, err := e.IterativeDeepeningSearch(pos, hist)
		if err != nil {
			break
		}
		last = entry
		haveResult = true

		if progress != nil {
			progress(Progress{
				Depth:    Depth(entry.Depth),
				SelDepth: e.seldepth,
				Score:    Mark(entry.Score),
				Nodes:    e.nodes,
				Elapsed:  time.Since(start),
				Hashfull: e.tt.HashfullPermille(),
				PV:       e.PVLine(pos),
			})
		}

		if entry.Kind == EdgeNode {
			break
		}
		if Depth(entry.Depth) >= maxDepth {
			break
		}
		if limits.Nodes > 0 && e.nodes >= limits.Nodes {
			break
		}
		if e.outOfTime() {
			break
		}
	}

	if !haveResult {
		return chess.MoveNone, ErrTerminalPosition
	}
	rm, ok := last.Moves.Peek()
	if !ok {
		return chess.MoveNone, ErrTerminalPosition
	}
	return rm.Move, nil
}
