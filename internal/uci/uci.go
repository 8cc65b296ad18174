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

// Package uci contains the Handler data structure and functionality to
// handle the UCI protocol communication between the Chess User Interface
// and the chess engine.
package uci

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/corvidchess/corvid/internal/chess"
	"github.com/corvidchess/corvid/internal/config"
	"github.com/corvidchess/corvid/internal/eval"
	"github.com/corvidchess/corvid/internal/logging"
	"github.com/corvidchess/corvid/internal/search"
	"github.com/corvidchess/corvid/internal/util"
)

var log = logging.GetLog("uci")

const engineName = "corvid"
const engineAuthor = "corvid contributors"

// Handler owns the engine, the current position and board history, and
// the bufio streams the UCI protocol is spoken over. Create one with
// NewHandler(); Loop() then reads commands from InIo until "quit".
type Handler struct {
	InIo  *bufio.Scanner
	OutIo *bufio.Writer

	engine  *search.Engine
	pos     *chess.Position
	history *search.BoardHistory
}

// NewHandler builds a Handler wired to stdin/stdout with a fresh Engine
// at the configured transposition table size, positioned at the
// standard starting position.
func NewHandler() *Handler {
	return &Handler{
		InIo:    bufio.NewScanner(os.Stdin),
		OutIo:   bufio.NewWriter(os.Stdout),
		engine:  search.NewEngine(config.Settings.Search.TTSize, config.Settings.Search.PVCacheCap, eval.Evaluate),
		pos:     chess.NewPosition(),
		history: search.NewBoardHistory(),
	}
}

// Loop reads and dispatches commands from InIo until "quit" is received
// or the input stream closes.
func (h *Handler) Loop() {
	for h.InIo.Scan() {
		if h.handle(h.InIo.Text()) {
			return
		}
	}
	if err := h.InIo.Err(); err != nil {
		log.Errorf("stdin read error: %v", err)
		os.Exit(1)
	}
}

var whitespace = regexp.MustCompile(`\s+`)

// handle dispatches a single line. It returns true iff the command was
// "quit" and the loop should stop.
func (h *Handler) handle(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	tokens := whitespace.Split(line, -1)
	switch tokens[0] {
	case "uci":
		h.send("id name " + engineName)
		h.send("id author " + engineAuthor)
		h.send("uciok")
	case "isready":
		h.send("readyok")
	case "ucinewgame":
		h.engine.ClearTT()
		h.history = search.NewBoardHistory()
	case "position":
		h.positionCommand(tokens)
	case "go":
		h.goCommand(tokens)
	case "stop":
		h.engine.Stop()
	case "quit":
		return true
	case "setoption":
		h.setOptionCommand(tokens)
	default:
		log.Warningf("unknown command ignored: %s", line)
	}
	return false
}

// positionCommand implements "position startpos|fen <fen> [moves ...]".
// A malformed command or an illegal move is logged and otherwise
// ignored, leaving the position unchanged past the bad token.
func (h *Handler) positionCommand(tokens []string) {
	if len(tokens) < 2 {
		log.Warningf("malformed position command: %v", tokens)
		return
	}

	i := 1
	var fen string
	switch tokens[1] {
	case "startpos":
		fen = chess.StartFen
		i = 2
	case "fen":
		var b strings.Builder
		i = 2
		for i < len(tokens) && tokens[i] != "moves" {
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(tokens[i])
			i++
		}
		fen = b.String()
	default:
		log.Warningf("malformed position command: %v", tokens)
		return
	}

	newPos := chess.NewPosition()
	if err := newPos.SetFen(fen); err != nil {
		log.Warningf("malformed FEN %q ignored: %v", fen, err)
		return
	}
	newHistory := search.NewBoardHistory()

	if i < len(tokens) {
		if tokens[i] != "moves" {
			log.Warningf("malformed position command: %v", tokens)
			return
		}
		i++
		for ; i < len(tokens); i++ {
			m, ok := findMove(newPos, tokens[i])
			if !ok {
				log.Warningf("illegal move %q ignored; position left unchanged past it", tokens[i])
				return
			}
			u := newPos.DoMove(m)
			newHistory.Push(newPos.Key(), u.WasIrreversible())
		}
	}

	h.pos = newPos
	h.history = newHistory
}

// findMove resolves a long-algebraic UCI token against pos's legal
// moves, the front-end's validation boundary before a move is made.
func findMove(pos *chess.Position, uciMove string) (chess.Move, bool) {
	for _, rm := range pos.GenerateMoves(false) {
		if rm.Move.String() == uciMove {
			return rm.Move, true
		}
	}
	return chess.MoveNone, false
}

// goCommand parses search limits and runs Engine.Go in its own
// goroutine so "stop" and further protocol input are not blocked.
func (h *Handler) goCommand(tokens []string) {
	limits, ok := parseLimits(tokens)
	if !ok {
		return
	}
	pos, hist := h.pos, h.history
	go func() {
		start := time.Now()
		best, err := h.engine.Go(pos, hist, limits, func(p search.Progress) {
			h.sendInfo(p, start)
		})
		if err != nil {
			log.Warningf("search ended without a move: %v", err)
			h.send("bestmove 0000")
			return
		}
		h.send("bestmove " + best.StringUci())
	}()
}

func (h *Handler) sendInfo(p search.Progress, start time.Time) {
	nps := util.Nps(p.Nodes, p.Elapsed)
	var pv strings.Builder
	for i, m := range p.PV {
		if i > 0 {
			pv.WriteByte(' ')
		}
		pv.WriteString(m.StringUci())
	}
	h.send(fmt.Sprintf(
		"info depth %d seldepth %d multipv 1 score %s nodes %d nps %d hashfull %d tbhits 0 time %d pv %s",
		p.Depth, p.SelDepth, p.Score.String(), p.Nodes, nps, p.Hashfull, p.Elapsed.Milliseconds(), pv.String()))
}

// parseLimits implements the "go" subcommand grammar from spec.md §6.
// A malformed numeric token is logged and the command ignored.
func parseLimits(tokens []string) (*search.Limits, bool) {
	limits := search.NewSearchLimits()
	for i := 1; i < len(tokens); i++ {
		switch tokens[i] {
		case "infinite":
			limits.Infinite = true
		case "depth":
			i++
			if i >= len(tokens) {
				log.Warningf("go command malformed: missing depth value")
				return nil, false
			}
			d, err := strconv.Atoi(tokens[i])
			if err != nil {
				log.Warningf("go command malformed: invalid depth %q", tokens[i])
				return nil, false
			}
			limits.Depth = d
		case "movetime":
			i++
			ms, ok := parseMs(tokens, i)
			if !ok {
				return nil, false
			}
			limits.MoveTime = ms
		case "wtime":
			i++
			ms, ok := parseMs(tokens, i)
			if !ok {
				return nil, false
			}
			limits.WhiteTime = ms
			limits.TimeControl = true
		case "btime":
			i++
			ms, ok := parseMs(tokens, i)
			if !ok {
				return nil, false
			}
			limits.BlackTime = ms
			limits.TimeControl = true
		case "winc":
			i++
			ms, ok := parseMs(tokens, i)
			if !ok {
				return nil, false
			}
			limits.WhiteInc = ms
		case "binc":
			i++
			ms, ok := parseMs(tokens, i)
			if !ok {
				return nil, false
			}
			limits.BlackInc = ms
		case "movestogo":
			i++
			if i >= len(tokens) {
				log.Warningf("go command malformed: missing movestogo value")
				return nil, false
			}
			n, err := strconv.Atoi(tokens[i])
			if err != nil {
				log.Warningf("go command malformed: invalid movestogo %q", tokens[i])
				return nil, false
			}
			limits.MovesToGo = n
		default:
			log.Warningf("go command: ignoring unsupported subcommand %q", tokens[i])
		}
	}
	return limits, true
}

func parseMs(tokens []string, i int) (time.Duration, bool) {
	if i >= len(tokens) {
		log.Warningf("go command malformed: missing numeric value")
		return 0, false
	}
	n, err := strconv.ParseInt(tokens[i], 10, 64)
	if err != nil {
		log.Warningf("go command malformed: invalid numeric value %q", tokens[i])
		return 0, false
	}
	return time.Duration(n) * time.Millisecond, true
}

// setOptionCommand supports "setoption name Hash value <MiB>", the only
// tunable spec.md §6 names.
func (h *Handler) setOptionCommand(tokens []string) {
	if len(tokens) < 5 || tokens[1] != "name" || tokens[3] != "value" {
		log.Warningf("setoption command malformed: %v", tokens)
		return
	}
	name := tokens[2]
	value := tokens[4]
	switch strings.ToLower(name) {
	case "hash":
		mb, err := strconv.Atoi(value)
		if err != nil {
			log.Warningf("setoption Hash malformed value %q", value)
			return
		}
		h.engine.ResizeTT(mb)
	default:
		log.Warningf("setoption: unknown option %q ignored", name)
	}
}

// send writes one protocol line, flushed immediately - the UCI
// front-end must flush per line so the GUI sees each response promptly.
func (h *Handler) send(s string) {
	_, _ = h.OutIo.WriteString(s + "\n")
	_ = h.OutIo.Flush()
}
