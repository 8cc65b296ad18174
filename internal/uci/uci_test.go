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

package uci

import (
	"bufio"
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/corvidchess/corvid/internal/chess"
	"github.com/corvidchess/corvid/internal/config"
)

func init() {
	config.Setup()
}

// syncBuffer guards a bytes.Buffer with a mutex so a test goroutine can
// read it safely while the search goroutine started by goCommand is
// still writing.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (s *syncBuffer) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Write(p)
}

func (s *syncBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.String()
}

func newTestHandler() (*Handler, *syncBuffer) {
	h := NewHandler()
	buf := new(syncBuffer)
	h.OutIo = bufio.NewWriter(buf)
	return h, buf
}

func TestHandler_UciCommand(t *testing.T) {
	h, buf := newTestHandler()
	h.handle("uci")
	out := buf.String()
	assert.Contains(t, out, "id name corvid")
	assert.Contains(t, out, "uciok")
}

func TestHandler_IsReady(t *testing.T) {
	h, buf := newTestHandler()
	h.handle("isready")
	assert.Contains(t, buf.String(), "readyok")
}

func TestHandler_Quit(t *testing.T) {
	h, _ := newTestHandler()
	assert.True(t, h.handle("quit"))
	assert.False(t, h.handle("isready"))
}

func TestHandler_PositionStartpos(t *testing.T) {
	h, _ := newTestHandler()
	h.handle("position startpos")
	assert.Equal(t, chess.StartFen, h.pos.String())
}

func TestHandler_PositionWithMoves(t *testing.T) {
	h, _ := newTestHandler()
	h.handle("position startpos moves e2e4 e7e5 g1f3 b8c6")
	assert.Equal(t,
		"r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3",
		h.pos.String())
}

func TestHandler_PositionFen(t *testing.T) {
	h, _ := newTestHandler()
	fen := "8/8/8/8/8/8/8/K6k w - - 0 1"
	h.handle("position fen " + fen)
	assert.Equal(t, fen, h.pos.String())
}

func TestHandler_IllegalMoveLeavesPositionUnchanged(t *testing.T) {
	h, _ := newTestHandler()
	h.handle("position startpos moves e2e5")
	assert.Equal(t, chess.StartFen, h.pos.String())
}

func TestHandler_SetOptionHash(t *testing.T) {
	h, _ := newTestHandler()
	h.handle("setoption name Hash value 8")
	assert.NotNil(t, h.engine)
}

func TestHandler_Loop(t *testing.T) {
	h := NewHandler()
	h.InIo = bufio.NewScanner(strings.NewReader("uci\nquit\n"))
	buf := new(bytes.Buffer)
	h.OutIo = bufio.NewWriter(buf)
	h.Loop()
	assert.Contains(t, buf.String(), "uciok")
}

func TestHandler_GoAndStop(t *testing.T) {
	h, buf := newTestHandler()
	h.handle("position startpos")
	h.handle("go infinite")
	time.Sleep(20 * time.Millisecond)
	h.handle("stop")

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if strings.Contains(buf.String(), "bestmove") {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	assert.Contains(t, buf.String(), "bestmove")
}

func TestParseLimits_MalformedDepthIgnoresGo(t *testing.T) {
	_, ok := parseLimits([]string{"go", "depth"})
	assert.False(t, ok)
}

func TestParseLimits_WtimeBtime(t *testing.T) {
	limits, ok := parseLimits([]string{"go", "wtime", "60000", "btime", "60000", "winc", "1000", "binc", "1000"})
	assert.True(t, ok)
	assert.True(t, limits.TimeControl)
	assert.Equal(t, 60*time.Second, limits.WhiteTime)
	assert.Equal(t, time.Second, limits.WhiteInc)
}
