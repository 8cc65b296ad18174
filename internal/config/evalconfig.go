//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package config

// evalConfiguration holds the tunable weights of the static evaluator.
// Mobility, king-safety and pawn-structure terms that the teacher's own
// evaluator carries are not present here: this engine's evaluator is
// the PeSTO-style material+PSQT black box the search core expects, not
// a full hand-tuned term set, so there is nothing for those knobs to
// control.
type evalConfiguration struct {
	Tempo int16

	UsePSQT     bool
	UseMaterial bool

	// PhaseMax is the game-phase value of the starting position (two
	// knights, two bishops, two rooks and one queen per side, weighted
	// 1/1/2/4), used to clamp and normalize the tapering factor.
	PhaseMax int
}

// sets defaults which might be overwritten by config file.
func init() {
	Settings.Eval.Tempo = 28

	Settings.Eval.UsePSQT = true
	Settings.Eval.UseMaterial = true

	Settings.Eval.PhaseMax = 24
}

// set defaults for configurations here in case a configuration
// is not available from the config file.
func setupEval() {

}
