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

// Package logging wires up the module-scoped loggers used across the
// engine (general, search and uci) on top of go-logging.
package logging

import (
	"os"

	logging "github.com/op/go-logging"

	"github.com/corvidchess/corvid/internal/config"
)

var format = logging.MustStringFormatter(
	`%{time:15:04:05.000} %{shortfile}:%{shortfunc} %{level:7s}:  %{message}`,
)

// GetLog returns the module-scoped logger for name, giving it its own
// stdout backend leveled independently of every other logger - "search"
// is leveled from config.SearchLogLevel and "uci" from config.UciLogLevel,
// everything else from config.LogLevel, mirroring how the teacher engine
// sets a separate backend level per package (internal/search/alphabeta.go,
// internal/uci/uci.go) rather than sharing one global level.
func GetLog(name string) *logging.Logger {
	log := logging.MustGetLogger(name)
	backend := logging.NewLogBackend(os.Stdout, "", 0)
	backendFormatter := logging.NewBackendFormatter(backend, format)
	leveled := logging.AddModuleLevel(backendFormatter)
	leveled.SetLevel(levelFor(levelForName(name)), "")
	log.SetBackend(leveled)
	return log
}

func levelForName(name string) int {
	switch name {
	case "search":
		return config.SearchLogLevel
	case "uci":
		return config.UciLogLevel
	default:
		return config.LogLevel
	}
}

func levelFor(n int) logging.Level {
	switch {
	case n <= -1:
		return logging.CRITICAL + 1 // effectively silent; go-logging has no "off"
	case n == 0:
		return logging.CRITICAL
	case n == 1:
		return logging.ERROR
	case n == 2:
		return logging.WARNING
	case n == 3:
		return logging.NOTICE
	case n == 4:
		return logging.INFO
	default:
		return logging.DEBUG
	}
}
