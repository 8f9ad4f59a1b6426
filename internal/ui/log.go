// Onboard - Guided Profile Onboarding
// Copyright (C) 2026 Cloud Exit B.V.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package ui

import (
	"fmt"
	"io"
	"os"
)

// Verbose turns on Debug output.
var Verbose bool

// Stdout and Stderr are where messages go. Tests swap them out.
var (
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// exit is os.Exit, replaced in tests.
var exit = os.Exit

// Info writes an [INFO] line to Stdout.
func Info(msg string) {
	fmt.Fprintf(Stdout, "%s[INFO]%s %s\n", Cyan, NC, msg)
}

// Infof is Info with formatting.
func Infof(format string, a ...any) {
	Info(fmt.Sprintf(format, a...))
}

// Success writes an [OK] line to Stdout.
func Success(msg string) {
	fmt.Fprintf(Stdout, "%s[OK]%s %s\n", Green, NC, msg)
}

// Successf is Success with formatting.
func Successf(format string, a ...any) {
	Success(fmt.Sprintf(format, a...))
}

// Warn writes a [WARN] line to Stderr.
func Warn(msg string) {
	fmt.Fprintf(Stderr, "%s[WARN]%s %s\n", Yellow, NC, msg)
}

// Warnf is Warn with formatting.
func Warnf(format string, a ...any) {
	Warn(fmt.Sprintf(format, a...))
}

// Error writes an [ERROR] line to Stderr and exits with status 1.
func Error(msg string) {
	ErrorNoExit(msg)
	exit(1)
}

// Errorf is Error with formatting.
func Errorf(format string, a ...any) {
	Error(fmt.Sprintf(format, a...))
}

// ErrorNoExit writes an [ERROR] line to Stderr and returns.
func ErrorNoExit(msg string) {
	fmt.Fprintf(Stderr, "%s[ERROR]%s %s\n", Red, NC, msg)
}

// Debug writes a [DEBUG] line to Stderr when Verbose is set.
func Debug(msg string) {
	if Verbose {
		fmt.Fprintf(Stderr, "%s[DEBUG]%s %s\n", Dim, NC, msg)
	}
}

// Debugf is Debug with formatting.
func Debugf(format string, a ...any) {
	Debug(fmt.Sprintf(format, a...))
}

// Cecho writes msg to Stdout in the given colour.
func Cecho(msg, color string) {
	fmt.Fprintf(Stdout, "%s%s%s\n", color, msg, NC)
}

// Logger adapts the package functions to a value, for code that takes a
// logger instead of calling ui directly.
type Logger struct{}

// Default is the Logger backed by this package's output.
var Default Logger

func (Logger) Warnf(format string, a ...any)  { Warnf(format, a...) }
func (Logger) Debugf(format string, a ...any) { Debugf(format, a...) }
