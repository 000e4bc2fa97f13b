/*
Package scanner adapts real tokenizers to the scan-function contract of
package lexrt.

Two adapters are provided: (1) a thin wrapper over the Go std lib
'text/scanner', and (2) an adapter for lexmachine, living in sub-package
`lexmach`. Both maintain the session's scan state per token and consult the
session's wrap hook once per exhausted input source, resuming on a fresh
source when the hook reports replenishment.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"fmt"
	"io"
	"reflect"
	"text/scanner"

	"github.com/npillmayer/lexrt"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lexrt.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("lexrt.scanner")
}

// Token class return values of the GoScanner scan function, identical to the
// text/scanner token types. All are nonzero, as the scan-function contract
// reserves 0 for end of input. Single-rune tokens are returned as their rune
// value.
const (
	Ident     = int(scanner.Ident)
	Int       = int(scanner.Int)
	Float     = int(scanner.Float)
	Char      = int(scanner.Char)
	String    = int(scanner.String)
	RawString = int(scanner.RawString)
	Comment   = int(scanner.Comment)
)

// Default error reporting function for scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// rebound reports whether input is a different source than the one the
// scanner is bound to. Interface comparison panics for non-comparable
// dynamic types; those are compared by type only, which suffices since
// wrap-hook rebinding runs through the end-of-input path unconditionally.
func rebound(input, bound io.Reader) bool {
	if input == nil || bound == nil {
		return input != bound
	}
	ti, tb := reflect.TypeOf(input), reflect.TypeOf(bound)
	if ti != tb {
		return true
	}
	return ti.Comparable() && input != bound
}

// GoScanner adapts text/scanner, accepting tokens similar to the Go language.
// Create one with NewGoScanner and hand its ScanFunc to a session. The
// adapter binds lazily to whatever input the session carries and rebinds
// whenever a wrap hook replaces it; line numbering continues across rebinds,
// so the session's line counter never decreases.
type GoScanner struct {
	sc           scanner.Scanner
	bound        io.Reader   // input the scanner is currently initialized with
	lineBase     int         // lines consumed in previously bound inputs
	sourceID     string      // file name for positions
	Error        func(error) // error handler
	emitComments bool        // produce comment tokens (skipped by default)
	unifyStrings bool        // convert single chars and raw strings to strings
}

// NewGoScanner creates a text/scanner adapter for a scanning session.
func NewGoScanner(sourceID string, opts ...Option) *GoScanner {
	g := &GoScanner{sourceID: sourceID}
	g.Error = logError
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// SetErrorHandler sets an error handler for the scanner.
func (g *GoScanner) SetErrorHandler(h func(error)) {
	if h == nil {
		g.Error = logError
		return
	}
	g.Error = h
}

// ScanFunc returns the scan function for this adapter.
func (g *GoScanner) ScanFunc() lexrt.ScanFunc {
	return g.scan
}

func (g *GoScanner) scan(s *lexrt.Session) int {
	if rebound(s.Input, g.bound) {
		g.bind(s.Input)
	}
	tok := g.sc.Scan()
	for tok == scanner.EOF {
		if s.NoMoreInput() {
			tracer().Debugf("GoScanner reached end of all input")
			return lexrt.EOF
		}
		g.bind(s.Input)
		tok = g.sc.Scan()
	}
	if g.unifyStrings &&
		(tok == scanner.RawString || tok == scanner.Char) {
		tok = scanner.String
	}
	s.TokenText = g.sc.TokenText()
	s.TokenLen = len(s.TokenText)
	s.Line = g.lineBase + g.sc.Pos().Line
	s.Col = g.sc.Pos().Column
	return int(tok)
}

// bind (re-)initializes the underlying text/scanner on an input source.
// Init resets the scanner's mode and error handler, so both are re-applied.
func (g *GoScanner) bind(input io.Reader) {
	if g.bound != nil {
		g.lineBase += g.sc.Pos().Line
	}
	g.sc.Init(input)
	g.sc.Filename = g.sourceID
	if g.emitComments {
		g.sc.Mode &^= scanner.SkipComments
	}
	g.sc.Error = func(_ *scanner.Scanner, msg string) {
		g.Error(fmt.Errorf("%s: %s", g.sc.Pos(), msg))
	}
	g.bound = input
}

// --- Scanner options --------------------------------------------------------

// Option configures a GoScanner.
type Option func(g *GoScanner)

// SkipComments sets or clears option SkipComments: do not produce tokens
// for comments. Comments are skipped by default.
func SkipComments(b bool) Option {
	return func(g *GoScanner) {
		g.emitComments = !b
	}
}

// UnifyStrings sets or clears option UnifyStrings:
// treat raw strings and single chars as strings.
func UnifyStrings(b bool) Option {
	return func(g *GoScanner) {
		g.unifyStrings = b
	}
}
