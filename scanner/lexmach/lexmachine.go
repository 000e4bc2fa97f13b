package lexmach

import (
	"io"
	"io/ioutil"
	"reflect"
	"strings"

	"github.com/npillmayer/lexrt"
	"github.com/npillmayer/schuko/tracing"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// lexmachine adapter

// tracer traces with key 'lexrt.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("lexrt.scanner")
}

// LMAdapter wraps a compiled lexmachine lexer for use as a scan function.
type LMAdapter struct {
	Lexer *lexmachine.Lexer
}

// NewLMAdapter creates a new lexmachine adapter. It receives a list of
// literals ('[', ';', …), a list of keywords ("if", "for", …) and a
// map for translating token strings to their values. Token values must be
// nonzero; the scan-function contract reserves 0 for end of input.
//
// NewLMAdapter will return an error if compiling the DFA failed.
func NewLMAdapter(init func(*lexmachine.Lexer), literals []string, keywords []string, tokenIds map[string]int) (*LMAdapter, error) {
	adapter := &LMAdapter{}
	adapter.Lexer = lexmachine.NewLexer()
	init(adapter.Lexer)
	for _, lit := range literals {
		r := "\\" + strings.Join(strings.Split(lit, ""), "\\")
		adapter.Lexer.Add([]byte(r), MakeToken(lit, tokenIds[lit]))
	}
	for _, name := range keywords {
		adapter.Lexer.Add([]byte(strings.ToLower(name)), MakeToken(name, tokenIds[name]))
	}
	if err := adapter.Lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return adapter, nil
}

// Scanner creates a scanner feeding from a session's input. The scanner binds
// lazily and rebinds whenever a wrap hook replaces the session's input.
func (lm *LMAdapter) Scanner() *LMScanner {
	return &LMScanner{lexer: lm.Lexer, Error: logError}
}

// LMScanner drives a lexmachine scanner over a session's input, maintaining
// the session's scan state per token. lexmachine works on byte slices, so
// every bound input source is read to exhaustion up front.
type LMScanner struct {
	lexer    *lexmachine.Lexer
	scanner  *lexmachine.Scanner
	bound    io.Reader // input the scanner is currently bound to
	lineBase int       // lines consumed in previously bound inputs
	lastLine int       // last line seen in the current input
	Error    func(error)
}

// Default error reporting function for lexmachine-based scanners
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

// SetErrorHandler sets an error handler for the scanner.
func (lms *LMScanner) SetErrorHandler(h func(error)) {
	if h == nil {
		lms.Error = logError
		return
	}
	lms.Error = h
}

// ScanFunc returns the scan function for this scanner.
func (lms *LMScanner) ScanFunc() lexrt.ScanFunc {
	return lms.scan
}

func (lms *LMScanner) scan(s *lexrt.Session) int {
	if rebound(s.Input, lms.bound) {
		if !lms.bind(s.Input) {
			return lexrt.EOF
		}
	}
	for {
		tok, err, eof := lms.scanner.Next()
		for err != nil {
			lms.Error(err)
			if ui, is := err.(*machines.UnconsumedInput); is {
				lms.scanner.TC = ui.FailTC
			}
			tok, err, eof = lms.scanner.Next()
		}
		if eof {
			if s.NoMoreInput() {
				tracer().Debugf("LMScanner reached end of all input")
				return lexrt.EOF
			}
			if !lms.bind(s.Input) {
				return lexrt.EOF
			}
			continue
		}
		token := tok.(*lexmachine.Token)
		s.TokenText = string(token.Lexeme)
		s.TokenLen = len(token.Lexeme)
		s.Line = lms.lineBase + token.EndLine
		s.Col = token.EndColumn
		lms.lastLine = token.EndLine
		return token.Type
	}
}

// bind reads an input source to exhaustion and restarts the lexmachine
// scanner on it. Reports false if the source cannot be read or scanned.
func (lms *LMScanner) bind(input io.Reader) bool {
	data, err := ioutil.ReadAll(input)
	if err != nil {
		lms.Error(err)
		return false
	}
	sc, err := lms.lexer.Scanner(data)
	if err != nil {
		lms.Error(err)
		return false
	}
	lms.scanner = sc
	lms.bound = input
	lms.lineBase += lms.lastLine
	lms.lastLine = 0
	return true
}

// ---------------------------------------------------------------------------

// Skip is a pre-defined action which ignores the scanned match.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken is a pre-defined action which wraps a scanned match into a token.
func MakeToken(name string, id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}
