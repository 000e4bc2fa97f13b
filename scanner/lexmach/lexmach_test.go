package lexmach

import (
	"io"
	"strings"
	"testing"
	"text/scanner"

	"github.com/npillmayer/lexrt"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/timtadh/lexmachine"
)

var inputStrings = []string{
	"1",
	"1+12",
	"Hello #World",
	`x="mystring" // commented `,
	"1,22,333",
}

var tokenCounts = []int{1, 3, 2, 3, 3}

func lispInit() func(*lexmachine.Lexer) {
	return func(lexer *lexmachine.Lexer) {
		lexer.Add([]byte(`//[^\n]*\n?`), Skip)
		lexer.Add([]byte(`\"[^"]*\"`), MakeToken("STRING", tokenIds["STRING"]))
		lexer.Add([]byte(`#?([a-z]|[A-Z])([a-z]|[A-Z]|[0-9]|_|-)*[!\?]?`), MakeToken("ID", tokenIds["ID"]))
		lexer.Add([]byte(`[1-9][0-9]*`), MakeToken("NUM", tokenIds["NUM"]))
		lexer.Add([]byte(`( |\,|\t|\n|\r)+`), Skip)
	}
}

func TestLM(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexrt.scanner")
	defer teardown()
	//
	initTokens()
	LM, err := NewLMAdapter(lispInit(), literals, keywords, tokenIds)
	if err != nil {
		t.Error(err)
	}
	for i, input := range inputStrings {
		t.Logf("------+-----------------+--------")
		session := lexrt.NewSession(LM.Scanner().ScanFunc())
		session.Input = strings.NewReader(input)
		count := 0
		for tok := session.Scan(session); tok != lexrt.EOF; tok = session.Scan(session) {
			t.Logf(" %4d | %15s | @%d:%d", tok, session.TokenText, session.Line, session.Col)
			if session.TokenLen != len(session.TokenText) {
				t.Errorf("token length %d does not match text %q", session.TokenLen, session.TokenText)
			}
			count++
		}
		if count != tokenCounts[i] {
			t.Errorf("Expected token count for #%d to be %d, is %d", i, tokenCounts[i], count)
		}
	}
	t.Logf("------+-----------------+--------")
}

// viewReader is an input source with a non-comparable dynamic type, as a wrap
// hook might bind one.
type viewReader struct {
	r    io.Reader
	view []byte
}

func (v viewReader) Read(p []byte) (int, error) {
	return v.r.Read(p)
}

func TestLMNoncomparableInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexrt.scanner")
	defer teardown()
	//
	initTokens()
	LM, err := NewLMAdapter(lispInit(), literals, keywords, tokenIds)
	if err != nil {
		t.Error(err)
	}
	session := lexrt.NewSession(LM.Scanner().ScanFunc())
	session.Input = viewReader{r: strings.NewReader("1+12")}
	count := 0
	for session.Scan(session) != lexrt.EOF {
		count++
	}
	if count != 3 {
		t.Errorf("expected 3 tokens from a non-comparable input source, got %d", count)
	}
}

func TestLMWrap(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexrt.scanner")
	defer teardown()
	//
	initTokens()
	LM, err := NewLMAdapter(lispInit(), literals, keywords, tokenIds)
	if err != nil {
		t.Error(err)
	}
	inputs := []string{"1+12", "333"}
	session := lexrt.NewSession(LM.Scanner().ScanFunc())
	session.Input = strings.NewReader(inputs[0])
	consulted := 0
	session.Hooks.Wrap = func(s *lexrt.Session) bool {
		consulted++
		if consulted >= len(inputs) {
			return true
		}
		s.Input = strings.NewReader(inputs[consulted])
		return false
	}
	count, line := 0, 0
	for session.Scan(session) != lexrt.EOF {
		if session.Line < line {
			t.Errorf("line counter decreased from %d to %d", line, session.Line)
		}
		line = session.Line
		count++
	}
	if count != 4 {
		t.Errorf("expected 4 tokens over both inputs, got %d", count)
	}
	if consulted != len(inputs) {
		t.Errorf("expected wrap hook to be consulted once per exhausted input (%d), was %d times",
			len(inputs), consulted)
	}
}

var literals []string       // The tokens representing literal strings
var keywords []string       // The keyword tokens
var tokens []string         // All of the tokens (including literals and keywords)
var tokenIds map[string]int // A map from the token names to their int ids

func initTokens() {
	literals = []string{
		"'",
		"(",
		")",
		"[",
		"]",
		"=",
		"+",
		"-",
		"*",
		"/",
	}
	keywords = []string{
		"nil",
		"t",
	}
	tokens = []string{
		"COMMENT",
		"ID",
		"NUM",
		"STRING",
	}
	tokens = append(tokens, keywords...)
	tokens = append(tokens, literals...)
	tokenIds = make(map[string]int)
	tokenIds["COMMENT"] = int(scanner.Comment)
	tokenIds["ID"] = int(scanner.Ident)
	tokenIds["NUM"] = int(scanner.Int)
	tokenIds["STRING"] = int(scanner.String)
	for i, tok := range tokens[4:] {
		tokenIds[tok] = i + 10
	}
}
