package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/pterm/pterm"
	"github.com/timtadh/lexmachine"

	"github.com/npillmayer/lexrt"
	"github.com/npillmayer/lexrt/driver"
	"github.com/npillmayer/lexrt/scanner/lexmach"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// main() runs a smoke-test scanning session over a built-in demo tokenizer.
// File arguments are scanned one after the other, the first one bound by the
// default driver, the rest replenished through a FileSequence wrap hook.
// Without arguments and with a terminal attached, lines entered interactively
// are scanned instead; a plain pipe on stdin is scanned as-is.
// After the session a census of the scanned tokens is printed.
func main() {
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	flag.Parse()
	tracer().SetTraceLevel(traceLevel(*tlevel))
	//
	scan, names, err := demoScanFunc()
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
	counts := treemap.NewWithStringComparator()
	session := lexrt.NewSession(census(scan, names, counts))
	args := flag.Args()
	//
	switch {
	case len(args) > 0:
		session.Hooks.Wrap = driver.FileSequence(args[1:]...)
		err = driver.Run(session, args[0])
	case readline.DefaultIsTerminal():
		pterm.Info.Println("Welcome to lexscan, quit with <ctrl>D")
		var rl *readline.Instance
		if rl, err = readline.New("lexscan> "); err != nil {
			break
		}
		defer rl.Close()
		// an exhausted first input makes the very first scan call consult
		// the wrap hook for a line
		session.Input = strings.NewReader("")
		session.Hooks.Wrap = driver.Interactive(rl)
		err = driver.Run(session)
	default:
		err = driver.Run(session)
	}
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
	printCensus(counts)
}

// tracer traces with key 'lexrt.driver'
func tracer() tracing.Trace {
	return tracing.Select("lexrt.driver")
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// demoScanFunc builds a scan function over a small general-purpose token set:
// identifiers, numbers, strings, line comments and single-char operators.
func demoScanFunc() (lexrt.ScanFunc, map[int]string, error) {
	literals := []string{"(", ")", "=", "+", "-", "*", "/", ";", ","}
	tokens := []string{"ID", "NUM", "STRING"}
	tokenIds := make(map[string]int)
	names := make(map[int]string)
	for i, tok := range append(tokens, literals...) {
		tokenIds[tok] = i + 1 // 0 is reserved for end of input
		names[i+1] = tok
	}
	init := func(lexer *lexmachine.Lexer) {
		lexer.Add([]byte(`//[^\n]*\n?`), lexmach.Skip)
		lexer.Add([]byte(`\"[^"]*\"`), lexmach.MakeToken("STRING", tokenIds["STRING"]))
		lexer.Add([]byte(`([a-z]|[A-Z]|_)([a-z]|[A-Z]|[0-9]|_)*`), lexmach.MakeToken("ID", tokenIds["ID"]))
		lexer.Add([]byte(`[0-9]+(\.[0-9]+)?`), lexmach.MakeToken("NUM", tokenIds["NUM"]))
		lexer.Add([]byte(`( |\t|\n|\r)+`), lexmach.Skip)
	}
	LM, err := lexmach.NewLMAdapter(init, literals, nil, tokenIds)
	if err != nil {
		return nil, nil, err
	}
	return LM.Scanner().ScanFunc(), names, nil
}

// census decorates a scan function with per-token-class counting.
func census(scan lexrt.ScanFunc, names map[int]string, counts *treemap.Map) lexrt.ScanFunc {
	return func(s *lexrt.Session) int {
		tok := scan(s)
		if tok == lexrt.EOF {
			return tok
		}
		name, ok := names[tok]
		if !ok {
			name = fmt.Sprintf("#%d", tok)
		}
		n := 0
		if v, found := counts.Get(name); found {
			n = v.(int)
		}
		counts.Put(name, n+1)
		return tok
	}
}

func printCensus(counts *treemap.Map) {
	if counts.Empty() {
		pterm.Info.Println("no tokens scanned")
		return
	}
	total := 0
	counts.Each(func(key interface{}, value interface{}) {
		pterm.Info.Printf("%-8s %6d\n", key, value)
		total += value.(int)
	})
	pterm.Info.Printf("%-8s %6d\n", "total", total)
}
