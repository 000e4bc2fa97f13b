package driver

import (
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/npillmayer/lexrt"
)

// Wrap-hook constructors. A wrap hook which rebinds the session's input and
// answers false turns a single-source session into a multi-source one; the
// scan function never notices.

// FileSequence returns a wrap hook which feeds the given file paths to the
// session, one after the other. Each consultation closes the file the hook
// opened previously, opens the next path and rebinds the session's input.
// Unreadable paths are traced and skipped. When the queue is exhausted the
// hook reports end of all input.
func FileSequence(paths ...string) lexrt.WrapFunc {
	queue := arraylist.New()
	for _, p := range paths {
		queue.Add(p)
	}
	var open *os.File // the file this hook has opened, if any
	return func(s *lexrt.Session) bool {
		if open != nil {
			open.Close()
			open = nil
		}
		for !queue.Empty() {
			p, _ := queue.Get(0)
			queue.Remove(0)
			f, err := os.Open(p.(string))
			if err != nil {
				tracer().Errorf("wrap cannot open %q: %v", p, err)
				continue
			}
			tracer().Debugf("wrap continues with input %q", p)
			open = f
			s.Input = f
			return false
		}
		return true
	}
}

// Interactive returns a wrap hook which replenishes the session's input with
// lines read from a readline instance, one line per consultation. The hook
// reports end of all input when the user closes the line editor (EOF or
// interrupt). The caller owns rl and is responsible for closing it.
func Interactive(rl *readline.Instance) lexrt.WrapFunc {
	return func(s *lexrt.Session) bool {
		line, err := rl.Readline()
		if err != nil { // io.EOF or readline.ErrInterrupt
			return true
		}
		s.Input = strings.NewReader(line + "\n")
		return false
	}
}
