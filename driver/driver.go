/*
Package driver implements the default top-level driver for scanning sessions,
together with wrap-hook constructors for multi-source sessions.

The default driver mirrors the classic behavior of a lex-generated program's
main: bind standard input or open the single file argument, then invoke the
scan function until it reports end of input, discarding the tokens. Programs
wanting more replace the driver or the wrap hook through the session's Hooks.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package driver

import (
	"fmt"
	"os"

	"github.com/npillmayer/lexrt"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lexrt.driver'.
func tracer() tracing.Trace {
	return tracing.Select("lexrt.driver")
}

// Run starts a scanning session. If the session carries a Main hook, Run
// dispatches to it and the default driver is never invoked; otherwise the
// default driver Main runs. args are the positional arguments of the process
// invocation (at most one is interpreted by the default driver).
func Run(s *lexrt.Session, args ...string) error {
	if s.Hooks.Main != nil {
		return s.Hooks.Main(s, args)
	}
	return Main(s, args)
}

// Main is the default driver. Without arguments it scans the session's bound
// input, which defaults to standard input. With one argument it opens that
// file, scans it, and closes it on every exit path. Inputs bound by the
// caller are never closed. Token content is discarded; the default driver
// exists to exercise a scanner, not to consume its output.
//
// The returned error is non-nil exactly when opening the file argument
// failed, in which case no scanning has happened.
func Main(s *lexrt.Session, args []string) error {
	if len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			tracer().Errorf("driver cannot open input: %v", err)
			return fmt.Errorf("driver cannot open input (%w)", err)
		}
		defer f.Close()
		s.Input = f
		tracer().Debugf("driver scans input %q", args[0])
	} else if s.Input == nil {
		s.Input = os.Stdin
	}
	n := 0
	for s.Scan(s) != lexrt.EOF {
		n++
	}
	tracer().Debugf("driver scanned %d tokens", n)
	return nil
}
