package lexrt

import (
	"io"
	"os"
)

// --- Scan state -------------------------------------------------------------

// ScanState is the mutable record a scan function maintains while it consumes
// input. It is deliberately dumb: no operations beyond field access, and no
// validation. Keeping the counters and the text/length pairing consistent is
// the scan function's job, not ours.
type ScanState struct {
	TokenText string    // text of the last token; valid until the next scan call
	TokenLen  int       // always len(TokenText) after a successful scan
	Line      int       // 1-based line counter, never decremented
	Col       int       // column immediately following the last token; 0 before any scan
	Input     io.Reader // currently bound input source, owned by the session
}

// NewScanState returns scan state with well-defined defaults: position at
// line 1, column 0, no token yet, input bound to standard input.
func NewScanState() ScanState {
	return ScanState{
		Line:  1,
		Col:   0,
		Input: os.Stdin,
	}
}

// --- Hooks ------------------------------------------------------------------

// EOF is the scan function's end-of-input return value. Every other return
// value means "token produced, continue".
const EOF = 0

// ScanFunc is the contract for an external scan function, usually emitted by
// a scanner generator. It consumes input from the session's scan state,
// updates the state for every token, and returns EOF when input is exhausted.
type ScanFunc func(*Session) int

// WrapFunc is an end-of-input continuation hook. A scan function consults it
// exactly once per exhausted input source. Returning true means no more input
// is available; returning false means the hook has rebound the session's
// Input to a fresh source and scanning may resume.
type WrapFunc func(*Session) bool

// MainFunc is a top-level driver hook, receiving the positional arguments of
// the process invocation.
type MainFunc func(*Session, []string) error

// Hooks bundles the two overridable entry points of a scanning session.
// A nil field selects the default behavior; a non-nil field replaces it
// completely, and the default is never invoked.
type Hooks struct {
	Main MainFunc // top-level driver; nil selects driver.Main
	Wrap WrapFunc // end-of-input continuation; nil selects DefaultWrap
}

// Session is a single scanning session: scan state plus the scan function
// operating on it, plus the session's hooks. Modelling the session as an
// explicit value rather than process-global state allows several independent
// sessions per process, but a single session is not safe for concurrent use.
type Session struct {
	ScanState
	Scan  ScanFunc
	Hooks Hooks
}

// NewSession creates a session for the given scan function, with default
// scan state and default hooks.
func NewSession(scan ScanFunc) *Session {
	return &Session{
		ScanState: NewScanState(),
		Scan:      scan,
	}
}

// NoMoreInput consults the session's wrap hook. Scan functions call this when
// they exhaust the current input source.
func (s *Session) NoMoreInput() bool {
	if s.Hooks.Wrap == nil {
		return DefaultWrap(s)
	}
	return s.Hooks.Wrap(s)
}

// DefaultWrap always reports that no more input is available. It performs no
// state change.
func DefaultWrap(*Session) bool {
	return true
}
