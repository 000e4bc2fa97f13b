package driver

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/lexrt"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestFileSequence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexrt.driver")
	defer teardown()
	//
	p1 := tmpfile(t, "one.txt", "aaa")
	p2 := tmpfile(t, "two.txt", "bb")
	count := 0
	session := lexrt.NewSession(counting(byteScan, &count))
	session.Input = strings.NewReader("c")
	session.Hooks.Wrap = FileSequence(p1, p2)
	for session.Scan(session) != lexrt.EOF {
	}
	if count != 6 {
		t.Errorf("expected 6 tokens over 3 input sources, got %d", count)
	}
}

func TestFileSequenceSkipsUnreadable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexrt.driver")
	defer teardown()
	//
	good := tmpfile(t, "good.txt", "ok")
	bad := filepath.Join(t.TempDir(), "no-such-file")
	count := 0
	session := lexrt.NewSession(counting(byteScan, &count))
	session.Input = strings.NewReader("")
	session.Hooks.Wrap = FileSequence(bad, good)
	for session.Scan(session) != lexrt.EOF {
	}
	if count != 2 {
		t.Errorf("expected the unreadable path to be skipped and 2 tokens scanned, got %d", count)
	}
}

func TestFileSequenceExhausted(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexrt.driver")
	defer teardown()
	//
	session := lexrt.NewSession(byteScan)
	wrap := FileSequence()
	if !wrap(session) {
		t.Error("expected an empty file sequence to report end of input; didn't")
	}
}
