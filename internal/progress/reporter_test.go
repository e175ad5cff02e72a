package progress

import (
	"bytes"
	"sync"
	"testing"
)

func TestNewReporterCI(t *testing.T) {
	t.Setenv("CI", "true")
	if _, ok := NewReporter(&bytes.Buffer{}).(*CIReporter); !ok {
		t.Fatal("expected CIReporter when CI is set")
	}
}

func TestNewReporterTerminal(t *testing.T) {
	t.Setenv("CI", "")
	t.Setenv("GITHUB_ACTIONS", "")
	if _, ok := NewReporter(&bytes.Buffer{}).(*TerminalReporter); !ok {
		t.Fatal("expected TerminalReporter outside CI")
	}
}

func TestCIReporter(t *testing.T) {
	var buf bytes.Buffer
	r := &CIReporter{w: &buf}
	r.Start(2)
	r.Advance("sxhub/2025031102")
	r.Advance("notes/kafka")
	r.Finish()

	want := "Checking 2 articles\n[1/2] sxhub/2025031102\n[2/2] notes/kafka\nArticle check complete\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestTerminalReporterConcurrent(t *testing.T) {
	r := &TerminalReporter{w: &bytes.Buffer{}}
	r.Start(8)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Advance("article")
		}()
	}
	wg.Wait()

	if got := r.bar.State().CurrentNum; got != 8 {
		t.Errorf("bar at %d, want 8", got)
	}
	r.Finish()
}
