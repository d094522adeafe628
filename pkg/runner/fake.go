package runner

import (
	"context"
	"io"
	"strings"
	"sync"
)

// Response is a canned reply for a FakeRunner call
type Response struct {
	Stdout string
	Stderr string
	Err    error
}

// FakeRunner records commands instead of running them. Responses are
// matched by the longest registered prefix of the joined command line.
type FakeRunner struct {
	mu        sync.Mutex
	Calls     []Command
	responses map[string]Response
}

// NewFakeRunner creates an empty recording runner
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{responses: make(map[string]Response)}
}

// On registers a response for commands whose line starts with prefix
func (f *FakeRunner) On(prefix string, resp Response) *FakeRunner {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[prefix] = resp
	return f
}

// Lines returns every recorded command line
func (f *FakeRunner) Lines() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	lines := make([]string, 0, len(f.Calls))
	for _, c := range f.Calls {
		lines = append(lines, c.String())
	}
	return lines
}

// Run implements Runner
func (f *FakeRunner) Run(_ context.Context, c Command) error {
	resp := f.record(c)
	writeTo(c.Stdout, resp.Stdout)
	writeTo(c.Stderr, resp.Stderr)
	return resp.Err
}

// Output implements Runner
func (f *FakeRunner) Output(_ context.Context, c Command) ([]byte, error) {
	resp := f.record(c)
	writeTo(c.Stderr, resp.Stderr)
	return []byte(resp.Stdout), resp.Err
}

func (f *FakeRunner) record(c Command) Response {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls = append(f.Calls, c)

	line := c.String()
	best := ""
	var resp Response
	for prefix, r := range f.responses {
		if strings.HasPrefix(line, prefix) && len(prefix) >= len(best) {
			best, resp = prefix, r
		}
	}
	return resp
}

func writeTo(w io.Writer, s string) {
	if w != nil && s != "" {
		_, _ = io.WriteString(w, s)
	}
}
