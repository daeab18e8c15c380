package pool

import (
	"fmt"
	"io"
	"strings"
)

// Mode selects how progress is displayed.
type Mode int

const (
	// ModeLine prints one line per claimed job, including its destination.
	ModeLine Mode = iota
	// ModeOverwrite rewrites a single status line in place.
	ModeOverwrite
)

func (m Mode) String() string {
	if m == ModeOverwrite {
		return "overwrite"
	}
	return "line"
}

// ParseMode parses "line" or "overwrite".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "line":
		return ModeLine, nil
	case "overwrite":
		return ModeOverwrite, nil
	}
	return ModeLine, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Progress counts claimed jobs. Not safe for concurrent use; the run lock
// serializes every advance.
type Progress struct {
	current int
	total   int
	mode    Mode
	verb    string
	out     io.Writer
}

func newProgress(total int, mode Mode, verb string, out io.Writer) *Progress {
	if out == nil {
		out = io.Discard
	}
	return &Progress{total: total, mode: mode, verb: verb, out: out}
}

// advance records one claim and emits the display line for it.
func (p *Progress) advance(job Job) {
	p.current++
	if p.mode == ModeOverwrite {
		fmt.Fprintf(p.out, "\r%s file %d out of %d", p.verb, p.current, p.total)
	} else {
		fmt.Fprintf(p.out, "%s file %d out of %d: %s\n", p.verb, p.current, p.total, job.Destination)
	}
}

// finish terminates an overwritten status line.
func (p *Progress) finish() {
	if p.mode == ModeOverwrite && p.current > 0 {
		fmt.Fprintln(p.out)
	}
}

// Current is the number of jobs claimed so far.
func (p *Progress) Current() int { return p.current }
