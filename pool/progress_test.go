package pool

import (
	"bytes"
	"errors"
	"testing"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{in: "", want: ModeLine},
		{in: "line", want: ModeLine},
		{in: "Overwrite", want: ModeOverwrite},
		{in: " overwrite ", want: ModeOverwrite},
		{in: "fancy", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if tt.wantErr && !errors.Is(err, ErrUnknownMode) {
			t.Errorf("ParseMode(%q) error = %v, want ErrUnknownMode", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestProgressLineMode(t *testing.T) {
	var buf bytes.Buffer
	p := newProgress(2, ModeLine, Pack.Verb(), &buf)
	p.advance(Job{Destination: "out/a.dat"})
	p.advance(Job{Destination: "out/b.dat"})
	p.finish()

	want := "Compressing file 1 out of 2: out/a.dat\nCompressing file 2 out of 2: out/b.dat\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
	if p.Current() != 2 {
		t.Errorf("Current() = %d, want 2", p.Current())
	}
}
