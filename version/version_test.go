package version

import (
	"bytes"
	"strings"
	"testing"
)

func TestInfoString(t *testing.T) {
	tests := []struct {
		info Info
		want string
	}{
		{Info{Version: "v1.2.0", Commit: "unknown", Date: "unknown"}, "v1.2.0"},
		{Info{Version: "v1.2.0", Commit: "abc", Date: "2026-01-01"}, "v1.2.0"},
		{Info{Version: "v1.2.0", Commit: "0123456789abcdef", Date: "unknown"}, "v1.2.0 (0123456)"},
		{Info{Version: "v1.2.0", Commit: "0123456789abcdef", Date: "2026-01-01"}, "v1.2.0 (0123456, built 2026-01-01)"},
	}
	for _, tt := range tests {
		if got := tt.info.String(); got != tt.want {
			t.Errorf("%+v.String() = %q, want %q", tt.info, got, tt.want)
		}
	}
}

func TestLinkerValuesWin(t *testing.T) {
	old := [3]string{Version, Commit, Date}
	t.Cleanup(func() { Version, Commit, Date = old[0], old[1], old[2] })
	Version, Commit, Date = "v9.9.9", "fedcba9876543210", "2026-10-01"

	info := GetInfo()
	if info.Version != "v9.9.9" || info.Commit != "fedcba9876543210" || info.Date != "2026-10-01" {
		t.Errorf("GetInfo() = %+v", info)
	}
	if info.Package != Package {
		t.Errorf("Package = %q, want %q", info.Package, Package)
	}

	var buf bytes.Buffer
	Fprint(&buf)
	if !strings.HasPrefix(buf.String(), "respak version v9.9.9 (fedcba9, built 2026-10-01)\n") {
		t.Errorf("Fprint output:\n%s", buf.String())
	}
}
