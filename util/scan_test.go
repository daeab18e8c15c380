package util

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/dendrascience/respak/pool"
)

func TestResourceName(t *testing.T) {
	tests := []struct {
		name   string
		want   string
		wantOK bool
	}{
		{"icons/sword.png", "icons/sword.png", true},
		{"icons/sword.png.temp", "", false},
		{"music/theme.flac.ogg", "music/theme.flac", true},
		{"music/THEME.FLAC.ogg", "music/THEME.FLAC", true},
		{"music/loose.ogg", "music/loose.ogg", true},
		{"data/wordPackDict.dat.xml", "data/wordPackDict.dat", true},
		{"sndmanifest.dat.xml", "sndmanifest.dat", true},
		{"itemmanifest.dat.xml", "itemmanifest.dat", true},
		{"residmap.dat.xml", "", false},
		{"notes.xml", "notes.xml", true},
	}
	for _, tt := range tests {
		got, ok := ResourceName(tt.name)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ResourceName(%q) = %q, %v, want %q, %v", tt.name, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestScanPack(t *testing.T) {
	in := t.TempDir()
	out := filepath.Join(t.TempDir(), "packed")
	files := []string{
		"icons/sword.png",
		"icons/sword.png.temp",
		"music/theme.flac.ogg",
		"data/wordPackDict.dat",
		"data/wordPackDict.dat.xml",
		"data/itemmanifest.dat.xml",
		"misc/readme.txt",
	}
	for _, f := range files {
		p := filepath.Join(in, filepath.FromSlash(f))
		os.MkdirAll(filepath.Dir(p), 0o755)
		os.WriteFile(p, []byte(f), 0o644)
	}
	os.Symlink(filepath.Join(in, "misc/readme.txt"), filepath.Join(in, "misc/link.txt"))

	jobs, err := ScanPack(in, out)
	if err != nil {
		t.Fatalf("ScanPack failed: %v", err)
	}

	var keys []string
	for _, j := range jobs {
		keys = append(keys, j.Key)
		rel := filepath.FromSlash(j.Key)
		if j.Source != filepath.Join(in, rel) || j.Destination != filepath.Join(out, rel) {
			t.Errorf("job %s paths = %s -> %s", j.Key, j.Source, j.Destination)
		}
		if j.Compressed {
			t.Errorf("pack job %s has the decompress hint set", j.Key)
		}
	}
	slices.Sort(keys)
	want := []string{
		"data/itemmanifest.dat",
		"data/wordPackDict.dat",
		"icons/sword.png",
		"misc/readme.txt",
		"music/theme.flac",
	}
	if !slices.Equal(keys, want) {
		t.Errorf("keys = %v, want %v", keys, want)
	}
}

func TestScanPackRejectsFile(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file")
	os.WriteFile(f, nil, 0o644)
	if _, err := ScanPack(f, t.TempDir()); err == nil {
		t.Error("ScanPack on a file succeeded")
	}
}

func TestUnpackJobs(t *testing.T) {
	report := packReport(t)
	idx := NewIndex("lz4", report)

	jobs, skipped := UnpackJobs(idx, "packed", "restored")
	if !slices.Equal(skipped, []string{"c.png"}) {
		t.Errorf("skipped = %v, want [c.png]", skipped)
	}
	want := []pool.Job{
		{Key: "a.dat", Source: filepath.Join("packed", "a.dat"), Destination: filepath.Join("restored", "a.dat"), Compressed: true},
		{Key: "b.flac", Source: filepath.Join("packed", "b.flac"), Destination: filepath.Join("restored", "b.flac")},
	}
	if !slices.Equal(jobs, want) {
		t.Errorf("jobs = %+v, want %+v", jobs, want)
	}
}
