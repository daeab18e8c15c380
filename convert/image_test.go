package convert

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestImageRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "coloritemicon_01.png")
	want := writePNG(t, path, 7, 5)

	if err := DecodeImage(path); err != nil {
		t.Fatalf("DecodeImage failed: %v", err)
	}
	raw, err := os.ReadFile(path + TempSuffix)
	if err != nil {
		t.Fatalf("raw intermediate missing: %v", err)
	}
	if len(raw) != 12+7*5*4 {
		t.Errorf("raw size = %d, want %d", len(raw), 12+7*5*4)
	}

	// unpack encodes the intermediate in place
	restored := filepath.Join(dir, "restored.png")
	if err := os.Rename(path+TempSuffix, restored); err != nil {
		t.Fatal(err)
	}
	if err := EncodeImage(restored); err != nil {
		t.Fatalf("EncodeImage failed: %v", err)
	}

	f, err := os.Open(restored)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	got, err := png.Decode(f)
	if err != nil {
		t.Fatalf("restored file is not a PNG: %v", err)
	}
	if got.Bounds() != want.Bounds() {
		t.Fatalf("bounds = %v, want %v", got.Bounds(), want.Bounds())
	}
	nrgba, ok := got.(*image.NRGBA)
	if !ok {
		t.Fatalf("decoded %T, want *image.NRGBA", got)
	}
	if !bytes.Equal(nrgba.Pix, want.Pix) {
		t.Error("pixels differ after round trip")
	}
}

func TestDecodeImageRejectsNonImage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "greybgicon.dat")
	os.WriteFile(path, []byte("plain text, not pixels"), 0o644)

	err := DecodeImage(path)
	if !errors.Is(err, ErrNotImage) {
		t.Errorf("DecodeImage error = %v, want ErrNotImage", err)
	}
	if _, err := os.Stat(path + TempSuffix); !os.IsNotExist(err) {
		t.Error("temp file written for rejected input")
	}
}

func TestEncodeImageErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"short header", []byte("RIM"), ErrTruncated},
		{"bad magic", []byte("XXXX\x00\x00\x00\x01\x00\x00\x00\x01"), ErrBadMagic},
		{"zero width", []byte("RIMG\x00\x00\x00\x00\x00\x00\x00\x01"), ErrImageTooLarge},
		{"missing pixels", []byte("RIMG\x00\x00\x00\x02\x00\x00\x00\x02\x01"), ErrTruncated},
		{"huge header on tiny file", []byte("RIMG\x00\x00\x80\x00\x00\x00\x80\x00\x01\x02\x03\x04"), ErrTruncated},
		{"trailing bytes", []byte("RIMG\x00\x00\x00\x01\x00\x00\x00\x01\x01\x02\x03\x04\x05"), ErrTrailingData},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "img.png")
			os.WriteFile(path, tt.data, 0o644)
			if err := EncodeImage(path); !errors.Is(err, tt.want) {
				t.Errorf("EncodeImage(%q) = %v, want %v", tt.data, err, tt.want)
			}
			got, _ := os.ReadFile(path)
			if !bytes.Equal(got, tt.data) {
				t.Error("input modified on failure")
			}
		})
	}
}
