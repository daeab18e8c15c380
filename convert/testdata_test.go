package convert

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"testing"
)

// writePNG writes a w x h translucent gradient PNG and returns its pixels.
// Translucency keeps the PNG in NRGBA form through encode and decode.
func writePNG(t *testing.T, path string, w, h int) *image.NRGBA {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 16), G: uint8(y * 16), B: uint8(x + y), A: uint8(0x40 + x)})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	return img
}

// oggStream returns bytes sniffed as Ogg Vorbis.
func oggStream(payload string) []byte {
	b := make([]byte, 28, 28+7+len(payload))
	copy(b, "OggS")
	b = append(b, "\x01vorbis"...)
	return append(b, payload...)
}
