package convert

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"image"
	"io"
	"os"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/gabriel-vasile/mimetype"
)

// TempSuffix is appended to an image path for its raw intermediate.
const TempSuffix = ".temp"

var rawImageMagic = [4]byte{'R', 'I', 'M', 'G'}

// maxDimension bounds width and height read back from a raw intermediate.
const maxDimension = 1 << 15

// DecodeImage decodes the image at path into path + TempSuffix: a 4 byte
// magic, big endian uint32 width and height, then width*height NRGBA pixels.
func DecodeImage(path string) error {
	mt, err := mimetype.DetectFile(path)
	if err != nil {
		return fmt.Errorf("sniff %s: %w", path, err)
	}
	if !strings.HasPrefix(mt.String(), "image/") {
		return fmt.Errorf("%w: %s is %s", ErrNotImage, path, mt.String())
	}

	src, err := imaging.Open(path)
	if err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	img := imaging.Clone(src)
	w, h := img.Bounds().Dx(), img.Bounds().Dy()

	return writeAtomic(path+TempSuffix, func(f *os.File) error {
		bw := bufio.NewWriter(f)
		hdr := make([]byte, 0, 12)
		hdr = append(hdr, rawImageMagic[:]...)
		hdr = binary.BigEndian.AppendUint32(hdr, uint32(w))
		hdr = binary.BigEndian.AppendUint32(hdr, uint32(h))
		if _, err := bw.Write(hdr); err != nil {
			return fmt.Errorf("write raw header: %w", err)
		}
		for y := range h {
			row := img.Pix[y*img.Stride : y*img.Stride+w*4]
			if _, err := bw.Write(row); err != nil {
				return fmt.Errorf("write raw pixels: %w", err)
			}
		}
		return bw.Flush()
	})
}

// EncodeImage replaces the raw intermediate at path with a PNG.
func EncodeImage(path string) error {
	img, err := readRawImage(path)
	if err != nil {
		return err
	}
	return writeAtomic(path, func(f *os.File) error {
		if err := imaging.Encode(f, img, imaging.PNG); err != nil {
			return fmt.Errorf("encode %s: %w", path, err)
		}
		return nil
	})
}

func readRawImage(path string) (*image.NRGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	br := bufio.NewReader(f)

	var hdr [12]byte
	if _, err := io.ReadFull(br, hdr[:]); err != nil {
		return nil, fmt.Errorf("%w: %s header", ErrTruncated, path)
	}
	if [4]byte(hdr[:4]) != rawImageMagic {
		return nil, fmt.Errorf("%w: %s", ErrBadMagic, path)
	}
	w := binary.BigEndian.Uint32(hdr[4:8])
	h := binary.BigEndian.Uint32(hdr[8:12])
	if w == 0 || h == 0 || w > maxDimension || h > maxDimension {
		return nil, fmt.Errorf("%w: %dx%d", ErrImageTooLarge, w, h)
	}
	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	// the header is only trusted once the file size agrees with it
	want := int64(len(hdr)) + int64(w)*int64(h)*4
	switch {
	case info.Size() < want:
		return nil, fmt.Errorf("%w: %s is %d bytes, header needs %d", ErrTruncated, path, info.Size(), want)
	case info.Size() > want:
		return nil, fmt.Errorf("%w: %s is %d bytes, header needs %d", ErrTrailingData, path, info.Size(), want)
	}

	img := image.NewNRGBA(image.Rect(0, 0, int(w), int(h)))
	if _, err := io.ReadFull(br, img.Pix); err != nil {
		return nil, fmt.Errorf("%w: %s pixels", ErrTruncated, path)
	}
	return img, nil
}
