package convert

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/gabriel-vasile/mimetype"
)

// AudioSuffix is appended to an audio resource name for its Ogg stream.
const AudioSuffix = ".ogg"

var audioMagic = [4]byte{'O', 'G', 'G', 'B'}

// AudioToBinary wraps the Ogg stream at in into the engine audio container at
// out: a 4 byte magic, a big endian uint64 payload length, then the stream.
func AudioToBinary(in, out string) error {
	if err := sniffOgg(in); err != nil {
		return err
	}
	src, err := os.Open(in)
	if err != nil {
		return fmt.Errorf("open %s: %w", in, err)
	}
	defer src.Close()
	info, err := src.Stat()
	if err != nil {
		return fmt.Errorf("stat %s: %w", in, err)
	}

	return writeAtomic(out, func(f *os.File) error {
		hdr := make([]byte, 0, 12)
		hdr = append(hdr, audioMagic[:]...)
		hdr = binary.BigEndian.AppendUint64(hdr, uint64(info.Size()))
		if _, err := f.Write(hdr); err != nil {
			return fmt.Errorf("write audio header: %w", err)
		}
		if _, err := io.Copy(f, src); err != nil {
			return fmt.Errorf("write audio payload: %w", err)
		}
		return nil
	})
}

// BinaryToAudio extracts the Ogg stream from the container at in into out.
func BinaryToAudio(in, out string) error {
	src, err := os.Open(in)
	if err != nil {
		return fmt.Errorf("open %s: %w", in, err)
	}
	defer src.Close()
	br := bufio.NewReader(src)

	var hdr [12]byte
	if _, err := io.ReadFull(br, hdr[:]); err != nil {
		return fmt.Errorf("%w: %s header", ErrTruncated, in)
	}
	if [4]byte(hdr[:4]) != audioMagic {
		return fmt.Errorf("%w: %s", ErrBadMagic, in)
	}
	n := int64(binary.BigEndian.Uint64(hdr[4:]))

	return writeAtomic(out, func(f *os.File) error {
		copied, err := io.CopyN(f, br, n)
		if err != nil {
			return fmt.Errorf("%w: %s has %d of %d bytes", ErrTruncated, in, copied, n)
		}
		return nil
	})
}

func sniffOgg(path string) error {
	mt, err := mimetype.DetectFile(path)
	if err != nil {
		return fmt.Errorf("sniff %s: %w", path, err)
	}
	for m := mt; m != nil; m = m.Parent() {
		if m.Is("application/ogg") {
			return nil
		}
	}
	return fmt.Errorf("%w: %s is %s", ErrNotAudio, path, mt.String())
}
