package codec

import (
	"fmt"
	"io"

	"github.com/pierrec/lz4/v4"
)

// LZ4 writes a single LZ4 frame per file.
type LZ4 struct{}

func (LZ4) Name() string { return "lz4" }

func (LZ4) Compress(in, out string) error {
	return transcode(in, out, func(dst io.Writer, src io.Reader) error {
		zw := lz4.NewWriter(dst)
		if _, err := io.Copy(zw, src); err != nil {
			return fmt.Errorf("compress %s: %w", in, err)
		}
		if err := zw.Close(); err != nil {
			return fmt.Errorf("close LZ4 writer %s: %w", in, err)
		}
		return nil
	})
}

func (LZ4) Decompress(in, out string) error {
	return transcode(in, out, func(dst io.Writer, src io.Reader) error {
		if _, err := io.Copy(dst, lz4.NewReader(src)); err != nil {
			return fmt.Errorf("decompress %s: %w", in, err)
		}
		return nil
	})
}
