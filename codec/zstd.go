package codec

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
)

// Zstd writes a Zstandard stream per file. The zero value uses the library's
// default level.
type Zstd struct {
	Level zstd.EncoderLevel
}

func (Zstd) Name() string { return "zstd" }

func (z Zstd) Compress(in, out string) error {
	level := z.Level
	if level == 0 {
		level = zstd.SpeedDefault
	}
	return transcode(in, out, func(dst io.Writer, src io.Reader) error {
		// the pool already runs one file per processor
		enc, err := zstd.NewWriter(dst, zstd.WithEncoderLevel(level), zstd.WithEncoderConcurrency(1))
		if err != nil {
			return fmt.Errorf("zstd writer: %w", err)
		}
		if _, err := io.Copy(enc, src); err != nil {
			enc.Close()
			return fmt.Errorf("compress %s: %w", in, err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("close zstd writer %s: %w", in, err)
		}
		return nil
	})
}

func (Zstd) Decompress(in, out string) error {
	return transcode(in, out, func(dst io.Writer, src io.Reader) error {
		dec, err := zstd.NewReader(src, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return fmt.Errorf("zstd reader: %w", err)
		}
		defer dec.Close()
		if _, err := io.Copy(dst, dec); err != nil {
			return fmt.Errorf("decompress %s: %w", in, err)
		}
		return nil
	})
}
