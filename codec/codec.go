// Package codec provides the generic file-to-file compressors used for every
// resource that has no format-specific payload compression.
package codec

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
)

var ErrUnknownCodec = errors.New("unknown codec")

// Codec compresses and decompresses whole files. Implementations must be safe
// for concurrent use on disjoint paths.
type Codec interface {
	Name() string
	Compress(in, out string) error
	Decompress(in, out string) error
}

var registry = map[string]Codec{
	"lz4":  LZ4{},
	"zstd": Zstd{},
}

// Default is the codec used when none is configured.
const Default = "lz4"

// ByName looks up a codec.
func ByName(name string) (Codec, error) {
	if name == "" {
		name = Default
	}
	c, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, name)
	}
	return c, nil
}

// Names lists the registered codecs.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// transcode streams in through wrap into out. A partial out is removed on error.
func transcode(in, out string, wrap func(dst io.Writer, src io.Reader) error) (err error) {
	src, err := os.Open(in)
	if err != nil {
		return fmt.Errorf("open %s: %w", in, err)
	}
	defer src.Close()

	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	dst, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create %s: %w", out, err)
	}
	defer func() {
		if cerr := dst.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", out, cerr)
		}
		if err != nil {
			os.Remove(out)
		}
	}()

	return wrap(dst, src)
}
