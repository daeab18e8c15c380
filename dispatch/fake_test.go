package dispatch

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/dendrascience/respak/convert"
)

// fakeFS tracks file sizes in memory and records every converter call.
type fakeFS struct {
	mu    sync.Mutex
	files map[string]int64
	calls []string
	fail  map[string]error // op name -> error
}

func newFakeFS(files map[string]int64) *fakeFS {
	if files == nil {
		files = map[string]int64{}
	}
	return &fakeFS{files: files, fail: map[string]error{}}
}

func (f *fakeFS) converters() Converters {
	return Converters{
		Codec:    fakeCodec{f},
		Audio:    f,
		Image:    f,
		Manifest: f,
		SizeOf:   f.SizeOf,
		Copy:     f.Copy,
		Remove:   f.Remove,
	}
}

// op records a call and applies fn unless the op is set to fail.
func (f *fakeFS) op(name, path string, fn func()) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, name+" "+path)
	if err := f.fail[name]; err != nil {
		return err
	}
	fn()
	return nil
}

func (f *fakeFS) need(path string) (int64, error) {
	size, ok := f.files[path]
	if !ok {
		return 0, fmt.Errorf("%s: %w", path, os.ErrNotExist)
	}
	return size, nil
}

func (f *fakeFS) transform(name, in, out string, scale func(int64) int64) error {
	var err error
	opErr := f.op(name, in, func() {
		var size int64
		if size, err = f.need(in); err == nil {
			f.files[out] = scale(size)
		}
	})
	return errors.Join(opErr, err)
}

func (f *fakeFS) exists(path string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.files[path]
	return ok
}

func (f *fakeFS) history() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeFS) SizeOf(path string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.need(path)
}

func (f *fakeFS) Copy(src, dst string) error {
	return f.transform("copy", src, dst, func(n int64) int64 { return n })
}

func (f *fakeFS) Remove(path string) error {
	return f.op("remove", path, func() { delete(f.files, path) })
}

func (f *fakeFS) AudioToBinary(in, out string) error {
	return f.transform("audio-to-binary", in, out, func(n int64) int64 { return n + 12 })
}

func (f *fakeFS) BinaryToAudio(in, out string) error {
	return f.transform("binary-to-audio", in, out, func(n int64) int64 { return n - 12 })
}

func (f *fakeFS) DecodeImage(path string) error {
	return f.transform("decode-image", path, path+convert.TempSuffix, func(n int64) int64 { return n * 4 })
}

func (f *fakeFS) EncodeImage(path string) error {
	return f.transform("encode-image", path, path, func(n int64) int64 { return n / 4 })
}

func (f *fakeFS) XMLToBinary(kind convert.ManifestKind, path string) error {
	return f.transform("xml-to-binary", path+convert.XMLSuffix, path, func(n int64) int64 { return n / 2 })
}

func (f *fakeFS) BinaryToXML(kind convert.ManifestKind, path string) error {
	return f.transform("binary-to-xml", path, path+convert.XMLSuffix, func(n int64) int64 { return n * 2 })
}

type fakeCodec struct{ fs *fakeFS }

func (fakeCodec) Name() string { return "fake" }

func (c fakeCodec) Compress(in, out string) error {
	return c.fs.transform("compress", in, out, func(n int64) int64 { return n / 2 })
}

func (c fakeCodec) Decompress(in, out string) error {
	return c.fs.transform("decompress", in, out, func(n int64) int64 { return n * 2 })
}
