package dispatch

import (
	"fmt"

	"github.com/dendrascience/respak/convert"
	"github.com/dendrascience/respak/pool"
)

// compress runs the generic codec and records sizes read back from disk.
func compress(c *Converters, in, out string, res *pool.Result) error {
	if err := c.Codec.Compress(in, out); err != nil {
		return fmt.Errorf("compress: %w", err)
	}
	usize, err := c.SizeOf(in)
	if err != nil {
		return fmt.Errorf("size of input: %w", err)
	}
	csize, err := c.SizeOf(out)
	if err != nil {
		return fmt.Errorf("size of output: %w", err)
	}
	res.Compressed = true
	res.UncompressedSize = usize
	res.CompressedSize = csize
	return nil
}

func packGeneric(c *Converters, job pool.Job, res *pool.Result) error {
	return compress(c, job.Source, job.Destination, res)
}

// packAudio stores audio uncompressed; both sizes are the container size.
func packAudio(c *Converters, job pool.Job, res *pool.Result) error {
	if err := c.Audio.AudioToBinary(job.Source+convert.AudioSuffix, job.Destination); err != nil {
		return fmt.Errorf("audio to binary: %w", err)
	}
	size, err := c.SizeOf(job.Destination)
	if err != nil {
		return fmt.Errorf("size of output: %w", err)
	}
	res.Compressed = false
	res.UncompressedSize = size
	res.CompressedSize = size
	return nil
}

func packImage(c *Converters, job pool.Job, res *pool.Result) (err error) {
	temp := job.Source + convert.TempSuffix
	defer func() {
		if rerr := c.Remove(temp); rerr != nil && err == nil {
			err = fmt.Errorf("remove intermediate: %w", rerr)
		}
	}()
	if err := c.Image.DecodeImage(job.Source); err != nil {
		return fmt.Errorf("decode image: %w", err)
	}
	return compress(c, temp, job.Destination, res)
}

func packManifest(keep bool) func(convert.ManifestKind) Step {
	return func(kind convert.ManifestKind) Step {
		return func(c *Converters, job pool.Job, res *pool.Result) (err error) {
			if err := c.Manifest.XMLToBinary(kind, job.Source); err != nil {
				return fmt.Errorf("xml to binary: %w", err)
			}
			if !keep {
				defer func() {
					if rerr := c.Remove(job.Source); rerr != nil && err == nil {
						err = fmt.Errorf("remove intermediate: %w", rerr)
					}
				}()
			}
			return compress(c, job.Source, job.Destination, res)
		}
	}
}

// unpackPayload puts the payload at the destination: decompressed when the
// job carries the hint, copied otherwise.
func unpackPayload(c *Converters, job pool.Job, res *pool.Result) error {
	csize, err := c.SizeOf(job.Source)
	if err != nil {
		return fmt.Errorf("size of input: %w", err)
	}
	if job.Compressed {
		if err := c.Codec.Decompress(job.Source, job.Destination); err != nil {
			return fmt.Errorf("decompress: %w", err)
		}
	} else if job.Source != job.Destination {
		if err := c.Copy(job.Source, job.Destination); err != nil {
			return fmt.Errorf("copy: %w", err)
		}
	}
	usize, err := c.SizeOf(job.Destination)
	if err != nil {
		return fmt.Errorf("size of output: %w", err)
	}
	res.Compressed = job.Compressed
	res.CompressedSize = csize
	res.UncompressedSize = usize
	return nil
}

func unpackImage(c *Converters, job pool.Job, _ *pool.Result) error {
	if err := c.Image.EncodeImage(job.Destination); err != nil {
		return fmt.Errorf("encode image: %w", err)
	}
	return nil
}

func unpackManifest(keep bool) func(convert.ManifestKind) Step {
	return func(kind convert.ManifestKind) Step {
		return func(c *Converters, job pool.Job, _ *pool.Result) error {
			if err := c.Manifest.BinaryToXML(kind, job.Destination); err != nil {
				return fmt.Errorf("binary to xml: %w", err)
			}
			if keep {
				return nil
			}
			if err := c.Remove(job.Destination); err != nil {
				return fmt.Errorf("remove binary: %w", err)
			}
			return nil
		}
	}
}

func unpackAudio(c *Converters, job pool.Job, _ *pool.Result) error {
	if err := c.Audio.BinaryToAudio(job.Destination, job.Destination+convert.AudioSuffix); err != nil {
		return fmt.Errorf("binary to audio: %w", err)
	}
	if err := c.Remove(job.Destination); err != nil {
		return fmt.Errorf("remove binary: %w", err)
	}
	return nil
}
