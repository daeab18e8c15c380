package dispatch

import (
	"github.com/dendrascience/respak/codec"
	"github.com/dendrascience/respak/convert"
	"github.com/dendrascience/respak/util"
)

type (
	Audio interface {
		AudioToBinary(in, out string) error
		BinaryToAudio(in, out string) error
	}
	Image interface {
		DecodeImage(path string) error
		EncodeImage(path string) error
	}
	Manifest interface {
		XMLToBinary(kind convert.ManifestKind, path string) error
		BinaryToXML(kind convert.ManifestKind, path string) error
	}
)

// Converters is everything a pipeline step may call. Every field must be
// safe for concurrent use on disjoint paths.
type Converters struct {
	Codec    codec.Codec
	Audio    Audio
	Image    Image
	Manifest Manifest

	SizeOf func(path string) (int64, error)
	Copy   func(src, dst string) error
	Remove func(path string) error
}

// Native returns the production converters around the given codec.
func Native(c codec.Codec) Converters {
	return Converters{
		Codec:    c,
		Audio:    convert.Native{},
		Image:    convert.Native{},
		Manifest: convert.Native{},
		SizeOf:   util.SizeOf,
		Copy:     util.CopyFile,
		Remove:   util.RemoveIfExists,
	}
}
