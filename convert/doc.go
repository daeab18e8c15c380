// Package convert implements the format-specific converters of the resource
// packer: images to and from a raw NRGBA intermediate, Ogg audio to and from
// the engine's length-prefixed audio container, and XML manifests to and from
// their binary form.
//
// Every converter works on whole files at paths given by the caller and is
// safe for concurrent use as long as the paths are disjoint. Intermediate
// files use fixed suffixes:
//
//   - DecodeImage(path) writes path + ".temp"
//   - XMLToBinary(kind, path) reads path + ".xml" and writes path
//   - BinaryToXML(kind, path) reads path and writes path + ".xml"
//
// Native bundles the package functions behind a value.
package convert
