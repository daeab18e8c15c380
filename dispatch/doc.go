// Package dispatch routes a pool.Job to the converters that handle it.
//
// A Pipeline is an ordered rule table for one direction. Each rule pairs a
// name and a path predicate with the steps to run; the first matching rule
// wins and the pipeline's Fallback runs when none match. The Target of a
// pipeline names which path the predicates look at: the source for Pack, the
// destination for Unpack.
//
// Pack, highest priority first:
//
//	audio     source + ".ogg" wrapped into the audio container at destination
//	image     decode to source + ".temp", compress the raw pixels
//	manifest  build source from source + ".xml", compress it
//	generic   compress source
//
// Unpack always decompresses (or copies) source to destination first, then:
//
//	image     encode the raw pixels at destination as PNG in place
//	manifest  write destination + ".xml" from the binary
//	audio     unwrap destination into destination + ".ogg"
//
// Intermediate files are cleaned up except where the game expects them to
// stay: packing the item manifest keeps its generated .dat, and unpacking
// the resource-ID map keeps its binary.
package dispatch
