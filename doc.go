// Package main provides the respak command-line interface.
//
// respak converts a game's editable asset tree into its packed on-disk form
// and back, spreading the per-file conversions over a pool of workers.
//
// Subcommands:
//   - pack: convert an asset tree and write index.json next to the output
//   - unpack: restore a packed tree using its index.json
//   - plan: show which pipeline every file would take
//   - inspect: check a packed tree against its index
//   - seed: generate a sample asset tree
package main
