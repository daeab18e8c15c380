// Package cmd provides the command-line interface implementation for respak.
//
// It uses the Cobra library for command structure and Fang for styling.
// Each command lives in its own file with a constructor returning a
// *cobra.Command:
//   - pack: scan an asset tree, run the pack pool, save index.json
//   - unpack: load index.json, run the unpack pool
//   - plan: dry run printing the pipeline chosen for each file
//   - inspect: verify packed files against index.json and print the digest
//   - seed: generate a sample asset tree
//
// pack and unpack share their pool flags; settings the user did not pass on
// the command line come from the environment via internal/config.
package cmd
