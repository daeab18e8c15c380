package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/dendrascience/respak/util"
	"github.com/spf13/cobra"
)

// NewInspectCmd creates and returns the inspect subcommand.
func NewInspectCmd() *cobra.Command {
	var (
		packedPath string
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Check a packed tree against its index",
		Long: `Check that every resource recorded in index.json exists in the packed
directory with the recorded size, and print the table digest.

Two packs of the same tree produce the same digest regardless of worker count
or completion order.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, packedPath, verbose)
		},
	}

	cmd.Flags().StringVarP(&packedPath, "path", "p", "", "Path to the packed directory (required)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print every entry")

	cmd.MarkFlagRequired("path")

	return cmd
}

func runInspect(cmd *cobra.Command, packedPath string, verbose bool) error {
	out := cmd.OutOrStdout()
	idx, err := util.LoadIndex(packedPath)
	if err != nil {
		return err
	}

	var problems []string
	for e := range idx.Table.Iterate {
		if verbose {
			fmt.Fprintf(out, "%-40s compressed=%-5t %10d -> %10d", e.Key, e.Compressed, e.UncompressedSize, e.CompressedSize)
			if e.Failed {
				fmt.Fprintf(out, "  FAILED: %s", e.Error)
			}
			fmt.Fprintln(out)
		}
		if e.Failed {
			continue
		}
		size, err := util.SizeOf(filepath.Join(packedPath, filepath.FromSlash(e.Key)))
		switch {
		case err != nil:
			problems = append(problems, fmt.Sprintf("%s: %v", e.Key, err))
		case size != e.CompressedSize:
			problems = append(problems, fmt.Sprintf("%s: size %d, index says %d", e.Key, size, e.CompressedSize))
		}
	}

	fmt.Fprintf(out, "Index: %d files, %d failed, codec %s, respak %s\n", idx.TotalFiles, idx.Failed, idx.Codec, idx.Version)
	fmt.Fprintf(out, "Digest: %016x\n", idx.Table.Digest())

	if len(problems) > 0 {
		fmt.Fprintf(out, "%d problems:\n", len(problems))
		for _, p := range problems {
			fmt.Fprintf(out, "  - %s\n", p)
		}
		return fmt.Errorf("%w: %d problems", ErrInspectFailed, len(problems))
	}
	fmt.Fprintln(out, "All files match the index")
	return nil
}
