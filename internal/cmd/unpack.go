package cmd

import (
	"fmt"

	"github.com/dendrascience/respak/pool"
	"github.com/dendrascience/respak/util"
	"github.com/spf13/cobra"
)

// NewUnpackCmd creates and returns the unpack subcommand.
func NewUnpackCmd() *cobra.Command {
	var (
		inputPath  string
		outputPath string
		flags      runFlags
	)

	cmd := &cobra.Command{
		Use:   "unpack",
		Short: "Restore a packed tree into editable assets",
		Long: `Restore every resource listed in the packed directory's index.json.

The codec recorded in the index is used unless --codec is given. Resources
that failed to pack are listed and skipped.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUnpack(cmd, inputPath, outputPath, &flags)
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "Path to the packed directory (required)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Path to restore assets into (required)")
	flags.register(cmd)

	cmd.MarkFlagRequired("input")
	cmd.MarkFlagRequired("output")

	return cmd
}

func runUnpack(cmd *cobra.Command, inputPath, outputPath string, flags *runFlags) error {
	out := cmd.OutOrStdout()
	if pathsOverlap(inputPath, outputPath) {
		return fmt.Errorf("%w: %s and %s", ErrOverlappingPaths, inputPath, outputPath)
	}
	idx, err := util.LoadIndex(inputPath)
	if err != nil {
		return err
	}
	cfg, err := flags.config(cmd)
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("codec") && idx.Codec != "" {
		cfg.Codec = idx.Codec
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("index codec: %w", err)
		}
	}

	jobs, skipped := util.UnpackJobs(idx, inputPath, outputPath)
	for _, key := range skipped {
		fmt.Fprintf(out, "skipping %s: failed to pack\n", key)
	}
	if flags.verbose {
		fmt.Fprintf(out, "Unpacking %d files from %s (packed by respak %s) with %s\n",
			len(jobs), inputPath, idx.Version, cfg.Codec)
	}

	report, err := runPool(cmd, cfg, pool.Unpack, jobs)
	if report == nil {
		return err
	}
	printReport(out, report, flags.verbose)
	if err != nil {
		return err
	}
	if len(report.Failures) > 0 {
		return fmt.Errorf("%w: %d of %d", ErrJobsFailed, len(report.Failures), report.Total)
	}
	return nil
}
