package cmd

import (
	"errors"
	"fmt"

	"github.com/dendrascience/respak/pool"
	"github.com/dendrascience/respak/util"
	"github.com/spf13/cobra"
)

// NewPackCmd creates and returns the pack subcommand.
func NewPackCmd() *cobra.Command {
	var (
		inputPath  string
		outputPath string
		flags      runFlags
	)

	cmd := &cobra.Command{
		Use:   "pack",
		Short: "Pack an asset tree into its on-disk form",
		Long: `Pack every resource under the input directory into the output directory.

Images are stored as compressed raw pixels, audio is wrapped into the engine
container, manifests are built from their XML form and everything else is
compressed with the generic codec. The metadata table is written to
index.json in the output directory.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPack(cmd, inputPath, outputPath, &flags)
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "Path to the asset tree (required)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Path to the packed output directory (required)")
	flags.register(cmd)

	cmd.MarkFlagRequired("input")
	cmd.MarkFlagRequired("output")

	return cmd
}

func runPack(cmd *cobra.Command, inputPath, outputPath string, flags *runFlags) error {
	out := cmd.OutOrStdout()
	if err := requireDir(inputPath); err != nil {
		return err
	}
	if pathsOverlap(inputPath, outputPath) {
		return fmt.Errorf("%w: %s and %s", ErrOverlappingPaths, inputPath, outputPath)
	}
	cfg, err := flags.config(cmd)
	if err != nil {
		return err
	}

	jobs, err := util.ScanPack(inputPath, outputPath)
	if err != nil {
		return fmt.Errorf("failed to scan %s: %w", inputPath, err)
	}
	if flags.verbose {
		fmt.Fprintf(out, "Packing %d files from %s to %s with %s\n", len(jobs), inputPath, outputPath, cfg.Codec)
	}

	report, runErr := runPool(cmd, cfg, pool.Pack, jobs)
	if report == nil {
		return runErr
	}
	printReport(out, report, flags.verbose)

	idx := util.NewIndex(cfg.Codec, report)
	if err := idx.Save(outputPath); err != nil {
		return errors.Join(runErr, fmt.Errorf("failed to save index: %w", err))
	}
	if runErr != nil {
		return runErr
	}
	if len(report.Failures) > 0 {
		return fmt.Errorf("%w: %d of %d", ErrJobsFailed, len(report.Failures), report.Total)
	}
	return nil
}
