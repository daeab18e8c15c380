package cmd

import (
	"fmt"
	"maps"
	"slices"

	"github.com/dendrascience/respak/dispatch"
	"github.com/dendrascience/respak/util"
	"github.com/spf13/cobra"
)

// NewPlanCmd creates and returns the plan subcommand.
func NewPlanCmd() *cobra.Command {
	var (
		path    string
		summary bool
	)

	cmd := &cobra.Command{
		Use:   "plan [PATH]",
		Short: "Show how each file of an asset tree would be packed",
		Long: `List every resource pack would create from an asset tree and the
pipeline it would take. Nothing is written.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				path = args[0]
			}
			return runPlan(cmd, path, summary)
		},
	}

	cmd.Flags().StringVarP(&path, "input", "i", "./", "Path to the asset tree")
	cmd.Flags().BoolVarP(&summary, "summary", "s", false, "Only print the count per pipeline")

	return cmd
}

func runPlan(cmd *cobra.Command, path string, summary bool) error {
	out := cmd.OutOrStdout()
	jobs, err := util.ScanPack(path, "")
	if err != nil {
		return fmt.Errorf("failed to scan %s: %w", path, err)
	}

	pipeline := dispatch.PackPipeline()
	counts := make(map[string]int)
	for _, job := range jobs {
		rule := pipeline.Route(job).Name
		counts[rule]++
		if !summary {
			fmt.Fprintf(out, "%-24s %s\n", rule, job.Key)
		}
	}

	for _, rule := range slices.Sorted(maps.Keys(counts)) {
		fmt.Fprintf(out, "%s: %d\n", rule, counts[rule])
	}
	fmt.Fprintf(out, "Total files: %d\n", len(jobs))
	return nil
}
