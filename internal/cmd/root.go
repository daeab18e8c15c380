package cmd

import (
	"github.com/dendrascience/respak/version"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root cobra command for the respak CLI.
// It sets up all subcommands and command groups.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "respak",
		Short: "respak - a threaded converter for game resource trees",
		Long: `respak converts a game's editable asset tree into its packed on-disk form
and back, running the per-file conversions on a pool of workers.

Use subcommands to perform different operations:
  - pack: Pack an asset tree and write its index
  - unpack: Restore a packed tree from its index
  - plan: Show which pipeline each file would take
  - inspect: Check a packed tree against its index
  - seed: Generate a sample asset tree

Settings can also come from RESPAK_THREADS, RESPAK_PROGRESS, RESPAK_CODEC and
RESPAK_ON_LOCK_FAILURE, or a .env.local file.`,
		Version:       version.GetFullVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	groupConversion := "conversion"
	groupUtilities := "utilities"

	rootCmd.AddGroup(&cobra.Group{
		ID:    groupConversion,
		Title: "Conversion",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupUtilities,
		Title: "Utility Commands",
	})

	packCmd := NewPackCmd()
	unpackCmd := NewUnpackCmd()
	planCmd := NewPlanCmd()
	inspectCmd := NewInspectCmd()
	seedCmd := NewSeedCmd()

	packCmd.GroupID = groupConversion
	unpackCmd.GroupID = groupConversion
	planCmd.GroupID = groupUtilities
	inspectCmd.GroupID = groupUtilities
	seedCmd.GroupID = groupUtilities

	rootCmd.AddCommand(packCmd, unpackCmd, planCmd, inspectCmd, seedCmd)

	return rootCmd
}
