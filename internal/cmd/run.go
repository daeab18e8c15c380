package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/dendrascience/respak/dispatch"
	"github.com/dendrascience/respak/internal/config"
	"github.com/dendrascience/respak/pool"
	"github.com/spf13/cobra"
)

// runFlags are the pool settings shared by pack and unpack. Flags the user
// set override the environment.
type runFlags struct {
	threads       int
	progress      string
	codec         string
	onLockFailure string
	verbose       bool
}

func (f *runFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&f.threads, "threads", "j", 0, "Number of workers (0 = one per processor)")
	cmd.Flags().StringVar(&f.progress, "progress", "line", "Progress display: line or overwrite")
	cmd.Flags().StringVar(&f.codec, "codec", "lz4", "Generic codec: lz4 or zstd")
	cmd.Flags().StringVar(&f.onLockFailure, "on-lock-failure", "drain", "After a lock failure: drain or abort")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "Enable verbose output")
}

func (f *runFlags) config(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("threads") {
		cfg.Threads = f.threads
	}
	if cmd.Flags().Changed("progress") {
		cfg.Progress = f.progress
	}
	if cmd.Flags().Changed("codec") {
		cfg.Codec = f.codec
	}
	if cmd.Flags().Changed("on-lock-failure") {
		cfg.OnLockFailure = f.onLockFailure
	}
	return cfg, cfg.Validate()
}

// runPool converts jobs with the direction's pipeline.
func runPool(cmd *cobra.Command, cfg *config.Config, dir pool.Direction, jobs []pool.Job) (*pool.Report, error) {
	c, err := cfg.CodecImpl()
	if err != nil {
		return nil, err
	}
	d, err := dispatch.New(dir, dispatch.Native(c))
	if err != nil {
		return nil, err
	}
	logger := log.New(cmd.ErrOrStderr(), "", log.LstdFlags)
	pcfg, err := cfg.PoolConfig(dir, cmd.OutOrStdout(), logger)
	if err != nil {
		return nil, err
	}
	return pool.New(pcfg, d).Run(jobs)
}

func printReport(w io.Writer, r *pool.Report, verbose bool) {
	fmt.Fprintf(w, "%s: %d of %d files in %s with %d workers (run %s)\n",
		r.Direction, r.Claimed, r.Total, r.Elapsed.Round(time.Millisecond), r.Threads, r.RunID)
	if r.Unclaimed > 0 {
		fmt.Fprintf(w, "%d files were not processed\n", r.Unclaimed)
	}
	if len(r.Failures) > 0 {
		fmt.Fprintf(w, "%d files failed:\n", len(r.Failures))
		for _, f := range r.Failures {
			fmt.Fprintf(w, "  - %s\n", f)
		}
	}
	if len(r.Lost) > 0 {
		fmt.Fprintf(w, "%d files were claimed but not recorded:\n", len(r.Lost))
		for _, key := range r.Lost {
			fmt.Fprintf(w, "  - %s\n", key)
		}
	}
	if verbose {
		var usize, csize int64
		for e := range r.Table.Iterate {
			usize += e.UncompressedSize
			csize += e.CompressedSize
		}
		fmt.Fprintf(w, "Total size: %d bytes uncompressed, %d bytes packed\n", usize, csize)
	}
}

func requireDir(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", path)
	}
	return nil
}
