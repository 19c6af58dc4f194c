package main

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/xyproto/env/v2"
	"golang.org/x/sync/errgroup"
)

var cmdBench = &cobra.Command{
	Use:   "bench",
	Short: "Run independent insert/lookup/erase trials in parallel",
	Long: `
The "bench" command runs a number of trials, each on its own hash map, in
parallel. Every trial inserts N keys, looks each of them up, erases them all
and checks that the map ends up empty at the smallest capacity level.

EXIT STATUS
===========

Exit status is 0 if the command was successful, and non-zero if there was any error.
`,
	DisableAutoGenTag: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBench(cmd.Context(), cmd.OutOrStdout(), benchOptions)
	},
}

// BenchOptions bundles all options for the bench command.
type BenchOptions struct {
	Trials int
	Keys   int
	Hash   string
}

var benchOptions BenchOptions

func init() {
	cmdRoot.AddCommand(cmdBench)

	f := cmdBench.Flags()
	f.IntVar(&benchOptions.Trials, "trials", env.Int("CHAINMAP_TRIALS", runtime.GOMAXPROCS(0)), "number of trials (CHAINMAP_TRIALS)")
	f.IntVar(&benchOptions.Keys, "keys", env.Int("CHAINMAP_KEYS", 100000), "keys per trial (CHAINMAP_KEYS)")
	f.StringVar(&benchOptions.Hash, "hash", env.Str("CHAINMAP_HASH", "builtin"), "hash algorithm: builtin, identity, crc32 or sha256 (CHAINMAP_HASH)")
}

func runBench(ctx context.Context, out io.Writer, opts BenchOptions) error {
	if opts.Trials <= 0 || opts.Keys <= 0 {
		return errors.Errorf("invalid bench options: trials=%d keys=%d", opts.Trials, opts.Keys)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	durations := make([]time.Duration, opts.Trials)

	wg, wgCtx := errgroup.WithContext(ctx)
	wg.SetLimit(runtime.GOMAXPROCS(0))
	for trial := 0; trial < opts.Trials; trial++ {
		wg.Go(func() error {
			if err := wgCtx.Err(); err != nil {
				return err
			}
			start := time.Now()
			if err := benchTrial(opts); err != nil {
				return errors.Wrapf(err, "trial %d", trial)
			}
			durations[trial] = time.Since(start)
			log.Debugf("trial %d done in %v", trial, durations[trial])
			return nil
		})
	}
	if err := wg.Wait(); err != nil {
		return err
	}

	var total time.Duration
	for trial, d := range durations {
		total += d
		_, _ = fmt.Fprintf(out, "trial %3d: %v\n", trial, d)
	}
	perOp := total / time.Duration(opts.Trials*opts.Keys*3)
	_, _ = fmt.Fprintf(out, "average per operation: %v\n", perOp)

	return nil
}

// benchTrial inserts, looks up and erases opts.Keys keys on a fresh map.
func benchTrial(opts BenchOptions) error {
	hm, err := newIntHashMap(opts.Hash)
	if err != nil {
		return err
	}

	for i := 0; i < opts.Keys; i++ {
		hm.Insert(i, i*10)
	}
	if err = verifyRange(hm, 0, opts.Keys-1); err != nil {
		return err
	}
	for i := 0; i < opts.Keys; i++ {
		hm.Erase(i)
	}

	if !hm.Empty() {
		return errors.Errorf("%d entries left after erasing all keys", hm.Size())
	}
	if hm.CapacityLevel() != 0 {
		return errors.Errorf("capacity level %d after erasing all keys", hm.CapacityLevel())
	}

	return nil
}
