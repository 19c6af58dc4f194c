package main

import (
	"fmt"
	"io"

	"github.com/gostonefire/chainhashmap"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/xyproto/env/v2"
)

var cmdLoad = &cobra.Command{
	Use:   "load",
	Short: "Insert and erase a range of keys and report the table state",
	Long: `
The "load" command inserts the keys 1..N with value key*10, verifies them,
erases the keys 1..M and verifies the remaining ones. The bucket table
statistics are printed after each phase.

EXIT STATUS
===========

Exit status is 0 if the command was successful, and non-zero if there was any error.
`,
	DisableAutoGenTag: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLoad(cmd.OutOrStdout(), loadOptions)
	},
}

// LoadOptions bundles all options for the load command.
type LoadOptions struct {
	Keys  int
	Erase int
	Hash  string
}

var loadOptions LoadOptions

func init() {
	cmdRoot.AddCommand(cmdLoad)

	f := cmdLoad.Flags()
	f.IntVar(&loadOptions.Keys, "keys", env.Int("CHAINMAP_KEYS", 200), "number of keys to insert (CHAINMAP_KEYS)")
	f.IntVar(&loadOptions.Erase, "erase", env.Int("CHAINMAP_ERASE", 190), "number of keys to erase again (CHAINMAP_ERASE)")
	f.StringVar(&loadOptions.Hash, "hash", env.Str("CHAINMAP_HASH", "builtin"), "hash algorithm: builtin, identity, crc32 or sha256 (CHAINMAP_HASH)")
}

func runLoad(out io.Writer, opts LoadOptions) error {
	if opts.Keys < 0 || opts.Erase < 0 || opts.Erase > opts.Keys {
		return errors.Errorf("invalid key counts: keys=%d erase=%d", opts.Keys, opts.Erase)
	}

	hm, err := newIntHashMap(opts.Hash)
	if err != nil {
		return err
	}

	for i := 1; i <= opts.Keys; i++ {
		hm.Insert(i, i*10)
	}
	if err = verifyRange(hm, 1, opts.Keys); err != nil {
		return err
	}
	printStat(out, fmt.Sprintf("after inserting %d keys", opts.Keys), hm)

	for i := 1; i <= opts.Erase; i++ {
		hm.Erase(i)
	}
	if err = verifyRange(hm, opts.Erase+1, opts.Keys); err != nil {
		return err
	}
	if hm.Size() != opts.Keys-opts.Erase {
		return errors.Errorf("size is %d, expected %d", hm.Size(), opts.Keys-opts.Erase)
	}
	printStat(out, fmt.Sprintf("after erasing %d keys", opts.Erase), hm)

	return nil
}

// verifyRange checks that every key in [from, to] maps to key*10.
func verifyRange(hm *chainhashmap.HashMap[int, int], from, to int) error {
	for i := from; i <= to; i++ {
		v, err := hm.At(i)
		if err != nil {
			return errors.Wrap(err, "verify")
		}
		if v != i*10 {
			return errors.Errorf("key %d holds %d, expected %d", i, v, i*10)
		}
	}

	return nil
}

func printStat(out io.Writer, title string, hm *chainhashmap.HashMap[int, int]) {
	stat := hm.Stat(false)
	_, _ = fmt.Fprintf(out, "%s:\n", title)
	_, _ = fmt.Fprintf(out, "  size:           %d\n", stat.Records)
	_, _ = fmt.Fprintf(out, "  capacity level: %d\n", stat.CapacityLevel)
	_, _ = fmt.Fprintf(out, "  buckets:        %d (%d used)\n", stat.NumberOfBuckets, stat.UsedBuckets)
	_, _ = fmt.Fprintf(out, "  load factor:    %d%%\n", stat.LoadFactor)
	_, _ = fmt.Fprintf(out, "  longest chain:  %d (average %.2f)\n", stat.LongestChain, stat.AverageChainLength)
}
