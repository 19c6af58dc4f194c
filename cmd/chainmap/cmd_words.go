package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/xyproto/env/v2"
)

var cmdWords = &cobra.Command{
	Use:   "words [file]",
	Short: "Count word frequencies",
	Long: `
The "words" command counts how often each word occurs in a file, or in
standard input if no file is given, and prints the most frequent ones.
Words are split on white space and compared case insensitively.

EXIT STATUS
===========

Exit status is 0 if the command was successful, and non-zero if there was any error.
`,
	Args:              cobra.MaximumNArgs(1),
	DisableAutoGenTag: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		in := cmd.InOrStdin()
		if len(args) == 1 {
			f, err := os.Open(args[0])
			if err != nil {
				return errors.WithStack(err)
			}
			defer func(f *os.File) { _ = f.Close() }(f)
			in = f
		}
		return runWords(in, cmd.OutOrStdout(), wordsOptions)
	},
}

// WordsOptions bundles all options for the words command.
type WordsOptions struct {
	Top  int
	Hash string
}

var wordsOptions WordsOptions

func init() {
	cmdRoot.AddCommand(cmdWords)

	f := cmdWords.Flags()
	f.IntVar(&wordsOptions.Top, "top", 10, "number of words to print, 0 prints all")
	f.StringVar(&wordsOptions.Hash, "hash", env.Str("CHAINMAP_HASH", "builtin"), "hash algorithm: builtin, crc32 or sha256 (CHAINMAP_HASH)")
}

type wordCount struct {
	word  string
	count int
}

func runWords(in io.Reader, out io.Writer, opts WordsOptions) error {
	hm, err := newStringHashMap(opts.Hash)
	if err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		*hm.Index(strings.ToLower(scanner.Text()))++
	}
	if err = scanner.Err(); err != nil {
		return errors.Wrap(err, "read words")
	}

	counts := make([]wordCount, 0, hm.Size())
	for w, n := range hm.All() {
		counts = append(counts, wordCount{word: w, count: n})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].count != counts[j].count {
			return counts[i].count > counts[j].count
		}
		return counts[i].word < counts[j].word
	})

	if opts.Top > 0 && len(counts) > opts.Top {
		counts = counts[:opts.Top]
	}
	for _, wc := range counts {
		_, _ = fmt.Fprintf(out, "%7d %s\n", wc.count, wc.word)
	}

	log.Debugf("%d distinct words in %d buckets", hm.Size(), hm.BucketCount())

	return nil
}
