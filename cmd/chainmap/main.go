package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/xyproto/env/v2"
)

var version = "0.1.0"

// GlobalOptions hold all global options for chainmap.
type GlobalOptions struct {
	Debug bool
}

var globalOptions GlobalOptions

// cmdRoot is the base command when no other command has been specified.
var cmdRoot = &cobra.Command{
	Use:   "chainmap",
	Short: "Exercise and inspect the chainhashmap container",
	Long: `
chainmap loads keys into a separate chaining hash map, shows how the bucket
table grows and shrinks through its capacity schedule, and runs small
workloads against it.

Defaults for most flags can be set through CHAINMAP_* environment variables.
`,
	Version:           version,
	SilenceErrors:     true,
	SilenceUsage:      true,
	DisableAutoGenTag: true,

	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if globalOptions.Debug {
			log.SetLevel(log.DebugLevel)
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
		os.Exit(0)
	},
}

func init() {
	f := cmdRoot.PersistentFlags()
	f.BoolVar(&globalOptions.Debug, "debug", env.Bool("CHAINMAP_DEBUG"), "log every rehash of the bucket table (CHAINMAP_DEBUG)")
}

func main() {
	if err := cmdRoot.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
