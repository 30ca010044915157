package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/BeatGlow/rawcolor"
	"github.com/BeatGlow/rawcolor/internal/logging"
)

type options struct {
	verbose bool
	logFile string
	color   bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fatal(err)
	}
}

func newRootCmd() *cobra.Command {
	opts := new(options)
	root := &cobra.Command{
		Use:          "rawcolor",
		Short:        "Exercise the packed color, raw buffer and noise primitives",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			opts.setLogger(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = rawcolor.Logger().Sync()
		},
	}

	flags := root.PersistentFlags()
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	flags.StringVar(&opts.logFile, "log-file", "", "also write JSON logs to this file")
	flags.BoolVar(&opts.color, "color", true, "color dump labels")

	root.AddCommand(newNoiseCmd(opts))
	root.AddCommand(newColorCmd())
	root.AddCommand(newFillCmd(opts))
	root.AddCommand(newHandleCmd())
	return root
}

func (opts *options) setLogger(cmd *cobra.Command) {
	rawcolor.SetLogger(logging.New(logging.Options{
		Verbose: opts.verbose,
		Console: cmd.ErrOrStderr(),
		File:    opts.logFile,
	}))
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "fatal: "+err.Error())
	os.Exit(1)
}
