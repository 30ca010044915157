package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BeatGlow/rawcolor/dump"
	"github.com/BeatGlow/rawcolor/rawbuf"
	"github.com/BeatGlow/rawcolor/rng"
)

func newFillCmd(opts *options) *cobra.Command {
	var (
		count int
		size  int
		seed  uint32
	)
	cmd := &cobra.Command{
		Use:       "fill <high|low|random>",
		Short:     "Fill a region of count elements of size bytes and dump it",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"high", "low", "random"},
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := rawbuf.Size(count, size)
			if err != nil {
				return err
			}
			buf := make([]byte, n)
			switch args[0] {
			case "high":
				err = rawbuf.FillHigh(buf, count, size)
			case "low":
				err = rawbuf.FillLow(buf, count, size)
			case "random":
				err = rawbuf.FillRandom(buf, count, size, rng.New(seed))
			}
			if err != nil {
				return err
			}
			sink := dump.NewHex(cmd.OutOrStdout(), opts.color)
			return sink.Bytes(fmt.Sprintf("fill %s", args[0]), buf, size)
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 4, "number of elements")
	cmd.Flags().IntVarP(&size, "size", "s", 4, "element size in bytes")
	cmd.Flags().Uint32Var(&seed, "seed", 1, "random seed")
	return cmd
}
