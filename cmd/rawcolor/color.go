package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/BeatGlow/rawcolor/pixel"
	"github.com/BeatGlow/rawcolor/rng"
)

func newColorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "color",
		Short: "Pack, unpack and generate 32-bit colors",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "pack <r> <g> <b> <a>",
		Short: "Pack four channels into 0xRRGGBBAA",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			ch, err := parseChannels(args)
			if err != nil {
				return err
			}
			c := pixel.Pack(ch[0], ch[1], ch[2], ch[3])
			printColor(cmd, c)
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "unpack <color>",
		Short: "Split a color (0xRRGGBBAA or #rgb[a], #rrggbb[aa]) into channels",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := parseColor(args[0])
			if err != nil {
				return err
			}
			printColor(cmd, c)
			return nil
		},
	})

	var (
		count  int
		seed   uint32
		opaque bool
	)
	random := &cobra.Command{
		Use:   "random",
		Short: "Generate random colors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 0 {
				return fmt.Errorf("count must not be negative, got %d", count)
			}
			src := rng.New(seed)
			if opaque {
				colors := make([]pixel.Packed, count)
				pixel.FillRandomOpaque(colors, src)
				for _, c := range colors {
					printColor(cmd, c)
				}
				return nil
			}
			for i := 0; i < count; i++ {
				printColor(cmd, pixel.Random(src))
			}
			return nil
		},
	}
	random.Flags().IntVarP(&count, "count", "n", 1, "number of colors")
	random.Flags().Uint32Var(&seed, "seed", 1, "random seed")
	random.Flags().BoolVar(&opaque, "opaque", true, "force alpha to 0xff")
	cmd.AddCommand(random)
	return cmd
}

func parseChannels(args []string) ([4]uint8, error) {
	var ch [4]uint8
	for i, arg := range args {
		v, err := strconv.ParseUint(arg, 0, 8)
		if err != nil {
			return ch, fmt.Errorf("channel %d: %w", i, err)
		}
		ch[i] = uint8(v)
	}
	return ch, nil
}

func parseColor(s string) (pixel.Packed, error) {
	if len(s) > 2 && (s[:2] == "0x" || s[:2] == "0X") {
		v, err := strconv.ParseUint(s[2:], 16, 32)
		if err != nil {
			return 0, fmt.Errorf("color %q: %w", s, err)
		}
		return pixel.Packed(v), nil
	}
	return pixel.ParseHex(s)
}

func printColor(cmd *cobra.Command, c pixel.Packed) {
	r, g, b, a := c.Unpack()
	p := c.Bytes()
	fmt.Fprintf(cmd.OutOrStdout(), "0x%08x r=%d g=%d b=%d a=%d bytes=% x\n", uint32(c), r, g, b, a, p[:])
}
