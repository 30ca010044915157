package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BeatGlow/rawcolor/handle"
)

func newHandleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "handle <r> <g> <b> <a>",
		Short: "Store a color behind an opaque handle and read it back",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			ch, err := parseChannels(args)
			if err != nil {
				return err
			}

			arena := handle.NewArena()
			h := arena.Create()
			if err = arena.SetValues(h, ch[0], ch[1], ch[2], ch[3]); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, field := range []struct {
				name string
				get  func(handle.Handle) (uint8, error)
			}{
				{"red", arena.Red},
				{"green", arena.Green},
				{"blue", arena.Blue},
				{"alpha", arena.Alpha},
			} {
				v, err := field.get(h)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s=%d\n", field.name, v)
			}

			c, err := arena.Packed(h)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "packed=0x%08x\n", uint32(c))
			return arena.Destroy(h)
		},
	}
}
