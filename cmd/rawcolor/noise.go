package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BeatGlow/rawcolor/dump"
	"github.com/BeatGlow/rawcolor/internal/config"
	"github.com/BeatGlow/rawcolor/noise"
	"github.com/BeatGlow/rawcolor/rng"
)

func newNoiseCmd(opts *options) *cobra.Command {
	var (
		configFile string
		envFile    string
		seed       uint32
		intensity  uint8
	)
	cmd := &cobra.Command{
		Use:   "noise",
		Short: "Perturb a buffer with bounded random noise",
		Long: `Runs a noise job and dumps the input and output buffers.

The job is read from a TOML or YAML file (--config), or defaults to the 3x3
pixel, 3 bytes per pixel reference image. RAWCOLOR_SEED, RAWCOLOR_INTENSITY
and RAWCOLOR_LOG_FILE override the file, and flags override both.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			job, err := config.Load(configFile)
			if err != nil {
				return err
			}
			if err = config.ApplyEnv(&job, envFile); err != nil {
				return err
			}
			if cmd.Flags().Changed("seed") {
				job.Seed = seed
			}
			if cmd.Flags().Changed("intensity") {
				job.Intensity = intensity
			}
			if job.Verbose || job.LogFile != "" {
				opts.verbose = opts.verbose || job.Verbose
				if opts.logFile == "" {
					opts.logFile = job.LogFile
				}
				opts.setLogger(cmd)
			}
			if err = job.Validate(); err != nil {
				return err
			}

			input, err := job.Buffer()
			if err != nil {
				return err
			}
			output := make([]byte, len(input))

			f := noise.New(rng.New(job.Seed))
			f.Sink = dump.NewHex(cmd.OutOrStdout(), opts.color)
			size, err := f.Process(job.Noise(), input, output)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "computed size: %d\n", size)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&configFile, "config", "c", "", "job file (.toml, .yaml)")
	flags.StringVar(&envFile, "env-file", ".env", "environment file with RAWCOLOR_* overrides")
	flags.Uint32Var(&seed, "seed", 1, "random seed")
	flags.Uint8Var(&intensity, "intensity", 5, "noise intensity")
	return cmd
}
