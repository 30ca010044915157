// Package config loads noise job descriptions for the rawcolor command.
package config

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/BeatGlow/rawcolor"
	"github.com/BeatGlow/rawcolor/noise"
)

// Environment variables that override job file values.
const (
	EnvSeed      = "RAWCOLOR_SEED"
	EnvIntensity = "RAWCOLOR_INTENSITY"
	EnvLogFile   = "RAWCOLOR_LOG_FILE"
)

// ErrUnknownFormat is returned for job files that are neither TOML nor YAML.
var ErrUnknownFormat = errors.New("config: unknown job file format")

// Job is a noise job description.
type Job struct {
	Seed          uint32 `toml:"seed" yaml:"seed"`
	Width         int    `toml:"width" yaml:"width"`
	Height        int    `toml:"height" yaml:"height"`
	BytesPerPixel int    `toml:"bytes_per_pixel" yaml:"bytes_per_pixel"`
	Intensity     uint8  `toml:"intensity" yaml:"intensity"`
	Settings      []int  `toml:"settings" yaml:"settings"`

	// Input is the input buffer as a hex string; whitespace is ignored.
	Input string `toml:"input" yaml:"input"`

	LogFile string `toml:"log_file" yaml:"log_file"`
	Verbose bool   `toml:"verbose" yaml:"verbose"`
}

// DefaultInput is the 3×3 pixel, 3 bytes per pixel reference image.
const DefaultInput = "333333 666666 999999 cccccc eeeeee ee0000 00ee00 00ee00 111111"

// Default returns the reference job.
func Default() Job {
	return Job{
		Seed:          1,
		Width:         3,
		Height:        3,
		BytesPerPixel: 3,
		Intensity:     5,
		Settings:      []int{8, 12, 240877},
		Input:         DefaultInput,
	}
}

// Load reads a job file. The format follows the extension: .toml, .yaml or
// .yml. Fields missing from the file keep their Default values. An empty
// path returns Default.
func Load(path string) (Job, error) {
	job := Default()
	if path == "" {
		return job, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return job, fmt.Errorf("config: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, &job)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &job)
	default:
		return job, fmt.Errorf("%w %q", ErrUnknownFormat, ext)
	}
	if err != nil {
		return job, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return job, nil
}

// ApplyEnv loads envFile, if it exists, into the environment and then
// applies the RAWCOLOR_* overrides to job.
func ApplyEnv(job *Job, envFile string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("config: load %s: %w", envFile, err)
		}
	}

	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseUint(v, 0, 32)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvSeed, err)
		}
		job.Seed = uint32(seed)
	}
	if v := os.Getenv(EnvIntensity); v != "" {
		intensity, err := strconv.ParseUint(v, 0, 8)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvIntensity, err)
		}
		job.Intensity = uint8(intensity)
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		job.LogFile = v
	}
	return nil
}

// Noise returns the pipeline job.
func (j Job) Noise() noise.Job {
	return noise.Job{
		Settings:      j.Settings,
		Width:         j.Width,
		Height:        j.Height,
		BytesPerPixel: j.BytesPerPixel,
		Intensity:     j.Intensity,
	}
}

// Buffer decodes Input.
func (j Job) Buffer() ([]byte, error) {
	clean := strings.Join(strings.Fields(j.Input), "")
	p, err := hex.DecodeString(clean)
	if err != nil {
		return nil, fmt.Errorf("config: input: %w", err)
	}
	return p, nil
}

// Validate checks the dimensions and that Input covers the computed size.
func (j Job) Validate() error {
	size, err := j.Noise().Size()
	if err != nil {
		return err
	}
	p, err := j.Buffer()
	if err != nil {
		return err
	}
	if len(p) < size {
		return fmt.Errorf("config: input has %d bytes, job needs %d: %w", len(p), size, rawcolor.ErrOutOfBounds)
	}
	return nil
}
