// Package config loads the game settings. Settings come from built-in
// defaults, optionally overridden by a YAML file and then by environment
// variables. Layout constants are not configurable.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"simon/internal/scores"
	"simon/internal/simon"
)

// Environment variables read by ApplyEnv.
const (
	EnvSeed   = "SIMON_SEED"
	EnvScores = "SIMON_SCORES"
)

// ErrInvalid is wrapped by every error returned from Validate.
var ErrInvalid = errors.New("invalid config")

type Config struct {
	// path of the top scores file
	ScoreFile string `yaml:"score_file"`

	// random seed for the pattern. zero means seed from the clock
	Seed uint64 `yaml:"seed"`

	// game logic ticks per second
	TickRate int `yaml:"tick_rate"`

	LeadIn        time.Duration `yaml:"lead_in"`
	FlashDuration time.Duration `yaml:"flash_duration"`
	StepPause     time.Duration `yaml:"step_pause"`

	// playback volume in the range [0,1]
	Volume float64 `yaml:"volume"`
	Mute   bool    `yaml:"mute"`
}

func Default() Config {
	return Config{
		ScoreFile:     scores.DefaultPath,
		TickRate:      60,
		LeadIn:        simon.DefaultTiming.LeadIn,
		FlashDuration: simon.DefaultTiming.FlashDuration,
		StepPause:     simon.DefaultTiming.StepPause,
		Volume:        1.0,
	}
}

// Load reads the YAML file at path over the defaults. An empty path, a
// missing file or an empty file all give the defaults. Unknown keys are
// errors.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Default(), fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides settings from the environment. getenv is usually
// os.Getenv.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if s := getenv(EnvSeed); s != "" {
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvSeed, err)
		}
		c.Seed = v
	}
	if s := getenv(EnvScores); s != "" {
		c.ScoreFile = s
	}
	return nil
}

func (c Config) Validate() error {
	switch {
	case c.TickRate <= 0:
		return fmt.Errorf("%w: tick_rate must be positive (%d)", ErrInvalid, c.TickRate)
	case c.LeadIn < 0:
		return fmt.Errorf("%w: lead_in is negative (%v)", ErrInvalid, c.LeadIn)
	case c.FlashDuration < 0:
		return fmt.Errorf("%w: flash_duration is negative (%v)", ErrInvalid, c.FlashDuration)
	case c.StepPause < 0:
		return fmt.Errorf("%w: step_pause is negative (%v)", ErrInvalid, c.StepPause)
	case !(c.Volume >= 0 && c.Volume <= 1):
		return fmt.Errorf("%w: volume must be between 0 and 1 (%v)", ErrInvalid, c.Volume)
	case c.ScoreFile == "":
		return fmt.Errorf("%w: score_file is empty", ErrInvalid)
	}
	return nil
}

// Timing returns the replay pacing for the state machine.
func (c Config) Timing() simon.Timing {
	return simon.Timing{
		LeadIn:        c.LeadIn,
		FlashDuration: c.FlashDuration,
		StepPause:     c.StepPause,
	}
}

// TickDuration is the length of one game logic tick.
func (c Config) TickDuration() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}
