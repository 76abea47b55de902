package main

import (
	"flag"
	"fmt"
	"os"

	"simon/internal/buttons"
	"simon/internal/config"
	"simon/internal/game"
	"simon/internal/logger"
	"simon/internal/tone"
)

func main() {
	configPath := flag.String("config", "", "YAML settings file. Missing files are ignored.")
	scorePath := flag.String("scores", "", "Top scores file (overrides the config file and SIMON_SCORES).")
	seed := flag.Uint64("seed", 0, "Pattern seed. Zero seeds from the clock.")
	mute := flag.Bool("mute", false, "Play without sound.")
	exportDir := flag.String("export-tones", "", "Write the button tones as WAV files to this directory and exit.")
	echoLog := flag.Bool("log", false, "Echo log entries to stderr.")
	flag.Parse()

	if *echoLog {
		logger.SetEcho(os.Stderr)
	}

	if *exportDir != "" {
		if err := exportTones(*exportDir); err != nil {
			fmt.Fprintf(os.Stderr, "* error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "* error: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.ApplyEnv(os.Getenv); err != nil {
		fmt.Fprintf(os.Stderr, "* error: %v\n", err)
		os.Exit(1)
	}

	// command line beats file and environment, but only when given
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "scores":
			cfg.ScoreFile = *scorePath
		case "seed":
			cfg.Seed = *seed
		case "mute":
			cfg.Mute = *mute
		}
	})

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "* error: %v\n", err)
		os.Exit(1)
	}
	logger.Logf("config", "scores %s, %d ticks/s", cfg.ScoreFile, cfg.TickRate)

	if err := game.RunDesktop(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "* error: %v\n", err)
		os.Exit(1)
	}
}

func exportTones(dir string) error {
	bank, err := tone.NewBank(buttons.Default().Frequencies(), tone.NewSpec(0))
	if err != nil {
		return err
	}
	paths, err := bank.Export(dir)
	for _, p := range paths {
		fmt.Println(p)
	}
	return err
}
