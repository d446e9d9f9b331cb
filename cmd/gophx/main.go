package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/gophx/aoc2024/internal/config"
	"github.com/gophx/aoc2024/internal/runner"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "warning: .env not loaded: %v\n", err)
	}

	configPath := flag.String("config", config.Path(), "HCL run configuration")
	puzzle := flag.String("puzzle", "", "run only this puzzle")
	inputPath := flag.String("input", "", "input file, overrides the configured one (requires -puzzle)")
	pretty := flag.Bool("pretty", false, "human-readable log output")
	flag.Parse()

	cfg, err := loadConfig(*configPath, *puzzle, *inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.LogLevel, *pretty)
	r := runner.New(runner.DefaultRegistry(), logger)

	results, err := r.RunAll(cfg)
	for _, res := range results {
		fmt.Printf("%s: part1=%d part2=%d\n", res.Puzzle, res.Part1, res.Part2)
	}
	if err != nil {
		logger.Fatal().Err(err).Msg("run failed")
	}
}

// loadConfig reads the configuration file and narrows it to puzzle. With an
// explicit input the file is optional.
func loadConfig(path, puzzle, inputPath string) (*config.Config, error) {
	if inputPath != "" && puzzle == "" {
		return nil, errors.New("-input requires -puzzle")
	}

	cfg, err := config.Load(path)
	switch {
	case err == nil:
	case inputPath != "" && errors.Is(err, fs.ErrNotExist):
		cfg, err = config.Parse(path, nil)
		if err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	if puzzle == "" {
		return cfg, nil
	}

	p, ok := cfg.Puzzle(puzzle)
	if !ok {
		p = config.Puzzle{Name: puzzle}
	}
	if inputPath != "" {
		p.Input = inputPath
	}
	if p.Input == "" {
		return nil, fmt.Errorf("puzzle %q has no input", puzzle)
	}
	cfg.Puzzles = []config.Puzzle{p}
	return cfg, nil
}

func newLogger(level string, pretty bool) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	if pretty {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
			Level(lvl).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stderr).Level(lvl).With().Timestamp().Logger()
}
