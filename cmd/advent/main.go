// Command advent runs one day's puzzle solver and prints both answers.
//
// Usage:
//
//	advent [-config advent.yaml] [-env .env] [-input path] [-log-level level] -day N
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/katalvlaran/advent2024/input"
	"github.com/katalvlaran/advent2024/internal/config"
	"github.com/katalvlaran/advent2024/internal/logger"
	"github.com/katalvlaran/advent2024/solvers"
)

// exitError carries a process exit code.
type exitError struct {
	code int
	msg  string
}

func (e *exitError) Error() string { return e.msg }

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		var ee *exitError
		if errors.As(err, &ee) {
			if ee.msg != "" {
				fmt.Fprintln(os.Stderr, ee.msg)
			}
			os.Exit(ee.code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run parses args, solves the requested day and writes the answers to stdout.
// Diagnostics go to stderr.
func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("advent", flag.ContinueOnError)
	fs.SetOutput(stderr)
	day := fs.Int("day", 0, "puzzle day to solve; one of the registered days")
	cfgPath := fs.String("config", "", "optional YAML config file")
	envFile := fs.String("env", ".env", "dotenv file to load if present")
	inputPath := fs.String("input", "", "input file; defaults to <input_dir>/inputNN.txt")
	logLevel := fs.String("log-level", "", "log level: debug, info, warn, error")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return &exitError{code: 2, msg: err.Error()}
	}

	if err := config.LoadDotEnv(*envFile); err != nil {
		return err
	}
	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}
	cfg.ApplyEnv()
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	log := logger.New(cfg.LogLevel, stderr)

	solver, err := solvers.Lookup(*day)
	if err != nil {
		return &exitError{code: 2, msg: fmt.Sprintf("%v (available: %v)", err, solvers.Days())}
	}
	path := *inputPath
	if path == "" {
		path = cfg.InputPath(*day)
	}
	log.Debug().Str("config", *cfgPath).Str("input_dir", cfg.InputDir).Msg("configuration resolved")

	lines, err := input.LinesFromFile(path)
	if err != nil {
		return err
	}
	log.Debug().Str("path", path).Int("lines", len(lines)).Msg("input read")

	for i, part := range []solvers.Part{solver.Part1, solver.Part2} {
		start := time.Now()
		answer, err := part(lines)
		if err != nil {
			return fmt.Errorf("day %d part %d: %w", *day, i+1, err)
		}
		log.Debug().Int("day", *day).Int("part", i+1).Dur("took", time.Since(start)).Msg("solved")
		fmt.Fprintf(stdout, "Answer to part %d:\n%d\n", i+1, answer)
	}
	return nil
}
