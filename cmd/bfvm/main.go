package main

import (
	"flag"
	"fmt"
	"os"

	"rgehrsitz/bfvm/internal/config"
	"rgehrsitz/bfvm/internal/preprocessor"
	"rgehrsitz/bfvm/internal/runtime"
	"rgehrsitz/bfvm/internal/snapshot"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("bfvm", flag.ContinueOnError)
	file := fs.String("f", "", "Read the program from a file")
	configPath := fs.String("config", "", "Path to a bfvm.toml config file")
	memorySize := fs.Int("mem", runtime.DefaultMemorySize, "Number of tape cells (overrides config)")
	debug := fs.Bool("debug", false, "Trace every instruction")
	dump := fs.Bool("dump", false, "Print the tape and pointer after execution")
	check := fs.Bool("check", false, "Validate bracket balance and exit")
	snapshotPath := fs.String("snapshot", "", "Write the final tape state as CBOR to this file")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage: bfvm [flags] <program> | bfvm [flags] -f <file>")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Error().Err(err).Msg("Error loading config")
			return 1
		}
		cfg = loaded
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "mem" {
			cfg.VM.MemorySize = *memorySize
		}
	})
	if *dump {
		cfg.Dump.Enabled = true
	}
	if *snapshotPath != "" {
		cfg.Dump.Snapshot = *snapshotPath
	}
	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("Invalid configuration")
		return 1
	}
	level, err := cfg.LogLevel()
	if err != nil {
		log.Error().Err(err).Msg("Error reading log level")
		return 1
	}
	if *debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	program, err := preprocessor.LoadProgram(*file, fs.Args())
	if err != nil {
		log.Error().Err(err).Msg("Error loading program")
		fs.Usage()
		return 2
	}

	if *check {
		if err := preprocessor.ValidateProgram(program); err != nil {
			log.Error().Err(err).Msg("Program is invalid")
			return 1
		}
		stats := preprocessor.Analyze(program)
		log.Info().
			Int("Instructions", stats.Instructions).
			Int("Ignored", stats.Ignored).
			Int("Loops", stats.Loops).
			Int("MaxDepth", stats.MaxDepth).
			Msg("Program is valid")
		return 0
	}

	vm := runtime.NewVM(cfg.VM.MemorySize, runtime.WithLogger(log.Logger))
	execErr := vm.Execute(program)

	// The tape is not rolled back on failure, so it is still worth reporting.
	if cfg.Dump.Enabled {
		fmt.Println()
		fmt.Println(vm.Dump())
	}
	if cfg.Dump.Snapshot != "" {
		if err := snapshot.WriteFile(cfg.Dump.Snapshot, vm.Dump()); err != nil {
			log.Error().Err(err).Msg("Error writing snapshot")
			return 1
		}
	}

	if execErr != nil {
		log.Error().Err(execErr).Msg("Error running program")
		return 1
	}
	log.Debug().Msg("Program execution completed successfully.")
	return 0
}
