package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"solseek/internal/ui"
	"solseek/pkg/generator"
	"solseek/pkg/generator/cpu"
)

const (
	version        = "0.1"
	outputFile     = "wallet.txt"
	defaultPattern = "Seek"
)

// options carries the parsed command line before the search starts.
type options struct {
	config      *generator.Config
	save        bool
	usedDefault bool
}

func main() {
	opts, err := parseArgs(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		var perr *generator.InvalidPatternError
		if errors.As(err, &perr) {
			fmt.Fprintf(os.Stderr, "Valid characters are: %s\n", generator.Alphabet)
		}
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gen := cpu.New(opts.config.Workers)

	ui.PrintBanner(version)
	ui.PrintSearchInfo(opts.config, gen.Name(), gen.Workers(), estimateDifficulty(opts.config), opts.usedDefault)

	resultChan, err := gen.Start(ctx, opts.config)
	if err != nil {
		log.Fatalf("start search: %v", err)
	}

	progress := ui.NewProgress()
	snapshots := gen.Snapshots()

	var res generator.Result
	var found bool
loop:
	for {
		select {
		case r, ok := <-resultChan:
			if ok {
				res, found = r, true
			}
			break loop
		case snap, ok := <-snapshots:
			if !ok {
				snapshots = nil
				continue
			}
			progress.Update(snap)
		}
	}
	progress.Finish()
	stop()

	if !found {
		if err := gen.Wait(); err != nil {
			log.Fatalf("search aborted: %v", err)
		}
		ui.PrintCancelled(gen.Stats())
		os.Exit(1)
	}

	ui.PrintResult(res)
	if opts.save {
		if err := ui.SaveResult(outputFile, res); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		} else {
			fmt.Printf("Saved to %s\n", outputFile)
		}
	}
}

// parseArgs turns the command line into a validated search configuration.
// --start/--end take precedence over trailing patterns; both present means
// both must match the same address.
func parseArgs(args []string) (*options, error) {
	fs := flag.NewFlagSet("solseek", flag.ContinueOnError)
	var (
		start    = fs.String("start", "", "pattern the address must start with")
		end      = fs.String("end", "", "pattern the address must end with")
		position = fs.String("position", "startorend", "where trailing patterns may match: start, end, startorend, anywhere")
		caseSens = fs.String("case-sensitive", "true", "case sensitive matching: true, false, 1, 0, yes, no")
		workers  = fs.Int("workers", 0, "number of search workers (0 = one per CPU core)")
		save     = fs.Bool("save", false, "write the found keypair to "+outputFile)
	)
	fs.Usage = func() { usage(fs) }
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	caseSensitive, err := parseBoolWord(*caseSens)
	if err != nil {
		return nil, err
	}
	mode, err := parsePosition(*position)
	if err != nil {
		return nil, err
	}

	cfg := &generator.Config{CaseSensitive: caseSensitive, Workers: *workers}
	opts := &options{config: cfg, save: *save}

	if *start != "" || *end != "" {
		cfg.StartPattern = *start
		cfg.EndPattern = *end
		switch {
		case *start != "" && *end != "":
			cfg.Mode = generator.StartAndEnd
		case *start != "":
			cfg.Mode = generator.StartOnly
		default:
			cfg.Mode = generator.EndOnly
		}
	} else {
		patterns := fs.Args()
		if len(patterns) == 0 {
			patterns = []string{defaultPattern}
			opts.usedDefault = true
		}
		cfg.Mode = mode
		cfg.Patterns = patterns
	}

	for _, p := range cfg.Patterns {
		if err := generator.CheckPattern(p); err != nil {
			return nil, err
		}
	}
	if cfg.StartPattern != "" {
		if err := generator.CheckPattern(cfg.StartPattern); err != nil {
			return nil, err
		}
	}
	if cfg.EndPattern != "" {
		if err := generator.CheckPattern(cfg.EndPattern); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return opts, nil
}

func parseBoolWord(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "true", "1", "yes":
		return true, nil
	case "false", "0", "no":
		return false, nil
	}
	return false, fmt.Errorf("invalid case-sensitive value %q: use true, false, 1, 0, yes, no", s)
}

func parsePosition(s string) (generator.Mode, error) {
	switch strings.ToLower(s) {
	case "start":
		return generator.StartOnly, nil
	case "end":
		return generator.EndOnly, nil
	case "startorend", "start-or-end":
		return generator.StartOrEnd, nil
	case "anywhere":
		return generator.Anywhere, nil
	}
	return 0, fmt.Errorf("invalid position %q: use start, end, startorend, anywhere", s)
}

// estimateDifficulty approximates the expected attempts for one match as
// 58^k for k constrained characters. List modes use the shortest
// alternative, which dominates the hit probability.
func estimateDifficulty(config *generator.Config) uint64 {
	chars := 0
	switch {
	case config.Mode == generator.StartAndEnd:
		chars = len(config.StartPattern) + len(config.EndPattern)
	case len(config.Patterns) > 0:
		chars = len(config.Patterns[0])
		for _, p := range config.Patterns[1:] {
			if len(p) < chars {
				chars = len(p)
			}
		}
	case config.StartPattern != "":
		chars = len(config.StartPattern)
	default:
		chars = len(config.EndPattern)
	}
	if chars == 0 {
		return 1
	}
	if chars > 10 {
		chars = 10 // 58^11 overflows uint64; the display is an estimate anyway
	}
	difficulty := uint64(1)
	for i := 0; i < chars; i++ {
		difficulty *= 58
	}
	return difficulty
}

func usage(fs *flag.FlagSet) {
	fmt.Fprintf(fs.Output(), `Usage: solseek [OPTIONS] [PATTERN ...]

Searches for a Solana keypair whose Base58 address matches a pattern,
using all CPU cores. Trailing PATTERN arguments are alternatives matched
at the --position; --start/--end take precedence over them.

Options:
`)
	fs.PrintDefaults()
	fmt.Fprintf(fs.Output(), `
Examples:
  solseek Seek
  solseek --start So1 --case-sensitive false
  solseek --start So --end seek
  solseek --position anywhere FORGE F0RGE

Note: addresses never contain 0, O, I or l, so patterns with those
characters are rejected.
`)
}
