package main

import (
	"fmt"
	"os"

	"github.com/btcsuite/btclog"
	flags "github.com/jessevdk/go-flags"
)

const (
	defaultCount      = 10000
	defaultRuns       = 1
	defaultDebugLevel = "info"
	maxCount          = 1 << 24
)

// config defines the configuration options for treapdemo.
//
// See loadConfig for details on the configuration load process.
type config struct {
	Count      int    `short:"n" long:"count" description:"Number of keys to add and then remove"`
	Seed       uint64 `short:"s" long:"seed" description:"Seed for node priorities and shuffling; 0 picks one from the clock"`
	Shuffle    bool   `long:"shuffle" description:"Insert the keys in random order instead of ascending order"`
	Runs       int    `short:"r" long:"runs" description:"Repeat the experiment with consecutive seeds and summarize the heights"`
	Check      bool   `long:"check" description:"Validate every invariant after each run"`
	Dump       bool   `long:"dump" description:"Dump the set statistics after each run"`
	DebugLevel string `short:"d" long:"debuglevel" description:"Logging level {trace, debug, info, warn, error, critical}"`
}

// loadConfig initializes and parses the config using command line options.
func loadConfig(args []string) (*config, error) {
	cfg := config{
		Count:      defaultCount,
		Runs:       defaultRuns,
		DebugLevel: defaultDebugLevel,
	}

	parser := flags.NewParser(&cfg, flags.Default)
	_, err := parser.ParseArgs(args)
	if err != nil {
		if e, ok := err.(*flags.Error); !ok || e.Type != flags.ErrHelp {
			parser.WriteHelp(os.Stderr)
		}
		return nil, err
	}

	funcName := "loadConfig"
	if cfg.Count < 0 || cfg.Count > maxCount {
		str := "%s: the count [%d] must be between 0 and %d"
		err := fmt.Errorf(str, funcName, cfg.Count, maxCount)
		fmt.Fprintln(os.Stderr, err)
		parser.WriteHelp(os.Stderr)
		return nil, err
	}
	if cfg.Runs < 1 {
		str := "%s: the number of runs [%d] must be positive"
		err := fmt.Errorf(str, funcName, cfg.Runs)
		fmt.Fprintln(os.Stderr, err)
		parser.WriteHelp(os.Stderr)
		return nil, err
	}
	if _, ok := btclog.LevelFromString(cfg.DebugLevel); !ok {
		str := "%s: the specified debug level [%v] is invalid"
		err := fmt.Errorf(str, funcName, cfg.DebugLevel)
		fmt.Fprintln(os.Stderr, err)
		parser.WriteHelp(os.Stderr)
		return nil, err
	}

	return &cfg, nil
}
