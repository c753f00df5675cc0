// treapdemo adds the keys 1..n to a treap-backed set, reports its size and
// height, then removes every key again. Ascending insertion is the worst case
// for an unbalanced search tree; the reported height shows the priorities
// keeping the treap shallow.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/btcsuite/btclog"
	"github.com/davecgh/go-spew/spew"
	flags "github.com/jessevdk/go-flags"
	"github.com/pkg/errors"

	"github.com/metailurini/treap"
)

var log = btclog.Disabled

// runResult summarizes one add-all/remove-all pass.
type runResult struct {
	seed          uint64
	size          int
	height        int
	failedAdds    int
	failedRemoves int
	stats         treap.Stats
}

func (r runResult) failed() bool {
	return r.failedAdds > 0 || r.failedRemoves > 0
}

// shuffle performs a Fisher-Yates shuffle driven by rng.
func shuffle(keys []int, rng *treap.RNG) {
	for i := len(keys) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		keys[i], keys[j] = keys[j], keys[i]
	}
}

// run performs one pass with the given seed.
func run(cfg *config, seed uint64) (runResult, error) {
	keys := make([]int, cfg.Count)
	for i := range keys {
		keys[i] = i + 1
	}
	if cfg.Shuffle {
		shuffle(keys, treap.NewRNG(seed^0x9e3779b97f4a7c15))
	}

	res := runResult{seed: seed}
	s := treap.NewOrdered[int](treap.WithSeed(seed))
	for _, k := range keys {
		if !s.Add(k) {
			log.Warnf("Failed to add element %d to set", k)
			res.failedAdds++
		}
	}
	res.size = s.Len()
	res.height = s.Height()
	log.Infof("Seed %d: set size %d, tree height %d", seed, res.size, res.height)

	if cfg.Check {
		if err := s.Validate(); err != nil {
			return res, errors.Wrapf(err, "seed %d", seed)
		}
	}

	for _, k := range keys {
		if !s.Remove(k) {
			log.Warnf("Failed to remove element %d from set", k)
			res.failedRemoves++
		}
	}
	res.stats = s.Stats()
	if cfg.Dump {
		log.Infof("Stats for seed %d:\n%s", seed, spew.Sdump(res.stats))
	}
	if s.Len() != 0 {
		return res, errors.Errorf("seed %d: %d keys left after removing all", seed, s.Len())
	}
	return res, nil
}

// heightSummary aggregates the heights of several runs.
type heightSummary struct {
	min, max int
	mean     float64
}

func summarize(results []runResult) heightSummary {
	if len(results) == 0 {
		return heightSummary{}
	}
	sum := 0
	hs := heightSummary{min: results[0].height, max: results[0].height}
	for _, r := range results {
		hs.min = min(hs.min, r.height)
		hs.max = max(hs.max, r.height)
		sum += r.height
	}
	hs.mean = float64(sum) / float64(len(results))
	return hs
}

// realMain is the real main function for the utility.  It is necessary to work
// around the fact that deferred functions do not run when os.Exit() is called.
func realMain(args []string) error {
	cfg, err := loadConfig(args)
	if err != nil {
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
			return nil
		}
		return err
	}

	backendLogger := btclog.NewBackend(os.Stdout)
	defer os.Stdout.Sync()
	level, _ := btclog.LevelFromString(cfg.DebugLevel)
	log = backendLogger.Logger("DEMO")
	log.SetLevel(level)
	libLog := backendLogger.Logger("TRPS")
	libLog.SetLevel(level)
	treap.UseLogger(libLog)

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	results := make([]runResult, 0, cfg.Runs)
	failures := 0
	for i := 0; i < cfg.Runs; i++ {
		res, err := run(cfg, seed+uint64(i))
		if err != nil {
			return err
		}
		if res.failed() {
			failures++
		}
		results = append(results, res)
	}

	hs := summarize(results)
	fmt.Printf("Set size: %d\n", cfg.Count)
	fmt.Printf("BST height: min %d, max %d, mean %.2f over %d run(s)\n",
		hs.min, hs.max, hs.mean, len(results))
	if failures > 0 {
		return errors.Errorf("%d run(s) reported failed adds or removes", failures)
	}
	return nil
}

func main() {
	if err := realMain(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
