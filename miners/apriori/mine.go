package apriori

import (
	"fmt"
	"time"
)

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/timtadh/apriori/config"
	"github.com/timtadh/apriori/lattice"
	"github.com/timtadh/apriori/miners"
	"github.com/timtadh/apriori/support"
	"github.com/timtadh/apriori/types/itemset"
)

// Timeout is returned when a run exceeds Config.Timeout. No partial result
// is produced.
type Timeout struct {
	Level   int
	Elapsed time.Duration
	Limit   time.Duration
}

func (t *Timeout) Error() string {
	return fmt.Sprintf("mining timed out after %v at level %d (limit %v)", t.Elapsed, t.Level, t.Limit)
}

type Miner struct {
	Config    *config.Config
	Joiner    lattice.Joiner
	Counter   support.Counter
	Extractor lattice.Extractor
	rptr      miners.Reporter
}

// NewMiner makes a miner with the pairwise join, the scan counter and the
// linear extractor. With more than one worker the counter is run in
// parallel.
func NewMiner(conf *config.Config) *Miner {
	return &Miner{
		Config:    conf,
		Joiner:    lattice.PairwiseJoin{},
		Counter:   Parallelize(conf, support.Scan{}),
		Extractor: lattice.Linear{},
	}
}

// Parallelize wraps counter in a support.Parallel when conf asks for more
// than one worker.
func Parallelize(conf *config.Config, counter support.Counter) support.Counter {
	if workers := conf.Workers(); workers > 1 {
		return &support.Parallel{Workers: workers, Inner: counter}
	}
	return counter
}

func (m *Miner) Mine(dt *itemset.Transactions, rptr miners.Reporter) (*miners.Result, error) {
	m.rptr = rptr
	minSupport := m.Config.Support
	if err := itemset.CheckSupport(minSupport); err != nil {
		return nil, err
	}
	errors.Logf("INFO", "mining %d transactions, %d items, support %d", dt.Len(), len(dt.Vocabulary()), minSupport)
	start := time.Now()
	frequent, err := m.levels(dt, minSupport, start)
	if err != nil {
		return nil, err
	}
	maximal := m.Extractor.Extract(frequent.Itemsets())
	result := &miners.Result{
		Maximal:  make([]*miners.Pattern, 0, len(maximal)),
		Frequent: frequent.Len(),
		Levels:   frequent.Levels(),
	}
	for _, s := range maximal {
		count, _ := frequent.Support(s)
		result.Maximal = append(result.Maximal, &miners.Pattern{Items: s, Support: count})
	}
	result.Elapsed = time.Since(start)
	errors.Logf("INFO", "found %d maximal of %d frequent itemsets in %v", len(result.Maximal), result.Frequent, result.Elapsed)
	for _, p := range result.Maximal {
		if err := rptr.Report(p); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// levels runs the level-wise loop, folding each non-empty level into the
// accumulator until a level comes back empty.
func (m *Miner) levels(dt *itemset.Transactions, minSupport int, start time.Time) (lattice.Frequent, error) {
	var acc lattice.Frequent
	level, err := support.Singletons(dt, minSupport)
	if err != nil {
		return acc, err
	}
	errors.Logf("INFO", "level 1: %d candidates, %d frequent", len(dt.Vocabulary()), level.Size())
	for k := 2; !level.Empty(); k++ {
		acc = acc.Fold(level)
		if err := m.checkTime(start, k); err != nil {
			return acc, err
		}
		candidates, err := m.Joiner.Join(level, k)
		if err != nil {
			return acc, err
		}
		level, err = support.Filter(m.Counter, dt, candidates, minSupport)
		if err != nil {
			return acc, err
		}
		errors.Logf("INFO", "level %d: %d candidates, %d frequent", k, len(candidates), level.Size())
	}
	return acc, nil
}

func (m *Miner) checkTime(start time.Time, level int) error {
	if m.Config.Timeout <= 0 {
		return nil
	}
	elapsed := time.Since(start)
	if elapsed > m.Config.Timeout {
		return &Timeout{Level: level, Elapsed: elapsed, Limit: m.Config.Timeout}
	}
	return nil
}

func (m *Miner) Close() error {
	if m.rptr == nil {
		return nil
	}
	return m.rptr.Close()
}
