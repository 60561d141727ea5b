package config

import (
	"math/rand"
	"path/filepath"
	"runtime"
	"time"
)

import (
	"github.com/timtadh/apriori/stores/postings"
)

type Config struct {
	Cache       string
	Output      string
	Support     int
	Parallelism int
	// Timeout bounds the wall-clock time of a run. It is checked between
	// levels. Zero means no limit.
	Timeout time.Duration
}

func (c *Config) Workers() int {
	if c.Parallelism == 0 {
		return 1
	} else if c.Parallelism < 0 {
		return runtime.NumCPU()
	} else {
		return c.Parallelism
	}
}

func (c *Config) Randstr() string {
	runes := make([]rune, 0, 10)
	for i := 0; i < 10; i++ {
		runes = append(runes, rune(97+rand.Intn(26)))
	}
	return string(runes)
}

func (c *Config) CacheFile(name string) string {
	return filepath.Join(c.Cache, name)
}

func (c *Config) OutputFile(name string) string {
	return filepath.Join(c.Output, name)
}

// PostingsStore makes an inverted index. Without a cache dir it lives in
// anonymous memory.
func (c *Config) PostingsStore(name string) (postings.MultiMap, error) {
	if c.Cache == "" {
		return postings.AnonBpTree()
	} else {
		return postings.NewBpTree(c.CacheFile(name + "-" + c.Randstr() + ".bptree"))
	}
}
