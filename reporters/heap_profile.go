package reporters

import (
	"io"
	"os"
	"runtime/pprof"
)

import ()

import (
	"github.com/timtadh/apriori/miners"
)

// HeapProfile writes a heap profile every time a pattern is reported.
type HeapProfile struct {
	f io.WriteCloser
}

func NewHeapProfile(path string) (*HeapProfile, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	hp := &HeapProfile{f: f}
	return hp, nil
}

func (hp *HeapProfile) Report(p *miners.Pattern) error {
	return pprof.WriteHeapProfile(hp.f)
}

func (hp *HeapProfile) Close() error {
	return hp.f.Close()
}
