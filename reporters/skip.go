package reporters

import ()

import (
	"github.com/timtadh/apriori/miners"
)

// Skip passes every nth pattern on to Reporter.
type Skip struct {
	Skip     int
	Reporter miners.Reporter
	count    int
}

func NewSkip(n int, rptr miners.Reporter) *Skip {
	return &Skip{
		Skip:     n,
		Reporter: rptr,
	}
}

func (r *Skip) Report(p *miners.Pattern) error {
	r.count++
	if r.count%r.Skip == 0 {
		return r.Reporter.Report(p)
	}
	return nil
}

func (r *Skip) Close() error {
	return r.Reporter.Close()
}
