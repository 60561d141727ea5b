package reporters

import (
	"github.com/timtadh/data-structures/set"
	"github.com/timtadh/data-structures/types"
)

import (
	"github.com/timtadh/apriori/miners"
)

type Unique struct {
	Seen     *set.SortedSet
	Reporter miners.Reporter
}

func NewUnique(reporter miners.Reporter) *Unique {
	return &Unique{
		Seen:     set.NewSortedSet(10),
		Reporter: reporter,
	}
}

func (r *Unique) Report(p *miners.Pattern) error {
	label := types.ByteSlice(p.Label())
	if r.Seen.Has(label) {
		return nil
	}
	if err := r.Seen.Add(label); err != nil {
		return err
	}
	return r.Reporter.Report(p)
}

func (r *Unique) Close() error {
	return r.Reporter.Close()
}
