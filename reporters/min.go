package reporters

import ()

import (
	"github.com/timtadh/apriori/miners"
)

// MinSize drops patterns with fewer than Size items.
type MinSize struct {
	Size     int
	Reporter miners.Reporter
}

func NewMinSize(size int, reporter miners.Reporter) (*MinSize, error) {
	m := &MinSize{
		Size:     size,
		Reporter: reporter,
	}
	return m, nil
}

func (r *MinSize) Report(p *miners.Pattern) error {
	if p.Items.Size() >= r.Size {
		return r.Reporter.Report(p)
	}
	return nil
}

func (r *MinSize) Close() error {
	return r.Reporter.Close()
}
