package itemset

import (
	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/data-structures/hashtable"
)

// Table maps the itemsets of one level to their support counts. Keys are
// unique by set equality.
type Table struct {
	counts *hashtable.LinearHash
	order  []*Itemset
	sorted bool
}

func NewTable() *Table {
	return &Table{
		counts: hashtable.NewLinearHash(),
		order:  make([]*Itemset, 0, 10),
		sorted: true,
	}
}

// Put records the support of s. Putting an itemset already in the table
// overwrites its count.
func (t *Table) Put(s *Itemset, count int) error {
	if !t.counts.Has(s) {
		t.order = append(t.order, s)
		t.sorted = false
	}
	return t.counts.Put(s, count)
}

func (t *Table) Has(s *Itemset) bool {
	return t.counts.Has(s)
}

// Support is the recorded count of s, ok is false when s is not a key.
func (t *Table) Support(s *Itemset) (count int, ok bool) {
	if !t.counts.Has(s) {
		return 0, false
	}
	v, err := t.counts.Get(s)
	if err != nil {
		errors.Logf("ERROR", "table has %v but could not get it: %v", s, err)
		return 0, false
	}
	return v.(int), true
}

func (t *Table) Size() int {
	return len(t.order)
}

func (t *Table) Empty() bool {
	return len(t.order) == 0
}

// Itemsets returns the keys in Less order.
func (t *Table) Itemsets() []*Itemset {
	if !t.sorted {
		Sort(t.order)
		t.sorted = true
	}
	sets := make([]*Itemset, len(t.order))
	copy(sets, t.order)
	return sets
}
