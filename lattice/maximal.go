package lattice

import (
	"github.com/timtadh/apriori/types/itemset"
)

// Linear keeps a list of the maximal itemsets found so far and compares
// every itemset, largest first, against the whole list.
type Linear struct{}

func (Linear) Extract(frequent []*itemset.Itemset) []*itemset.Itemset {
	sets := make([]*itemset.Itemset, len(frequent))
	copy(sets, frequent)
	itemset.SortDescending(sets)
	kept := make([]*itemset.Itemset, 0, 10)
	for _, s := range sets {
		contained := false
		for _, m := range kept {
			if s.Subset(m) {
				contained = true
				break
			}
		}
		if !contained {
			kept = append(kept, s)
		}
	}
	return kept
}

// Indexed keeps, for every item, the ids of the kept itemsets containing
// it. An itemset is contained in a kept one iff some id is on the lists of
// all of its items.
type Indexed struct{}

func (Indexed) Extract(frequent []*itemset.Itemset) []*itemset.Itemset {
	sets := make([]*itemset.Itemset, len(frequent))
	copy(sets, frequent)
	itemset.SortDescending(sets)
	kept := make([]*itemset.Itemset, 0, 10)
	index := make(map[string][]int)
	for _, s := range sets {
		if contained(s, index, len(kept)) {
			continue
		}
		id := len(kept)
		kept = append(kept, s)
		for i := 0; i < s.Size(); i++ {
			item := s.Item(i)
			index[item] = append(index[item], id)
		}
	}
	return kept
}

func contained(s *itemset.Itemset, index map[string][]int, kept int) bool {
	if s.Size() == 0 {
		return kept > 0
	}
	ids := index[s.Item(0)]
	for i := 1; i < s.Size() && len(ids) > 0; i++ {
		ids = intersect(ids, index[s.Item(i)])
	}
	return len(ids) > 0
}

func intersect(a, b []int) []int {
	out := make([]int, 0, len(a))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	return out
}
