package itemset

import (
	"encoding/binary"
	"sort"
	"strings"
)

import (
	"github.com/timtadh/data-structures/types"
)

// Itemset is an immutable set of item labels. The labels are kept sorted
// and unique so equality, ordering and hashing do not depend on the order
// the items were supplied in.
type Itemset struct {
	items []string
	label []byte
}

func New(items ...string) *Itemset {
	sorted := make([]string, len(items))
	copy(sorted, items)
	sort.Strings(sorted)
	uniq := sorted[:0]
	for i, item := range sorted {
		if i > 0 && item == sorted[i-1] {
			continue
		}
		uniq = append(uniq, item)
	}
	return fromSorted(uniq)
}

// fromSorted takes ownership of items, which must already be sorted and
// duplicate free.
func fromSorted(items []string) *Itemset {
	return &Itemset{items: items, label: encode(items)}
}

func (s *Itemset) Size() int {
	return len(s.items)
}

// Items returns a copy of the members in sorted order.
func (s *Itemset) Items() []string {
	items := make([]string, len(s.items))
	copy(items, s.items)
	return items
}

func (s *Itemset) Item(i int) string {
	return s.items[i]
}

func (s *Itemset) Has(item string) bool {
	i := sort.SearchStrings(s.items, item)
	return i < len(s.items) && s.items[i] == item
}

// Subset reports whether every item of s is in o.
func (s *Itemset) Subset(o *Itemset) bool {
	if len(s.items) > len(o.items) {
		return false
	}
	j := 0
	for _, item := range s.items {
		for j < len(o.items) && o.items[j] < item {
			j++
		}
		if j >= len(o.items) || o.items[j] != item {
			return false
		}
		j++
	}
	return true
}

func (s *Itemset) Union(o *Itemset) *Itemset {
	items := make([]string, 0, len(s.items)+len(o.items))
	i, j := 0, 0
	for i < len(s.items) && j < len(o.items) {
		switch {
		case s.items[i] < o.items[j]:
			items = append(items, s.items[i])
			i++
		case s.items[i] > o.items[j]:
			items = append(items, o.items[j])
			j++
		default:
			items = append(items, s.items[i])
			i++
			j++
		}
	}
	items = append(items, s.items[i:]...)
	items = append(items, o.items[j:]...)
	return fromSorted(items)
}

// Without is the immediate subset of s missing its i-th item.
func (s *Itemset) Without(i int) *Itemset {
	items := make([]string, 0, len(s.items)-1)
	items = append(items, s.items[:i]...)
	items = append(items, s.items[i+1:]...)
	return fromSorted(items)
}

// SharesPrefix reports whether s and o agree on their first n items.
func (s *Itemset) SharesPrefix(o *Itemset, n int) bool {
	if len(s.items) < n || len(o.items) < n {
		return false
	}
	for i := 0; i < n; i++ {
		if s.items[i] != o.items[i] {
			return false
		}
	}
	return true
}

// Label is a length prefixed encoding of the items. Two itemsets have the
// same label iff they have the same members.
func (s *Itemset) Label() []byte {
	return s.label
}

func encode(items []string) []byte {
	size := 4
	for _, item := range items {
		size += 4 + len(item)
	}
	bytes := make([]byte, size)
	binary.BigEndian.PutUint32(bytes[0:4], uint32(len(items)))
	off := 4
	for _, item := range items {
		binary.BigEndian.PutUint32(bytes[off:off+4], uint32(len(item)))
		off += 4
		off += copy(bytes[off:], item)
	}
	return bytes
}

func (s *Itemset) String() string {
	return "{" + strings.Join(s.items, ", ") + "}"
}

func (s *Itemset) Equals(o types.Equatable) bool {
	switch b := o.(type) {
	case *Itemset:
		if len(s.items) != len(b.items) {
			return false
		}
		for i := range s.items {
			if s.items[i] != b.items[i] {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Less orders itemsets by size and then item by item.
func (s *Itemset) Less(o types.Sortable) bool {
	switch b := o.(type) {
	case *Itemset:
		if len(s.items) != len(b.items) {
			return len(s.items) < len(b.items)
		}
		for i := range s.items {
			if s.items[i] != b.items[i] {
				return s.items[i] < b.items[i]
			}
		}
		return false
	default:
		return false
	}
}

func (s *Itemset) Hash() int {
	return types.ByteSlice(s.Label()).Hash()
}

// Sort sorts itemsets into Less order.
func Sort(sets []*Itemset) {
	sort.Slice(sets, func(i, j int) bool {
		return sets[i].Less(sets[j])
	})
}

// SortDescending sorts by decreasing size, ties broken item by item.
func SortDescending(sets []*Itemset) {
	sort.SliceStable(sets, func(i, j int) bool {
		a, b := sets[i], sets[j]
		if a.Size() != b.Size() {
			return a.Size() > b.Size()
		}
		return a.Less(b)
	})
}
