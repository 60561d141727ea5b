package itemset

import "testing"
import "github.com/stretchr/testify/assert"

import (
	"github.com/timtadh/data-structures/set"
	"github.com/timtadh/data-structures/types"
)

func TestNewSortsAndDedups(x *testing.T) {
	t := assert.New(x)
	s := New("c", "a", "b", "a")
	t.Equal([]string{"a", "b", "c"}, s.Items())
	t.Equal(3, s.Size())
	t.Equal("{a, b, c}", s.String())
	t.Equal(0, New().Size())
}

func TestSetEquality(x *testing.T) {
	t := assert.New(x)
	a := New("x", "y", "z")
	b := New("z", "x", "y", "y")
	t.True(a.Equals(b))
	t.Equal(a.Hash(), b.Hash())
	t.Equal(a.Label(), b.Label())
	t.False(a.Less(b))
	t.False(b.Less(a))
	t.False(a.Equals(New("x", "y")))
	t.False(a.Equals(types.String("x")))
}

func TestLabelIsUnambiguous(x *testing.T) {
	t := assert.New(x)
	t.NotEqual(New("ab").Label(), New("a", "b").Label())
	t.NotEqual(New("a", "bc").Label(), New("ab", "c").Label())
	t.False(New("ab").Equals(New("a", "b")))
}

func TestHas(x *testing.T) {
	t := assert.New(x)
	s := New("bread", "milk")
	t.True(s.Has("bread"))
	t.True(s.Has("milk"))
	t.False(s.Has("eggs"))
	t.False(New().Has("eggs"))
}

func TestSubset(x *testing.T) {
	t := assert.New(x)
	abc := New("a", "b", "c")
	t.True(New("a", "c").Subset(abc))
	t.True(abc.Subset(abc))
	t.True(New().Subset(abc))
	t.False(New("a", "d").Subset(abc))
	t.False(abc.Subset(New("a", "c")))
}

func TestUnion(x *testing.T) {
	t := assert.New(x)
	u := New("a", "c").Union(New("b", "c", "d"))
	t.Equal([]string{"a", "b", "c", "d"}, u.Items())
	t.True(u.Equals(New("d", "c", "b", "a")))
	t.True(New().Union(New("a")).Equals(New("a")))
}

func TestWithout(x *testing.T) {
	t := assert.New(x)
	abc := New("a", "b", "c")
	t.True(abc.Without(0).Equals(New("b", "c")))
	t.True(abc.Without(1).Equals(New("a", "c")))
	t.True(abc.Without(2).Equals(New("a", "b")))
	t.Equal(3, abc.Size())
}

func TestSharesPrefix(x *testing.T) {
	t := assert.New(x)
	t.True(New("a", "b", "c").SharesPrefix(New("a", "b", "d"), 2))
	t.False(New("a", "b", "c").SharesPrefix(New("a", "c", "d"), 2))
	t.True(New("a").SharesPrefix(New("b"), 0))
}

func TestLess(x *testing.T) {
	t := assert.New(x)
	t.True(New("z").Less(New("a", "b")))
	t.True(New("a", "b").Less(New("a", "c")))
	t.False(New("a", "c").Less(New("a", "b")))
	sets := []*Itemset{New("b", "c"), New("a"), New("a", "c"), New("a", "b", "c")}
	Sort(sets)
	t.Equal([]string{"{a}", "{a, c}", "{b, c}", "{a, b, c}"}, names(sets))
	SortDescending(sets)
	t.Equal([]string{"{a, b, c}", "{a, c}", "{b, c}", "{a}"}, names(sets))
}

func TestInSortedSet(x *testing.T) {
	t := assert.New(x)
	s := set.NewSortedSet(10)
	t.Nil(s.Add(New("a", "b")))
	t.Nil(s.Add(New("b", "a")))
	t.Nil(s.Add(New("c")))
	t.Equal(2, s.Size())
	t.True(s.Has(New("a", "b")))
	t.False(s.Has(New("a")))
}

func TestTable(x *testing.T) {
	t := assert.New(x)
	table := NewTable()
	t.True(table.Empty())
	t.Nil(table.Put(New("b"), 2))
	t.Nil(table.Put(New("a"), 4))
	t.Nil(table.Put(New("c"), 1))
	t.Nil(table.Put(New("c"), 3))
	t.Equal(3, table.Size())
	count, ok := table.Support(New("c"))
	t.True(ok)
	t.Equal(3, count)
	_, ok = table.Support(New("d"))
	t.False(ok)
	t.True(table.Has(New("a")))
	t.Equal([]string{"{a}", "{b}", "{c}"}, names(table.Itemsets()))
}

func names(sets []*Itemset) []string {
	n := make([]string, 0, len(sets))
	for _, s := range sets {
		n = append(n, s.String())
	}
	return n
}
