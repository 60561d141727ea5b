package postings

import (
	"sort"
	"sync"
)

import (
	"github.com/timtadh/fs2/bptree"
	"github.com/timtadh/fs2/fmap"
)

// BpTree keeps the inverted index in an fs2 B+tree with fixed 4 byte keys
// and values. The tree is not safe for concurrent use so every call holds
// the mutex.
type BpTree struct {
	bf    *fmap.BlockFile
	bpt   *bptree.BpTree
	mutex sync.Mutex
}

// AnonBpTree backs the index with anonymous memory.
func AnonBpTree() (*BpTree, error) {
	bf, err := fmap.Anonymous(fmap.BLOCKSIZE)
	if err != nil {
		return nil, err
	}
	return newBpTree(bf)
}

// NewBpTree backs the index with the file at path. The file is removed by
// Delete.
func NewBpTree(path string) (*BpTree, error) {
	bf, err := fmap.CreateBlockFile(path)
	if err != nil {
		return nil, err
	}
	return newBpTree(bf)
}

func newBpTree(bf *fmap.BlockFile) (*BpTree, error) {
	bpt, err := bptree.New(bf, idSize, idSize)
	if err != nil {
		return nil, err
	}
	return &BpTree{bf: bf, bpt: bpt}, nil
}

func (b *BpTree) Close() error {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return b.bf.Close()
}

// Delete closes the tree and removes its file, if it has one.
func (b *BpTree) Delete() error {
	if err := b.Close(); err != nil {
		return err
	}
	if b.bf.Path() == "" {
		return nil
	}
	return b.bf.Remove()
}

func (b *BpTree) Size() int {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return b.bpt.Size()
}

func (b *BpTree) Add(item, tx int32) error {
	key, err := encodeID(item)
	if err != nil {
		return err
	}
	value, err := encodeID(tx)
	if err != nil {
		return err
	}
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return b.bpt.Add(key, value)
}

func (b *BpTree) Count(item int32) (int, error) {
	key, err := encodeID(item)
	if err != nil {
		return 0, err
	}
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return b.bpt.Count(key)
}

func (b *BpTree) Has(item int32) (bool, error) {
	key, err := encodeID(item)
	if err != nil {
		return false, err
	}
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return b.bpt.Has(key)
}

// Find iterates the postings of item. Each step takes the lock, so the
// tree may be used between steps.
func (b *BpTree) Find(item int32) (Iterator, error) {
	key, err := encodeID(item)
	if err != nil {
		return nil, err
	}
	b.mutex.Lock()
	kvi, err := b.bpt.Find(key)
	b.mutex.Unlock()
	if err != nil {
		return nil, err
	}
	var next Iterator
	next = func() (int32, int32, error, Iterator) {
		b.mutex.Lock()
		defer b.mutex.Unlock()
		var k, v []byte
		var err error
		k, v, err, kvi = kvi()
		if err != nil || kvi == nil {
			return 0, 0, err, nil
		}
		return decodeID(k), decodeID(v), nil, next
	}
	return next, nil
}

func (b *BpTree) DoFind(item int32, do func(item, tx int32) error) error {
	return Do(func() (Iterator, error) { return b.Find(item) }, do)
}

// Postings is the sorted list of transactions containing item. The whole
// scan holds the lock.
func (b *BpTree) Postings(item int32) ([]int32, error) {
	key, err := encodeID(item)
	if err != nil {
		return nil, err
	}
	b.mutex.Lock()
	defer b.mutex.Unlock()
	txs := make([]int32, 0, 10)
	kvi, err := b.bpt.Find(key)
	if err != nil {
		return nil, err
	}
	var v []byte
	for _, v, err, kvi = kvi(); kvi != nil; _, v, err, kvi = kvi() {
		txs = append(txs, decodeID(v))
	}
	if err != nil {
		return nil, err
	}
	if !sort.SliceIsSorted(txs, func(i, j int) bool { return txs[i] < txs[j] }) {
		sort.Slice(txs, func(i, j int) bool { return txs[i] < txs[j] })
	}
	return txs, nil
}
