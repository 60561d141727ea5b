package postings

// MultiMap is an inverted index from item ids to the ids of the
// transactions containing them.
type MultiMap interface {
	Add(item, tx int32) error
	Has(item int32) (bool, error)
	Count(item int32) (int, error)
	Find(item int32) (Iterator, error)
	DoFind(item int32, do func(item, tx int32) error) error
	Postings(item int32) ([]int32, error)
	Size() int
	Close() error
	Delete() error
}

type Iterator func() (item, tx int32, err error, it Iterator)

func Do(run func() (Iterator, error), do func(item, tx int32) error) error {
	kvi, err := run()
	if err != nil {
		return err
	}
	var item, tx int32
	for item, tx, err, kvi = kvi(); kvi != nil; item, tx, err, kvi = kvi() {
		e := do(item, tx)
		if e != nil {
			return e
		}
	}
	return err
}
