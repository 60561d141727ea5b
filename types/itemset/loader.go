package itemset

import (
	"bufio"
	"encoding/csv"
	"io"
	"strings"
	"sync"
)

import (
	"github.com/hashicorp/go-multierror"
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/timtadh/apriori/config"
	"github.com/timtadh/apriori/stores/postings"
)

// Input opens the raw transaction data. The closer releases whatever the
// reader holds open.
type Input func() (reader io.Reader, closer func(), err error)

type Loader interface {
	Load(input Input) (*Transactions, error)
}

// Transactions is the transaction collection of one run. It is not
// modified after loading, so it may be read from several goroutines.
type Transactions struct {
	txs    []*Itemset
	ids    map[string]int32
	labels []string
	config *config.Config

	indexOnce sync.Once
	index     postings.MultiMap
	indexErr  error
}

func NewTransactions(conf *config.Config, txs []*Itemset) *Transactions {
	dt := &Transactions{
		txs:    txs,
		ids:    make(map[string]int32),
		labels: make([]string, 0, 10),
		config: conf,
	}
	for _, tx := range txs {
		for _, item := range tx.items {
			if _, has := dt.ids[item]; !has {
				dt.ids[item] = int32(len(dt.labels))
				dt.labels = append(dt.labels, item)
			}
		}
	}
	return dt
}

func (dt *Transactions) Len() int {
	return len(dt.txs)
}

func (dt *Transactions) Tx(i int) *Itemset {
	return dt.txs[i]
}

// Vocabulary is the distinct items in order of first appearance.
func (dt *Transactions) Vocabulary() []string {
	labels := make([]string, len(dt.labels))
	copy(labels, dt.labels)
	return labels
}

func (dt *Transactions) ID(item string) (int32, bool) {
	id, has := dt.ids[item]
	return id, has
}

// Index returns the inverted index item id -> transaction ids, building it
// on first use.
func (dt *Transactions) Index() (postings.MultiMap, error) {
	dt.indexOnce.Do(func() {
		dt.index, dt.indexErr = dt.buildIndex()
	})
	return dt.index, dt.indexErr
}

func (dt *Transactions) buildIndex() (postings.MultiMap, error) {
	conf := dt.config
	if conf == nil {
		conf = &config.Config{}
	}
	index, err := conf.PostingsStore("itemsets-inverted")
	if err != nil {
		return nil, err
	}
	for tx, set := range dt.txs {
		for _, item := range set.items {
			if err := index.Add(dt.ids[item], int32(tx)); err != nil {
				index.Delete()
				return nil, err
			}
		}
	}
	errors.Logf("DEBUG", "built inverted index over %d items, %d postings", len(dt.labels), index.Size())
	return index, nil
}

// Postings is the sorted ids of the transactions containing item.
func (dt *Transactions) Postings(item string) ([]int32, error) {
	id, has := dt.ids[item]
	if !has {
		return []int32{}, nil
	}
	index, err := dt.Index()
	if err != nil {
		return nil, err
	}
	return index.Postings(id)
}

func (dt *Transactions) Close() error {
	if dt.index != nil {
		return dt.index.Delete()
	}
	return nil
}

func fields(record []string) []string {
	items := make([]string, 0, len(record))
	for _, col := range record {
		col = strings.TrimSpace(col)
		if col == "" {
			continue
		}
		items = append(items, col)
	}
	return items
}

// CSVLoader reads one transaction per record, every field is an item.
type CSVLoader struct {
	Comma  rune
	config *config.Config
}

func NewCSVLoader(conf *config.Config, comma rune) *CSVLoader {
	if comma == 0 {
		comma = ','
	}
	return &CSVLoader{
		Comma:  comma,
		config: conf,
	}
}

func (l *CSVLoader) Load(input Input) (*Transactions, error) {
	in, closer, err := input()
	if err != nil {
		return nil, unreadable(err)
	}
	defer closer()
	r := csv.NewReader(in)
	r.Comma = l.Comma
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	r.ReuseRecord = true
	var errs *multierror.Error
	txs := make([]*Itemset, 0, 100)
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		} else if _, ok := err.(*csv.ParseError); ok {
			errs = multierror.Append(errs, err)
			continue
		} else if err != nil {
			return nil, unreadable(err)
		}
		txs = append(txs, New(fields(record)...))
	}
	if err := errs.ErrorOrNil(); err != nil {
		return nil, &InvalidInput{Reason: "malformed transaction records", Err: err}
	}
	errors.Logf("INFO", "loaded %d transactions", len(txs))
	return NewTransactions(l.config, txs), nil
}

// DatLoader reads one transaction per line, items separated by white
// space.
type DatLoader struct {
	config *config.Config
}

func NewDatLoader(conf *config.Config) *DatLoader {
	return &DatLoader{
		config: conf,
	}
}

func (l *DatLoader) Load(input Input) (*Transactions, error) {
	in, closer, err := input()
	if err != nil {
		return nil, unreadable(err)
	}
	defer closer()
	txs := make([]*Itemset, 0, 100)
	err = processLines(in, func(line string) {
		items := strings.Fields(line)
		if len(items) == 0 {
			return
		}
		txs = append(txs, New(items...))
	})
	if err == bufio.ErrTooLong {
		return nil, &InvalidInput{Reason: "transaction line too long", Err: err}
	} else if err != nil {
		return nil, unreadable(err)
	}
	errors.Logf("INFO", "loaded %d transactions", len(txs))
	return NewTransactions(l.config, txs), nil
}

// unreadable wraps a failure to open or read the input in an InvalidInput.
func unreadable(err error) error {
	if _, ok := err.(*InvalidInput); ok {
		return err
	}
	return &InvalidInput{Reason: "could not read transactions", Err: err}
}

func processLines(in io.Reader, process func(string)) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		process(scanner.Text())
	}
	return scanner.Err()
}

// FromSlices is a convenience for building a collection in memory.
func FromSlices(conf *config.Config, records [][]string) *Transactions {
	txs := make([]*Itemset, 0, len(records))
	for _, record := range records {
		txs = append(txs, New(fields(record)...))
	}
	return NewTransactions(conf, txs)
}
