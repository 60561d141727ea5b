package config

import "testing"
import "github.com/stretchr/testify/assert"

import (
	"runtime"
)

func TestWorkers(x *testing.T) {
	t := assert.New(x)
	t.Equal(1, (&Config{}).Workers())
	t.Equal(4, (&Config{Parallelism: 4}).Workers())
	t.Equal(runtime.NumCPU(), (&Config{Parallelism: -1}).Workers())
}

func TestPostingsStoreAnonymous(x *testing.T) {
	t := assert.New(x)
	c := &Config{}
	store, err := c.PostingsStore("items")
	t.Nil(err)
	t.Nil(store.Add(1, 2))
	t.Equal(1, store.Size())
	t.Nil(store.Delete())
}

func TestPostingsStoreCacheDir(x *testing.T) {
	t := assert.New(x)
	c := &Config{Cache: x.TempDir()}
	store, err := c.PostingsStore("items")
	t.Nil(err)
	t.Nil(store.Add(1, 2))
	txs, err := store.Postings(1)
	t.Nil(err)
	t.Equal([]int32{2}, txs)
	t.Nil(store.Delete())
}
