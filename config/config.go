package config

import (
	"math/rand"
	"path/filepath"
)

import (
	"github.com/timtadh/apriori/stores/itemtx"
)

// Config carries the knobs for one mining run. Support and Confidence
// are ratios in (0,1]; MaxLength bounds the size of mined itemsets
// (0 means unbounded). Cache, when set, is a directory where the
// inverted index is kept on disk instead of anonymous memory maps.
type Config struct {
	Cache      string
	Output     string
	Support    float64
	Confidence float64
	MaxLength  int
}

func (c *Config) Copy() *Config {
	return &Config{
		Cache:      c.Cache,
		Output:     c.Output,
		Support:    c.Support,
		Confidence: c.Confidence,
		MaxLength:  c.MaxLength,
	}
}

func (c *Config) Randstr() string {
	runes := make([]rune, 0, 10)
	for i := 0; i < 10; i++ {
		runes = append(runes, rune(97+rand.Intn(26)))
	}
	return string(runes)
}

func (c *Config) CacheFile(name string) string {
	return filepath.Join(c.Cache, name)
}

func (c *Config) ItemTxMultiMap(name string) (itemtx.MultiMap, error) {
	if c.Cache == "" {
		return itemtx.AnonBpTree()
	} else {
		return itemtx.NewBpTree(c.CacheFile(name + "-" + c.Randstr() + ".bptree"))
	}
}
