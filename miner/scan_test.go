package miner

import "testing"
import "github.com/stretchr/testify/assert"

import (
	"strings"
)

import (
	"github.com/timtadh/data-structures/set"
)

import (
	"github.com/timtadh/apriori/config"
	"github.com/timtadh/apriori/index"
	"github.com/timtadh/apriori/itemset"
)

var transactions = [][]string{
	{"a", "b"},
	{"a", "c"},
	{"a", "b", "c"},
	{"b", "c"},
}

func build(t *assert.Assertions, txs [][]string) *index.TransactionIndex {
	idx, err := index.FromTransactions(&config.Config{}, txs)
	t.Nil(err)
	return idx
}

func collectSupports(t *assert.Assertions, it SupportIterator, idx *index.TransactionIndex) map[string]float64 {
	supports := make(map[string]float64)
	err := DoSupport(it, func(r *itemset.SupportRecord) error {
		supports[strings.Join(idx.ItemNames(r.Items), ",")] = r.Support
		return nil
	})
	t.Nil(err)
	return supports
}

func TestScanLevels(x *testing.T) {
	t := assert.New(x)
	idx := build(t, transactions)
	defer idx.Close()
	supports := collectSupports(t, ScanSupport(idx, 0.5, 0), idx)
	expected := map[string]float64{
		"a":   0.75,
		"b":   0.75,
		"c":   0.75,
		"a,b": 0.5,
		"a,c": 0.5,
		"b,c": 0.5,
	}
	t.Equal(expected, supports)
}

func TestScanMaxLength(x *testing.T) {
	t := assert.New(x)
	idx := build(t, transactions)
	defer idx.Close()
	generatorCalled := false
	stub := func(prev []*set.SortedSet, k int) ([]*set.SortedSet, error) {
		generatorCalled = true
		return NextCandidates(prev, k)
	}
	supports := collectSupports(t, ScanSupportWith(idx, 0.5, 1, stub), idx)
	t.Len(supports, 3)
	t.False(generatorCalled, "candidate generator invoked despite max length 1")
}

func TestScanLowSupportThreshold(x *testing.T) {
	t := assert.New(x)
	idx := build(t, transactions)
	defer idx.Close()
	supports := collectSupports(t, ScanSupport(idx, 0.2, 0), idx)
	t.Equal(0.25, supports["a,b,c"])
	t.Len(supports, 7)
}

func TestScanEmptyInput(x *testing.T) {
	t := assert.New(x)
	idx := build(t, nil)
	defer idx.Close()
	supports := collectSupports(t, ScanSupport(idx, 0.5, 0), idx)
	t.Len(supports, 0)
}

func TestScanSingleTransaction(x *testing.T) {
	t := assert.New(x)
	idx := build(t, [][]string{{"x"}})
	defer idx.Close()
	supports := collectSupports(t, ScanSupport(idx, 0.1, 0), idx)
	t.Equal(map[string]float64{"x": 1.0}, supports)
}

func TestScanStubGenerator(x *testing.T) {
	t := assert.New(x)
	idx := build(t, transactions)
	defer idx.Close()
	stub := func(prev []*set.SortedSet, k int) ([]*set.SortedSet, error) {
		return nil, nil
	}
	supports := collectSupports(t, ScanSupportWith(idx, 0.5, 0, stub), idx)
	t.Len(supports, 3)
}
