package reporters

import "testing"
import "github.com/stretchr/testify/assert"

import (
	"bytes"
)

import (
	"github.com/timtadh/apriori/config"
	"github.com/timtadh/apriori/index"
	"github.com/timtadh/apriori/itemset"
	"github.com/timtadh/apriori/miner"
)

// ids assigned in first-seen order: a = 0, b = 1, c = 2
var transactions = [][]string{
	{"a", "b"},
	{"a", "c"},
	{"a", "b", "c"},
	{"b", "c"},
}

func build(t *assert.Assertions) *index.TransactionIndex {
	idx, err := index.FromTransactions(&config.Config{}, transactions)
	t.Nil(err)
	return idx
}

func pairRecord() *itemset.RelationRecord {
	return &itemset.RelationRecord{
		SupportRecord: itemset.SupportRecord{
			Items:   itemset.FromInt32s([]int32{0, 1}),
			Support: 0.5,
		},
		OrderedStatistics: []itemset.OrderedStatistic{
			{
				Base:       itemset.Singleton(1),
				Add:        itemset.Singleton(0),
				Confidence: 0.75,
				Lift:       1.5,
			},
		},
	}
}

func TestJSON(x *testing.T) {
	t := assert.New(x)
	idx := build(t)
	defer idx.Close()
	var buf bytes.Buffer
	r := NewJSON(&buf, idx)
	t.Nil(r.Report(pairRecord()))
	t.Nil(r.Close())
	expected := `{"items":["a","b"],"support":0.5,"ordered_statistics":` +
		`[{"items_base":["b"],"items_add":["a"],"confidence":0.75,"lift":1.5}]}` + "\n"
	t.Equal(expected, buf.String())
}

func TestJSONSortsItems(x *testing.T) {
	t := assert.New(x)
	idx := build(t)
	defer idx.Close()
	var buf bytes.Buffer
	r := NewJSON(&buf, idx)
	record := pairRecord()
	record.Items = itemset.FromInt32s([]int32{2, 0, 1})
	t.Nil(r.Report(record))
	t.Nil(r.Close())
	t.Contains(buf.String(), `"items":["a","b","c"]`)
}

func TestTSV(x *testing.T) {
	t := assert.New(x)
	idx := build(t)
	defer idx.Close()
	var buf bytes.Buffer
	r := NewTSV(&buf, idx)
	t.Nil(r.Report(pairRecord()))
	t.Nil(r.Close())
	expected := "b\ta\t0.50000000\t0.75000000\t1.50000000\n"
	t.Equal(expected, buf.String())
}

func TestTSVSkipsWideStatistics(x *testing.T) {
	t := assert.New(x)
	idx := build(t)
	defer idx.Close()
	var buf bytes.Buffer
	r := NewTSV(&buf, idx)
	record := &itemset.RelationRecord{
		SupportRecord: itemset.SupportRecord{
			Items:   itemset.FromInt32s([]int32{0, 1, 2}),
			Support: 0.25,
		},
		OrderedStatistics: []itemset.OrderedStatistic{
			{
				Base:       itemset.FromInt32s([]int32{0, 1}),
				Add:        itemset.Singleton(2),
				Confidence: 0.5,
				Lift:       1.0,
			},
			{
				Base:       itemset.Singleton(0),
				Add:        itemset.Singleton(1),
				Confidence: 0.5,
				Lift:       1.0,
			},
		},
	}
	t.Nil(r.Report(record))
	t.Nil(r.Close())
	expected := "a\tb\t0.25000000\t0.50000000\t1.00000000\n"
	t.Equal(expected, buf.String())
}

func TestChain(x *testing.T) {
	t := assert.New(x)
	idx := build(t)
	defer idx.Close()
	var a, b bytes.Buffer
	chain := &Chain{Reporters: []miner.Reporter{NewTSV(&a, idx), NewTSV(&b, idx)}}
	t.Nil(chain.Report(pairRecord()))
	t.Nil(chain.Close())
	t.Equal(a.String(), b.String())
	t.True(len(a.String()) > 0, "chain reporter wrote nothing")
}
