package miner

import "testing"
import "github.com/stretchr/testify/assert"

import (
	"fmt"
	"sort"
	"strings"
)

import (
	"github.com/timtadh/apriori/config"
	"github.com/timtadh/apriori/index"
	"github.com/timtadh/apriori/itemset"
)

func collectRelations(t *assert.Assertions, it RelationIterator, idx *index.TransactionIndex) []string {
	relations := make([]string, 0, 10)
	err := DoRelations(it, func(r *itemset.RelationRecord) error {
		lines := make([]string, 0, len(r.OrderedStatistics))
		for _, stat := range r.OrderedStatistics {
			lines = append(lines, fmt.Sprintf("%v -> %v conf %.4f lift %.4f",
				strings.Join(idx.ItemNames(stat.Base), ","),
				strings.Join(idx.ItemNames(stat.Add), ","),
				stat.Confidence, stat.Lift))
		}
		relations = append(relations, fmt.Sprintf("{%v} %.4f [%v]",
			strings.Join(idx.ItemNames(r.Items), ","), r.Support,
			strings.Join(lines, "; ")))
		return nil
	})
	t.Nil(err)
	return relations
}

func TestAprioriRejectsBadSupport(x *testing.T) {
	t := assert.New(x)
	idx := build(t, transactions)
	defer idx.Close()
	_, err := Apriori(idx, Options{MinSupport: 0})
	t.Error(err)
	_, err = Apriori(idx, Options{MinSupport: -0.5})
	t.Error(err)
	_, _, err = AprioriTransactions(&config.Config{}, transactions, Options{MinSupport: 0})
	t.Error(err)
}

func TestAprioriRelations(x *testing.T) {
	t := assert.New(x)
	it, idx, err := AprioriTransactions(&config.Config{}, transactions, Options{
		MinSupport:    0.5,
		MinConfidence: 0.5,
	})
	t.Nil(err)
	defer idx.Close()
	relations := collectRelations(t, it, idx)
	// singletons derive no statistics and are dropped; the triple
	// {a,b,c} misses the support threshold
	t.Len(relations, 3)
	for _, relation := range relations {
		t.True(strings.Contains(relation, "conf 0.6667"), "relation %v", relation)
		t.True(strings.Contains(relation, "lift 0.8889"), "relation %v", relation)
	}
}

func TestAprioriConfidenceFilterDropsRecords(x *testing.T) {
	t := assert.New(x)
	it, idx, err := AprioriTransactions(&config.Config{}, transactions, Options{
		MinSupport:    0.5,
		MinConfidence: 0.9,
	})
	t.Nil(err)
	defer idx.Close()
	relations := collectRelations(t, it, idx)
	t.Len(relations, 0)
}

func TestAprioriSingleTransaction(x *testing.T) {
	t := assert.New(x)
	it, idx, err := AprioriTransactions(&config.Config{}, [][]string{{"x"}}, Options{
		MinSupport: 0.1,
	})
	t.Nil(err)
	defer idx.Close()
	relations := collectRelations(t, it, idx)
	t.Len(relations, 0)
}

func TestAprioriEmptyInput(x *testing.T) {
	t := assert.New(x)
	it, idx, err := AprioriTransactions(&config.Config{}, nil, Options{
		MinSupport: 0.5,
	})
	t.Nil(err)
	defer idx.Close()
	relations := collectRelations(t, it, idx)
	t.Len(relations, 0)
}

func TestAprioriIdempotent(x *testing.T) {
	t := assert.New(x)
	idx := build(t, transactions)
	defer idx.Close()
	o := Options{MinSupport: 0.25, MinConfidence: 0.5}
	first, err := Apriori(idx, o)
	t.Nil(err)
	second, err := Apriori(idx, o)
	t.Nil(err)
	a := collectRelations(t, first, idx)
	b := collectRelations(t, second, idx)
	sort.Strings(a)
	sort.Strings(b)
	t.Equal(a, b)
	t.True(len(a) > 0, "no relations mined")
}

func TestAprioriMaxLength(x *testing.T) {
	t := assert.New(x)
	it, idx, err := AprioriTransactions(&config.Config{}, transactions, Options{
		MinSupport:    0.2,
		MaxLength:     2,
		MinConfidence: 0.0,
	})
	t.Nil(err)
	defer idx.Close()
	count := 0
	err = DoRelations(it, func(r *itemset.RelationRecord) error {
		count++
		t.True(r.Items.Size() <= 2, "itemset %v over the length bound", r.Items)
		return nil
	})
	t.Nil(err)
	t.True(count > 0, "no relations mined")
}
