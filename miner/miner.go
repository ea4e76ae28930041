package miner

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/timtadh/apriori/config"
	"github.com/timtadh/apriori/index"
	"github.com/timtadh/apriori/itemset"
)

// Options for one mining run. MinSupport must be > 0. MaxLength of 0
// leaves the itemset size unbounded. MinConfidence of 0 keeps every
// derivable statistic.
type Options struct {
	MinSupport    float64
	MaxLength     int
	MinConfidence float64
}

// Apriori mines an already built index, lazily producing one relation
// record per frequent itemset which has at least one statistic meeting
// MinConfidence. Frequent itemsets whose statistics all fall below the
// confidence floor are dropped entirely.
func Apriori(idx *index.TransactionIndex, o Options) (RelationIterator, error) {
	if o.MinSupport <= 0 {
		return nil, errors.Errorf("min support must be > 0, got %v", o.MinSupport)
	}
	supports := ScanSupport(idx, o.MinSupport, o.MaxLength)
	var it RelationIterator
	it = func() (*itemset.RelationRecord, error, RelationIterator) {
		for {
			var r *itemset.SupportRecord
			var err error
			r, err, supports = supports()
			if err != nil {
				return nil, err, nil
			}
			if supports == nil {
				return nil, nil, nil
			}
			stats, err := OrderedStatistics(idx, r)
			if err != nil {
				return nil, err, nil
			}
			kept := make([]itemset.OrderedStatistic, 0, len(stats))
			for _, stat := range stats {
				if stat.Confidence >= o.MinConfidence {
					kept = append(kept, stat)
				}
			}
			if len(kept) == 0 {
				continue
			}
			return &itemset.RelationRecord{
				SupportRecord:     *r,
				OrderedStatistics: kept,
			}, nil, it
		}
	}
	return it, nil
}

// AprioriTransactions builds an index from a materialized transaction
// collection and mines it. The returned index must be closed by the
// caller once the iterator is exhausted.
func AprioriTransactions(conf *config.Config, transactions [][]string, o Options) (RelationIterator, *index.TransactionIndex, error) {
	if o.MinSupport <= 0 {
		return nil, nil, errors.Errorf("min support must be > 0, got %v", o.MinSupport)
	}
	idx, err := index.FromTransactions(conf, transactions)
	if err != nil {
		return nil, nil, err
	}
	it, err := Apriori(idx, o)
	if err != nil {
		idx.Close()
		return nil, nil, err
	}
	return it, idx, nil
}
