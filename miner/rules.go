package miner

import (
	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/data-structures/set"
)

import (
	"github.com/timtadh/apriori/index"
	"github.com/timtadh/apriori/itemset"
)

// OrderedStatistics enumerates every split of a frequent itemset into
// an antecedent of size m-1 and its single item consequent, computing
// confidence and lift via further index queries. Itemsets of size < 2
// produce no statistics. A statistic with an unsupported antecedent or
// consequent cannot arise through the scanner (downward closure keeps
// subsets at least as frequent as the whole) so a zero divisor is
// reported as an error instead of propagating Inf or NaN.
func OrderedStatistics(idx *index.TransactionIndex, r *itemset.SupportRecord) ([]itemset.OrderedStatistic, error) {
	if r.Items.Size() < 2 {
		return nil, nil
	}
	stats := make([]itemset.OrderedStatistic, 0, r.Items.Size())
	for i, next := r.Items.Items()(); next != nil; i, next = next() {
		base := r.Items.Copy()
		base.Delete(i)
		add := set.NewSortedSet(1)
		add.Add(i)
		baseSupport, err := idx.Support(base)
		if err != nil {
			return nil, err
		}
		if baseSupport == 0 {
			return nil, errors.Errorf("zero support for antecedent %v of %v", base, r.Items)
		}
		confidence := r.Support / baseSupport
		addSupport, err := idx.Support(add)
		if err != nil {
			return nil, err
		}
		if addSupport == 0 {
			return nil, errors.Errorf("zero support for consequent %v of %v", add, r.Items)
		}
		lift := confidence / addSupport
		stats = append(stats, itemset.OrderedStatistic{
			Base:       base,
			Add:        add,
			Confidence: confidence,
			Lift:       lift,
		})
	}
	return stats, nil
}
