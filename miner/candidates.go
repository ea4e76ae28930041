package miner

import (
	"github.com/timtadh/data-structures/set"
	"github.com/timtadh/data-structures/types"
)

import (
	"github.com/timtadh/apriori/itemset"
)

// CandidateGenerator produces the level k candidate itemsets from the
// itemsets accepted at level k-1.
type CandidateGenerator func(prev []*set.SortedSet, k int) ([]*set.SortedSet, error)

// NextCandidates generates every k-combination of the items appearing
// in prev, pruned by downward closure: for k > 2 a combination is a
// candidate only if each of its (k-1)-subsets was accepted at the
// previous level. For k <= 2 the subset check is vacuous since level 1
// already filtered the item universe. Enumeration is in item id order,
// so the output is deterministic for a deterministic input.
func NextCandidates(prev []*set.SortedSet, k int) ([]*set.SortedSet, error) {
	universe := set.NewSortedSet(len(prev))
	for _, items := range prev {
		for i, next := items.Items()(); next != nil; i, next = next() {
			universe.Add(i)
		}
	}
	active := make([]int32, 0, universe.Size())
	for i, next := universe.Items()(); next != nil; i, next = next() {
		active = append(active, int32(i.(types.Int32)))
	}
	accepted := set.NewSortedSet(len(prev))
	for _, items := range prev {
		accepted.Add(items)
	}
	candidates := make([]*set.SortedSet, 0, 10)
	err := itemset.Combinations(active, k, func(pick []int32) error {
		candidate := itemset.FromInt32s(pick)
		if k > 2 && !acceptedSubsets(accepted, candidate) {
			return nil
		}
		candidates = append(candidates, candidate)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return candidates, nil
}

func acceptedSubsets(accepted *set.SortedSet, candidate *set.SortedSet) bool {
	for i, next := candidate.Items()(); next != nil; i, next = next() {
		sub := candidate.Copy()
		sub.Delete(i)
		if !accepted.Has(sub) {
			return false
		}
	}
	return true
}
