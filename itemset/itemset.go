package itemset

import (
	"github.com/timtadh/data-structures/set"
	"github.com/timtadh/data-structures/types"
)

// Itemsets are sorted sets of int32 item identifiers. The identifiers
// are assigned by the transaction index in first-seen order; the index
// owns the mapping back to the item tokens.

func FromInt32s(list []int32) *set.SortedSet {
	items := set.NewSortedSet(len(list))
	for _, item := range list {
		items.Add(types.Int32(item))
	}
	return items
}

func ToInt32s(s *set.SortedSet) []int32 {
	items := make([]int32, 0, s.Size())
	for i, n := s.Items()(); n != nil; i, n = n() {
		item := int32(i.(types.Int32))
		items = append(items, item)
	}
	return items
}

func Singleton(item int32) *set.SortedSet {
	s := set.NewSortedSet(1)
	s.Add(types.Int32(item))
	return s
}

// Combinations calls do with each k-combination of universe in
// lexicographic order. The universe must be duplicate free; the slice
// passed to do is reused between calls and must not be retained.
func Combinations(universe []int32, k int, do func([]int32) error) error {
	if k <= 0 || k > len(universe) {
		return nil
	}
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	pick := make([]int32, k)
	for {
		for i, j := range idx {
			pick[i] = universe[j]
		}
		if err := do(pick); err != nil {
			return err
		}
		i := k - 1
		for i >= 0 && idx[i] == len(universe)-k+i {
			i--
		}
		if i < 0 {
			return nil
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}
