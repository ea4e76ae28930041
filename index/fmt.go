package index

import (
	"sort"
	"strings"
)

import (
	"github.com/timtadh/data-structures/set"
	"github.com/timtadh/data-structures/types"
)

// ItemNames maps an itemset back to its item tokens, sorted
// lexicographically for deterministic output.
func (ti *TransactionIndex) ItemNames(items *set.SortedSet) []string {
	names := make([]string, 0, items.Size())
	for i, next := items.Items()(); next != nil; i, next = next() {
		id := int32(i.(types.Int32))
		if id < 0 || int(id) >= len(ti.names) {
			continue
		}
		names = append(names, ti.names[id])
	}
	sort.Strings(names)
	return names
}

func (ti *TransactionIndex) FormatItems(items *set.SortedSet) string {
	return strings.Join(ti.ItemNames(items), ", ")
}
