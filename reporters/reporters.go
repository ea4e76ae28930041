package reporters

import (
	"github.com/timtadh/data-structures/set"
)

// Namer maps itemsets back to their item tokens. The transaction index
// implements it.
type Namer interface {
	ItemNames(items *set.SortedSet) []string
	FormatItems(items *set.SortedSet) string
}
