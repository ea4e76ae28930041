package itemset

import (
	"fmt"
)

import (
	"github.com/timtadh/data-structures/set"
)

// SupportRecord is a frequent itemset together with its support ratio,
// the fraction of transactions which contain every item in the set.
type SupportRecord struct {
	Items   *set.SortedSet
	Support float64
}

// OrderedStatistic is one way of splitting a frequent itemset into an
// antecedent (Base) and a consequent (Add), with the confidence and
// lift of the implied rule Base -> Add.
type OrderedStatistic struct {
	Base       *set.SortedSet
	Add        *set.SortedSet
	Confidence float64
	Lift       float64
}

// RelationRecord is a SupportRecord plus the ordered statistics which
// survived the minimum confidence filter.
type RelationRecord struct {
	SupportRecord
	OrderedStatistics []OrderedStatistic
}

func (r *SupportRecord) String() string {
	return fmt.Sprintf("<SupportRecord %v %v>", r.Items, r.Support)
}

func (o *OrderedStatistic) String() string {
	return fmt.Sprintf("<OrderedStatistic %v -> %v %v %v>", o.Base, o.Add, o.Confidence, o.Lift)
}

func (r *RelationRecord) String() string {
	return fmt.Sprintf("<RelationRecord %v %v %v>", r.Items, r.Support, len(r.OrderedStatistics))
}
