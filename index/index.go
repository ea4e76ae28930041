package index

import (
	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/data-structures/set"
	"github.com/timtadh/data-structures/types"
)

import (
	"github.com/timtadh/apriori/config"
	"github.com/timtadh/apriori/itemset"
	"github.com/timtadh/apriori/stores/itemtx"
)

// TransactionIndex answers support queries over a set of transactions.
// It assigns each distinct item an int32 identifier in first-seen order
// and maintains, per item, the set of transaction ids containing it.
// Transactions are ingested into a bptree multimap (anonymous mmap by
// default, file backed under config.Cache); Freeze materializes the
// posting sets into memory, after which the index is read-only.
type TransactionIndex struct {
	config   *config.Config
	itemIds  map[string]int32
	names    []string
	inverted itemtx.MultiMap
	postings []*set.SortedSet
	n        int
	frozen   bool
}

func New(conf *config.Config) (*TransactionIndex, error) {
	inverted, err := conf.ItemTxMultiMap("inverted-index")
	if err != nil {
		return nil, err
	}
	ti := &TransactionIndex{
		config:   conf,
		itemIds:  make(map[string]int32),
		names:    make([]string, 0, 10),
		inverted: inverted,
	}
	return ti, nil
}

// FromTransactions builds and freezes an index from a materialized
// transaction collection.
func FromTransactions(conf *config.Config, transactions [][]string) (*TransactionIndex, error) {
	ti, err := New(conf)
	if err != nil {
		return nil, err
	}
	for _, transaction := range transactions {
		err := ti.Add(transaction)
		if err != nil {
			ti.Close()
			return nil, err
		}
	}
	err = ti.Freeze()
	if err != nil {
		ti.Close()
		return nil, err
	}
	return ti, nil
}

// Add ingests one transaction. Duplicate items within a transaction are
// immaterial; an empty transaction still counts toward the total.
func (ti *TransactionIndex) Add(transaction []string) error {
	if ti.frozen {
		return errors.Errorf("add on a frozen transaction index")
	}
	seen := make(map[int32]bool, len(transaction))
	for _, item := range transaction {
		id, has := ti.itemIds[item]
		if !has {
			id = int32(len(ti.names))
			ti.itemIds[item] = id
			ti.names = append(ti.names, item)
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		err := ti.inverted.Add(id, int32(ti.n))
		if err != nil {
			return err
		}
	}
	ti.n++
	return nil
}

// Freeze materializes the posting sets and makes the index read-only.
func (ti *TransactionIndex) Freeze() error {
	if ti.frozen {
		return nil
	}
	ti.postings = make([]*set.SortedSet, len(ti.names))
	for i := range ti.postings {
		ti.postings[i] = set.NewSortedSet(10)
	}
	err := itemtx.Do(ti.inverted.Iterate, func(item, tx int32) error {
		ti.postings[item].Add(types.Int32(tx))
		return nil
	})
	if err != nil {
		return err
	}
	ti.frozen = true
	return nil
}

func (ti *TransactionIndex) Frozen() bool {
	return ti.frozen
}

// Len is the total number of transactions ingested.
func (ti *TransactionIndex) Len() int {
	return ti.n
}

// Items is the number of distinct items registered.
func (ti *TransactionIndex) Items() int {
	return len(ti.names)
}

// Support computes |transactions containing every item| / N by
// intersecting the posting sets incrementally. The empty set has
// support 1 by convention; a set containing an unregistered item has
// support 0.
func (ti *TransactionIndex) Support(items *set.SortedSet) (float64, error) {
	if !ti.frozen {
		return 0, errors.Errorf("support query before the index was frozen")
	}
	if items.Size() == 0 {
		return 1.0, nil
	}
	var txs types.Set
	for i, next := items.Items()(); next != nil; i, next = next() {
		id := int32(i.(types.Int32))
		if id < 0 || int(id) >= len(ti.postings) {
			return 0.0, nil
		}
		if txs == nil {
			txs = ti.postings[id]
			continue
		}
		var err error
		txs, err = txs.Intersect(ti.postings[id])
		if err != nil {
			return 0, err
		}
		if txs.Size() == 0 {
			return 0.0, nil
		}
	}
	return float64(txs.Size()) / float64(ti.n), nil
}

// SupportOf is Support over item tokens rather than identifiers.
// Unknown tokens short-circuit to support 0.
func (ti *TransactionIndex) SupportOf(items ...string) (float64, error) {
	s := set.NewSortedSet(len(items))
	for _, item := range items {
		id, has := ti.itemIds[item]
		if !has {
			return 0.0, nil
		}
		s.Add(types.Int32(id))
	}
	return ti.Support(s)
}

// InitialCandidates returns one singleton itemset per distinct item in
// first-seen order.
func (ti *TransactionIndex) InitialCandidates() []*set.SortedSet {
	candidates := make([]*set.SortedSet, 0, len(ti.names))
	for id := range ti.names {
		candidates = append(candidates, itemset.Singleton(int32(id)))
	}
	return candidates
}

func (ti *TransactionIndex) Close() error {
	return ti.inverted.Delete()
}
