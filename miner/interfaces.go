package miner

import (
	"github.com/timtadh/apriori/itemset"
)

// Reporter consumes the relation records produced by a mining run.
// Close flushes any buffered output.
type Reporter interface {
	Report(*itemset.RelationRecord) error
	Close() error
}

// SupportIterator lazily produces support records level by level. An
// exhausted iterator returns a nil continuation; a final error (if any)
// accompanies the nil continuation.
type SupportIterator func() (*itemset.SupportRecord, error, SupportIterator)

// RelationIterator lazily produces relation records.
type RelationIterator func() (*itemset.RelationRecord, error, RelationIterator)

func DoSupport(it SupportIterator, do func(*itemset.SupportRecord) error) error {
	var r *itemset.SupportRecord
	var err error
	for r, err, it = it(); it != nil; r, err, it = it() {
		e := do(r)
		if e != nil {
			return e
		}
	}
	return err
}

func DoRelations(it RelationIterator, do func(*itemset.RelationRecord) error) error {
	var r *itemset.RelationRecord
	var err error
	for r, err, it = it(); it != nil; r, err, it = it() {
		e := do(r)
		if e != nil {
			return e
		}
	}
	return err
}
