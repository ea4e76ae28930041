package miner

import (
	"github.com/timtadh/data-structures/set"
)

import (
	"github.com/timtadh/apriori/index"
	"github.com/timtadh/apriori/itemset"
)

// ScanSupport drives the level-wise loop: starting from the singleton
// candidates it queries the index for each candidate's support, emits a
// record for those meeting minSupport, and seeds the next level with
// the accepted sets. maxLength of 0 means unbounded; mining otherwise
// stops when no candidates survive pruning.
func ScanSupport(idx *index.TransactionIndex, minSupport float64, maxLength int) SupportIterator {
	return ScanSupportWith(idx, minSupport, maxLength, NextCandidates)
}

// ScanSupportWith is ScanSupport with an injectable candidate
// generator.
func ScanSupportWith(idx *index.TransactionIndex, minSupport float64, maxLength int, generate CandidateGenerator) SupportIterator {
	candidates := idx.InitialCandidates()
	accepted := make([]*set.SortedSet, 0, len(candidates))
	k := 1
	pos := 0
	var it SupportIterator
	it = func() (*itemset.SupportRecord, error, SupportIterator) {
		for {
			for pos < len(candidates) {
				candidate := candidates[pos]
				pos++
				support, err := idx.Support(candidate)
				if err != nil {
					return nil, err, nil
				}
				if support < minSupport {
					continue
				}
				accepted = append(accepted, candidate)
				return &itemset.SupportRecord{Items: candidate, Support: support}, nil, it
			}
			k++
			if maxLength > 0 && k > maxLength {
				return nil, nil, nil
			}
			if len(accepted) == 0 {
				return nil, nil, nil
			}
			next, err := generate(accepted, k)
			if err != nil {
				return nil, err, nil
			}
			candidates = next
			accepted = make([]*set.SortedSet, 0, len(candidates))
			pos = 0
			if len(candidates) == 0 {
				return nil, nil, nil
			}
		}
	}
	return it
}
