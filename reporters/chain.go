package reporters

import (
	"github.com/timtadh/apriori/itemset"
	"github.com/timtadh/apriori/miner"
)

type Chain struct {
	Reporters []miner.Reporter
}

func (r *Chain) Report(rec *itemset.RelationRecord) error {
	for _, rpt := range r.Reporters {
		err := rpt.Report(rec)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *Chain) Close() error {
	for _, rpt := range r.Reporters {
		err := rpt.Close()
		if err != nil {
			return err
		}
	}
	return nil
}
