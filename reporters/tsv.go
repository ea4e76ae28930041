package reporters

import (
	"bufio"
	"fmt"
	"io"
)

import (
	"github.com/timtadh/apriori/itemset"
)

// TSV writes one tab separated line per statistic with a singleton
// antecedent and consequent:
//
//	base	add	support	confidence	lift
//
// Statistics with larger antecedents or consequents are silently
// skipped; this format only expresses pairwise rules.
type TSV struct {
	names Namer
	buf   *bufio.Writer
}

func NewTSV(w io.Writer, names Namer) *TSV {
	return &TSV{
		names: names,
		buf:   bufio.NewWriter(w),
	}
}

func (r *TSV) Report(rec *itemset.RelationRecord) error {
	for _, stat := range rec.OrderedStatistics {
		if stat.Base.Size() != 1 || stat.Add.Size() != 1 {
			continue
		}
		base := r.names.ItemNames(stat.Base)[0]
		add := r.names.ItemNames(stat.Add)[0]
		_, err := fmt.Fprintf(r.buf, "%s\t%s\t%.8f\t%.8f\t%.8f\n",
			base, add, rec.Support, stat.Confidence, stat.Lift)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *TSV) Close() error {
	return r.buf.Flush()
}
