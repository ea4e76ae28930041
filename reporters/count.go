package reporters

import (
	"fmt"
	"os"
)

import (
	"github.com/timtadh/apriori/itemset"
)

// Count tallies the relation records and writes the total to a file on
// Close.
type Count struct {
	count    int
	filename string
}

func NewCount(filename string) (*Count, error) {
	r := &Count{
		filename: filename,
	}
	return r, nil
}

func (r *Count) Report(rec *itemset.RelationRecord) error {
	r.count++
	return nil
}

func (r *Count) Close() error {
	f, err := os.Create(r.filename)
	if err != nil {
		return err
	}
	_, perr := fmt.Fprintf(f, "%v\n", r.count)
	err = f.Close()
	if perr != nil {
		return perr
	}
	if err != nil {
		return err
	}
	return nil
}
