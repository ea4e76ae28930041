package reporters

import (
	"bufio"
	"encoding/json"
	"io"
)

import (
	"github.com/timtadh/apriori/itemset"
)

type jsonStatistic struct {
	ItemsBase  []string `json:"items_base"`
	ItemsAdd   []string `json:"items_add"`
	Confidence float64  `json:"confidence"`
	Lift       float64  `json:"lift"`
}

type jsonRecord struct {
	Items             []string        `json:"items"`
	Support           float64         `json:"support"`
	OrderedStatistics []jsonStatistic `json:"ordered_statistics"`
}

// JSON writes one JSON object per relation record. Item arrays are
// sorted lexicographically.
type JSON struct {
	names Namer
	buf   *bufio.Writer
}

func NewJSON(w io.Writer, names Namer) *JSON {
	return &JSON{
		names: names,
		buf:   bufio.NewWriter(w),
	}
}

func (r *JSON) Report(rec *itemset.RelationRecord) error {
	stats := make([]jsonStatistic, 0, len(rec.OrderedStatistics))
	for _, stat := range rec.OrderedStatistics {
		stats = append(stats, jsonStatistic{
			ItemsBase:  r.names.ItemNames(stat.Base),
			ItemsAdd:   r.names.ItemNames(stat.Add),
			Confidence: stat.Confidence,
			Lift:       stat.Lift,
		})
	}
	bytes, err := json.Marshal(&jsonRecord{
		Items:             r.names.ItemNames(rec.Items),
		Support:           rec.Support,
		OrderedStatistics: stats,
	})
	if err != nil {
		return err
	}
	_, err = r.buf.Write(bytes)
	if err != nil {
		return err
	}
	return r.buf.WriteByte('\n')
}

func (r *JSON) Close() error {
	return r.buf.Flush()
}
