package reporters

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/timtadh/apriori/itemset"
)

type Log struct {
	names  Namer
	level  string
	prefix string
	count  int
}

func NewLog(names Namer, level, prefix string) *Log {
	if level == "" {
		level = "INFO"
	}
	return &Log{names: names, level: level, prefix: prefix}
}

func (lr *Log) Report(rec *itemset.RelationRecord) error {
	lr.count++
	if lr.prefix != "" {
		errors.Logf(lr.level, "%s %v {%v} support %v (%v rules)",
			lr.prefix, lr.count, lr.names.FormatItems(rec.Items), rec.Support, len(rec.OrderedStatistics))
	} else {
		errors.Logf(lr.level, "%v {%v} support %v (%v rules)",
			lr.count, lr.names.FormatItems(rec.Items), rec.Support, len(rec.OrderedStatistics))
	}
	return nil
}

func (lr *Log) Close() error {
	return nil
}
